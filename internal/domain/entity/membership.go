// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"

	"perkhub/internal/errors"
)

// MembershipType is the closed enumeration of card/loyalty programs a perk can require.
// Profile memberships are free-form labels; a perk's membership is always one of these.
type MembershipType string

const (
	MembershipVisa       MembershipType = "VISA"
	MembershipMastercard MembershipType = "MASTERCARD"
	MembershipAmex       MembershipType = "AMEX"
	MembershipCAA        MembershipType = "CAA"
	MembershipAirMiles   MembershipType = "AIRMILES"
	MembershipAeroplan   MembershipType = "AEROPLAN"
)

// membershipLabels maps each enum value to the human-readable label form used
// in profile membership sets.
var membershipLabels = map[MembershipType]string{
	MembershipVisa:       "Visa",
	MembershipMastercard: "Mastercard",
	MembershipAmex:       "Amex",
	MembershipCAA:        "CAA",
	MembershipAirMiles:   "Air Miles",
	MembershipAeroplan:   "Aeroplan",
}

// MembershipTypes lists all valid membership types.
func MembershipTypes() []MembershipType {
	return []MembershipType{
		MembershipVisa,
		MembershipMastercard,
		MembershipAmex,
		MembershipCAA,
		MembershipAirMiles,
		MembershipAeroplan,
	}
}

// ParseMembershipType converts a raw string into a MembershipType.
// Matching is case-insensitive and tolerates the label form ("Air Miles").
func ParseMembershipType(raw string) (MembershipType, error) {
	needle := normalizeLabel(raw)
	for _, m := range MembershipTypes() {
		if normalizeLabel(string(m)) == needle || normalizeLabel(m.Label()) == needle {
			return m, nil
		}
	}

	return "", errors.Errorf("unknown membership type: %q", raw)
}

// Label returns the human-readable label form of the membership type.
// This is the representation stored in profile membership sets, so matching a
// perk against a profile must go through this conversion.
func (m MembershipType) Label() string {
	if label, ok := membershipLabels[m]; ok {
		return label
	}

	return string(m)
}

// Valid reports whether the membership type is one of the closed enum values.
func (m MembershipType) Valid() bool {
	_, ok := membershipLabels[m]

	return ok
}

// MatchesLabel reports whether a free-form profile label refers to this
// membership type. Comparison ignores case and spacing, so "air miles",
// "AIRMILES" and "Air Miles" all match MembershipAirMiles.
func (m MembershipType) MatchesLabel(label string) bool {
	needle := normalizeLabel(label)

	return needle == normalizeLabel(string(m)) || needle == normalizeLabel(m.Label())
}

func normalizeLabel(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if r == ' ' || r == '-' || r == '_' {
			continue
		}
		b.WriteRune(r)
	}

	return b.String()
}
