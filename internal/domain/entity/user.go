package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core account entity. Every user owns exactly one Profile for
// its whole lifetime; the profile is created together with the user and
// deleted together with the user.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email        string    // The user's login identifier; unique, stored as given.
	PasswordHash string    // Opaque credential hash; never exposed to callers.
	Profile      *Profile  // The user's membership profile. Never nil for a persisted user.
	CreatedAt    time.Time // Timestamp of when this user account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this user's data.
}

// NewUser builds a user with an empty profile attached, ready for persistence.
func NewUser(email, passwordHash string) *User {
	return &User{
		Email:        email,
		PasswordHash: passwordHash,
		Profile:      &Profile{},
	}
}

// Profile holds a user's membership affiliations as a set of free-form labels
// ("Visa", "Air Miles", ...). Labels are open-ended here, unlike the closed
// MembershipType enum carried by perks.
type Profile struct {
	ID          uuid.UUID // The Global Unique Identifier (GUID) for the profile.
	UserID      uuid.UUID // Foreign Key that links this profile to its owning User.
	Memberships []string  // Unique membership labels, order not significant.
	UpdatedAt   time.Time // Timestamp of the last modification to this profile.
}

// HasMembership reports whether the profile already holds the given label.
// Comparison ignores case and spacing, matching the perk-to-profile rules.
func (p *Profile) HasMembership(label string) bool {
	needle := normalizeLabel(label)
	for _, m := range p.Memberships {
		if normalizeLabel(m) == needle {
			return true
		}
	}

	return false
}

// AddMembership adds a label to the set. It returns false without modifying
// the profile when the label is already present: set semantics, not an error.
func (p *Profile) AddMembership(label string) bool {
	if p.HasMembership(label) {
		return false
	}
	p.Memberships = append(p.Memberships, label)

	return true
}

// RemoveMembership removes a label from the set. It returns the stored label
// that matched and true, or "" and false when nothing matched. Callers must
// persist the returned label, not their input: the stored form may differ in
// case or spacing from what the caller passed.
func (p *Profile) RemoveMembership(label string) (string, bool) {
	needle := normalizeLabel(label)
	for i, m := range p.Memberships {
		if normalizeLabel(m) == needle {
			p.Memberships = append(p.Memberships[:i], p.Memberships[i+1:]...)

			return m, true
		}
	}

	return "", false
}

// MatchesMembership reports whether any profile label refers to the given
// perk membership type.
func (p *Profile) MatchesMembership(m MembershipType) bool {
	for _, label := range p.Memberships {
		if m.MatchesLabel(label) {
			return true
		}
	}

	return false
}
