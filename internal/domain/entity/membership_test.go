package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMembershipType(t *testing.T) {
	testCases := []struct {
		raw  string
		want MembershipType
	}{
		{"VISA", MembershipVisa},
		{"visa", MembershipVisa},
		{"Air Miles", MembershipAirMiles},
		{"AIRMILES", MembershipAirMiles},
		{"air-miles", MembershipAirMiles},
		{"caa", MembershipCAA},
		{"Aeroplan", MembershipAeroplan},
	}

	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			got, err := ParseMembershipType(tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseMembershipType_Unknown(t *testing.T) {
	_, err := ParseMembershipType("Blockbuster Card")

	assert.Error(t, err)
}

func TestMembershipType_MatchesLabel(t *testing.T) {
	assert.True(t, MembershipAirMiles.MatchesLabel("Air Miles"))
	assert.True(t, MembershipAirMiles.MatchesLabel("air_miles"))
	assert.True(t, MembershipVisa.MatchesLabel("VISA"))
	assert.False(t, MembershipVisa.MatchesLabel("Mastercard"))
}

func TestProfile_MembershipSetSemantics(t *testing.T) {
	profile := &Profile{}

	assert.True(t, profile.AddMembership("Visa"))
	assert.False(t, profile.AddMembership("visa"))
	assert.Equal(t, []string{"Visa"}, profile.Memberships)

	stored, removed := profile.RemoveMembership("VISA")
	assert.True(t, removed)
	assert.Equal(t, "Visa", stored)

	_, removed = profile.RemoveMembership("Visa")
	assert.False(t, removed)
	assert.Empty(t, profile.Memberships)
}
