package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPerk_ApplyVote(t *testing.T) {
	perk := &Perk{}

	perk.ApplyVote(VoteUp)
	perk.ApplyVote(VoteUp)
	perk.ApplyVote(VoteDown)

	assert.Equal(t, 2, perk.Upvotes)
	assert.Equal(t, 1, perk.Downvotes)
}

func TestPerk_RetractVote_ClampsAtZero(t *testing.T) {
	perk := &Perk{Upvotes: 1}

	perk.RetractVote(VoteUp)
	perk.RetractVote(VoteUp)
	perk.RetractVote(VoteDown)

	assert.Equal(t, 0, perk.Upvotes)
	assert.Equal(t, 0, perk.Downvotes)
}

func TestPerk_NetScore(t *testing.T) {
	perk := &Perk{Upvotes: 5, Downvotes: 8}

	assert.Equal(t, -3, perk.NetScore())
}

func TestPerk_ActiveOn(t *testing.T) {
	perk := &Perk{
		StartDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
	}

	testCases := []struct {
		name string
		day  time.Time
		want bool
	}{
		{"before start", time.Date(2025, 5, 31, 12, 0, 0, 0, time.UTC), false},
		{"first day", time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC), true},
		{"mid window", time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), true},
		{"last day", time.Date(2025, 6, 30, 23, 0, 0, 0, time.UTC), true},
		{"after end", time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, perk.ActiveOn(tc.day))
		})
	}
}
