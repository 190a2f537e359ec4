package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVoteType(t *testing.T) {
	testCases := []struct {
		raw  string
		want VoteType
	}{
		{"UPVOTE", VoteUp},
		{"up", VoteUp},
		{"downvote", VoteDown},
		{"Down", VoteDown},
	}

	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			got, err := ParseVoteType(tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseVoteType_Unknown(t *testing.T) {
	_, err := ParseVoteType("sideways")

	assert.Error(t, err)
}

func TestVoteType_Opposite(t *testing.T) {
	assert.Equal(t, VoteDown, VoteUp.Opposite())
	assert.Equal(t, VoteUp, VoteDown.Opposite())
}
