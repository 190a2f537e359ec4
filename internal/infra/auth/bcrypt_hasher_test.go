package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"perkhub/config"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: config.AuthConfig{BcryptCost: 4}})

	hash, err := hasher.Hash("Password123!")

	require.NoError(t, err)
	assert.NotEqual(t, "Password123!", hash)
	assert.True(t, hasher.Check("Password123!", hash))
	assert.False(t, hasher.Check("wrong password", hash))
}

func TestBcryptHasher_SaltedHashesDiffer(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: config.AuthConfig{BcryptCost: 4}})

	first, err := hasher.Hash("Password123!")
	require.NoError(t, err)
	second, err := hasher.Hash("Password123!")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_DefaultsCostWithoutConfig(t *testing.T) {
	hasher := NewBcryptHasher(nil)

	hash, err := hasher.Hash("Password123!")

	require.NoError(t, err)
	assert.True(t, hasher.Check("Password123!", hash))
}
