package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mplath/tasknest/internal/config"
	"github.com/mplath/tasknest/internal/service/auth"
)

// minCost keeps the tests fast; production uses the config default.
func testHasher() *auth.BcryptHasher {
	return auth.NewBcryptHasher(config.AuthConfig{BcryptCost: bcrypt.MinCost})
}

func TestHashAndCompare(t *testing.T) {
	t.Parallel()

	hasher := testHasher()

	hash, err := hasher.Hash("Passw0rd!123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "Passw0rd!123", hash, "hash must never equal the plaintext")

	assert.NoError(t, hasher.Compare(hash, "Passw0rd!123"))
	assert.ErrorIs(t, hasher.Compare(hash, "wrong-password"), auth.ErrPasswordMismatch)
}

func TestHash_SaltsEachCall(t *testing.T) {
	t.Parallel()

	hasher := testHasher()

	first, err := hasher.Hash("same-plaintext")
	require.NoError(t, err)
	second, err := hasher.Hash("same-plaintext")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "per-call random salt must vary the output")
	assert.NoError(t, hasher.Compare(first, "same-plaintext"))
	assert.NoError(t, hasher.Compare(second, "same-plaintext"))
}

func TestCompare_MalformedHash(t *testing.T) {
	t.Parallel()

	hasher := testHasher()

	for _, bad := range []string{"", "not-a-bcrypt-hash", "$2a$banana"} {
		err := hasher.Compare(bad, "whatever")
		assert.ErrorIs(t, err, auth.ErrInvalidHash, "hash %q", bad)
		assert.NotErrorIs(t, err, auth.ErrPasswordMismatch)
	}
}

func TestNewBcryptHasher_DefaultCost(t *testing.T) {
	t.Parallel()

	hasher := auth.NewBcryptHasher(config.AuthConfig{})
	hash, err := hasher.Hash("Passw0rd!123")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}
