package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret")

	assert.NoError(t, err)
	assert.NotEqual(t, "secret", hash)
	assert.True(t, CheckPassword(hash, "secret"))
	assert.False(t, CheckPassword(hash, "wrong"))
}

func TestHashesAreSalted(t *testing.T) {
	first, err := HashPassword("secret")
	assert.NoError(t, err)
	second, err := HashPassword("secret")
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, CheckPassword(first, "secret"))
	assert.True(t, CheckPassword(second, "secret"))
}
