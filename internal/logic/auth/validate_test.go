package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, validateEmail("user@example.com"))
	assert.Error(t, validateEmail("not-an-email"))
	assert.Error(t, validateEmail(""))
}

func TestValidateUsername(t *testing.T) {
	assert.NoError(t, validateUsername("alice_01"))
	assert.Error(t, validateUsername("ab"))
	assert.Error(t, validateUsername("has space"))
	assert.Error(t, validateUsername("this_username_is_definitely_longer_than_32_chars"))
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, validatePassword("longenough"))
	assert.Error(t, validatePassword("short"))
}
