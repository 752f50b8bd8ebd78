package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("student@ustp.edu.ph"))
	assert.True(t, IsValidEmail("first.last@example.com"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("missing@domain"))
	assert.False(t, IsValidEmail(""))
}

func TestIsInstitutionalEmail(t *testing.T) {
	assert.True(t, IsInstitutionalEmail("student@ustp.edu.ph", "@ustp.edu.ph"))
	assert.True(t, IsInstitutionalEmail("STUDENT@USTP.EDU.PH", "@ustp.edu.ph"))
	assert.False(t, IsInstitutionalEmail("someone@gmail.com", "@ustp.edu.ph"))

	// Empty domain falls back to the default institutional domain.
	assert.False(t, IsInstitutionalEmail("someone@gmail.com", ""))
	assert.True(t, IsInstitutionalEmail("student@ustp.edu.ph", ""))
}

func TestIsValidPassword(t *testing.T) {
	assert.True(t, IsValidPassword("12345678"))
	assert.True(t, IsValidPassword("a much longer passphrase"))
	assert.False(t, IsValidPassword("1234567"))
	assert.False(t, IsValidPassword(""))
}

func TestIsValidName(t *testing.T) {
	assert.True(t, IsValidName("Jo"))
	assert.True(t, IsValidName("Juan dela Cruz"))
	assert.False(t, IsValidName("J"))
	assert.False(t, IsValidName(" "))
	assert.False(t, IsValidName(""))
}
