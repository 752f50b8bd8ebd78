package validation

import (
	"regexp"
	"strings"
)

// Validation rule constants
var (
	// EmailPattern is a general address shape check; domain policy is separate.
	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`

	// DefaultEmailDomain is the institutional domain required at signup.
	DefaultEmailDomain = "@ustp.edu.ph"

	// PasswordMinLength is the minimum signup password length.
	PasswordMinLength = 8

	// Name length bounds
	NameMinLength = 2
	NameMaxLength = 100
)

var emailRegex = regexp.MustCompile(EmailPattern)

// IsValidEmail checks the general shape of an email address.
// The input is lowercased first, matching how addresses are stored.
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(strings.ToLower(email))
}

// IsInstitutionalEmail checks shape plus the required institutional domain.
func IsInstitutionalEmail(email, domain string) bool {
	if domain == "" {
		domain = DefaultEmailDomain
	}
	lowered := strings.ToLower(email)
	return emailRegex.MatchString(lowered) && strings.HasSuffix(lowered, strings.ToLower(domain))
}

// IsValidPassword checks the minimum password length.
func IsValidPassword(password string) bool {
	return len(password) >= PasswordMinLength
}

// IsValidName checks name length bounds after trimming.
func IsValidName(name string) bool {
	trimmed := strings.TrimSpace(name)
	return len(trimmed) >= NameMinLength && len(trimmed) <= NameMaxLength
}
