package validation

import (
	"regexp"
	"strings"
)

// Validation rule patterns
var (
	// Student ID number pattern, e.g. "2021-1234"
	IDNumberPattern = `^\d{4}-\d{4}$`

	// Email validation pattern
	EmailPattern = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`

	// Field length limits shared by the entity validators
	CodeMaxLength = 20
	NameMaxLength = 50
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	IDNumber *regexp.Regexp
	Email    *regexp.Regexp
}{
	IDNumber: regexp.MustCompile(IDNumberPattern),
	Email:    regexp.MustCompile(EmailPattern),
}

// ValidIDNumber reports whether a student ID number matches the NNNN-NNNN format.
func ValidIDNumber(idNumber string) bool {
	return CompiledPatterns.IDNumber.MatchString(idNumber)
}

// ValidEmail reports whether an email address is plausibly formed.
func ValidEmail(email string) bool {
	return CompiledPatterns.Email.MatchString(email)
}

// RequiredString reports whether s is non-empty after trimming whitespace.
func RequiredString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// MaxLen reports whether s fits within max characters.
func MaxLen(s string, max int) bool {
	return len(s) <= max
}
