package validation

import (
	"regexp"
)

// Validation rule patterns
var (
	// Email validation pattern
	EmailPattern = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`

	// Registration number pattern - alphanumeric, up to 20 characters
	RegistrationNoPattern = `^[A-Za-z0-9\-/]{1,20}$`

	// Password min length
	PasswordMinLength = 8
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email          *regexp.Regexp
	RegistrationNo *regexp.Regexp
}{
	Email:          regexp.MustCompile(EmailPattern),
	RegistrationNo: regexp.MustCompile(RegistrationNoPattern),
}

// IsValidEmail reports whether the value looks like an email address.
func IsValidEmail(email string) bool {
	return CompiledPatterns.Email.MatchString(email)
}

// IsValidRegistrationNo reports whether the value is an acceptable student
// registration number.
func IsValidRegistrationNo(registrationNo string) bool {
	return CompiledPatterns.RegistrationNo.MatchString(registrationNo)
}

// IsValidSemester reports whether the semester number is within range.
func IsValidSemester(semester, min, max int) bool {
	return semester >= min && semester <= max
}
