package validation

import "regexp"

// Field rules shared by the entity services
var (
	// EmailPattern validates instructor email addresses
	EmailPattern = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`

	// SubjectNameMinLength is the minimum subject name length after trimming
	SubjectNameMinLength = 3
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email *regexp.Regexp
}{
	Email: regexp.MustCompile(EmailPattern),
}

// IsValidEmail reports whether the value looks like an email address
func IsValidEmail(value string) bool {
	return CompiledPatterns.Email.MatchString(value)
}

// validPeriods is the fixed set of academic periods a subject can belong to,
// "1º" through "10º".
var validPeriods = map[string]struct{}{
	"1º": {}, "2º": {}, "3º": {}, "4º": {}, "5º": {},
	"6º": {}, "7º": {}, "8º": {}, "9º": {}, "10º": {},
}

// IsValidPeriod reports whether the value is one of the ten academic periods
func IsValidPeriod(value string) bool {
	_, ok := validPeriods[value]
	return ok
}
