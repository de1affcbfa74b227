// Package redact strips sensitive information from strings before they are
// logged or echoed in error responses. Ledger errors routinely carry account
// identifiers (national ID numbers) and database details that must not leak
// into shared logs or client-facing messages.
package redact

import (
	"regexp"
)

// Redaction placeholders.
const (
	RedactedIdentifierPlaceholder = "[REDACTED_IDENTIFIER]"
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedSQLPlaceholder        = "[REDACTED_SQL]"
	RedactedHostPlaceholder       = "[REDACTED_HOST]"
)

var (
	// Account identifiers are exactly 11 digits; mask all but the last four
	// so operators can still correlate log lines with support tickets.
	identifierRegex = regexp.MustCompile(`\b\d{7}(\d{4})\b`)

	// Database connection strings with embedded credentials.
	dbConnRegex = regexp.MustCompile(`(?i)(postgres|postgresql|mysql)://[^@\s]+@`)

	// SQL fragments that would reveal schema details.
	sqlRegex = regexp.MustCompile(
		`(?i)(SELECT|INSERT|UPDATE|DELETE|CREATE|ALTER|DROP)[\s\w,*()]+(?:FROM|INTO|SET|TABLE)(?:[\s\w,*()='"$]+)?`,
	)

	// Host:port pairs from driver errors.
	hostPortRegex = regexp.MustCompile(
		`\b(?:[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?\.)+[a-zA-Z]{2,}:\d{1,5}\b`,
	)
)

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	result = dbConnRegex.ReplaceAllString(result, RedactedCredentialPlaceholder)
	result = sqlRegex.ReplaceAllString(result, RedactedSQLPlaceholder)
	result = hostPortRegex.ReplaceAllString(result, RedactedHostPlaceholder)
	result = identifierRegex.ReplaceAllString(result, "*******$1")

	return result
}

// Error redacts sensitive information from an error's Error() output.
// Returns the empty string for a nil error.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
