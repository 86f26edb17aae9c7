package utils

import "strings"

// ValidatePassword checks password strength for admin accounts.
func ValidatePassword(password string) (bool, string) {
	if len(password) < 8 {
		return false, "Password must be at least 8 characters"
	}
	if strings.TrimSpace(password) != password {
		return false, "Password must not start or end with whitespace"
	}
	return true, ""
}

// SanitizeInput normalizes free-text form input: surrounding whitespace
// trimmed, null bytes and other control characters stripped. Newlines and
// tabs survive, multi-line messages are expected.
func SanitizeInput(input string) string {
	input = strings.TrimSpace(input)
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\r' || r == '\t' {
			return r
		}
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, input)
}
