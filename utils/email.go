package utils

import (
	"strings"

	"github.com/badoux/checkmail"
)

// ValidEmailFormat reports whether the address is syntactically plausible.
// Callers log a warning on failure instead of rejecting the write; plenty
// of directories contain service accounts and historical addresses that
// fail strict validation.
func ValidEmailFormat(email string) bool {
	return checkmail.ValidateFormat(email) == nil
}

// SuggestEmail builds a conventional address from a display name and the
// workspace's default domain. It is a suggestion for form autofill only,
// never enforced.
func SuggestEmail(name, domain string) string {
	local := strings.ToLower(strings.TrimSpace(name))
	local = strings.Join(strings.Fields(local), ".")
	local = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			return r
		}
		return -1
	}, local)
	if local == "" || domain == "" {
		return ""
	}
	return local + "@" + domain
}
