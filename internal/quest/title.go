package quest

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CleanTitle normalizes a provider-generated quest title: trimmed,
// collapsed whitespace, title case. A fresh caser per call because
// cases.Caser is not safe for concurrent use.
func CleanTitle(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return ""
	}
	return cases.Title(language.English).String(s)
}
