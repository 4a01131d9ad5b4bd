// Package companycode derives short company codes from registered
// domains. The server requires a non-null company_code on creation that
// the admin form does not expose, so the client derives one.
package companycode

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	maxLen   = 10
	fallback = "COMP"
)

// FromDomain converts a company domain into its code: accents are
// decomposed and stripped, everything non-alphanumeric is dropped, the
// rest is upper-cased and truncated to 10 characters. An empty result
// falls back to "COMP".
func FromDomain(domain string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	decomposed, _, _ := transform.String(t, strings.TrimSpace(domain))

	var b strings.Builder
	for _, r := range strings.ToUpper(decomposed) {
		if r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
		if b.Len() == maxLen {
			break
		}
	}

	if b.Len() == 0 {
		return fallback
	}
	return b.String()
}
