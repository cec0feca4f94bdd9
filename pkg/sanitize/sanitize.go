// Package sanitize turns untrusted form input into opaque plain text.
//
// Text never returns markup: every tag is dropped (script and style elements
// lose their content too) and entities are decoded, so callers must escape
// the result for whatever medium they embed it in. HeaderSafe additionally
// removes line terminators so a value can sit in a single mail header slot.
package sanitize

import (
	"html"
	"net/mail"
	"strings"
	"sync"
	"unicode"

	"github.com/microcosm-cc/bluemonday"
)

// maxPasses bounds the strip/decode loop; encoded markup nests one level per pass.
const maxPasses = 4

var (
	strictOnce   sync.Once
	strictPolicy *bluemonday.Policy
)

func strict() *bluemonday.Policy {
	strictOnce.Do(func() {
		strictPolicy = bluemonday.StrictPolicy()
	})
	return strictPolicy
}

// Text strips all markup from s and returns trimmed plain text.
func Text(s string) string {
	out := s
	for range maxPasses {
		next := html.UnescapeString(strict().Sanitize(out))
		if next == out {
			break
		}
		out = next
	}
	return strings.TrimSpace(out)
}

// HeaderSafe is Text with CR, LF and every other control character removed.
func HeaderSafe(s string) string {
	return strings.TrimSpace(strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, Text(s)))
}

// Email keeps only the characters FILTER_SANITIZE_EMAIL allows:
// letters, digits and !#$%&'*+-=?^_`{|}~@.[]
func Email(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r > unicode.MaxASCII:
			return -1
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case strings.ContainsRune("!#$%&'*+-=?^_`{|}~@.[]", r):
			return r
		default:
			return -1
		}
	}, strings.TrimSpace(s))
}

// ValidEmail reports whether s is a single bare address with a dotted domain.
func ValidEmail(s string) bool {
	if s == "" || len(s) > 254 {
		return false
	}
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Name != "" || addr.Address != s {
		return false
	}
	at := strings.LastIndexByte(s, '@')
	if at <= 0 || at == len(s)-1 {
		return false
	}
	domain := s[at+1:]
	return strings.Contains(domain, ".") &&
		!strings.HasPrefix(domain, ".") &&
		!strings.HasSuffix(domain, ".") &&
		!strings.Contains(domain, "..")
}

// Truncate cuts s to at most n runes.
func Truncate(s string, n int) string {
	if n < 0 {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
