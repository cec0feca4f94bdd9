// Package chatlink builds deep links into third-party chat applications.
package chatlink

import (
	"net/url"
	"strings"
)

const whatsAppBase = "https://wa.me/"

// WhatsApp returns a wa.me link opening a chat with number and text pre-filled.
// Everything but digits is dropped from number, so "+212 7 62 72 87 06" works.
func WhatsApp(number, text string) string {
	var b strings.Builder
	b.WriteString(whatsAppBase)
	b.WriteString(Digits(number))
	if text != "" {
		b.WriteString("?text=")
		b.WriteString(EncodeURIComponent(text))
	}
	return b.String()
}

// Digits keeps only ASCII digits.
func Digits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

// EncodeURIComponent percent-encodes s like the JavaScript function of the
// same name: spaces become %20 and the marks -_.!~*'() stay literal.
func EncodeURIComponent(s string) string {
	escaped := url.QueryEscape(s)
	escaped = strings.ReplaceAll(escaped, "+", "%20")

	r := strings.NewReplacer(
		"%21", "!",
		"%27", "'",
		"%28", "(",
		"%29", ")",
		"%2A", "*",
	)
	return r.Replace(escaped)
}
