package phone

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// Normalize formats raw as E.164 when it parses as a valid number, using
// region for national-format input. Anything else is returned trimmed and
// unchanged, with ok=false; the caller decides whether that is acceptable.
func Normalize(raw, region string) (normalized string, ok bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}

	num, err := phonenumbers.Parse(raw, strings.ToUpper(region))
	if err != nil || !phonenumbers.IsValidNumber(num) {
		return raw, false
	}
	return phonenumbers.Format(num, phonenumbers.E164), true
}

// Display renders a number in international format for humans, e.g.
// "+212 6 12 34 56 78". Unparsable input is returned as is.
func Display(raw, region string) string {
	num, err := phonenumbers.Parse(strings.TrimSpace(raw), strings.ToUpper(region))
	if err != nil {
		return raw
	}
	return phonenumbers.Format(num, phonenumbers.INTERNATIONAL)
}
