package sanitize

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "Jean Dupont", want: "Jean Dupont"},
		{name: "trims", in: "  Bonjour \n", want: "Bonjour"},
		{name: "inline tags", in: "<b>Jean</b> <i>Dupont</i>", want: "Jean Dupont"},
		{name: "script content dropped", in: "<script>alert(1)</script>Bonjour", want: "Bonjour"},
		{name: "style content dropped", in: "<style>p{}</style>Salut", want: "Salut"},
		{name: "entities decoded", in: "Tom &amp; Jerry", want: "Tom & Jerry"},
		{name: "encoded markup stripped", in: "&lt;b&gt;gras&lt;/b&gt;", want: "gras"},
		{name: "comparison kept as text", in: "a < b", want: "a < b"},
		{name: "accents kept", in: "Transfert Aéroport", want: "Transfert Aéroport"},
		{name: "newlines kept", in: "ligne 1\nligne 2", want: "ligne 1\nligne 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Text(tt.in)
			assert.Equal(t, tt.want, got)
			assert.NotContains(t, got, "<b>")
			assert.NotContains(t, got, "<script")
		})
	}
}

func TestHeaderSafe(t *testing.T) {
	got := HeaderSafe("Jean\r\nBcc: victim@example.com")
	assert.NotContains(t, got, "\r")
	assert.NotContains(t, got, "\n")
	assert.Equal(t, "JeanBcc: victim@example.com", got)

	assert.Equal(t, "Premium", HeaderSafe("<em>Premium</em>\t"))
}

func TestEmail(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "jean@example.com", want: "jean@example.com"},
		{in: " jean@example.com ", want: "jean@example.com"},
		{in: "jean (dupont)@example.com", want: "jeandupont@example.com"},
		{in: "jean@example.com\r\nBcc: x@y.z", want: "jean@example.comBccx@y.z"},
		{in: "jéan@example.com", want: "jan@example.com"},
		{in: "a+tag@example.com", want: "a+tag@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Email(tt.in))
		})
	}
}

func TestEmail_CannotCarryHeaders(t *testing.T) {
	in := "jean@example.com\r\nBcc: x@y.z"
	out := Email(in)
	assert.NotContains(t, out, ":")
	assert.NotContains(t, out, "\r")
	assert.NotContains(t, out, "\n")
}

func TestValidEmail(t *testing.T) {
	valid := []string{"jean@example.com", "a+tag@sub.example.fr", "first.last@example.co.uk"}
	invalid := []string{
		"",
		"not-an-email",
		"jean@",
		"@example.com",
		"jean@localhost",
		"jean@example..com",
		"Jean <jean@example.com>",
		"jean@example.com.",
		strings.Repeat("a", 250) + "@example.com",
	}

	for _, s := range valid {
		assert.True(t, ValidEmail(s), s)
	}
	for _, s := range invalid {
		assert.False(t, ValidEmail(s), s)
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abcdef", 3))
	assert.Equal(t, "éé", Truncate("ééé", 2))
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "", Truncate("x", 0))
}
