package email

import (
	"strings"

	"github.com/flosch/pongo2/v6"
)

// Template pairs a plain-text and an HTML pongo2 template rendered from the
// same context. HTML output is autoescaped; the text template is wrapped in
// an autoescape-off block since text/plain bodies are never interpreted.
type Template struct {
	name string
	text *pongo2.Template
	html *pongo2.Template
}

// NewTemplate compiles both sources. Either may be empty but not both.
func NewTemplate(name, textSrc, htmlSrc string) (*Template, error) {
	if strings.TrimSpace(textSrc) == "" && strings.TrimSpace(htmlSrc) == "" {
		return nil, ErrTemplate{Name: name, Err: ErrInvalidMessage{Reason: "empty template"}}
	}

	t := &Template{name: name}
	var err error
	if textSrc != "" {
		t.text, err = pongo2.FromString("{% autoescape off %}" + textSrc + "{% endautoescape %}")
		if err != nil {
			return nil, ErrTemplate{Name: name + ".txt", Err: err}
		}
	}
	if htmlSrc != "" {
		t.html, err = pongo2.FromString(htmlSrc)
		if err != nil {
			return nil, ErrTemplate{Name: name + ".html", Err: err}
		}
	}
	return t, nil
}

// MustTemplate is NewTemplate for package-level sources known at compile time.
func MustTemplate(name, textSrc, htmlSrc string) *Template {
	t, err := NewTemplate(name, textSrc, htmlSrc)
	if err != nil {
		panic(err)
	}
	return t
}

// Render executes the templates with data and returns the two bodies.
func (t *Template) Render(data map[string]any) (text, html string, err error) {
	ctx := pongo2.Context(data)
	if t.text != nil {
		if text, err = t.text.Execute(ctx); err != nil {
			return "", "", ErrTemplate{Name: t.name + ".txt", Err: err}
		}
	}
	if t.html != nil {
		if html, err = t.html.Execute(ctx); err != nil {
			return "", "", ErrTemplate{Name: t.name + ".html", Err: err}
		}
	}
	return text, html, nil
}
