package render

import (
	"github.com/pkg/errors"

	"github.com/pagemint/pagemint/content"
)

// File names of the generated bundle
const (
	FileHTML      = "index.html"
	FileCSS       = "styles.css"
	FileJS        = "script.js"
	FileRedirects = "_redirects"
)

// Site is a rendered static site bundle: relative file path to contents.
// It is immutable once produced and always contains index.html, styles.css,
// script.js and the host redirect rule file.
type Site map[string]string

// Paths returns the file paths of the bundle in stable order
func (s Site) Paths() []string {
	return []string{FileHTML, FileCSS, FileJS, FileRedirects}
}

// redirects routes every unmatched path to the single generated document.
// The bundle is a one-page site, so the host must serve index.html with a
// 200 for anything else.
const redirects = "/*    /index.html   200\n"

// Render produces the static site bundle for the given model, template and
// link set. Unknown template ids fall back to modern, unknown icon tokens
// to a default glyph. The only errors are contract violations that cannot
// occur when the model went through content.Validate first.
func Render(m *content.Model, id TemplateID, links Links) (Site, error) {
	if m == nil {
		return nil, errors.New("render: nil content model")
	}
	if err := links.Validate(); err != nil {
		return nil, errors.Wrap(err, "render")
	}
	style := id.style()
	html, err := buildHTML(m, links)
	if err != nil {
		return nil, errors.Wrap(err, "render: building document")
	}
	return Site{
		FileHTML:      html,
		FileCSS:       buildCSS(style),
		FileJS:        script,
		FileRedirects: redirects,
	}, nil
}
