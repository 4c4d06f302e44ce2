package content

import (
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	maxSEOTitleLen       = 60
	maxSEODescriptionLen = 160
)

// Validate parses raw generator output into a schema-complete Model.
//
// It never fails: if raw is empty, unparsable or violates the schema
// (missing required text, empty required sections, out-of-range ratings)
// the deterministic fallback built from fc is returned instead, and the
// second return value reports that the fallback was used. Sections shorter
// than the usual count are accepted - tolerance for 0..N items per section
// belongs to the renderer, which is why Validate never truncates or pads.
func Validate(raw []byte, fc FallbackContext) (*Model, bool) {
	if len(raw) == 0 {
		return Fallback(fc), true
	}
	m := NewModel()
	if err := json.Unmarshal(raw, m); err != nil {
		return Fallback(fc), true
	}
	if !wellFormed(m) {
		return Fallback(fc), true
	}
	return m, false
}

func wellFormed(m *Model) bool {
	if m.Hero.Headline == "" || m.Hero.Subheadline == "" || m.Hero.CTAText == "" {
		return false
	}
	if len(m.Features) == 0 || len(m.Benefits) == 0 {
		return false
	}
	for _, f := range m.Features {
		if f.Title == "" || f.Description == "" {
			return false
		}
	}
	for _, b := range m.Benefits {
		if b.Title == "" || b.Description == "" {
			return false
		}
	}
	for _, t := range m.Testimonials {
		if t.AuthorName == "" || t.QuoteText == "" || t.Rating < 1 || t.Rating > 5 {
			return false
		}
	}
	for _, f := range m.FAQ {
		if f.Question == "" || f.Answer == "" {
			return false
		}
	}
	if m.Footer.DisclaimerText == "" || m.Footer.ContactText == "" {
		return false
	}
	if m.SEO.Title == "" || m.SEO.Description == "" {
		return false
	}
	return true
}
