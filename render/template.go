// Package render turns a validated content model into a self-contained
// static site bundle. Rendering is pure: no I/O, no clock, no randomness -
// identical inputs produce byte-identical output.
package render

// TemplateID identifies one of the built-in page templates
type TemplateID string

const (
	TemplateModern     TemplateID = "modern"
	TemplateClassic    TemplateID = "classic"
	TemplateBold       TemplateID = "bold"
	TemplatePremium    TemplateID = "premium"
	TemplateConversion TemplateID = "conversion"
	TemplateEnterprise TemplateID = "enterprise"
)

// templateStyle holds everything a template is allowed to change. The
// structural HTML and CSS are shared across all templates; adding a
// template is a row in this table, not new control flow.
type templateStyle struct {
	HeroGradient  string
	CTAColor      string
	CTAHoverColor string
	AnimatedCTA   bool
}

var templateStyles = map[TemplateID]templateStyle{
	TemplateModern: {
		HeroGradient:  "linear-gradient(135deg, #667eea 0%, #764ba2 100%)",
		CTAColor:      "#667eea",
		CTAHoverColor: "#5a6fd6",
	},
	TemplateClassic: {
		HeroGradient:  "linear-gradient(180deg, #2c3e50 0%, #34495e 100%)",
		CTAColor:      "#c0392b",
		CTAHoverColor: "#a93226",
	},
	TemplateBold: {
		HeroGradient:  "linear-gradient(135deg, #f5576c 0%, #f093fb 100%)",
		CTAColor:      "#f5576c",
		CTAHoverColor: "#e0455a",
		AnimatedCTA:   true,
	},
	TemplatePremium: {
		HeroGradient:  "linear-gradient(135deg, #141e30 0%, #243b55 100%)",
		CTAColor:      "#d4af37",
		CTAHoverColor: "#c09c2c",
	},
	TemplateConversion: {
		HeroGradient:  "linear-gradient(135deg, #11998e 0%, #38ef7d 100%)",
		CTAColor:      "#ff6b35",
		CTAHoverColor: "#e85a28",
		AnimatedCTA:   true,
	},
	TemplateEnterprise: {
		HeroGradient:  "linear-gradient(135deg, #1e3c72 0%, #2a5298 100%)",
		CTAColor:      "#1e3c72",
		CTAHoverColor: "#16305c",
	},
}

// style resolves the template style, falling back to modern for unknown
// identifiers. Fail-soft is a policy decision: a stale or misspelled
// template id must never break rendering.
func (id TemplateID) style() templateStyle {
	if s, ok := templateStyles[id]; ok {
		return s
	}
	return templateStyles[TemplateModern]
}

// Known reports whether id is one of the built-in templates
func (id TemplateID) Known() bool {
	_, ok := templateStyles[id]
	return ok
}
