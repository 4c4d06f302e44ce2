package render

// iconGlyphs maps the symbolic icon tokens the generator is allowed to
// emit to the glyph rendered in the feature grid.
var iconGlyphs = map[string]string{
	"search":  "🔍",
	"shield":  "🛡️",
	"refresh": "🔄",
	"star":    "⭐",
	"check":   "✅",
	"bolt":    "⚡",
	"heart":   "❤️",
	"lock":    "🔒",
	"globe":   "🌍",
	"chart":   "📈",
	"gift":    "🎁",
	"clock":   "⏱️",
	"money":   "💰",
	"rocket":  "🚀",
	"trophy":  "🏆",
}

const defaultGlyph = "✨"

// glyphFor is total over all tokens: unknown or empty tokens render the
// default glyph rather than breaking the feature grid.
func glyphFor(token string) string {
	if g, ok := iconGlyphs[token]; ok {
		return g
	}
	return defaultGlyph
}
