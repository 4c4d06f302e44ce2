package render

import "strings"

// buildCSS assembles the shared structural stylesheet plus the small
// template-specific override block (hero gradient, CTA colors, optional
// CTA animation).
func buildCSS(s templateStyle) string {
	var b strings.Builder
	b.WriteString(baseCSS)
	b.WriteString("\n/* template overrides */\n")
	b.WriteString(".hero, .final-cta { background: " + s.HeroGradient + "; }\n")
	b.WriteString(".cta-button { background-color: " + s.CTAColor + "; }\n")
	b.WriteString(".cta-button:hover { background-color: " + s.CTAHoverColor + "; }\n")
	if s.AnimatedCTA {
		b.WriteString(ctaAnimationCSS)
	}
	return b.String()
}

const baseCSS = `* { margin: 0; padding: 0; box-sizing: border-box; }
body {
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif;
  line-height: 1.6;
  color: #222;
}
.container { max-width: 1080px; margin: 0 auto; padding: 0 20px; }
section { padding: 64px 0; }
h1 { font-size: 2.6rem; margin-bottom: 16px; }
h2 { font-size: 2rem; margin-bottom: 32px; text-align: center; }
h3 { font-size: 1.2rem; margin-bottom: 8px; }
.hero, .final-cta { color: #fff; text-align: center; }
.hero .subheadline { font-size: 1.25rem; opacity: 0.9; margin-bottom: 32px; }
.cta-button {
  display: inline-block;
  color: #fff;
  text-decoration: none;
  font-weight: 600;
  padding: 14px 36px;
  border-radius: 6px;
  transition: background-color 0.2s ease;
}
.feature-grid, .testimonial-grid {
  display: grid;
  grid-template-columns: repeat(auto-fit, minmax(260px, 1fr));
  gap: 24px;
}
.feature-card, .testimonial-card {
  background: #fafafa;
  border: 1px solid #eee;
  border-radius: 8px;
  padding: 24px;
}
.feature-icon { font-size: 2rem; display: block; margin-bottom: 12px; }
.benefit-list { list-style: none; max-width: 720px; margin: 0 auto; }
.benefit-item { padding: 16px 0; border-bottom: 1px solid #eee; }
.mid-cta { text-align: center; margin-top: 40px; }
.star-rating { color: #f5a623; font-size: 1.2rem; margin-bottom: 12px; }
.testimonial-card blockquote { font-style: italic; margin-bottom: 12px; }
.testimonial-card cite { font-style: normal; font-weight: 600; color: #555; }
.faq .container { max-width: 720px; }
.faq-item { border-bottom: 1px solid #e5e5e5; }
.faq-question {
  width: 100%;
  text-align: left;
  background: none;
  border: none;
  font-size: 1.05rem;
  font-weight: 600;
  padding: 18px 0;
  cursor: pointer;
}
.faq-answer { display: none; padding-bottom: 18px; color: #444; }
.faq-item.open .faq-answer { display: block; }
footer { background: #1a1a1a; color: #aaa; padding: 40px 0; text-align: center; }
footer .disclaimer { font-size: 0.85rem; margin-bottom: 8px; }
img[data-src] { opacity: 0; }
img { transition: opacity 0.3s ease; }
@media (max-width: 640px) {
  h1 { font-size: 1.9rem; }
  h2 { font-size: 1.5rem; }
  section { padding: 40px 0; }
}
`

const ctaAnimationCSS = `@keyframes cta-pulse {
  0% { transform: scale(1); }
  50% { transform: scale(1.05); }
  100% { transform: scale(1); }
}
.cta-button { animation: cta-pulse 2s ease-in-out infinite; }
`
