package render

import (
	"bytes"
	"html/template"
	"sort"
	"strings"

	"github.com/pagemint/pagemint/content"
)

type pageData struct {
	Content     *content.Model
	Keywords    string
	HeroURL     string
	BenefitsURL string
	FinalURL    string
}

var pageTemplate = template.Must(template.New("page").Funcs(template.FuncMap{
	"stars": func(rating int) string {
		if rating < 1 {
			rating = 1
		}
		if rating > 5 {
			rating = 5
		}
		return strings.Repeat("★", rating)
	},
	"glyph": glyphFor,
}).Parse(pageHTML))

func buildHTML(m *content.Model, links Links) (string, error) {
	// keywords are a set upstream, render them in a stable order
	keywords := append([]string(nil), m.SEO.Keywords...)
	sort.Strings(keywords)
	data := pageData{
		Content:     m,
		Keywords:    strings.Join(keywords, ", "),
		HeroURL:     links.Resolve(PlacementHero),
		BenefitsURL: links.Resolve(PlacementBenefits),
		FinalURL:    links.Resolve(PlacementFinal),
	}
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Content.SEO.Title}}</title>
<meta name="description" content="{{.Content.SEO.Description}}">
{{- if .Keywords}}
<meta name="keywords" content="{{.Keywords}}">
{{- end}}
<meta property="og:type" content="website">
<meta property="og:title" content="{{.Content.SEO.Title}}">
<meta property="og:description" content="{{.Content.SEO.Description}}">
<meta name="twitter:card" content="summary_large_image">
<meta name="twitter:title" content="{{.Content.SEO.Title}}">
<meta name="twitter:description" content="{{.Content.SEO.Description}}">
<link rel="stylesheet" href="styles.css">
</head>
<body>
<section class="hero" id="top">
<div class="container">
<h1>{{.Content.Hero.Headline}}</h1>
<p class="subheadline">{{.Content.Hero.Subheadline}}</p>
<a class="cta-button" data-section="hero" href="{{.HeroURL}}" rel="nofollow sponsored">{{.Content.Hero.CTAText}}</a>
</div>
</section>
{{- if .Content.Features}}
<section class="features" id="features">
<div class="container">
<h2>Features</h2>
<div class="feature-grid">
{{- range .Content.Features}}
<div class="feature-card">
<span class="feature-icon">{{glyph .Icon}}</span>
<h3>{{.Title}}</h3>
<p>{{.Description}}</p>
</div>
{{- end}}
</div>
</div>
</section>
{{- end}}
{{- if .Content.Benefits}}
<section class="benefits" id="benefits">
<div class="container">
<h2>Why It Matters</h2>
<ul class="benefit-list">
{{- range .Content.Benefits}}
<li class="benefit-item">
<h3>{{.Title}}</h3>
<p>{{.Description}}</p>
</li>
{{- end}}
</ul>
<div class="mid-cta">
<a class="cta-button" data-section="benefits" href="{{.BenefitsURL}}" rel="nofollow sponsored">{{.Content.Hero.CTAText}}</a>
</div>
</div>
</section>
{{- end}}
{{- if .Content.Testimonials}}
<section class="testimonials" id="testimonials">
<div class="container">
<h2>What People Say</h2>
<div class="testimonial-grid">
{{- range .Content.Testimonials}}
<div class="testimonial-card">
<div class="star-rating">{{stars .Rating}}</div>
<blockquote>{{.QuoteText}}</blockquote>
<cite>{{.AuthorName}}</cite>
</div>
{{- end}}
</div>
</div>
</section>
{{- end}}
{{- if .Content.FAQ}}
<section class="faq" id="faq">
<div class="container">
<h2>Frequently Asked Questions</h2>
{{- range .Content.FAQ}}
<div class="faq-item">
<button class="faq-question" type="button">{{.Question}}</button>
<div class="faq-answer"><p>{{.Answer}}</p></div>
</div>
{{- end}}
</div>
</section>
{{- end}}
<section class="final-cta">
<div class="container">
<h2>{{.Content.Hero.Headline}}</h2>
<a class="cta-button" data-section="final" href="{{.FinalURL}}" rel="nofollow sponsored">{{.Content.Hero.CTAText}}</a>
</div>
</section>
<footer>
<div class="container">
<p class="disclaimer">{{.Content.Footer.DisclaimerText}}</p>
<p class="contact">{{.Content.Footer.ContactText}}</p>
</div>
</footer>
<script src="script.js"></script>
</body>
</html>
`
