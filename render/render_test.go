package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/pagemint/pagemint/content"
)

func testModel() *content.Model {
	return &content.Model{
		Hero: content.Hero{
			Headline:    "Buy WidgetPro",
			Subheadline: "The widget that does it all",
			CTAText:     "Shop Now",
		},
		Features: []content.Feature{
			{Title: "Fast", Description: "Really fast", Icon: "bolt"},
			{Title: "Safe", Description: "Really safe", Icon: "shield"},
			{Title: "Odd", Description: "Unknown icon", Icon: "no-such-icon"},
		},
		Benefits: []content.Benefit{
			{Title: "Saves time", Description: "Hours per week"},
			{Title: "Saves money", Description: "Dollars per month"},
			{Title: "Peace of mind", Description: "Priceless"},
		},
		Testimonials: []content.Testimonial{
			{AuthorName: "Sam", QuoteText: "Love it", Rating: 5},
			{AuthorName: "Kim", QuoteText: "Pretty good", Rating: 4},
		},
		FAQ: []content.FAQItem{
			{Question: "Is it worth it?", Answer: "Yes."},
			{Question: "Does it ship fast?", Answer: "Usually."},
		},
		Footer: content.Footer{
			DisclaimerText: "Affiliate links used.",
			ContactText:    "support@example.com",
		},
		SEO: content.SEO{
			Title:       "WidgetPro Review",
			Description: "An honest WidgetPro review",
			Keywords:    []string{"widgetpro", "review"},
		},
	}
}

func testLinks() Links {
	return Links{PlacementPrimary: "https://merchant.example/widgetpro"}
}

func TestRenderProducesCompleteBundle(t *testing.T) {
	site, err := Render(testModel(), TemplateBold, testLinks())
	require.NoError(t, err)

	for _, path := range []string{FileHTML, FileCSS, FileJS, FileRedirects} {
		assert.NotEmpty(t, site[path], "bundle must contain %s", path)
	}
	assert.Equal(t, "/*    /index.html   200\n", site[FileRedirects])
}

func TestRenderIsDeterministic(t *testing.T) {
	first, err := Render(testModel(), TemplateBold, testLinks())
	require.NoError(t, err)
	second, err := Render(testModel(), TemplateBold, testLinks())
	require.NoError(t, err)
	assert.Equal(t, first, second, "identical inputs must produce byte-identical bundles")
}

func TestRenderUnknownTemplateFallsBackToModern(t *testing.T) {
	unknown, err := Render(testModel(), TemplateID("nonexistent-template"), testLinks())
	require.NoError(t, err)
	modern, err := Render(testModel(), TemplateModern, testLinks())
	require.NoError(t, err)
	assert.Equal(t, modern, unknown)
}

func TestRenderLinkFallback(t *testing.T) {
	site, err := Render(testModel(), TemplateModern, testLinks())
	require.NoError(t, err)
	hrefs := ctaHrefsBySection(t, site[FileHTML])
	assert.Equal(t, "https://merchant.example/widgetpro", hrefs["hero"])
	assert.Equal(t, "https://merchant.example/widgetpro", hrefs["benefits"])
	assert.Equal(t, "https://merchant.example/widgetpro", hrefs["final"])

	links := testLinks()
	links[PlacementHero] = "https://merchant.example/widgetpro?src=hero"
	site, err = Render(testModel(), TemplateModern, links)
	require.NoError(t, err)
	hrefs = ctaHrefsBySection(t, site[FileHTML])
	assert.Equal(t, "https://merchant.example/widgetpro?src=hero", hrefs["hero"])
	assert.Equal(t, "https://merchant.example/widgetpro", hrefs["benefits"], "other sections must keep the primary link")
	assert.Equal(t, "https://merchant.example/widgetpro", hrefs["final"])
}

func TestRenderMissingPrimaryLink(t *testing.T) {
	_, err := Render(testModel(), TemplateModern, Links{PlacementHero: "https://merchant.example"})
	require.Error(t, err)
}

func TestRenderNilModel(t *testing.T) {
	_, err := Render(nil, TemplateModern, testLinks())
	require.Error(t, err)
}

func TestRenderWidgetProScenario(t *testing.T) {
	site, err := Render(testModel(), TemplateBold, testLinks())
	require.NoError(t, err)
	doc := site[FileHTML]

	assert.GreaterOrEqual(t, strings.Count(doc, "https://merchant.example/widgetpro"), 3,
		"hero, benefits and final CTA must all carry the merchant URL")
	assert.Contains(t, doc, "<title>WidgetPro Review</title>")

	stars := starBlocks(t, doc)
	require.Len(t, stars, 2)
	assert.Equal(t, strings.Repeat("★", 5), stars[0])
	assert.Equal(t, strings.Repeat("★", 4), stars[1])
}

func TestRenderHeadMetadata(t *testing.T) {
	site, err := Render(testModel(), TemplateModern, testLinks())
	require.NoError(t, err)
	doc := site[FileHTML]

	assert.Contains(t, doc, `<meta name="description" content="An honest WidgetPro review">`)
	assert.Contains(t, doc, `<meta name="keywords" content="review, widgetpro">`)
	assert.Contains(t, doc, `<meta property="og:title" content="WidgetPro Review">`)
	assert.Contains(t, doc, `<meta name="twitter:title" content="WidgetPro Review">`)
}

func TestRenderKeywordOrderIsStable(t *testing.T) {
	m := testModel()
	m.SEO.Keywords = []string{"zebra", "alpha", "mango"}
	site, err := Render(m, TemplateModern, testLinks())
	require.NoError(t, err)
	assert.Contains(t, site[FileHTML], `<meta name="keywords" content="alpha, mango, zebra">`,
		"keywords must render sorted regardless of input order")

	m.SEO.Keywords = []string{"mango", "zebra", "alpha"}
	reordered, err := Render(m, TemplateModern, testLinks())
	require.NoError(t, err)
	assert.Equal(t, site[FileHTML], reordered[FileHTML])
}

func TestRenderUnknownIconUsesDefaultGlyph(t *testing.T) {
	site, err := Render(testModel(), TemplateModern, testLinks())
	require.NoError(t, err)
	assert.Contains(t, site[FileHTML], defaultGlyph)
}

func TestRenderEmptySectionsAreOmitted(t *testing.T) {
	m := testModel()
	m.Testimonials = nil
	m.FAQ = nil
	site, err := Render(m, TemplateModern, testLinks())
	require.NoError(t, err)
	doc := site[FileHTML]
	assert.NotContains(t, doc, `class="testimonials"`)
	assert.NotContains(t, doc, `class="faq"`)
	// the hero and final CTA remain
	hrefs := ctaHrefsBySection(t, doc)
	assert.Contains(t, hrefs, "hero")
	assert.Contains(t, hrefs, "final")
}

func TestTemplateOverridesDifferPerTemplate(t *testing.T) {
	bold, err := Render(testModel(), TemplateBold, testLinks())
	require.NoError(t, err)
	classic, err := Render(testModel(), TemplateClassic, testLinks())
	require.NoError(t, err)

	assert.Equal(t, bold[FileHTML], classic[FileHTML], "templates only change the stylesheet")
	assert.NotEqual(t, bold[FileCSS], classic[FileCSS])
	assert.Contains(t, bold[FileCSS], "cta-pulse", "bold animates its CTA")
	assert.NotContains(t, classic[FileCSS], "cta-pulse")
}

func TestScriptContract(t *testing.T) {
	site, err := Render(testModel(), TemplateModern, testLinks())
	require.NoError(t, err)
	js := site[FileJS]

	// click beacon payload and endpoint
	assert.Contains(t, js, "affiliate_click")
	assert.Contains(t, js, "/api/track")
	assert.Contains(t, js, "sendBeacon")
	// FAQ exclusivity: the handler closes every entry before reopening the
	// clicked one, so at most one entry is ever open
	assert.Contains(t, js, `var wasOpen = item.classList.contains('open');
        items.forEach(function (other) {
          other.classList.remove('open');
        });
        if (!wasOpen) {
          item.classList.add('open');
        }`, "opening an entry must first close all others")
	// smooth scroll and lazy loading
	assert.Contains(t, js, "scrollIntoView")
	assert.Contains(t, js, "IntersectionObserver")
	assert.Contains(t, js, "img[data-src]")
}

// ------------------------------------------------------------------------------------------------
// ~ Helpers
// ------------------------------------------------------------------------------------------------

func parseDoc(t *testing.T, doc string) *html.Node {
	t.Helper()
	node, err := html.Parse(strings.NewReader(doc))
	require.NoError(t, err)
	return node
}

func walk(n *html.Node, visit func(*html.Node)) {
	visit(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, visit)
	}
}

func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

func ctaHrefsBySection(t *testing.T, doc string) map[string]string {
	t.Helper()
	hrefs := map[string]string{}
	walk(parseDoc(t, doc), func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" && strings.Contains(attr(n, "class"), "cta-button") {
			hrefs[attr(n, "data-section")] = attr(n, "href")
		}
	})
	return hrefs
}

func starBlocks(t *testing.T, doc string) []string {
	t.Helper()
	var blocks []string
	walk(parseDoc(t, doc), func(n *html.Node) {
		if n.Type == html.ElementNode && attr(n, "class") == "star-rating" && n.FirstChild != nil {
			blocks = append(blocks, n.FirstChild.Data)
		}
	})
	return blocks
}
