package content

import (
	"fmt"
	"unicode/utf8"
)

// FallbackContext contextual hints used to synthesize fallback copy when
// the upstream generator failed or produced a malformed model.
type FallbackContext struct {
	Niche          string
	TargetAudience string
	ProductURL     string
}

const (
	defaultNiche    = "this product"
	defaultAudience = "our readers"
)

// Fallback builds a deterministic, schema-complete model from the given
// context. It is the single source of truth for "what do we show when AI
// generation fails" - identical context always yields identical copy.
func Fallback(fc FallbackContext) *Model {
	niche := fc.Niche
	if niche == "" {
		niche = defaultNiche
	}
	audience := fc.TargetAudience
	if audience == "" {
		audience = defaultAudience
	}
	return &Model{
		Hero: Hero{
			Headline:    fmt.Sprintf("The Smart Choice for %s", niche),
			Subheadline: fmt.Sprintf("Everything %s need to know before buying - researched, tested and summarized in one place.", audience),
			CTAText:     "Check Best Price",
		},
		Features: []Feature{
			{Title: "Thoroughly Researched", Description: fmt.Sprintf("We dig through specs, reviews and comparisons so %s don't have to.", audience), Icon: "search"},
			{Title: "Honest Assessment", Description: "Strengths and weaknesses called out clearly, with no marketing gloss.", Icon: "shield"},
			{Title: "Always Up To Date", Description: fmt.Sprintf("Our recommendations for %s are reviewed regularly as the market changes.", niche), Icon: "refresh"},
		},
		Benefits: []Benefit{
			{Title: "Save Time", Description: "Skip hours of tab-hopping and get straight to a well-founded decision."},
			{Title: "Avoid Buyer's Remorse", Description: "Know the trade-offs before you spend a single cent."},
			{Title: "Buy With Confidence", Description: "Clear guidance on which option fits which kind of buyer."},
		},
		Testimonials: []Testimonial{
			{AuthorName: "Alex M.", QuoteText: "Exactly the overview I was looking for. Saved me a lot of second-guessing.", Rating: 5},
			{AuthorName: "Jamie R.", QuoteText: "Straight to the point and refreshingly honest about the downsides.", Rating: 4},
		},
		FAQ: []FAQItem{
			{Question: fmt.Sprintf("Is %s worth it?", niche), Answer: fmt.Sprintf("For most of %s the answer is yes - see the benefits above for who profits most.", audience)},
			{Question: "How do you make money?", Answer: "Through affiliate commissions at no extra cost to you. This never influences our assessment."},
		},
		Footer: Footer{
			DisclaimerText: "This site contains affiliate links. We may earn a commission when you buy through them, at no additional cost to you.",
			ContactText:    "Questions? Reach out any time.",
		},
		SEO: SEO{
			Title:       truncate(fmt.Sprintf("%s - Review & Buying Guide", capitalizeFirst(niche)), maxSEOTitleLen),
			Description: truncate(fmt.Sprintf("An independent look at %s for %s: features, benefits, real-world feedback and where to get the best deal.", niche, audience), maxSEODescriptionLen),
			Keywords:    []string{niche, "review", "buying guide", "best price"},
		},
	}
}

func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	if r[0] >= 'a' && r[0] <= 'z' {
		r[0] = r[0] - 'a' + 'A'
	}
	return string(r)
}

// truncate caps s at max characters, never splitting a multibyte rune
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}
