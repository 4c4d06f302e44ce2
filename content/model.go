// contains data structures that describe the copy of a generated website
package content

// Hero above-the-fold copy of a page
type Hero struct {
	Headline    string `json:"headline"`
	Subheadline string `json:"subheadline"`
	CTAText     string `json:"ctaText"`
}

// Feature one entry of the feature grid
type Feature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Benefit one entry of the benefits list
type Benefit struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Testimonial a quote with a star rating between 1 and 5
type Testimonial struct {
	AuthorName string `json:"authorName"`
	QuoteText  string `json:"quoteText"`
	Rating     int    `json:"rating"`
}

// FAQItem a question / answer pair of the FAQ accordion
type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Footer disclaimer and contact line at the bottom of a page
type Footer struct {
	DisclaimerText string `json:"disclaimerText"`
	ContactText    string `json:"contactText"`
}

// SEO head metadata of a page
type SEO struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
}

// Model the validated, renderable copy of one generated website
type Model struct {
	Hero         Hero          `json:"hero"`
	Features     []Feature     `json:"features"`
	Benefits     []Benefit     `json:"benefits"`
	Testimonials []Testimonial `json:"testimonials"`
	FAQ          []FAQItem     `json:"faq"`
	Footer       Footer        `json:"footer"`
	SEO          SEO           `json:"seo"`
}

// NewModel model constructor
func NewModel() *Model {
	return &Model{
		Features:     []Feature{},
		Benefits:     []Benefit{},
		Testimonials: []Testimonial{},
		FAQ:          []FAQItem{},
	}
}
