package render

import "github.com/pkg/errors"

// Placements of affiliate links within the rendered page
const (
	PlacementPrimary  = "primary"
	PlacementHero     = "hero"
	PlacementBenefits = "benefits"
	PlacementFinal    = "final"
)

// Links maps a named placement to a destination URL. A primary link is
// required; section-scoped placements fall back to primary when absent.
type Links map[string]string

// Resolve returns the URL for the given placement, falling back to the
// primary link when the placement is not set.
func (l Links) Resolve(placement string) string {
	if u, ok := l[placement]; ok && u != "" {
		return u
	}
	return l[PlacementPrimary]
}

// Validate ensures the one hard requirement on a link set
func (l Links) Validate() error {
	if l[PlacementPrimary] == "" {
		return errors.New("link set is missing a primary link")
	}
	return nil
}
