package hosting

import (
	"regexp"
	"strings"
)

var (
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)
	multiHyphen     = regexp.MustCompile(`-+`)
)

// NormalizeSiteName turns a display name into a hosting-safe identifier:
// lowercase, non-alphanumeric runs collapsed to a single hyphen, trimmed.
func NormalizeSiteName(name string) string {
	n := strings.ToLower(name)
	n = nonAlphanumeric.ReplaceAllString(n, "-")
	n = multiHyphen.ReplaceAllString(n, "-")
	n = strings.Trim(n, "-")
	if n == "" {
		return "site"
	}
	return n
}
