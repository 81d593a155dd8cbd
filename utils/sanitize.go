package utils

import "github.com/microcosm-cc/bluemonday"

var (
	contentPolicy = bluemonday.UGCPolicy()
	titlePolicy   = bluemonday.StrictPolicy()
)

// SanitizeContent cleans user supplied HTML to prevent stored XSS while
// keeping the markup a post body legitimately uses.
func SanitizeContent(input string) string {
	return contentPolicy.Sanitize(input)
}

// SanitizeTitle strips all markup; titles are plain text.
func SanitizeTitle(input string) string {
	return titlePolicy.Sanitize(input)
}
