package pkg

import (
	"regexp"
	"strings"
)

var nonSlugChars = regexp.MustCompile("[^a-z0-9]+")

// GenerateSlug builds a URL-safe slug from a job title, used for public
// career links.
func GenerateSlug(jobTitle string) string {
	slug := strings.ToLower(jobTitle)
	slug = nonSlugChars.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")

	if slug == "" {
		return "untitled-role"
	}
	return slug
}
