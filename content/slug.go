package content

import (
	"path"
	"strings"

	"github.com/goliatone/go-slug"
)

// SlugFor returns the slug the repository derives for a file name or title:
// the extension is dropped and values that are not URL safe are normalised.
func SlugFor(value string) (string, error) {
	value = strings.TrimSpace(value)
	if ext := path.Ext(value); ext == ".md" || ext == ".mdx" {
		value = strings.TrimSuffix(value, ext)
	}
	if slug.IsValid(value) {
		return value, nil
	}
	return slug.Normalize(value)
}

// IsValidSlug reports whether value is already a URL safe slug.
func IsValidSlug(value string) bool {
	return slug.IsValid(value)
}
