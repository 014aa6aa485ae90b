package content_test

import (
	"testing"

	"github.com/goliatone/go-portfolio/content"
)

func TestSlugForKeepsValidSlugs(t *testing.T) {
	for _, input := range []string{"hypersonic-cooling", "hypersonic-cooling.mdx", " about.md "} {
		got, err := content.SlugFor(input)
		if err != nil {
			t.Fatalf("SlugFor(%q): %v", input, err)
		}
		if !content.IsValidSlug(got) {
			t.Fatalf("SlugFor(%q) = %q is not a valid slug", input, got)
		}
	}
	if got, _ := content.SlugFor("hypersonic-cooling.mdx"); got != "hypersonic-cooling" {
		t.Fatalf("expected extension to be dropped, got %q", got)
	}
}

func TestSlugForNormalises(t *testing.T) {
	got, err := content.SlugFor("Hypersonic Cooling")
	if err != nil {
		t.Fatalf("SlugFor: %v", err)
	}
	if !content.IsValidSlug(got) || got == "Hypersonic Cooling" {
		t.Fatalf("expected a normalised slug, got %q", got)
	}
}
