package content

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-portfolio/internal/identity"
	"github.com/google/go-cmp/cmp"
)

func TestProfileDefaultsWhenMissing(t *testing.T) {
	profile, err := NewRepository(fstest.MapFS{}).Profile(context.Background())
	if err != nil {
		t.Fatalf("Profile: %v", err)
	}
	if profile.Name != DefaultProfileName || profile.Tagline != DefaultProfileTagline {
		t.Fatalf("expected placeholder profile, got %+v", profile)
	}
	if profile.Social == nil {
		t.Fatal("expected non-nil social map")
	}
	if profile.UUID != identity.ProfileUUID() {
		t.Fatalf("unexpected profile uuid %s", profile.UUID)
	}
}

func TestProfileFromFile(t *testing.T) {
	fsys := fstest.MapFS{
		"person/profile.mdx": file(`---
name: Ada Researcher
institution: Example University
email: ada@example.org
social:
  github: https://github.com/ada
  scholar: https://scholar.example.org/ada
employers:
  - name: Example Lab
    logo: /logos/lab.svg
  - logo: /logos/nameless.svg
memberships:
  - name: AIAA
---
I study hypersonic flows.
`),
	}
	profile, err := NewRepository(fsys).Profile(context.Background())
	if err != nil {
		t.Fatalf("Profile: %v", err)
	}

	if profile.Name != "Ada Researcher" || profile.Tagline != DefaultProfileTagline {
		t.Fatalf("unexpected name/tagline %q %q", profile.Name, profile.Tagline)
	}
	if profile.Bio != "I study hypersonic flows.\n" || profile.Body != profile.Bio {
		t.Fatalf("expected bio to fall back to body, got %q", profile.Bio)
	}
	wantSocial := []Link{
		{Label: "github", URL: "https://github.com/ada"},
		{Label: "scholar", URL: "https://scholar.example.org/ada"},
	}
	if diff := cmp.Diff(wantSocial, profile.SocialLinks()); diff != "" {
		t.Fatalf("unexpected social links (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]Affiliation{{Name: "Example Lab", Logo: "/logos/lab.svg"}}, profile.Employers); diff != "" {
		t.Fatalf("unexpected employers (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]Affiliation{{Name: "AIAA"}}, profile.Memberships); diff != "" {
		t.Fatalf("unexpected memberships (-want +got):\n%s", diff)
	}
	if profile.SourcePath != "person/profile.mdx" {
		t.Fatalf("unexpected source path %q", profile.SourcePath)
	}
}

func TestProfileBioFromMetadata(t *testing.T) {
	fsys := fstest.MapFS{
		"person/profile.md": file("---\nname: Ada\nbio: Short bio.\n---\nLonger body.\n"),
	}
	profile, err := NewRepository(fsys).Profile(context.Background())
	if err != nil {
		t.Fatalf("Profile: %v", err)
	}
	if profile.Bio != "Short bio." || profile.Body != "Longer body.\n" {
		t.Fatalf("unexpected bio/body %q %q", profile.Bio, profile.Body)
	}
}
