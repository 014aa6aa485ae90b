package content

import (
	"context"

	"github.com/goliatone/go-portfolio/internal/identity"
)

const profileSlug = "profile"

// Profile returns the portfolio owner's profile from person/profile. When
// the file is missing a placeholder profile is returned.
func (r *Repository) Profile(ctx context.Context) (Profile, error) {
	item, err := r.GetBySlug(ctx, TypePerson, profileSlug)
	if err != nil {
		return Profile{}, err
	}
	if item == nil {
		return DefaultProfile(), nil
	}
	return decodeProfile(*item), nil
}

// DefaultProfile is the placeholder profile.
func DefaultProfile() Profile {
	return Profile{
		UUID:    identity.ProfileUUID(),
		Name:    DefaultProfileName,
		Tagline: DefaultProfileTagline,
		Social:  map[string]string{},
	}
}

func decodeProfile(item Item) Profile {
	meta := fields(item.Metadata)
	return Profile{
		UUID:         identity.ProfileUUID(),
		Name:         meta.textOr("name", DefaultProfileName),
		Tagline:      meta.textOr("tagline", DefaultProfileTagline),
		Institution:  meta.text("institution"),
		Department:   meta.text("department"),
		Bio:          meta.textOr("bio", item.Body),
		HeroImage:    meta.text("heroImage"),
		HeroTitle:    meta.text("heroTitle"),
		HeroSubtitle: meta.text("heroSubtitle"),
		HeroTagline:  meta.text("heroTagline"),
		Email:        meta.text("email"),
		Social:       meta.stringMap("social"),
		ProfileURLs:  meta.links("profileUrls"),
		Employers:    meta.affiliations("employers"),
		Memberships:  meta.affiliations("memberships"),
		Body:         item.Body,
		SourcePath:   item.SourcePath,
	}
}
