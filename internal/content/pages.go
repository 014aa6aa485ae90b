package content

import "context"

// PageBySlug returns the static page with slug, or nil.
func (r *Repository) PageBySlug(ctx context.Context, slug string) (*Page, error) {
	item, err := r.GetBySlug(ctx, TypePages, slug)
	if err != nil || item == nil {
		return nil, err
	}
	return &Page{Item: *item}, nil
}

// PageSlugs lists the slugs of every static page.
func (r *Repository) PageSlugs(ctx context.Context) ([]string, error) {
	return r.Slugs(ctx, TypePages)
}
