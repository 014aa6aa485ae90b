package content

import (
	"context"
	"slices"

	"github.com/goliatone/go-portfolio/internal/markdown"
)

// AllPosts returns every blog post, drafts included, newest first. Posts
// whose date cannot be parsed sort last.
func (r *Repository) AllPosts(ctx context.Context) ([]BlogPost, error) {
	items, err := r.ListByType(ctx, TypeBlog)
	if err != nil {
		return nil, err
	}
	posts := make([]BlogPost, len(items))
	for i, item := range items {
		posts[i] = r.decodePost(item)
	}
	slices.SortStableFunc(posts, func(a, b BlogPost) int {
		return b.Published.Compare(a.Published)
	})
	return posts, nil
}

// PublishedPosts returns AllPosts without drafts.
func (r *Repository) PublishedPosts(ctx context.Context) ([]BlogPost, error) {
	posts, err := r.AllPosts(ctx)
	if err != nil {
		return nil, err
	}
	return slices.DeleteFunc(posts, func(post BlogPost) bool { return post.Draft }), nil
}

// PostBySlug returns the blog post with slug, or nil.
func (r *Repository) PostBySlug(ctx context.Context, slug string) (*BlogPost, error) {
	item, err := r.GetBySlug(ctx, TypeBlog, slug)
	if err != nil || item == nil {
		return nil, err
	}
	post := r.decodePost(*item)
	return &post, nil
}

// RecentPosts returns the n newest published posts. n <= 0 uses the
// configured default.
func (r *Repository) RecentPosts(ctx context.Context, n int) ([]BlogPost, error) {
	if n <= 0 {
		n = r.recentPosts
	}
	posts, err := r.PublishedPosts(ctx)
	if err != nil {
		return nil, err
	}
	return posts[:min(n, len(posts))], nil
}

// RelatedPosts ranks the published posts other than slug by the number of
// tags they share with it and returns the first count. Ties keep date order
// and posts sharing no tags still qualify. count <= 0 uses the configured
// default. An unknown slug yields no posts.
func (r *Repository) RelatedPosts(ctx context.Context, slug string, count int) ([]BlogPost, error) {
	if count <= 0 {
		count = r.relatedCount
	}
	source, err := r.PostBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if source == nil {
		return []BlogPost{}, nil
	}
	published, err := r.PublishedPosts(ctx)
	if err != nil {
		return nil, err
	}

	tags := make(map[string]struct{}, len(source.Tags))
	for _, tag := range source.Tags {
		tags[tag] = struct{}{}
	}

	type scored struct {
		post  BlogPost
		score int
	}
	candidates := make([]scored, 0, len(published))
	for _, post := range published {
		if post.Slug == source.Slug {
			continue
		}
		score := 0
		for _, tag := range post.Tags {
			if _, ok := tags[tag]; ok {
				score++
			}
		}
		candidates = append(candidates, scored{post: post, score: score})
	}
	slices.SortStableFunc(candidates, func(a, b scored) int {
		return b.score - a.score
	})

	related := make([]BlogPost, 0, min(count, len(candidates)))
	for _, candidate := range candidates[:min(count, len(candidates))] {
		related = append(related, candidate.post)
	}
	return related, nil
}

func (r *Repository) decodePost(item Item) BlogPost {
	meta := fields(item.Metadata)
	stats := markdown.Analyze([]byte(item.Body))

	publishedAt := meta.text("publishedAt")
	published, _ := parseDate(publishedAt)

	return BlogPost{
		Item:        item,
		PublishedAt: publishedAt,
		Published:   published,
		Author:      meta.text("author"),
		Draft:       meta.flag("draft"),
		Tags:        meta.list("tags"),
		Excerpt:     meta.text("excerpt"),
		OGImage:     meta.textOr("ogImage", stats.FirstImage),
		ReadingTime: EstimateReadingTime(stats.Words, r.wordsPerMinute),
	}
}
