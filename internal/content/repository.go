package content

import (
	"context"
	"errors"
	"io/fs"
	"path"
	"strings"

	"github.com/goliatone/go-portfolio/internal/identity"
	"github.com/goliatone/go-portfolio/internal/logging"
	"github.com/goliatone/go-portfolio/internal/markdown"
	"github.com/goliatone/go-portfolio/internal/validation"
	"github.com/goliatone/go-portfolio/pkg/interfaces"
	"github.com/goliatone/go-slug"
)

const (
	defaultWordsPerMinute     = 200
	defaultRelatedCount       = 3
	defaultRecentPosts        = 5
	defaultRecentPublications = 3
)

// Repository loads typed content records from a directory tree laid out as
// one directory per content type. Every call reads the filesystem unless a
// cache is configured.
type Repository struct {
	loader *markdown.Loader
	logger interfaces.Logger
	cache  interfaces.CollectionCache[[]Item]
	lint   *validation.Registry

	extensions         []string
	wordsPerMinute     int
	relatedCount       int
	recentPosts        int
	recentPublications int
}

// Option configures the repository at construction time.
type Option func(*Repository)

// WithLogger sets the logger used for skipped files and lint findings.
func WithLogger(logger interfaces.Logger) Option {
	return func(r *Repository) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithCache memoises ListByType results per content type.
func WithCache(cache interfaces.CollectionCache[[]Item]) Option {
	return func(r *Repository) {
		r.cache = cache
	}
}

// WithSchemas lints front matter with the given schema registry.
func WithSchemas(registry *validation.Registry) Option {
	return func(r *Repository) {
		r.lint = registry
	}
}

// WithExtensions overrides the accepted file extensions.
func WithExtensions(extensions ...string) Option {
	return func(r *Repository) {
		r.extensions = append([]string(nil), extensions...)
	}
}

// WithWordsPerMinute overrides the reading speed used for reading time.
func WithWordsPerMinute(wpm int) Option {
	return func(r *Repository) {
		if wpm > 0 {
			r.wordsPerMinute = wpm
		}
	}
}

// WithQueryDefaults overrides the default result sizes of RelatedPosts,
// RecentPosts and RecentPublications. Non-positive values are ignored.
func WithQueryDefaults(related, recentPosts, recentPublications int) Option {
	return func(r *Repository) {
		if related > 0 {
			r.relatedCount = related
		}
		if recentPosts > 0 {
			r.recentPosts = recentPosts
		}
		if recentPublications > 0 {
			r.recentPublications = recentPublications
		}
	}
}

// NewRepository returns a repository reading content from root.
func NewRepository(root fs.FS, opts ...Option) *Repository {
	r := &Repository{
		logger:             logging.NoOp(),
		wordsPerMinute:     defaultWordsPerMinute,
		relatedCount:       defaultRelatedCount,
		recentPosts:        defaultRecentPosts,
		recentPublications: defaultRecentPublications,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	r.loader = markdown.NewLoader(root, markdown.LoaderConfig{Extensions: r.extensions})
	return r
}

// TypeExists reports whether a directory for contentType exists.
func (r *Repository) TypeExists(contentType string) bool {
	dir, ok := typeDir(contentType)
	if !ok {
		return false
	}
	return r.loader.DirExists(dir)
}

// ListByType returns every item of contentType in directory enumeration
// order. A missing directory yields an empty result. Files that cannot be
// parsed are skipped and logged.
func (r *Repository) ListByType(ctx context.Context, contentType string) ([]Item, error) {
	dir, ok := typeDir(contentType)
	if !ok {
		return []Item{}, nil
	}
	if r.cache == nil {
		return r.load(ctx, dir)
	}
	items, err := r.cache.GetOrLoad(ctx, dir, func(ctx context.Context) ([]Item, error) {
		return r.load(ctx, dir)
	})
	if err != nil {
		return nil, err
	}
	return cloneItems(items), nil
}

// GetBySlug returns the item of contentType with slug, or nil when there is
// none.
func (r *Repository) GetBySlug(ctx context.Context, contentType, slugValue string) (*Item, error) {
	slugValue = strings.TrimSpace(slugValue)
	if slugValue == "" || strings.ContainsAny(slugValue, `/\`) || strings.Contains(slugValue, "..") {
		return nil, nil
	}
	items, err := r.ListByType(ctx, contentType)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].Slug == slugValue {
			return &items[i], nil
		}
	}
	return nil, nil
}

// Slugs returns the slugs of contentType in directory enumeration order.
func (r *Repository) Slugs(ctx context.Context, contentType string) ([]string, error) {
	items, err := r.ListByType(ctx, contentType)
	if err != nil {
		return nil, err
	}
	slugs := make([]string, len(items))
	for i, item := range items {
		slugs[i] = item.Slug
	}
	return slugs, nil
}

func (r *Repository) load(ctx context.Context, contentType string) ([]Item, error) {
	files, err := r.loader.Files(ctx, contentType)
	if err != nil {
		return nil, wrapReadError(err)
	}

	items := make([]Item, 0, len(files))
	seen := make(map[string]string, len(files))
	for _, file := range files {
		doc, err := r.loader.Load(ctx, file)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			if errors.Is(err, markdown.ErrFrontMatterInvalid) {
				r.skip(contentType, file, "front matter invalid", wrapParseError(err))
				continue
			}
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, wrapReadError(err)
		}

		item, ok := r.buildItem(contentType, doc)
		if !ok {
			r.skip(contentType, file, "slug could not be derived", nil)
			continue
		}
		if first, dup := seen[item.Slug]; dup {
			logging.WithContentContext(r.logger, contentType, file, item.Slug).
				Warn("content.slug.duplicate", "kept", first)
			continue
		}
		seen[item.Slug] = file
		items = append(items, item)
	}
	return items, nil
}

func (r *Repository) skip(contentType, file, reason string, err error) {
	args := []any{"reason", reason}
	if err != nil {
		args = append(args, "error", err)
	}
	logging.WithContentContext(r.logger, contentType, file, "").Warn("content.file.skipped", args...)
}

func (r *Repository) buildItem(contentType string, doc *markdown.Document) (Item, bool) {
	meta := fields(doc.Metadata)

	slugValue, ok := deriveSlug(meta.text("slug"), doc.Stem)
	if !ok {
		return Item{}, false
	}

	item := Item{
		ID:           meta.textOr("id", slugValue),
		UUID:         identity.ContentUUID(contentType, slugValue),
		Slug:         slugValue,
		Type:         contentType,
		Title:        meta.textOr("title", slugValue),
		Body:         string(doc.Body),
		SourcePath:   doc.Path,
		Metadata:     map[string]any(doc.Metadata),
		Checksum:     doc.Checksum,
		LastModified: doc.LastModified,
	}

	if r.lint != nil {
		if err := r.lint.Validate(contentType, item.Metadata); err != nil {
			item.Issues = validation.Issues(err)
			logger := logging.WithContentContext(r.logger, contentType, doc.Path, slugValue)
			if errors.Is(err, validation.ErrSchemaValidation) {
				logger.Warn("content.metadata.invalid", "issues", len(item.Issues), "error", err)
			} else {
				logger.Error("content.metadata.lint_failed", "error", err)
			}
		}
	}
	return item, true
}

// deriveSlug prefers an explicit front matter slug and falls back to the file
// stem. Values that are not URL safe are normalised.
func deriveSlug(explicit, stem string) (string, bool) {
	for _, candidate := range []string{explicit, stem} {
		candidate = strings.TrimSpace(candidate)
		if candidate == "" {
			continue
		}
		if slug.IsValid(candidate) {
			return candidate, true
		}
		normalized, err := slug.Normalize(candidate)
		if err == nil && normalized != "" {
			return normalized, true
		}
	}
	return "", false
}

func typeDir(contentType string) (string, bool) {
	contentType = strings.TrimSpace(contentType)
	if contentType == "" || contentType == "." || contentType == ".." {
		return "", false
	}
	if strings.ContainsAny(contentType, `/\`) || path.Clean(contentType) != contentType {
		return "", false
	}
	return contentType, true
}
