package content

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
)

func blogFS() fstest.MapFS {
	return fstest.MapFS{
		"blog/a-january.mdx": file("---\ntitle: January\npublishedAt: 2024-01-15\ntags: [cfd]\n---\none two three\n"),
		"blog/b-june.mdx":    file("---\ntitle: June\npublishedAt: 2024-06-01\ntags: [cfd, aerospace, cooling]\n---\nIntro.\n\n![diagram](/img/diagram.png)\n"),
		"blog/c-draft.mdx":   file("---\ntitle: Draft\npublishedAt: 2024-07-01\ndraft: true\nogImage: /img/og.png\ntags: [cfd, cooling]\n---\nWork in progress.\n"),
		"blog/d-undated.md":  file("---\ntitle: Undated\npublishedAt: someday soon\ntags: [misc]\n---\nbody\n"),
		"blog/e-broken.mdx":  file("---\ntitle: [unterminated\n---\n"),
		"blog/f-extra.mdx":   file("---\ntitle: Extra\npublishedAt: 2023-03-03\ntags: [cooling, cooling]\n---\nbody\n"),
		"blog/g-other.mdx":   file("---\ntitle: Other\npublishedAt: 2022-01-01\n---\nbody\n"),
	}
}

func TestAllPostsSortedNewestFirst(t *testing.T) {
	repo := NewRepository(blogFS())

	posts, err := repo.AllPosts(context.Background())
	if err != nil {
		t.Fatalf("AllPosts: %v", err)
	}

	want := []string{"c-draft", "b-june", "a-january", "f-extra", "g-other", "d-undated"}
	if diff := cmp.Diff(want, slugsOf(posts, postSlug)); diff != "" {
		t.Fatalf("unexpected order (-want +got):\n%s", diff)
	}
	for i := 1; i < len(posts); i++ {
		if posts[i].Published.After(posts[i-1].Published) {
			t.Fatalf("post %s is newer than its predecessor %s", posts[i].Slug, posts[i-1].Slug)
		}
	}
	if !posts[len(posts)-1].Published.IsZero() {
		t.Fatal("expected unparsable date to sort last with zero time")
	}
}

func TestAllPostsJuneBeforeJanuary(t *testing.T) {
	fsys := fstest.MapFS{
		"blog/a-january.mdx": file("---\ntitle: January\npublishedAt: 2024-01-15\n---\n"),
		"blog/b-june.mdx":    file("---\ntitle: June\npublishedAt: 2024-06-01\n---\n"),
	}
	posts, err := NewRepository(fsys).AllPosts(context.Background())
	if err != nil {
		t.Fatalf("AllPosts: %v", err)
	}
	if diff := cmp.Diff([]string{"b-june", "a-january"}, slugsOf(posts, postSlug)); diff != "" {
		t.Fatalf("unexpected order (-want +got):\n%s", diff)
	}
}

func TestAllPostsIsIdempotent(t *testing.T) {
	repo := NewRepository(blogFS())
	ctx := context.Background()

	first, err := repo.AllPosts(ctx)
	if err != nil {
		t.Fatalf("AllPosts: %v", err)
	}
	second, err := repo.AllPosts(ctx)
	if err != nil {
		t.Fatalf("AllPosts: %v", err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("repeated calls differ (-first +second):\n%s", diff)
	}
}

func TestPublishedPostsExcludeExactlyDrafts(t *testing.T) {
	repo := NewRepository(blogFS())
	ctx := context.Background()

	all, err := repo.AllPosts(ctx)
	if err != nil {
		t.Fatalf("AllPosts: %v", err)
	}
	published, err := repo.PublishedPosts(ctx)
	if err != nil {
		t.Fatalf("PublishedPosts: %v", err)
	}

	var want []string
	for _, post := range all {
		if !post.Draft {
			want = append(want, post.Slug)
		}
	}
	if diff := cmp.Diff(want, slugsOf(published, postSlug)); diff != "" {
		t.Fatalf("published posts mismatch (-want +got):\n%s", diff)
	}
	if len(published) != len(all)-1 {
		t.Fatalf("expected exactly one draft removed, got %d of %d", len(published), len(all))
	}
}

func TestPostFields(t *testing.T) {
	repo := NewRepository(blogFS())
	ctx := context.Background()

	january, err := repo.PostBySlug(ctx, "a-january")
	if err != nil || january == nil {
		t.Fatalf("expected post, got %v (err=%v)", january, err)
	}
	want := ReadingTime{Words: 3, Minutes: 0.015, Duration: january.ReadingTime.Duration, Text: "1 min read"}
	if diff := cmp.Diff(want, january.ReadingTime); diff != "" {
		t.Fatalf("unexpected reading time (-want +got):\n%s", diff)
	}
	if january.PublishedAt != "2024-01-15" || january.Published.Year() != 2024 {
		t.Fatalf("unexpected dates %q %v", january.PublishedAt, january.Published)
	}

	june, _ := repo.PostBySlug(ctx, "b-june")
	if june.OGImage != "/img/diagram.png" {
		t.Fatalf("expected body image as og image, got %q", june.OGImage)
	}
	draft, _ := repo.PostBySlug(ctx, "c-draft")
	if draft.OGImage != "/img/og.png" || !draft.Draft {
		t.Fatalf("unexpected draft post %+v", draft)
	}
	extra, _ := repo.PostBySlug(ctx, "f-extra")
	if diff := cmp.Diff([]string{"cooling"}, extra.Tags); diff != "" {
		t.Fatalf("expected deduplicated tags (-want +got):\n%s", diff)
	}

	missing, err := repo.PostBySlug(ctx, "e-broken")
	if err != nil || missing != nil {
		t.Fatalf("expected skipped file to be absent, got %v (err=%v)", missing, err)
	}
}

func TestRecentPosts(t *testing.T) {
	repo := NewRepository(blogFS(), WithQueryDefaults(0, 2, 0))
	ctx := context.Background()

	recent, err := repo.RecentPosts(ctx, 0)
	if err != nil {
		t.Fatalf("RecentPosts: %v", err)
	}
	if diff := cmp.Diff([]string{"b-june", "a-january"}, slugsOf(recent, postSlug)); diff != "" {
		t.Fatalf("unexpected recent posts (-want +got):\n%s", diff)
	}

	all, _ := repo.RecentPosts(ctx, 50)
	if len(all) != 5 {
		t.Fatalf("expected every published post, got %d", len(all))
	}
}

func TestRelatedPosts(t *testing.T) {
	repo := NewRepository(blogFS())
	ctx := context.Background()

	related, err := repo.RelatedPosts(ctx, "b-june", 0)
	if err != nil {
		t.Fatalf("RelatedPosts: %v", err)
	}
	if diff := cmp.Diff([]string{"a-january", "f-extra", "g-other"}, slugsOf(related, postSlug)); diff != "" {
		t.Fatalf("unexpected related posts (-want +got):\n%s", diff)
	}
	for _, post := range related {
		if post.Slug == "b-june" {
			t.Fatal("related posts must not include the source post")
		}
		if post.Draft {
			t.Fatal("related posts must not include drafts")
		}
	}

	one, _ := repo.RelatedPosts(ctx, "b-june", 1)
	if diff := cmp.Diff([]string{"a-january"}, slugsOf(one, postSlug)); diff != "" {
		t.Fatalf("unexpected single related post (-want +got):\n%s", diff)
	}

	fromDraft, _ := repo.RelatedPosts(ctx, "c-draft", 2)
	if diff := cmp.Diff([]string{"b-june", "a-january"}, slugsOf(fromDraft, postSlug)); diff != "" {
		t.Fatalf("unexpected related posts for draft (-want +got):\n%s", diff)
	}

	unknown, err := repo.RelatedPosts(ctx, "missing", 3)
	if err != nil || len(unknown) != 0 {
		t.Fatalf("expected no related posts for unknown slug, got %v (err=%v)", unknown, err)
	}
}

func TestRelatedPostsNeverExceedCount(t *testing.T) {
	repo := NewRepository(blogFS())
	ctx := context.Background()

	posts, _ := repo.AllPosts(ctx)
	for _, post := range posts {
		for count := 1; count <= 4; count++ {
			related, err := repo.RelatedPosts(ctx, post.Slug, count)
			if err != nil {
				t.Fatalf("RelatedPosts: %v", err)
			}
			if len(related) > count {
				t.Fatalf("%s: got %d related posts for count %d", post.Slug, len(related), count)
			}
		}
	}
}

func TestEstimateReadingTime(t *testing.T) {
	cases := []struct {
		words int
		wpm   int
		text  string
	}{
		{0, 200, "0 min read"},
		{1, 200, "1 min read"},
		{200, 200, "1 min read"},
		{450, 200, "3 min read"},
		{1000, 200, "5 min read"},
		{300, 0, "2 min read"},
	}
	for _, tc := range cases {
		got := EstimateReadingTime(tc.words, tc.wpm)
		if got.Text != tc.text || got.Words != tc.words {
			t.Fatalf("EstimateReadingTime(%d, %d) = %+v, want %q", tc.words, tc.wpm, got, tc.text)
		}
	}
}
