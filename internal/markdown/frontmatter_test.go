package markdown

import (
	"errors"
	"strings"
	"testing"
	"time"
)

const samplePost = `---
title: Hypersonic Cooling
publishedAt: 2024-06-01
draft: false
tags:
  - hypersonics
  - cooling
links:
  - label: Paper
    url: https://example.com/paper
custom_flag: true
---
# Hypersonic Cooling

Transpiration cooling keeps the leading edge alive.
`

func TestParseFrontMatter(t *testing.T) {
	meta, body, err := ParseFrontMatter([]byte(samplePost))
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}

	if meta["title"] != "Hypersonic Cooling" {
		t.Fatalf("title mismatch, got %#v", meta["title"])
	}
	if meta["publishedAt"] != "2024-06-01" {
		t.Fatalf("expected date to normalise to 2024-06-01, got %#v", meta["publishedAt"])
	}
	if meta["custom_flag"] != true {
		t.Fatalf("custom flag missing: %#v", meta)
	}

	tags, ok := meta["tags"].([]any)
	if !ok || len(tags) != 2 || tags[0] != "hypersonics" {
		t.Fatalf("tags mismatch: %#v", meta["tags"])
	}

	links, ok := meta["links"].([]any)
	if !ok || len(links) != 1 {
		t.Fatalf("links mismatch: %#v", meta["links"])
	}
	link, ok := links[0].(map[string]any)
	if !ok || link["url"] != "https://example.com/paper" {
		t.Fatalf("expected nested map keyed by string, got %#v", links[0])
	}

	if !strings.Contains(string(body), "# Hypersonic Cooling") {
		t.Fatalf("body not returned correctly: %q", string(body))
	}
	if strings.Contains(string(body), "publishedAt") {
		t.Fatalf("body still contains front matter: %q", string(body))
	}
}

func TestParseFrontMatterWithoutBlock(t *testing.T) {
	meta, body, err := ParseFrontMatter([]byte("Just a body.\n"))
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}
	if len(meta) != 0 {
		t.Fatalf("expected empty metadata, got %#v", meta)
	}
	if strings.TrimSpace(string(body)) != "Just a body." {
		t.Fatalf("unexpected body %q", string(body))
	}
}

func TestParseFrontMatterRejectsBrokenYAML(t *testing.T) {
	_, _, err := ParseFrontMatter([]byte("---\ntitle: [unterminated\n---\nbody\n"))
	if !errors.Is(err, ErrFrontMatterInvalid) {
		t.Fatalf("expected ErrFrontMatterInvalid, got %v", err)
	}
}

func TestNormalizeValue(t *testing.T) {
	stamp := time.Date(2024, 1, 2, 10, 30, 0, 0, time.UTC)
	got := normalizeValue(map[any]any{
		"when": stamp,
		"day":  time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		1:      "one",
	}).(map[string]any)

	if got["when"] != "2024-01-02T10:30:00Z" {
		t.Fatalf("unexpected timestamp %#v", got["when"])
	}
	if got["day"] != "2024-01-02" {
		t.Fatalf("unexpected date %#v", got["day"])
	}
	if got["1"] != "one" {
		t.Fatalf("expected non-string keys to be stringified, got %#v", got)
	}
}

func TestBuildDocument(t *testing.T) {
	modified := time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)

	doc, err := BuildDocument("blog/hypersonic-cooling.mdx", []byte(samplePost), modified)
	if err != nil {
		t.Fatalf("BuildDocument: %v", err)
	}
	if doc.Stem != "hypersonic-cooling" {
		t.Fatalf("expected stem hypersonic-cooling, got %q", doc.Stem)
	}
	if len(doc.Checksum) != 32 {
		t.Fatalf("expected sha256 checksum, got %d bytes", len(doc.Checksum))
	}
	if !doc.LastModified.Equal(modified) {
		t.Fatalf("expected LastModified to be kept")
	}
}
