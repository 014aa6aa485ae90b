package validation

import (
	"errors"
	"strings"
	"testing"
)

func TestRegistryAcceptsConformingMetadata(t *testing.T) {
	registry := NewRegistry(ContentSchemas())

	err := registry.Validate(TypePublications, map[string]any{
		"title":  "Transpiration cooling in hypersonic flow",
		"year":   2023,
		"type":   "journal",
		"status": "published",
	})
	if err != nil {
		t.Fatalf("expected metadata to validate, got %v", err)
	}
}

func TestRegistryReportsIssues(t *testing.T) {
	registry := NewRegistry(ContentSchemas())

	err := registry.Validate(TypePublications, map[string]any{
		"title":  "Untitled draft",
		"status": "rejected",
	})
	if !errors.Is(err, ErrSchemaValidation) {
		t.Fatalf("expected ErrSchemaValidation, got %v", err)
	}

	issues := Issues(err)
	if len(issues) < 2 {
		t.Fatalf("expected missing year and bad status issues, got %#v", issues)
	}
	joined := err.Error()
	if !strings.Contains(joined, "year") {
		t.Fatalf("expected missing year to be reported, got %q", joined)
	}
	if !strings.Contains(joined, "#/status") {
		t.Fatalf("expected status location to be reported, got %q", joined)
	}
}

func TestRegistryUnknownKeyPasses(t *testing.T) {
	registry := NewRegistry(nil)
	if err := registry.Validate("unknown", map[string]any{"anything": true}); err != nil {
		t.Fatalf("expected unknown key to pass, got %v", err)
	}
}

func TestRegistryRejectsInvalidSchema(t *testing.T) {
	registry := NewRegistry(nil)
	registry.Register("broken", map[string]any{"type": 12})

	err := registry.Validate("broken", map[string]any{})
	if !errors.Is(err, ErrSchemaInvalid) {
		t.Fatalf("expected ErrSchemaInvalid, got %v", err)
	}
}

func TestIssuesFallsBackToMessage(t *testing.T) {
	issues := Issues(errors.New("plain"))
	if len(issues) != 1 || issues[0].Message != "plain" || issues[0].String() != "#: plain" {
		t.Fatalf("unexpected issues %#v", issues)
	}
}
