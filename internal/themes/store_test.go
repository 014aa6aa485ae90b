package themes

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "preferences.json")
	store := NewFileStore(path, "")

	value, err := store.Load()
	if err != nil || value != "" {
		t.Fatalf("expected empty value for missing file, got %q (err=%v)", value, err)
	}
	if err := store.Save("dark"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	value, err = NewFileStore(path, DefaultStorageKey).Load()
	if err != nil || value != "dark" {
		t.Fatalf("expected dark, got %q (err=%v)", value, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"theme-preference": "dark"`) {
		t.Fatalf("unexpected file contents %s", data)
	}
}

func TestFileStorePreservesOtherKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.json")
	if err := os.WriteFile(path, []byte(`{"editor":"vim"}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := NewFileStore(path, "").Save("light"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	editor, err := NewFileStore(path, "editor").Load()
	if err != nil || editor != "vim" {
		t.Fatalf("expected other key to survive, got %q (err=%v)", editor, err)
	}
}

func TestFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	store := NewFileStore(path, "")
	if _, err := store.Load(); err == nil {
		t.Fatal("expected decode error")
	}

	state := NewState(store, StaticSystem{})
	if snap := state.Init(); snap.Preference != PreferenceSystem {
		t.Fatalf("expected system fallback, got %+v", snap)
	}
	if err := store.Save("dark"); err == nil {
		t.Fatal("expected Save to refuse a file it cannot decode")
	}
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "{not json" {
		t.Fatalf("expected corrupt file to be left alone, got %q (err=%v)", data, err)
	}
}
