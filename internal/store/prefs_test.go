package store

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"
)

func openTestPrefs(t *testing.T) *Prefs {
	t.Helper()
	p, err := OpenPrefsPath(context.Background(), filepath.Join(t.TempDir(), "state.db"))
	if err != nil {
		t.Fatalf("OpenPrefsPath: %v", err)
	}
	t.Cleanup(func() { _ = p.Close() })
	return p
}

func TestPrefs_Theme_RoundTrip(t *testing.T) {
	ctx := context.Background()
	p := openTestPrefs(t)

	if got := p.Theme(ctx); got != "" {
		t.Fatalf("expected empty theme before save; got %q", got)
	}
	if err := p.SetTheme(ctx, "slate"); err != nil {
		t.Fatalf("SetTheme: %v", err)
	}
	if got := p.Theme(ctx); got != "slate" {
		t.Fatalf("expected theme slate; got %q", got)
	}

	// Overwrite, not append.
	if err := p.SetTheme(ctx, "default"); err != nil {
		t.Fatalf("SetTheme (overwrite): %v", err)
	}
	if got := p.Theme(ctx); got != "default" {
		t.Fatalf("expected theme default; got %q", got)
	}
}

func TestPrefs_Sections_RoundTrip(t *testing.T) {
	ctx := context.Background()
	p := openTestPrefs(t)

	if got := p.Sections(ctx); len(got) != 0 {
		t.Fatalf("expected no collapsed sections before save; got %#v", got)
	}

	want := map[string]bool{"users": true, "settings": true}
	if err := p.SetSections(ctx, want); err != nil {
		t.Fatalf("SetSections: %v", err)
	}
	got := p.Sections(ctx)
	if !reflect.DeepEqual(want, got) {
		t.Fatalf("roundtrip mismatch:\nwant: %#v\ngot:  %#v", want, got)
	}
	// Sections never saved stay expanded.
	if got["pharmacies"] {
		t.Fatalf("expected unsaved section to read as expanded")
	}
}

func TestPrefs_CorruptSectionsReadAsExpanded(t *testing.T) {
	ctx := context.Background()
	p := openTestPrefs(t)

	if err := p.set(ctx, sectionsKey, "{not json"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if got := p.Sections(ctx); len(got) != 0 {
		t.Fatalf("expected corrupt value to degrade to empty map; got %#v", got)
	}
}

func TestPrefs_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state.db")

	p, err := OpenPrefsPath(ctx, path)
	if err != nil {
		t.Fatalf("OpenPrefsPath: %v", err)
	}
	if err := p.SetTheme(ctx, "slate"); err != nil {
		t.Fatalf("SetTheme: %v", err)
	}
	if err := p.SetSections(ctx, map[string]bool{"regions": true}); err != nil {
		t.Fatalf("SetSections: %v", err)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	p2, err := OpenPrefsPath(ctx, path)
	if err != nil {
		t.Fatalf("OpenPrefsPath (reopen): %v", err)
	}
	defer func() { _ = p2.Close() }()

	if got := p2.Theme(ctx); got != "slate" {
		t.Fatalf("expected theme to survive reopen; got %q", got)
	}
	if got := p2.Sections(ctx); !got["regions"] {
		t.Fatalf("expected regions collapsed after reopen; got %#v", got)
	}
}
