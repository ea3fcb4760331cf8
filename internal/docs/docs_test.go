package docs

import (
	"reflect"
	"strings"
	"testing"
)

func TestTopics_ListsEmbeddedContent(t *testing.T) {
	want := []string{"config", "dashboard", "forms", "keys"}
	if got := Topics(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected topics %v; got %v", want, got)
	}
}

func TestGet_KnownTopic(t *testing.T) {
	body, ok := Get("dashboard")
	if !ok {
		t.Fatalf("expected dashboard topic to exist")
	}
	if !strings.Contains(body, "Optimistic updates") {
		t.Fatalf("unexpected dashboard body: %q", body)
	}

	// Lookup is case-insensitive and trims whitespace.
	if _, ok := Get("  Keys "); !ok {
		t.Fatalf("expected normalized lookup to succeed")
	}
}

func TestGet_UnknownTopic(t *testing.T) {
	if _, ok := Get("nope"); ok {
		t.Fatalf("expected unknown topic to miss")
	}
	if _, ok := Get(""); ok {
		t.Fatalf("expected empty topic to miss")
	}
}
