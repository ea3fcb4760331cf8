package tui

import (
	"context"

	"livadm/internal/dashboard"
	"livadm/internal/reconcile"
)

// Client is the submission surface the TUI talks to. *api.Client
// satisfies it; tests substitute a scripted stub so Update logic can be
// driven without a server.
type Client interface {
	Do(ctx context.Context, sub reconcile.Submission) (reconcile.Result, error)
	FetchDashboard(ctx context.Context) (dashboard.Snapshot, error)
}

// UIPrefs persists small UI state across runs. *store.Prefs satisfies
// it. All methods are best effort; a nil implementation is valid.
type UIPrefs interface {
	Theme(ctx context.Context) string
	SetTheme(ctx context.Context, id string) error
	Sections(ctx context.Context) map[string]bool
	SetSections(ctx context.Context, collapsed map[string]bool) error
}
