package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

const prefsFileName = "state.db"

const (
	themeKey    = "livadm.theme"
	sectionsKey = "livadm.sections"
)

// Prefs persists small UI state (theme choice, collapsed dashboard sections)
// across runs. It is a tiny SQLite KV table rather than a JSON file so that
// concurrent livadm processes don't clobber each other's writes.
//
// Reads are best effort: a missing or corrupt value degrades to the default,
// never to a startup failure.
type Prefs struct {
	db *sql.DB
}

func OpenPrefs(ctx context.Context) (*Prefs, error) {
	dir, err := ConfigDir()
	if err != nil {
		return nil, err
	}
	return OpenPrefsPath(ctx, filepath.Join(dir, prefsFileName))
}

func OpenPrefsPath(ctx context.Context, path string) (*Prefs, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// Pragmas for multi-process local usage. WAL enables one writer + many
	// readers; busy_timeout avoids "database is locked" flakiness.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS ui_state (
		k TEXT PRIMARY KEY,
		v TEXT NOT NULL
	);`); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Prefs{db: db}, nil
}

func (p *Prefs) Close() error {
	if p == nil || p.db == nil {
		return nil
	}
	return p.db.Close()
}

func (p *Prefs) get(ctx context.Context, k string) (string, bool) {
	if p == nil || p.db == nil {
		return "", false
	}
	var v string
	if err := p.db.QueryRowContext(ctx, `SELECT v FROM ui_state WHERE k = ?`, k).Scan(&v); err != nil {
		return "", false
	}
	return v, true
}

func (p *Prefs) set(ctx context.Context, k, v string) error {
	if p == nil || p.db == nil {
		return nil
	}
	_, err := p.db.ExecContext(ctx, `INSERT OR REPLACE INTO ui_state(k, v) VALUES(?, ?)`, k, v)
	return err
}

// Theme returns the saved appearance profile id, or "" when none is saved.
func (p *Prefs) Theme(ctx context.Context) string {
	v, _ := p.get(ctx, themeKey)
	return strings.TrimSpace(v)
}

func (p *Prefs) SetTheme(ctx context.Context, id string) error {
	return p.set(ctx, themeKey, strings.TrimSpace(id))
}

// Sections returns the collapsed-state map keyed by section id.
// Sections absent from the map are expanded.
func (p *Prefs) Sections(ctx context.Context) map[string]bool {
	raw, ok := p.get(ctx, sectionsKey)
	if !ok || strings.TrimSpace(raw) == "" {
		return map[string]bool{}
	}
	var m map[string]bool
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		// Corrupt state is not worth failing over; start expanded.
		return map[string]bool{}
	}
	if m == nil {
		m = map[string]bool{}
	}
	return m
}

func (p *Prefs) SetSections(ctx context.Context, collapsed map[string]bool) error {
	b, err := json.Marshal(collapsed)
	if err != nil {
		return err
	}
	return p.set(ctx, sectionsKey, string(b))
}
