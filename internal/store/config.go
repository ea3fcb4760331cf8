package store

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sethvargo/go-envconfig"
)

// Config holds the saved connection and presentation settings for the admin
// console. It lives in ~/.livadm/config.json and can be overridden per-process
// through LIVADM_* environment variables (see ApplyEnv).
type Config struct {
	// Server is the base URL of the admin backend (e.g. "https://livadm.example.com").
	Server string `json:"server,omitempty" env:"LIVADM_SERVER" validate:"omitempty,url"`

	// Session is the session cookie value used to authenticate admin calls.
	// The backend issues it at login; livadm only replays it.
	Session string `json:"session,omitempty" env:"LIVADM_SESSION"`

	// Theme is the preferred appearance profile id (e.g. "default", "slate").
	Theme string `json:"theme,omitempty" env:"LIVADM_THEME"`

	// Output selects the default CLI output format.
	Output string `json:"output,omitempty" env:"LIVADM_OUTPUT" validate:"omitempty,oneof=text json"`

	// TimeoutSeconds bounds each admin request. Zero means the client default.
	TimeoutSeconds int `json:"timeoutSeconds,omitempty" env:"LIVADM_TIMEOUT" validate:"omitempty,min=1"`
}

var validate = validator.New()

func ConfigDir() (string, error) {
	// Test/advanced override (keeps unit tests from touching ~/.livadm).
	if v := strings.TrimSpace(os.Getenv("LIVADM_CONFIG_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".livadm"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

func LoadConfig() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(b, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ApplyEnv layers LIVADM_* environment variables over cfg. Variables that are
// unset leave the loaded values alone, so the file remains the baseline.
func ApplyEnv(ctx context.Context, cfg *Config) error {
	return envconfig.Process(ctx, cfg)
}

// Validate reports the first invalid field, e.g. a malformed server URL.
func (c *Config) Validate() error {
	return validate.Struct(c)
}

func atomicWriteFile(dir, tmpPattern, path string, b []byte, perm os.FileMode) error {
	f, err := os.CreateTemp(dir, tmpPattern)
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()
	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	_ = os.Chmod(tmp, perm)
	return os.Rename(tmp, path)
}

func SaveConfig(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	// Best-effort safety net: keep a copy of the previous config to make recovery
	// from accidental overwrites easier. Ignore errors to avoid blocking normal usage.
	if prev, err := os.ReadFile(path); err == nil && len(prev) > 0 {
		_ = atomicWriteFile(dir, "config.json.bak.*.tmp", path+".bak", prev, 0o644)
	}

	// Unique temp file name + rename so concurrent livadm processes (CLI + TUI)
	// cannot clobber each other mid-write. The session cookie is a credential,
	// hence 0600.
	return atomicWriteFile(dir, "config.json.*.tmp", path, b, 0o600)
}
