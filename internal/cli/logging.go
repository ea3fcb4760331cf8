package cli

import (
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"livadm/internal/store"
)

// setupLogging keeps command output parseable: plain commands log to
// stderr, the dashboard logs to ~/.livadm/logs/livadm.log because it
// owns the terminal. Logging must never be the reason a command fails,
// so file problems degrade to discarding.
func setupLogging(app *App, interactive bool) {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	if app.Debug {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	if !interactive {
		log.SetOutput(os.Stderr)
		return
	}

	dir, err := store.ConfigDir()
	if err != nil {
		log.SetOutput(io.Discard)
		return
	}
	logDir := filepath.Join(dir, "logs")
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		log.SetOutput(io.Discard)
		return
	}
	f, err := os.OpenFile(filepath.Join(logDir, "livadm.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return
	}
	log.SetOutput(f)
}

func boolEnvDefault(k string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	if b, err := strconv.ParseBool(v); err == nil {
		return b
	}
	switch strings.ToLower(v) {
	case "y", "yes", "on":
		return true
	case "n", "no", "off":
		return false
	default:
		return def
	}
}
