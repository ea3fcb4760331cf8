package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Texter is implemented by payloads that know how to render a human view of
// themselves (tables, summaries). Payloads without it fall back to JSON.
type Texter interface {
	Text() string
}

// Write writes output in the requested format.
//
// Supported formats:
// - json (default)
// - text
func Write(w io.Writer, v any, format string, pretty bool) error {
	switch format {
	case "", "json":
		return WriteJSON(w, v, pretty)
	case "text":
		return WriteText(w, v)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// WriteJSON writes strict JSON output for CLI commands.
//
// NOTE: We intentionally keep output strict JSON only so scripts can pipe it
// straight into jq without stripping decoration.
func WriteJSON(w io.Writer, v any, pretty bool) error {
	var b []byte
	var err error
	if pretty {
		b, err = json.MarshalIndent(v, "", "  ")
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(b))
	return err
}

// WriteText renders v for humans. Payloads opt in via Texter; everything else
// falls back to pretty JSON so no command ever loses data in text mode.
func WriteText(w io.Writer, v any) error {
	if t, ok := v.(Texter); ok {
		_, err := fmt.Fprintln(w, strings.TrimRight(t.Text(), "\n"))
		return err
	}
	return WriteJSON(w, v, true)
}
