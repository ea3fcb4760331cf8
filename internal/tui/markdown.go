package tui

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// Glamour renderers are cached per style and wrap width. A fixed style is
// deliberate: WithAutoStyle can block on terminal background queries, and
// the help overlay re-renders on every frame.
var helpRenderers struct {
	sync.Mutex
	m map[string]*glamour.TermRenderer
}

func renderMarkdown(md string, width int) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}
	if width < 10 {
		width = 10
	}

	r, err := helpRendererFor(markdownStyle(), width)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}

func helpRendererFor(style string, width int) (*glamour.TermRenderer, error) {
	helpRenderers.Lock()
	defer helpRenderers.Unlock()
	if helpRenderers.m == nil {
		helpRenderers.m = map[string]*glamour.TermRenderer{}
	}
	key := fmt.Sprintf("%s/%d", style, width)
	if r, ok := helpRenderers.m[key]; ok {
		return r, nil
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	helpRenderers.m[key] = r
	return r, nil
}

// markdownStyle picks the glamour style: explicit env override first,
// then the detected terminal background.
func markdownStyle() string {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("LIVADM_MD_STYLE"))) {
	case "light":
		return "light"
	case "dark":
		return "dark"
	}
	if lipgloss.HasDarkBackground() {
		return "dark"
	}
	return "light"
}
