package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"

	"livadm/internal/reconcile"
)

const toastMaxW = 44

// notify appends toasts to the stack and schedules their expiry. Each
// toast gets its own sequence number; duplicate messages stack rather
// than coalesce, matching how repeated failures should stay visible.
func (m *appModel) notify(toasts []reconcile.Toast) tea.Cmd {
	var cmds []tea.Cmd
	for _, t := range toasts {
		m.toastSeq++
		seq := m.toastSeq
		m.toasts = append(m.toasts, toast{seq: seq, severity: t.Severity, text: t.Message})
		cmds = append(cmds, tea.Tick(toastTTL, func(time.Time) tea.Msg { return toastExpireMsg{seq: seq} }))
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *appModel) notifyError(msg string) tea.Cmd {
	return m.notify([]reconcile.Toast{{Severity: reconcile.SeverityError, Message: msg}})
}

func (m *appModel) notifyInfo(msg string) tea.Cmd {
	return m.notify([]reconcile.Toast{{Severity: reconcile.SeverityInfo, Message: msg}})
}

// dismissToast removes a toast by sequence. Expiry ticks for toasts
// already clicked away land here and find nothing, which is fine.
func (m *appModel) dismissToast(seq int) bool {
	for i, t := range m.toasts {
		if t.seq == seq {
			m.toasts = append(m.toasts[:i], m.toasts[i+1:]...)
			return true
		}
	}
	return false
}

// dismissNewestToast drops the most recent toast; esc uses it so the
// user can clear notices one at a time, newest first.
func (m *appModel) dismissNewestToast() bool {
	if len(m.toasts) == 0 {
		return false
	}
	newest := 0
	for i, t := range m.toasts {
		if t.seq > m.toasts[newest].seq {
			newest = i
		}
	}
	m.toasts = append(m.toasts[:newest], m.toasts[newest+1:]...)
	return true
}

func renderToast(t toast) string {
	text := t.text
	if xansi.StringWidth(text) > toastMaxW-4 {
		text = xansi.Cut(text, 0, toastMaxW-5) + "…"
	}
	return lipgloss.NewStyle().
		Padding(0, 1).
		Bold(t.severity == reconcile.SeverityError).
		Foreground(colorAccentFg).
		Background(severityColor(t.severity)).
		Render(text)
}

type toastBox struct {
	seq        int
	x, y, w, h int
}

// toastGeometry lays the stack out bottom-right, oldest on top. The
// render overlay and the click hit-test both read from here so they
// cannot drift apart.
func (m appModel) toastGeometry() []toastBox {
	if len(m.toasts) == 0 {
		return nil
	}
	boxes := make([]toastBox, len(m.toasts))
	bottom := m.height - footerLines - 1
	for i := range m.toasts {
		t := m.toasts[i]
		r := renderToast(t)
		w := xansi.StringWidth(r)
		y := bottom - (len(m.toasts) - 1 - i)
		x := m.width - w - 1
		if x < 0 {
			x = 0
		}
		boxes[i] = toastBox{seq: t.seq, x: x, y: y, w: w, h: 1}
	}
	return boxes
}

// toastAt maps a click to the toast under it.
func (m appModel) toastAt(x, y int) (int, bool) {
	for _, b := range m.toastGeometry() {
		if x >= b.x && x < b.x+b.w && y >= b.y && y < b.y+b.h {
			return b.seq, true
		}
	}
	return 0, false
}

// overlayToasts paints the toast stack onto the composed view.
func (m appModel) overlayToasts(base string) string {
	boxes := m.toastGeometry()
	if len(boxes) == 0 {
		return base
	}
	out := base
	for i, b := range boxes {
		r := renderToast(m.toasts[i])
		if strings.Contains(r, "\n") {
			r = strings.ReplaceAll(r, "\n", " ")
		}
		out = overlayAt(out, r, b.x, b.y)
	}
	return out
}
