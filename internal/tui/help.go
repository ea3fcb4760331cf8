package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"livadm/internal/docs"
)

// renderHelp draws the help overlay: one embedded docs topic at a time,
// tab to cycle.
func (m appModel) renderHelp() string {
	topics := docs.Topics()
	if len(topics) == 0 {
		return renderModalBox(m.width, "Help", "No help topics available.")
	}

	idx := m.helpTopic % len(topics)
	if idx < 0 {
		idx += len(topics)
	}
	topic := topics[idx]

	md, ok := docs.Get(topic)
	if !ok {
		md = "Topic not found."
	}

	bodyW := modalBodyWidth(m.width)
	body := renderMarkdown(md, bodyW)

	var tabs []string
	for i, t := range topics {
		st := styleMuted()
		if i == idx {
			st = lipgloss.NewStyle().
				Foreground(colorAccentFg).
				Background(colorAccent).
				Padding(0, 1).
				Bold(true)
		}
		tabs = append(tabs, st.Render(t))
	}

	content := strings.Join([]string{
		strings.Join(tabs, " "),
		"",
		body,
		"",
		styleMuted().Width(bodyW).Render("tab: next topic   esc/?: close"),
	}, "\n")
	return renderModalBox(m.width, "Help", content)
}
