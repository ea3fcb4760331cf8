package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func modalBoxWidth(screenW int) int {
	w := screenW - 8
	if w > 64 {
		w = 64
	}
	if w < 24 {
		w = 24
	}
	return w
}

// modalBodyWidth is the text width inside the box: border and padding
// subtracted.
func modalBodyWidth(screenW int) int {
	return modalBoxWidth(screenW) - 4
}

// renderModalBox draws the shared modal chrome: a header strip with the
// title, then the content, inside a rounded border.
func renderModalBox(screenW int, title, content string) string {
	bodyW := modalBodyWidth(screenW)

	header := lipgloss.NewStyle().
		Bold(true).
		Width(bodyW).
		Padding(0, 1).
		Foreground(colorSurfaceFg).
		Background(colorModalHeaderBg).
		Render(title)

	body := lipgloss.NewStyle().Width(bodyW).Render(content)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorAccent).
		Padding(0, 1)
	return box.Render(header + "\n\n" + body)
}

func renderConfirmModal(width int, title string, body string, confirmLabel string, cancelLabel string, focus confirmModalFocus) string {
	// Avoid borders here: some terminals show background artifacts when nesting bordered
	// components inside a modal with a background color.
	btnBase := lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(colorSurfaceFg).
		Background(colorControlBg)
	btnActive := btnBase.
		Foreground(colorSelectedFg).
		Background(colorSelectedBg).
		Bold(true)

	confirm := btnBase.Render(confirmLabel)
	cancel := btnBase.Render(cancelLabel)
	if focus == confirmFocusConfirm {
		confirm = btnActive.Render(confirmLabel)
	}
	if focus == confirmFocusCancel {
		cancel = btnActive.Render(cancelLabel)
	}

	sep := lipgloss.NewStyle().Background(colorControlBg).Render(" ")
	controls := lipgloss.JoinHorizontal(lipgloss.Top, confirm, sep, cancel)

	bodyW := modalBodyWidth(width)
	help := styleMuted().Width(bodyW).Render("tab: focus   enter: select   esc/ctrl+g: cancel")

	content := strings.Join([]string{
		body,
		"",
		controls,
		"",
		help,
	}, "\n")
	return renderModalBox(width, title, content)
}

// renderActiveModal dispatches to the modal under m.modal; empty when
// none is open.
func (m appModel) renderActiveModal() string {
	switch m.modal {
	case modalNewUser:
		return m.renderFormModal("New user")
	case modalNewRegion:
		return m.renderFormModal("New region")
	case modalNewPharmacy:
		return m.renderFormModal("New pharmacy")
	case modalPassword:
		return m.renderPasswordModal()
	case modalCutoffs:
		return m.renderCutoffsModal()
	case modalConfirmDelete:
		return renderConfirmModal(
			m.width,
			"Confirm delete",
			deleteModalBody(m.modalLabel),
			"Delete",
			"Cancel",
			m.confirmFocus,
		)
	}
	return ""
}

func deleteModalBody(label string) string {
	return "Delete " + label + "? Dependent records go with it."
}

// renderFormModal draws the create forms: labelled inputs, optionally a
// picker row for the role or region menu, and the footer help.
func (m appModel) renderFormModal(title string) string {
	bodyW := modalBodyWidth(m.width)
	var lines []string

	for i, in := range m.formInputs {
		label := m.formLabels[i]
		st := styleMuted()
		if m.formFocus == i {
			st = lipgloss.NewStyle().Foreground(colorSurfaceFg).Bold(true)
		}
		lines = append(lines, st.Render(label))
		lines = append(lines, renderFieldLine(bodyW, in.View()))
		lines = append(lines, "")
	}

	if !m.formMenu.Empty() {
		idx := len(m.formInputs)
		label := m.formMenuLabel()
		st := styleMuted()
		if m.formFocus == idx {
			st = lipgloss.NewStyle().Foreground(colorSurfaceFg).Bold(true)
		}
		lines = append(lines, st.Render(label))
		pick := pillStyle().Render(m.formMenu.Label + " " + glyphDropdownHint())
		if m.formFocus == idx {
			pick = pillStyle().
				Foreground(colorSelectedFg).
				Background(colorSelectedBg).
				Bold(true).
				Render(m.formMenu.Label + " " + glyphDropdownHint())
		}
		lines = append(lines, pick+"  "+styleMuted().Render("←/→ to change"))
		lines = append(lines, "")
	}

	if m.formErr != "" {
		lines = append(lines, errorTextStyle().Width(bodyW).Render(m.formErr))
		lines = append(lines, "")
	}
	lines = append(lines, styleMuted().Width(bodyW).Render("tab: next field   enter: submit   esc/ctrl+g: cancel"))

	return renderModalBox(m.width, title, strings.Join(lines, "\n"))
}

func (m appModel) renderPasswordModal() string {
	bodyW := modalBodyWidth(m.width)
	var lines []string
	lines = append(lines, "Set a new password for "+m.modalLabel+".")
	lines = append(lines, "")
	lines = append(lines, renderFieldLine(bodyW, m.formInputs[0].View()))
	lines = append(lines, "")
	if m.formErr != "" {
		lines = append(lines, errorTextStyle().Width(bodyW).Render(m.formErr))
		lines = append(lines, "")
	}
	lines = append(lines, styleMuted().Width(bodyW).Render("enter: save   esc/ctrl+g: cancel"))
	return renderModalBox(m.width, "Password: "+m.modalLabel, strings.Join(lines, "\n"))
}

// renderCutoffsModal draws the weekly schedule editor: one HH:MM input
// per weekday. Blank means no cutoff that day.
func (m appModel) renderCutoffsModal() string {
	bodyW := modalBodyWidth(m.width)
	var lines []string
	lines = append(lines, "Weekly pickup cutoffs. Blank clears a day.")
	lines = append(lines, "")

	dayLabels := [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	for i := range m.weekInputs {
		day := dayLabels[i]
		st := styleMuted()
		if m.weekFocus == i {
			st = lipgloss.NewStyle().Foreground(colorSurfaceFg).Bold(true)
		}
		lines = append(lines, st.Render(day)+"  "+renderFieldLine(12, m.weekInputs[i].View()))
	}

	lines = append(lines, "")
	if m.formErr != "" {
		lines = append(lines, errorTextStyle().Width(bodyW).Render(m.formErr))
		lines = append(lines, "")
	}
	lines = append(lines, styleMuted().Width(bodyW).Render("tab: next day   enter: save week   esc/ctrl+g: cancel"))
	return renderModalBox(m.width, "Cutoffs: "+m.modalLabel, strings.Join(lines, "\n"))
}
