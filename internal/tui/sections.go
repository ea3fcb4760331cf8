package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"

	"livadm/internal/dashboard"
	"livadm/internal/model"
	"livadm/internal/reconcile"
)

// Settings section rows: the five editable fields plus the save button.
const (
	settingsFieldPickups = iota
	settingsFieldRequireGPS
	settingsFieldHistory
	settingsFieldMinPhotos
	settingsFieldPhotoSource
	settingsRowSave
	settingsRowCount
)

func errorTextStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorError)
}

func activePillStyle(active bool) lipgloss.Style {
	if active {
		return lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	}
	return styleMuted()
}

func pillStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(colorSurfaceFg).
		Background(colorControlBg)
}

func triggerStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(colorAccentFg).
		Background(colorAccent)
}

// busyFor reports whether any of the given action tags is in flight for
// the row id.
func (m appModel) busyFor(id int, tags ...string) bool {
	for _, tag := range tags {
		if m.busy[tag+":"+strconv.Itoa(id)] {
			return true
		}
	}
	return false
}

func (m appModel) renderSectionHeader(id sectionID) string {
	twisty := glyphTwistyExpanded()
	if m.sectionCollapsed(id) {
		twisty = glyphTwistyCollapsed()
	}
	title := lipgloss.NewStyle().Bold(true).Render(id.title())

	count := ""
	if m.doc != nil {
		switch id {
		case sectionUsers:
			count = sectionCountLabel(len(m.visibleUsers()), len(m.doc.Users))
		case sectionRegions:
			count = sectionCountLabel(len(m.visibleRegions()), len(m.doc.Regions))
		case sectionPharmacies:
			count = sectionCountLabel(len(m.visiblePharmacies()), len(m.doc.Pharmacies))
		}
	}
	s := twisty + " " + title
	if count != "" {
		s += "  " + styleMuted().Render(count)
	}
	return s
}

func sectionCountLabel(visible, total int) string {
	if visible == total {
		return "(" + strconv.Itoa(total) + ")"
	}
	return "(" + strconv.Itoa(visible) + "/" + strconv.Itoa(total) + ")"
}

func (m appModel) renderStatsLine() string {
	c := m.doc.Counts
	pill := func(label string, n int) string {
		return pillStyle().Render(label + " " + strconv.Itoa(n))
	}
	parts := []string{
		pill("Users", c.Users),
		pill("Regions", c.Regions),
		pill("Pharmacies", c.Pharmacies),
		pill("Pickups", c.Pickups),
		pill("Assignments", c.AssignmentLinks),
		pill("Photos", c.PickupPhotos),
	}
	return sectionIndent + strings.Join(parts, " ")
}

// colWidths sizes each column to its widest cell, header included.
func colWidths(headers []string, rows [][]string) []int {
	w := make([]int, len(headers))
	for i, h := range headers {
		w[i] = len(h)
	}
	for _, cells := range rows {
		for i, c := range cells {
			if i < len(w) && len(c) > w[i] {
				w[i] = len(c)
			}
		}
	}
	return w
}

func padCell(s string, w int) string {
	if d := w - xansi.StringWidth(s); d > 0 {
		return s + strings.Repeat(" ", d)
	}
	return s
}

func (m appModel) renderColumnHead(headers []string, widths []int) string {
	cells := make([]string, len(headers))
	for i, h := range headers {
		cells[i] = padCell(strings.ToUpper(h), widths[i])
	}
	return sectionIndent + styleMuted().Render(strings.Join(cells, "  "))
}

func (m appModel) renderUserSection(push func(string, lineRef)) {
	rows := m.visibleUsers()
	if len(rows) == 0 {
		push(sectionIndent+styleMuted().Render("No users."), lineRef{kind: lineNotice, section: sectionUsers})
		return
	}

	headers := []string{"ID", "Login", "Role", "Status", "GPS"}
	plain := make([][]string, len(rows))
	for i, r := range rows {
		plain[i] = []string{
			strconv.Itoa(r.User.ID),
			r.User.Login,
			string(r.User.Role),
			statusText(r.User.IsActive),
			string(r.User.GPSMode),
		}
	}
	widths := colWidths(headers, plain)
	push(m.renderColumnHead(headers, widths), lineRef{kind: lineColumnHead, section: sectionUsers})

	selected := m.section == sectionUsers
	cursor := m.selectedRow()
	for i, r := range rows {
		sel := selected && i == cursor
		busy := m.busyFor(r.User.ID,
			reconcile.KindUserToggle.Tag(),
			reconcile.KindUserDelete.Tag(),
			reconcile.KindUserPassword.Tag(),
			reconcile.KindUserGPSMode.Tag(),
		)

		base := cellStyle(sel)
		status := activePillStyle(r.User.IsActive)
		if sel {
			status = status.Background(colorSelectedBg)
		}
		statusCell := status.Render(padCell(statusText(r.User.IsActive), widths[3]))
		if busy {
			statusCell = base.Render(padCell("…", widths[3]))
		}

		gpsX := len(sectionIndent)
		for c := 0; c < 4; c++ {
			gpsX += widths[c] + 2
		}
		gpsCell := base.Render(padCell(string(r.User.GPSMode), widths[4]))

		line := sectionIndent +
			base.Render(padCell(plain[i][0], widths[0])) + base.Render("  ") +
			base.Render(padCell(plain[i][1], widths[1])) + base.Render("  ") +
			base.Render(padCell(plain[i][2], widths[2])) + base.Render("  ") +
			statusCell + base.Render("  ") +
			gpsCell

		push(line, lineRef{
			kind:    lineRow,
			section: sectionUsers,
			row:     i,
			spans:   []span{{gpsX, gpsX + widths[4], actGPS}},
		})
	}
}

func (m appModel) renderRegionSection(push func(string, lineRef)) {
	rows := m.visibleRegions()
	if len(rows) == 0 {
		push(sectionIndent+styleMuted().Render("No regions."), lineRef{kind: lineNotice, section: sectionRegions})
		return
	}

	headers := []string{"ID", "Name", "Status"}
	plain := make([][]string, len(rows))
	for i, r := range rows {
		plain[i] = []string{
			strconv.Itoa(r.Region.ID),
			r.Region.Name,
			statusText(r.Region.IsActive),
		}
	}
	widths := colWidths(headers, plain)
	push(m.renderColumnHead(headers, widths), lineRef{kind: lineColumnHead, section: sectionRegions})

	selected := m.section == sectionRegions
	cursor := m.selectedRow()
	for i, r := range rows {
		sel := selected && i == cursor
		busy := m.busyFor(r.Region.ID,
			reconcile.KindRegionToggle.Tag(),
			reconcile.KindRegionDelete.Tag(),
		)

		base := cellStyle(sel)
		status := activePillStyle(r.Region.IsActive)
		if sel {
			status = status.Background(colorSelectedBg)
		}
		statusCell := status.Render(padCell(statusText(r.Region.IsActive), widths[2]))
		if busy {
			statusCell = base.Render(padCell("…", widths[2]))
		}

		line := sectionIndent +
			base.Render(padCell(plain[i][0], widths[0])) + base.Render("  ") +
			base.Render(padCell(plain[i][1], widths[1])) + base.Render("  ") +
			statusCell

		push(line, lineRef{kind: lineRow, section: sectionRegions, row: i})
	}
}

func (m appModel) renderPharmacySection(push func(string, lineRef)) {
	rows := m.visiblePharmacies()
	if len(rows) == 0 {
		push(sectionIndent+styleMuted().Render("No pharmacies."), lineRef{kind: lineNotice, section: sectionPharmacies})
		return
	}

	headers := []string{"ID", "Name", "Region", "Address", "Status", "Cutoff"}
	plain := make([][]string, len(rows))
	for i, r := range rows {
		cutoff := r.DefaultCutoffLabel
		if cutoff == "" {
			cutoff = model.NoCutoff
		}
		plain[i] = []string{
			strconv.Itoa(r.Pharmacy.ID),
			r.Pharmacy.Name,
			r.Pharmacy.RegionName,
			r.Pharmacy.Address,
			statusText(r.Pharmacy.IsActive),
			cutoff,
		}
	}
	widths := colWidths(headers, plain)
	push(m.renderColumnHead(headers, widths), lineRef{kind: lineColumnHead, section: sectionPharmacies})

	selected := m.section == sectionPharmacies
	cursor := m.selectedRow()
	for i, r := range rows {
		sel := selected && i == cursor
		busy := m.busyFor(r.Pharmacy.ID,
			reconcile.KindPharmacyToggle.Tag(),
			reconcile.KindPharmacyDelete.Tag(),
			reconcile.KindCutoffsWeek.Tag(),
			reconcile.KindCutoffSet.Tag(),
		)

		base := cellStyle(sel)
		status := activePillStyle(r.Pharmacy.IsActive)
		if sel {
			status = status.Background(colorSelectedBg)
		}
		statusCell := status.Render(padCell(statusText(r.Pharmacy.IsActive), widths[4]))
		if busy {
			statusCell = base.Render(padCell("…", widths[4]))
		}

		cutoffStyle := base
		if plain[i][5] == model.NoCutoff {
			cutoffStyle = styleMuted()
			if sel {
				cutoffStyle = cutoffStyle.Background(colorSelectedBg)
			}
		}

		line := sectionIndent +
			base.Render(padCell(plain[i][0], widths[0])) + base.Render("  ") +
			base.Render(padCell(plain[i][1], widths[1])) + base.Render("  ") +
			base.Render(padCell(plain[i][2], widths[2])) + base.Render("  ") +
			base.Render(padCell(plain[i][3], widths[3])) + base.Render("  ") +
			statusCell + base.Render("  ") +
			cutoffStyle.Render(padCell(plain[i][5], widths[5]))

		push(line, lineRef{kind: lineRow, section: sectionPharmacies, row: i})
		push(m.renderChipLine(r, i, sel))
	}
}

// renderChipLine draws a pharmacy's assignment chips and the assign
// trigger, recording a span for each so clicks and keyboard anchors
// land on the right control.
func (m appModel) renderChipLine(r *dashboard.PharmacyRow, row int, sel bool) (string, lineRef) {
	indent := sectionIndent + "   "
	x := xansi.StringWidth(indent)

	var (
		b     strings.Builder
		spans []span
	)
	b.WriteString(indent)

	for ci, chip := range r.Chips {
		st := pillStyle()
		if sel && m.chipIdx == ci {
			st = st.Foreground(colorSelectedFg).Background(colorSelectedBg).Bold(true)
		}
		seg := st.Render(chip.Label + " " + glyphChipClose())
		if m.busy[reconcile.KindUnassignUser.Tag()+":"+strconv.Itoa(r.Pharmacy.ID)+":"+strconv.Itoa(chip.UserID)] {
			seg = st.Render(chip.Label + " …")
		}
		w := xansi.StringWidth(seg)
		spans = append(spans, span{x, x + w, actChip + strconv.Itoa(chip.UserID)})
		b.WriteString(seg)
		b.WriteString(" ")
		x += w + 1
	}
	if len(r.Chips) == 0 {
		seg := styleMuted().Render("no drivers assigned")
		b.WriteString(seg)
		b.WriteString(" ")
		x += xansi.StringWidth(seg) + 1
	}

	switch {
	case m.busy[reconcile.KindAssignUser.Tag()+":"+strconv.Itoa(r.Pharmacy.ID)]:
		seg := pillStyle().Render("assigning…")
		b.WriteString(seg)
		spans = append(spans, span{x, x + xansi.StringWidth(seg), actAssign})
	case r.AssignMenu.Empty():
		b.WriteString(styleMuted().Render("no assignable users"))
	default:
		label := "+ " + r.AssignMenu.Label + " " + glyphDropdownHint()
		seg := triggerStyle().Render(label)
		spans = append(spans, span{x, x + xansi.StringWidth(seg), actAssign})
		b.WriteString(seg)
	}

	return b.String(), lineRef{kind: lineChips, section: sectionPharmacies, row: row, spans: spans}
}

func (m appModel) renderSettingsSection(push func(string, lineRef)) {
	s := m.settingsDraft
	fields := []struct {
		label string
		value string
	}{
		{"Allowed pickups per day", strconv.Itoa(s.AllowedPickupsPerDay)},
		{"Require pickup location", boolText(s.RequirePickupLocation)},
		{"Show history to drivers", boolText(s.ShowHistoryToDrivers)},
		{"Min required photos", strconv.Itoa(s.MinRequiredPhotos)},
		{"Photo source", s.PhotoSourceMode},
	}

	labelW := 0
	for _, f := range fields {
		if len(f.label) > labelW {
			labelW = len(f.label)
		}
	}

	selected := m.section == sectionSettings
	cursor := m.selectedRow()
	for i, f := range fields {
		sel := selected && i == cursor
		base := cellStyle(sel)
		val := lipgloss.NewStyle().Foreground(colorSurfaceFg).Background(colorInputBg).Padding(0, 1)
		if sel {
			val = val.Background(colorSelectedBg).Bold(true)
		}
		line := sectionIndent +
			base.Render(padCell(f.label, labelW)) + base.Render("  ") +
			val.Render(f.value)
		push(line, lineRef{
			kind:    lineSettingsField,
			section: sectionSettings,
			row:     i,
			spans:   []span{{0, m.contentWidth(), actSetField}},
		})
	}

	saveSel := selected && cursor == settingsRowSave
	btn := pillStyle()
	if saveSel {
		btn = btn.Foreground(colorSelectedFg).Background(colorSelectedBg).Bold(true)
	}
	label := "Save settings"
	if m.busy[settingsSaveKey] {
		label = "Saving…"
	} else if v := m.savedLabel[settingsSaveKey]; v != "" {
		label = v
	}
	seg := btn.Render(label)
	x0 := len(sectionIndent)
	line := sectionIndent + seg
	if m.settingsDirty && !m.busy[settingsSaveKey] {
		line += " " + styleMuted().Render("unsaved changes")
	}
	push(line, lineRef{
		kind:    lineSettingsSave,
		section: sectionSettings,
		row:     settingsRowSave,
		spans:   []span{{x0, x0 + xansi.StringWidth(seg), actSetSave}},
	})
}

func statusText(active bool) string {
	if active {
		return "active"
	}
	return "inactive"
}

func boolText(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func cellStyle(sel bool) lipgloss.Style {
	st := lipgloss.NewStyle().Foreground(colorSurfaceFg)
	if sel {
		st = st.Foreground(colorSelectedFg).Background(colorSelectedBg)
	}
	return st
}
