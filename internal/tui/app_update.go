package tui

import (
	"context"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"livadm/internal/dashboard"
	"livadm/internal/model"
	"livadm/internal/mutate"
	"livadm/internal/reconcile"
)

func (m appModel) Init() tea.Cmd {
	// The first fetch carries the current snapshotSeq; any refresh bumps
	// it and orphans this one if it is still in flight.
	client := m.client
	seq := m.snapshotSeq
	return func() tea.Msg {
		snap, err := client.FetchDashboard(context.Background())
		return snapshotMsg{seq: seq, snap: snap, err: err}
	}
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.seenWindowSize {
			m.seenWindowSize = true
		}
		lines, _ := m.layout()
		if m.scroll > m.maxScroll(len(lines)) {
			m.scroll = m.maxScroll(len(lines))
		}
		return m, nil

	case snapshotMsg:
		cmd := (&m).handleSnapshot(msg)
		return m, cmd

	case submitDoneMsg:
		cmd := (&m).handleSubmitDone(msg)
		return m, cmd

	case submitRestoreMsg:
		(&m).handleSubmitRestore(msg)
		return m, nil

	case toastExpireMsg:
		(&m).dismissToast(msg.seq)
		return m, nil

	case tea.MouseMsg:
		cmd := (&m).handleMouse(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.help {
			(&m).handleHelpKeys(msg)
			return m, nil
		}
		if m.modal != modalNone {
			return (&m).handleModalKeys(msg)
		}
		if m.dd != nil {
			cmd := (&m).handleDropdownKeys(msg)
			return m, cmd
		}
		if m.filter.Focused() {
			cmd := (&m).handleFilterKeys(msg)
			return m, cmd
		}
		return (&m).handleGlobalKeys(msg)
	}
	return m, nil
}

func (m *appModel) handleHelpKeys(msg tea.KeyMsg) {
	switch msg.String() {
	case "esc", "q", "?", "ctrl+g":
		m.help = false
	case "tab", "right", "l":
		m.helpTopic++
	case "shift+tab", "left", "h":
		m.helpTopic--
	}
}

func (m *appModel) handleModalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.modal == modalConfirmDelete {
		switch msg.String() {
		case "esc", "ctrl+g":
			m.closeModal()
		case "tab", "shift+tab", "left", "right":
			if m.confirmFocus == confirmFocusConfirm {
				m.confirmFocus = confirmFocusCancel
			} else {
				m.confirmFocus = confirmFocusConfirm
			}
		case "enter":
			if m.confirmFocus == confirmFocusCancel {
				m.closeModal()
				return *m, nil
			}
			sub, ok := m.buildFormSubmission()
			m.closeModal()
			if !ok {
				return *m, nil
			}
			return *m, m.startSubmission(sub)
		}
		return *m, nil
	}

	if m.modal == modalCutoffs {
		switch msg.String() {
		case "esc", "ctrl+g":
			m.closeModal()
			return *m, nil
		case "tab", "down":
			m.focusWeekInput(m.weekFocus + 1)
			return *m, nil
		case "shift+tab", "up":
			m.focusWeekInput(m.weekFocus - 1)
			return *m, nil
		case "enter":
			sub, ok := m.buildFormSubmission()
			if !ok {
				return *m, nil
			}
			return *m, m.startSubmission(sub)
		}
		var cmd tea.Cmd
		m.weekInputs[m.weekFocus], cmd = m.weekInputs[m.weekFocus].Update(msg)
		m.formErr = ""
		return *m, cmd
	}

	// Create and password modals.
	switch msg.String() {
	case "esc", "ctrl+g":
		m.closeModal()
		return *m, nil
	case "tab", "down":
		m.setFormFocus(m.formFocus + 1)
		return *m, nil
	case "shift+tab", "up":
		m.setFormFocus(m.formFocus - 1)
		return *m, nil
	case "left", "right":
		if m.formFocus == len(m.formInputs) && !m.formMenu.Empty() {
			delta := 1
			if msg.String() == "left" {
				delta = -1
			}
			m.cycleFormMenu(delta)
			return *m, nil
		}
	case "enter":
		sub, ok := m.buildFormSubmission()
		if !ok {
			return *m, nil
		}
		return *m, m.startSubmission(sub)
	}
	if m.formFocus < len(m.formInputs) {
		var cmd tea.Cmd
		m.formInputs[m.formFocus], cmd = m.formInputs[m.formFocus].Update(msg)
		m.formErr = ""
		return *m, cmd
	}
	return *m, nil
}

func (m *appModel) focusWeekInput(idx int) {
	for idx < 0 {
		idx += len(m.weekInputs)
	}
	idx %= len(m.weekInputs)
	m.weekFocus = idx
	for i := range m.weekInputs {
		if i == idx {
			m.weekInputs[i].Focus()
		} else {
			m.weekInputs[i].Blur()
		}
	}
}

func (m *appModel) handleDropdownKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "ctrl+g", "q":
		m.dd = nil
	case "up", "k":
		m.dd.move(-1)
	case "down", "j":
		m.dd.move(1)
	case "enter":
		return m.dropdownSelect()
	}
	// Everything else is consumed so keystrokes can't leak into the
	// dashboard underneath.
	return nil
}

// dropdownSelect routes the chosen entry by the dropdown's id. GPS
// menus submit immediately when the value changed; assign menus only
// mirror the selection, submitting stays a separate step.
func (m *appModel) dropdownSelect() tea.Cmd {
	d := m.dd
	if d == nil {
		return nil
	}
	e := d.selected()
	m.dd = nil

	switch {
	case strings.HasPrefix(d.id, "gps:"):
		uid, err := strconv.Atoi(strings.TrimPrefix(d.id, "gps:"))
		if err != nil || e.Value == d.current {
			return nil
		}
		return m.startSubmission(mutate.GPSMode(uid, model.GPSMode(e.Value)))

	case strings.HasPrefix(d.id, "assign:"):
		pid, err := strconv.Atoi(strings.TrimPrefix(d.id, "assign:"))
		if err != nil || m.doc == nil {
			return nil
		}
		if r, ok := m.doc.FindPharmacy(pid); ok {
			r.AssignMenu.Select(e.Value)
		}
	}
	return nil
}

func (m *appModel) handleFilterKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "ctrl+g":
		m.filter.SetValue("")
		m.filter.Blur()
		m.filtering = false
		m.clampCursors()
		return nil
	case "enter":
		m.filter.Blur()
		m.clampCursors()
		return nil
	}
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.clampCursors()
	return cmd
}

func (m *appModel) handleGlobalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return *m, tea.Quit

	case "?":
		m.help = true
		m.helpTopic = 0

	case "tab":
		m.nextSection(1)
		m.scrollCursorIntoView()
	case "shift+tab":
		m.nextSection(-1)
		m.scrollCursorIntoView()

	case "j", "down":
		m.moveRow(1)
		m.scrollCursorIntoView()
	case "k", "up":
		m.moveRow(-1)
		m.scrollCursorIntoView()

	case "ctrl+d", "pgdown":
		m.scrollBy(m.contentHeight() / 2)
	case "ctrl+u", "pgup":
		m.scrollBy(-m.contentHeight() / 2)

	case " ":
		m.toggleCollapsed(m.section)
		m.scrollCursorIntoView()

	case "/":
		m.filtering = true
		m.filter.Focus()

	case "esc":
		switch {
		case m.filtering:
			m.filter.SetValue("")
			m.filtering = false
			m.clampCursors()
		default:
			m.dismissNewestToast()
		}

	case "r":
		m.loading = m.doc == nil
		return *m, m.fetchSnapshot()

	case "t":
		next := otherThemeProfile(themeProfile())
		setThemeProfile(next)
		if m.prefs != nil {
			_ = m.prefs.SetTheme(context.Background(), string(next))
		}
		return *m, m.notifyInfo("Theme: " + string(next))

	case "n":
		switch m.section {
		case sectionUsers:
			m.openNewUserModal()
		case sectionRegions:
			m.openNewRegionModal()
		case sectionPharmacies:
			if !m.openNewPharmacyModal() {
				return *m, m.notifyError("Create a region first")
			}
		}

	case "a":
		return *m, m.toggleSelectedRow()

	case "x":
		m.openDeleteForSelected()

	case "p":
		if u := m.selectedUser(); u != nil {
			m.openPasswordModal(u)
		}

	case "g":
		if u := m.selectedUser(); u != nil {
			m.openGPSDropdown(u)
		}

	case "s":
		if r := m.selectedPharmacy(); r != nil {
			return *m, m.openAssignDropdown(r)
		}

	case "A":
		if r := m.selectedPharmacy(); r != nil && !r.AssignMenu.Empty() {
			sub, ok := mutate.AssignSelected(r)
			if ok {
				return *m, m.startSubmission(sub)
			}
		}

	case "u":
		if r := m.selectedPharmacy(); r != nil && m.chipIdx >= 0 && m.chipIdx < len(r.Chips) {
			return *m, m.startSubmission(mutate.Unassign(r.Pharmacy.ID, r.Chips[m.chipIdx]))
		}

	case "c":
		if r := m.selectedPharmacy(); r != nil {
			m.openCutoffsModal(r)
		}

	case "left", "h":
		m.horizontalMove(-1)
	case "right", "l":
		m.horizontalMove(1)

	case "enter":
		return *m, m.activateSelected()
	}
	return *m, nil
}

// toggleSelectedRow fires the active/inactive toggle for whichever row
// kind the cursor is on.
func (m *appModel) toggleSelectedRow() tea.Cmd {
	switch m.section {
	case sectionUsers:
		if u := m.selectedUser(); u != nil {
			return m.startSubmission(mutate.ToggleUser(u.User))
		}
	case sectionRegions:
		if r := m.selectedRegion(); r != nil {
			return m.startSubmission(mutate.ToggleRegion(r.Region))
		}
	case sectionPharmacies:
		if r := m.selectedPharmacy(); r != nil {
			return m.startSubmission(mutate.TogglePharmacy(r.Pharmacy))
		}
	}
	return nil
}

func (m *appModel) openDeleteForSelected() {
	switch m.section {
	case sectionUsers:
		if u := m.selectedUser(); u != nil {
			m.openConfirmDelete(reconcile.KindUserDelete, u.User.ID, "user "+u.User.Login)
		}
	case sectionRegions:
		if r := m.selectedRegion(); r != nil {
			m.openConfirmDelete(reconcile.KindRegionDelete, r.Region.ID, "region "+r.Region.Name)
		}
	case sectionPharmacies:
		if r := m.selectedPharmacy(); r != nil {
			m.openConfirmDelete(reconcile.KindPharmacyDelete, r.Pharmacy.ID, "pharmacy "+r.Pharmacy.Name)
		}
	}
}

// horizontalMove is left/right: chip cursor on pharmacy rows, value
// adjustment on settings fields.
func (m *appModel) horizontalMove(delta int) {
	switch m.section {
	case sectionPharmacies:
		r := m.selectedPharmacy()
		if r == nil || len(r.Chips) == 0 {
			return
		}
		m.chipIdx += delta
		if m.chipIdx < -1 {
			m.chipIdx = -1
		}
		if m.chipIdx >= len(r.Chips) {
			m.chipIdx = len(r.Chips) - 1
		}
	case sectionSettings:
		m.adjustSettingsField(delta)
	}
}

func (m *appModel) adjustSettingsField(delta int) {
	if m.selectedRow() == settingsRowSave {
		return
	}
	s := &m.settingsDraft
	switch m.selectedRow() {
	case settingsFieldPickups:
		s.AllowedPickupsPerDay += delta
		if s.AllowedPickupsPerDay < 1 {
			s.AllowedPickupsPerDay = 1
		}
	case settingsFieldRequireGPS:
		s.RequirePickupLocation = !s.RequirePickupLocation
	case settingsFieldHistory:
		s.ShowHistoryToDrivers = !s.ShowHistoryToDrivers
	case settingsFieldMinPhotos:
		s.MinRequiredPhotos += delta
		if s.MinRequiredPhotos < 0 {
			s.MinRequiredPhotos = 0
		}
	case settingsFieldPhotoSource:
		if s.PhotoSourceMode == "camera_only" {
			s.PhotoSourceMode = "camera_or_upload"
		} else {
			s.PhotoSourceMode = "camera_only"
		}
	}
	m.settingsDirty = true
}

// activateSelected is enter's context default: toggle rows, flip or
// save settings.
func (m *appModel) activateSelected() tea.Cmd {
	switch m.section {
	case sectionUsers, sectionRegions, sectionPharmacies:
		return m.toggleSelectedRow()
	case sectionSettings:
		if m.selectedRow() == settingsRowSave {
			return m.startSubmission(mutate.Settings(m.settingsDraft))
		}
		m.adjustSettingsField(1)
	}
	return nil
}

// openGPSDropdown anchors the GPS menu at the row's GPS cell.
func (m *appModel) openGPSDropdown(u *dashboard.UserRow) {
	menu := dashboard.Menu{}
	menu.Add(dashboard.Entry{Value: string(model.GPSInherit), Label: "inherit"})
	menu.Add(dashboard.Entry{Value: string(model.GPSRequire), Label: "require"})
	menu.Add(dashboard.Entry{Value: string(model.GPSNo), Label: "no"})
	menu.Select(string(u.User.GPSMode))

	x, y, ok := m.anchorFor(sectionUsers, lineRow, actGPS)
	if !ok {
		return
	}
	m.dd = m.openDropdown("gps:"+strconv.Itoa(u.User.ID), menu, x, y)
}

// openAssignDropdown anchors the assign menu at the chips line trigger.
func (m *appModel) openAssignDropdown(r *dashboard.PharmacyRow) tea.Cmd {
	if r.AssignMenu.Empty() {
		return m.notifyInfo("No assignable users")
	}
	x, y, ok := m.anchorFor(sectionPharmacies, lineChips, actAssign)
	if !ok {
		return nil
	}
	m.dd = m.openDropdown("assign:"+strconv.Itoa(r.Pharmacy.ID), r.AssignMenu, x, y)
	return nil
}

// anchorFor finds the screen cell of a span on the selected row,
// scrolling it into view first if needed.
func (m *appModel) anchorFor(id sectionID, kind lineKind, action string) (x, y int, ok bool) {
	_, refs := m.layout()
	idx, found := rowLineIndex(refs, id, m.selectedRow(), kind)
	if !found {
		return 0, 0, false
	}
	if _, vis := m.screenYOf(idx); !vis {
		m.ensureRowVisible(refs)
	}
	sy, vis := m.screenYOf(idx)
	if !vis {
		return 0, 0, false
	}
	sp, found := refs[idx].spanFor(action)
	if !found {
		return 0, 0, false
	}
	return sp.x0, sy, true
}

func (m *appModel) scrollBy(delta int) {
	lines, _ := m.layout()
	m.scroll += delta
	if ms := m.maxScroll(len(lines)); m.scroll > ms {
		m.scroll = ms
	}
	if m.scroll < 0 {
		m.scroll = 0
	}
}

func (m *appModel) scrollCursorIntoView() {
	_, refs := m.layout()
	m.ensureRowVisible(refs)
}

func (m *appModel) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.scrollBy(-3)
		return nil
	case tea.MouseButtonWheelDown:
		m.scrollBy(3)
		return nil
	}
	if msg.Button != tea.MouseButtonLeft || msg.Action != tea.MouseActionPress {
		return nil
	}

	// Toasts sit on top of everything, so they get the click first.
	if seq, ok := m.toastAt(msg.X, msg.Y); ok {
		m.dismissToast(seq)
		return nil
	}

	if m.dd != nil {
		if idx, ok := m.dd.entryAt(msg.X, msg.Y); ok {
			m.dd.cursor = idx
			return m.dropdownSelect()
		}
		// Click elsewhere closes the menu and does nothing more.
		m.dd = nil
		return nil
	}

	if m.help {
		m.help = false
		return nil
	}
	if m.modal != modalNone {
		// Modals are keyboard-driven; clicks only land outside them.
		return nil
	}

	lineIdx, ok := m.contentLineAt(msg.Y)
	if !ok {
		return nil
	}
	_, refs := m.layout()
	if lineIdx >= len(refs) {
		return nil
	}
	ref := refs[lineIdx]

	switch ref.kind {
	case lineSectionHeader:
		m.toggleCollapsed(ref.section)

	case lineRow:
		m.section = ref.section
		m.rowIdx[ref.section] = ref.row
		m.chipIdx = -1
		if sp, hit := ref.spanAt(msg.X); hit && sp.action == actGPS {
			if u := m.selectedUser(); u != nil {
				m.openGPSDropdown(u)
			}
		}

	case lineChips:
		m.section = ref.section
		m.rowIdx[ref.section] = ref.row
		r := m.selectedPharmacy()
		if r == nil {
			return nil
		}
		sp, hit := ref.spanAt(msg.X)
		if !hit {
			return nil
		}
		switch {
		case sp.action == actAssign:
			return m.openAssignDropdown(r)
		case strings.HasPrefix(sp.action, actChip):
			uid, err := strconv.Atoi(strings.TrimPrefix(sp.action, actChip))
			if err != nil {
				return nil
			}
			for ci, chip := range r.Chips {
				if chip.UserID == uid {
					m.chipIdx = ci
					return m.startSubmission(mutate.Unassign(r.Pharmacy.ID, chip))
				}
			}
		}

	case lineSettingsField:
		m.section = sectionSettings
		m.rowIdx[sectionSettings] = ref.row

	case lineSettingsSave:
		m.section = sectionSettings
		m.rowIdx[sectionSettings] = settingsRowSave
		if sp, hit := ref.spanAt(msg.X); hit && sp.action == actSetSave {
			return m.startSubmission(mutate.Settings(m.settingsDraft))
		}
	}
	return nil
}
