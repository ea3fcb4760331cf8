package tui

import (
	"errors"
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"

	"livadm/internal/dashboard"
	"livadm/internal/model"
	"livadm/internal/mutate"
	"livadm/internal/reconcile"
)

func newFormInput(placeholder string, limit, width int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Width = width
	return in
}

func (m *appModel) openNewUserModal() {
	m.modal = modalNewUser
	m.formInputs = []textinput.Model{
		newFormInput("login", 80, 32),
		newFormInput("password", 128, 32),
	}
	m.formLabels = []string{"Login", "Password"}
	m.formInputs[1].EchoMode = textinput.EchoPassword
	m.formInputs[1].EchoCharacter = '•'

	m.formMenu = dashboard.Menu{}
	m.formMenu.Add(dashboard.Entry{Value: string(model.RoleDriver), Label: string(model.RoleDriver)})
	m.formMenu.Add(dashboard.Entry{Value: string(model.RoleAdmin), Label: string(model.RoleAdmin)})

	m.formErr = ""
	m.setFormFocus(0)
}

func (m *appModel) openNewRegionModal() {
	m.modal = modalNewRegion
	m.formInputs = []textinput.Model{newFormInput("name", 120, 32)}
	m.formLabels = []string{"Name"}
	m.formMenu = dashboard.Menu{}
	m.formErr = ""
	m.setFormFocus(0)
}

// openNewPharmacyModal needs at least one region to point the new
// pharmacy at; without any it refuses with a toast instead of offering
// a dead picker.
func (m *appModel) openNewPharmacyModal() bool {
	if m.doc == nil || len(m.doc.Regions) == 0 {
		return false
	}
	m.modal = modalNewPharmacy
	m.formInputs = []textinput.Model{
		newFormInput("name", 120, 32),
		newFormInput("address", 200, 32),
		newFormInput("HH:MM, optional", 5, 8),
	}
	m.formLabels = []string{"Name", "Address", "Default cutoff Mon-Fri"}

	m.formMenu = dashboard.Menu{}
	for _, r := range m.doc.Regions {
		m.formMenu.Add(dashboard.Entry{
			Value: strconv.Itoa(r.Region.ID),
			Label: r.Region.Name,
		})
	}

	m.formErr = ""
	m.setFormFocus(0)
	return true
}

func (m *appModel) openPasswordModal(u *dashboard.UserRow) {
	m.modal = modalPassword
	m.modalID = u.User.ID
	m.modalLabel = u.User.Login
	m.formInputs = []textinput.Model{newFormInput("new password", 128, 32)}
	m.formLabels = []string{"New password"}
	m.formInputs[0].EchoMode = textinput.EchoPassword
	m.formInputs[0].EchoCharacter = '•'
	m.formMenu = dashboard.Menu{}
	m.formErr = ""
	m.setFormFocus(0)
}

func (m *appModel) openCutoffsModal(r *dashboard.PharmacyRow) {
	m.modal = modalCutoffs
	m.modalID = r.Pharmacy.ID
	m.modalLabel = r.Pharmacy.Name
	for i, key := range model.DayKeys {
		in := newFormInput("HH:MM", 5, 8)
		in.SetValue(r.Pharmacy.Cutoffs.Get(key))
		m.weekInputs[i] = in
	}
	m.weekFocus = 0
	m.weekInputs[0].Focus()
	m.formErr = ""
}

func (m *appModel) openConfirmDelete(kind reconcile.Kind, id int, label string) {
	m.modal = modalConfirmDelete
	m.confirmKind = kind
	m.modalID = id
	m.modalLabel = label
	// Default to the safe side.
	m.confirmFocus = confirmFocusCancel
}

func (m *appModel) closeModal() {
	m.modal = modalNone
	m.modalID = 0
	m.modalLabel = ""
	m.confirmKind = reconcile.KindNone
	m.formInputs = nil
	m.formLabels = nil
	m.formFocus = 0
	m.formMenu = dashboard.Menu{}
	m.formErr = ""
	for i := range m.weekInputs {
		m.weekInputs[i].Blur()
	}
}

// clearFormInputs wipes field values after a successful create, the
// same way the page clears its form without closing it.
func (m *appModel) clearFormInputs() {
	for i := range m.formInputs {
		m.formInputs[i].SetValue("")
	}
	m.setFormFocus(0)
}

func (m appModel) formMenuLabel() string {
	if m.modal == modalNewPharmacy {
		return "Region"
	}
	return "Role"
}

// formFieldCount includes the menu picker row when present.
func (m appModel) formFieldCount() int {
	n := len(m.formInputs)
	if !m.formMenu.Empty() {
		n++
	}
	return n
}

func (m *appModel) setFormFocus(idx int) {
	n := m.formFieldCount()
	if n == 0 {
		return
	}
	for idx < 0 {
		idx += n
	}
	idx %= n
	m.formFocus = idx
	for i := range m.formInputs {
		if i == idx {
			m.formInputs[i].Focus()
		} else {
			m.formInputs[i].Blur()
		}
	}
}

// cycleFormMenu steps the picker's selection. The menu mirrors
// selection state itself; this only decides which entry comes next.
func (m *appModel) cycleFormMenu(delta int) {
	if m.formMenu.Empty() {
		return
	}
	cur := 0
	for i, e := range m.formMenu.Entries {
		if e.Value == m.formMenu.Value {
			cur = i
			break
		}
	}
	next := cur + delta
	if next < 0 {
		next = len(m.formMenu.Entries) - 1
	}
	if next >= len(m.formMenu.Entries) {
		next = 0
	}
	m.formMenu.Select(m.formMenu.Entries[next].Value)
}

// buildFormSubmission assembles the submission for the open modal
// through the shared builders. Validation failures set formErr and
// return ok=false; nothing is sent.
func (m *appModel) buildFormSubmission() (reconcile.Submission, bool) {
	switch m.modal {
	case modalNewUser:
		sub, err := mutate.CreateUser(m.formInputs[0].Value(), m.formInputs[1].Value(), m.formMenu.Value)
		if err != nil {
			m.formErr = err.Error()
			return reconcile.Submission{}, false
		}
		return sub, true

	case modalNewRegion:
		sub, err := mutate.CreateRegion(m.formInputs[0].Value())
		if err != nil {
			m.formErr = err.Error()
			return reconcile.Submission{}, false
		}
		return sub, true

	case modalNewPharmacy:
		// The picker's hidden value is the region id; an empty menu
		// parses to zero and fails the region check.
		regionID, _ := strconv.Atoi(m.formMenu.Value)
		sub, err := mutate.CreatePharmacy(
			m.formInputs[0].Value(),
			regionID,
			m.formInputs[1].Value(),
			m.formInputs[2].Value(),
		)
		if err != nil {
			m.formErr = err.Error()
			return reconcile.Submission{}, false
		}
		return sub, true

	case modalPassword:
		sub, err := mutate.Password(m.modalID, m.formInputs[0].Value())
		if err != nil {
			m.formErr = err.Error()
			return reconcile.Submission{}, false
		}
		return sub, true

	case modalCutoffs:
		var days [7]string
		for i := range m.weekInputs {
			days[i] = m.weekInputs[i].Value()
		}
		sub, err := mutate.CutoffsWeek(m.modalID, days)
		if err != nil {
			m.formErr = err.Error()
			var dayErr mutate.DayError
			if errors.As(err, &dayErr) {
				// Put the cursor on the offending day.
				m.weekFocus = dayErr.Index
				for j := range m.weekInputs {
					if j == dayErr.Index {
						m.weekInputs[j].Focus()
					} else {
						m.weekInputs[j].Blur()
					}
				}
			}
			return reconcile.Submission{}, false
		}
		return sub, true

	case modalConfirmDelete:
		switch m.confirmKind {
		case reconcile.KindUserDelete:
			return mutate.DeleteUser(m.modalID), true
		case reconcile.KindRegionDelete:
			return mutate.DeleteRegion(m.modalID), true
		case reconcile.KindPharmacyDelete:
			return mutate.DeletePharmacy(m.modalID), true
		}
		return reconcile.Submission{}, false
	}
	return reconcile.Submission{}, false
}
