// Package dashboard holds the in-memory document the admin console
// renders: table rows, assignment chips and dropdown menus. It is the
// client-side picture of the server's admin page; reconciliation
// routines mutate it in response to server payloads and the TUI renders
// it. Nothing here talks to the network.
package dashboard

import (
	"strconv"

	"livadm/internal/model"
)

// Chip is one removable member of a pharmacy's assigned-users
// collection. Each chip carries the endpoint that unassigns it.
type Chip struct {
	UserID      int
	Label       string
	UnassignURL string
}

type UserRow struct {
	User model.User
}

type RegionRow struct {
	Region model.Region
}

type PharmacyRow struct {
	Pharmacy   model.Pharmacy
	Chips      []Chip
	AssignMenu Menu

	// DefaultCutoffLabel mirrors the single default-cutoff pill next to
	// the pharmacy name; empty means the muted "no cutoff" rendering.
	DefaultCutoffLabel string
}

// Document is the whole dashboard: everything the page shows, as state.
type Document struct {
	Users      []UserRow
	Regions    []RegionRow
	Pharmacies []PharmacyRow
	Counts     model.Counts
	Settings   model.Settings
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// ToggleLabel is the action button text for a row's current state.
func ToggleLabel(active bool) string {
	if active {
		return "Deactivate"
	}
	return "Activate"
}

// Cells renders the row's columns. Column 1 is the row label by
// convention; delete routines capture it before removal.
func (r UserRow) Cells() []string {
	return []string{
		strconv.Itoa(r.User.ID),
		r.User.Login,
		string(r.User.Role),
		yesNo(r.User.IsActive),
		string(r.User.GPSMode),
	}
}

func (r RegionRow) Cells() []string {
	return []string{
		strconv.Itoa(r.Region.ID),
		r.Region.Name,
		yesNo(r.Region.IsActive),
	}
}

func (r PharmacyRow) Cells() []string {
	return []string{
		strconv.Itoa(r.Pharmacy.ID),
		r.Pharmacy.Name,
		r.Pharmacy.RegionName,
		r.Pharmacy.Address,
		yesNo(r.Pharmacy.IsActive),
		r.Pharmacy.Cutoffs.Summary(),
	}
}

// HasChip reports whether a chip for the user already exists.
func (r PharmacyRow) HasChip(userID int) bool {
	for _, c := range r.Chips {
		if c.UserID == userID {
			return true
		}
	}
	return false
}

func (d *Document) FindUser(id int) (*UserRow, bool) {
	for i := range d.Users {
		if d.Users[i].User.ID == id {
			return &d.Users[i], true
		}
	}
	return nil, false
}

func (d *Document) FindRegion(id int) (*RegionRow, bool) {
	for i := range d.Regions {
		if d.Regions[i].Region.ID == id {
			return &d.Regions[i], true
		}
	}
	return nil, false
}

func (d *Document) FindPharmacy(id int) (*PharmacyRow, bool) {
	for i := range d.Pharmacies {
		if d.Pharmacies[i].Pharmacy.ID == id {
			return &d.Pharmacies[i], true
		}
	}
	return nil, false
}

// RemoveUser drops the row only; purging the user from assign menus is
// the delete routine's job.
func (d *Document) RemoveUser(id int) bool {
	for i := range d.Users {
		if d.Users[i].User.ID == id {
			d.Users = append(d.Users[:i], d.Users[i+1:]...)
			return true
		}
	}
	return false
}

func (d *Document) RemoveRegion(id int) bool {
	for i := range d.Regions {
		if d.Regions[i].Region.ID == id {
			d.Regions = append(d.Regions[:i], d.Regions[i+1:]...)
			return true
		}
	}
	return false
}

func (d *Document) RemovePharmacy(id int) bool {
	for i := range d.Pharmacies {
		if d.Pharmacies[i].Pharmacy.ID == id {
			d.Pharmacies = append(d.Pharmacies[:i], d.Pharmacies[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveChip drops the chip for a user from a pharmacy row and returns
// its label, read before removal.
func (r *PharmacyRow) RemoveChip(userID int) (string, bool) {
	for i, c := range r.Chips {
		if c.UserID == userID {
			label := c.Label
			r.Chips = append(r.Chips[:i], r.Chips[i+1:]...)
			return label, true
		}
	}
	return "", false
}
