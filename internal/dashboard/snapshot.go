package dashboard

import (
	"strconv"

	"livadm/internal/model"
)

// Snapshot is the dashboard bootstrap payload: the same context the
// server renders into the admin page, fetched as JSON by script-
// initiated requests. Assignment keys arrive as strings because JSON
// object keys always do.
type Snapshot struct {
	OK          bool             `json:"ok"`
	Users       []model.User     `json:"users"`
	Regions     []model.Region   `json:"regions"`
	Pharmacies  []model.Pharmacy `json:"pharmacies"`
	Assignments map[string][]int `json:"assignments"`
	Counts      model.Counts     `json:"counts"`
	Settings    model.Settings   `json:"settings"`
}

// BuildDocument constructs the document from a snapshot: rows in server
// order, chips from the assignment map, and one assign menu per
// pharmacy listing every assignable user with the first entry
// preselected.
func BuildDocument(snap Snapshot) *Document {
	doc := &Document{
		Counts:   snap.Counts,
		Settings: snap.Settings,
	}

	byID := make(map[int]model.User, len(snap.Users))
	for _, u := range snap.Users {
		byID[u.ID] = u
		doc.Users = append(doc.Users, UserRow{User: u})
	}
	for _, r := range snap.Regions {
		doc.Regions = append(doc.Regions, RegionRow{Region: r})
	}

	for _, p := range snap.Pharmacies {
		// Each row gets its own menu; shared entry slices would alias
		// across rows once routines start mutating them.
		row := PharmacyRow{Pharmacy: p, AssignMenu: assignMenu(snap.Users)}
		for _, uid := range snap.Assignments[strconv.Itoa(p.ID)] {
			u, ok := byID[uid]
			if !ok {
				continue
			}
			row.Chips = append(row.Chips, Chip{
				UserID:      uid,
				Label:       u.Label(),
				UnassignURL: UnassignPath(p.ID),
			})
		}
		doc.Pharmacies = append(doc.Pharmacies, row)
	}
	return doc
}

func assignMenu(users []model.User) Menu {
	var m Menu
	for _, u := range users {
		if !u.Role.Assignable() {
			continue
		}
		m.Add(Entry{Value: strconv.Itoa(u.ID), Label: u.Label()})
	}
	return m
}
