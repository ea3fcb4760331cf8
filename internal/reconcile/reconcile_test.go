package reconcile

import (
	"net/url"

	"livadm/internal/dashboard"
	"livadm/internal/model"
)

// testDoc builds a small dashboard: one admin, two drivers, one region,
// two pharmacies, with dasha assigned to Central.
func testDoc() *dashboard.Document {
	return dashboard.BuildDocument(dashboard.Snapshot{
		OK: true,
		Users: []model.User{
			{ID: 1, Login: "boss", Role: model.RoleAdmin, IsActive: true, GPSMode: model.GPSInherit},
			{ID: 2, Login: "dasha", Role: model.RoleDriver, IsActive: true, GPSMode: model.GPSInherit},
			{ID: 3, Login: "erik", Role: model.RoleDriver, IsActive: false, GPSMode: model.GPSRequire},
		},
		Regions: []model.Region{
			{ID: 10, Name: "North", IsActive: true},
		},
		Pharmacies: []model.Pharmacy{
			{ID: 20, Name: "Central", RegionID: 10, RegionName: "North", Address: "Main st 1", IsActive: true},
			{ID: 21, Name: "Harbor", RegionID: 10, RegionName: "North", IsActive: false},
		},
		Assignments: map[string][]int{"20": {2}},
	})
}

func boolPtr(b bool) *bool { return &b }

func strPtr(s string) *string { return &s }

func form(pairs ...string) url.Values {
	v := url.Values{}
	for i := 0; i+1 < len(pairs); i += 2 {
		v.Set(pairs[i], pairs[i+1])
	}
	return v
}
