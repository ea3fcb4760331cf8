package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"livadm/internal/dashboard"
	"livadm/internal/model"
)

// runCLI executes one invocation against a fresh command tree and
// captures both streams.
func runCLI(t *testing.T, args []string) (stdout []byte, stderr []byte, err error) {
	t.Helper()

	cmd := NewRootCmd()

	var outBuf bytes.Buffer
	var errBuf bytes.Buffer
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)

	e := cmd.Execute()
	return outBuf.Bytes(), errBuf.Bytes(), e
}

// seedSnapshot is the fixed backend state the command tests run
// against: one admin, two drivers (kim inactive), one region, one
// pharmacy with dana assigned.
func seedSnapshot() dashboard.Snapshot {
	nine := "09:00"
	return dashboard.Snapshot{
		OK: true,
		Users: []model.User{
			{ID: 1, Login: "boss", Role: model.RoleAdmin, IsActive: true, GPSMode: model.GPSInherit},
			{ID: 2, Login: "dana", Role: model.RoleDriver, IsActive: true, GPSMode: model.GPSInherit},
			{ID: 3, Login: "kim", Role: model.RoleDriver, IsActive: false, GPSMode: model.GPSRequire},
		},
		Regions: []model.Region{
			{ID: 5, Name: "North", IsActive: true},
		},
		Pharmacies: []model.Pharmacy{
			{ID: 9, Name: "Central", RegionID: 5, RegionName: "North", Address: "1 Main St", IsActive: true,
				Cutoffs: model.WeekCutoffs{Mon: &nine, Tue: &nine}},
		},
		Assignments: map[string][]int{"9": {2}},
		Counts:      model.Counts{Users: 3, Regions: 1, Pharmacies: 1, AssignmentLinks: 1},
		Settings:    model.Settings{AllowedPickupsPerDay: 2, MinRequiredPhotos: 1, PhotoSourceMode: "camera_only"},
	}
}

// adminServer fakes the backend: it serves the bootstrap snapshot plus
// whatever mutation handlers a test registers on its mux.
type adminServer struct {
	*httptest.Server
	mux *http.ServeMux
}

// newAdminServer starts the fake backend and points the command tree at
// it through the environment, with the config dir isolated per test.
func newAdminServer(t *testing.T, snap dashboard.Snapshot) *adminServer {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc(dashboard.DashboardPath, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(snap)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	t.Setenv("LIVADM_CONFIG_DIR", t.TempDir())
	t.Setenv("LIVADM_SERVER", srv.URL)

	return &adminServer{Server: srv, mux: mux}
}

// handleForm registers a mutation endpoint that records the posted form
// and replies with a fixed JSON body.
func (s *adminServer) handleForm(path string, got *url.Values, status int, body string) {
	s.mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		if got != nil {
			*got = r.PostForm
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	})
}
