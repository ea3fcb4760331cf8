package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"livadm/internal/dashboard"
	"livadm/internal/model"
)

func testDocument() *dashboard.Document {
	nine := "09:00"
	return dashboard.BuildDocument(dashboard.Snapshot{
		OK: true,
		Users: []model.User{
			{ID: 1, Login: "boss", Role: model.RoleAdmin, IsActive: true, GPSMode: model.GPSInherit},
			{ID: 2, Login: "dana", Role: model.RoleDriver, IsActive: true, GPSMode: model.GPSRequire},
		},
		Regions: []model.Region{
			{ID: 5, Name: "North", IsActive: true},
		},
		Pharmacies: []model.Pharmacy{
			{ID: 9, Name: "Central", RegionID: 5, RegionName: "North", Address: "1 Main St", IsActive: true,
				Cutoffs: model.WeekCutoffs{Mon: &nine}},
		},
		Assignments: map[string][]int{"9": {2}},
		Counts:      model.Counts{Users: 2, Regions: 1, Pharmacies: 1, AssignmentLinks: 1},
		Settings:    model.Settings{AllowedPickupsPerDay: 2, MinRequiredPhotos: 1, PhotoSourceMode: "camera_only"},
	})
}

func TestRender_CoversEverySection(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC)
	md := Render(testDocument(), now)

	if !strings.Contains(md, "# Dashboard snapshot") {
		t.Fatalf("missing title:\n%s", md)
	}
	if !strings.Contains(md, "Generated: 2026-08-25T09:00:00Z") {
		t.Fatalf("missing timestamp:\n%s", md)
	}
	for _, want := range []string{"## Counts", "## Users", "## Regions", "## Pharmacies", "## Settings"} {
		if !strings.Contains(md, want) {
			t.Fatalf("missing section %q:\n%s", want, md)
		}
	}
	if !strings.Contains(md, "| 2 | dana | driver | Yes | require |") {
		t.Fatalf("missing user row:\n%s", md)
	}
	// The pharmacy row ends with the chip labels column.
	wantRow := "| 9 | Central | North | 1 Main St | Yes | Mon 09:00, Tue —, Wed —, Thu —, Fri —, Sat —, Sun — | dana |"
	if !strings.Contains(md, wantRow) {
		t.Fatalf("missing pharmacy row:\n%s", md)
	}
	if !strings.Contains(md, "- Photo source: camera_only") {
		t.Fatalf("missing settings line:\n%s", md)
	}
}

func TestRender_EscapesPipesInCells(t *testing.T) {
	t.Parallel()

	doc := testDocument()
	doc.Pharmacies[0].Pharmacy.Address = "1 Main St | Unit 4"

	md := Render(doc, time.Now())
	if !strings.Contains(md, `1 Main St \| Unit 4`) {
		t.Fatalf("pipe not escaped:\n%s", md)
	}
}

func TestWriteFile_RefusesToClobber(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "snapshot.md")
	if err := WriteFile(path, "one", false); err != nil {
		t.Fatalf("first write: %v", err)
	}
	err := WriteFile(path, "two", false)
	if err == nil || !strings.Contains(err.Error(), "file exists") {
		t.Fatalf("expected overwrite refusal, got %v", err)
	}
	if err := WriteFile(path, "two", true); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(b) != "two" {
		t.Fatalf("expected overwritten content, got %q", b)
	}
}
