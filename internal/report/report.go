// Package report renders a dashboard document as a markdown snapshot:
// counts, one table per section, and the global settings. Admins paste
// these into tickets or archive them before risky changes.
package report

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"livadm/internal/dashboard"
)

// Render produces the markdown snapshot of one document.
func Render(doc *dashboard.Document, now time.Time) string {
	var buf bytes.Buffer
	writeLn := func(s string) {
		buf.WriteString(s)
		buf.WriteString("\n")
	}

	writeLn("# Dashboard snapshot")
	writeLn("")
	writeLn("Generated: " + now.UTC().Format(time.RFC3339))
	writeLn("")

	writeLn("## Counts")
	writeLn("")
	writeLn(fmt.Sprintf("- Users: %d", doc.Counts.Users))
	writeLn(fmt.Sprintf("- Regions: %d", doc.Counts.Regions))
	writeLn(fmt.Sprintf("- Pharmacies: %d", doc.Counts.Pharmacies))
	writeLn(fmt.Sprintf("- Pickups: %d", doc.Counts.Pickups))
	writeLn(fmt.Sprintf("- Assignments: %d", doc.Counts.AssignmentLinks))
	writeLn(fmt.Sprintf("- Pickup photos: %d", doc.Counts.PickupPhotos))
	writeLn("")

	writeLn("## Users")
	writeLn("")
	rows := make([][]string, 0, len(doc.Users))
	for _, r := range doc.Users {
		rows = append(rows, r.Cells())
	}
	writeTable(&buf, []string{"ID", "Login", "Role", "Active", "GPS"}, rows)
	writeLn("")

	writeLn("## Regions")
	writeLn("")
	rows = rows[:0]
	for _, r := range doc.Regions {
		rows = append(rows, r.Cells())
	}
	writeTable(&buf, []string{"ID", "Name", "Active"}, rows)
	writeLn("")

	writeLn("## Pharmacies")
	writeLn("")
	rows = rows[:0]
	for _, r := range doc.Pharmacies {
		labels := make([]string, 0, len(r.Chips))
		for _, c := range r.Chips {
			labels = append(labels, c.Label)
		}
		rows = append(rows, append(r.Cells(), strings.Join(labels, ", ")))
	}
	writeTable(&buf, []string{"ID", "Name", "Region", "Address", "Active", "Cutoffs", "Assigned"}, rows)
	writeLn("")

	writeLn("## Settings")
	writeLn("")
	s := doc.Settings
	writeLn(fmt.Sprintf("- Allowed pickups per day: %d", s.AllowedPickupsPerDay))
	writeLn("- Require pickup location: " + yesNo(s.RequirePickupLocation))
	writeLn("- Show history to drivers: " + yesNo(s.ShowHistoryToDrivers))
	writeLn(fmt.Sprintf("- Min required photos: %d", s.MinRequiredPhotos))
	writeLn("- Photo source: " + s.PhotoSourceMode)

	return buf.String()
}

// WriteFile writes the snapshot, refusing to clobber an existing file
// unless told to.
func WriteFile(path string, md string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return errors.New("file exists (use --overwrite): " + path)
		}
	}
	return os.WriteFile(path, []byte(md), 0o644)
}

func writeTable(buf *bytes.Buffer, headers []string, rows [][]string) {
	buf.WriteString("| " + strings.Join(headers, " | ") + " |\n")
	sep := make([]string, len(headers))
	for i := range sep {
		sep[i] = "---"
	}
	buf.WriteString("| " + strings.Join(sep, " | ") + " |\n")
	for _, r := range rows {
		cells := make([]string, len(r))
		for i, c := range r {
			// A pipe inside a name or address would split the row.
			cells[i] = strings.ReplaceAll(c, "|", "\\|")
		}
		buf.WriteString("| " + strings.Join(cells, " | ") + " |\n")
	}
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
