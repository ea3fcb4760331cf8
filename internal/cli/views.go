package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"livadm/internal/dashboard"
	"livadm/internal/format"
	"livadm/internal/model"
)

// Command payloads: JSON shapes for scripts, Text for humans via
// format.Texter. Table columns mirror the dashboard sections.

type userList struct {
	Users []model.User `json:"users"`
}

func (l userList) Text() string {
	rows := make([][]string, 0, len(l.Users))
	for _, u := range l.Users {
		rows = append(rows, dashboard.UserRow{User: u}.Cells())
	}
	return format.Table([]string{"ID", "Login", "Role", "Active", "GPS"}, rows)
}

type regionList struct {
	Regions []model.Region `json:"regions"`
}

func (l regionList) Text() string {
	rows := make([][]string, 0, len(l.Regions))
	for _, r := range l.Regions {
		rows = append(rows, dashboard.RegionRow{Region: r}.Cells())
	}
	return format.Table([]string{"ID", "Name", "Active"}, rows)
}

type pharmacyView struct {
	model.Pharmacy
	Assigned []string `json:"assigned"`
}

type pharmacyList struct {
	Pharmacies []pharmacyView `json:"pharmacies"`
}

func (l pharmacyList) Text() string {
	rows := make([][]string, 0, len(l.Pharmacies))
	for _, p := range l.Pharmacies {
		cells := dashboard.PharmacyRow{Pharmacy: p.Pharmacy}.Cells()
		rows = append(rows, append(cells, strings.Join(p.Assigned, ", ")))
	}
	return format.Table([]string{"ID", "Name", "Region", "Address", "Active", "Cutoffs", "Assigned"}, rows)
}

func docUsers(doc *dashboard.Document) []model.User {
	out := make([]model.User, 0, len(doc.Users))
	for _, r := range doc.Users {
		out = append(out, r.User)
	}
	return out
}

func docRegions(doc *dashboard.Document) []model.Region {
	out := make([]model.Region, 0, len(doc.Regions))
	for _, r := range doc.Regions {
		out = append(out, r.Region)
	}
	return out
}

func docPharmacies(doc *dashboard.Document) []pharmacyView {
	out := make([]pharmacyView, 0, len(doc.Pharmacies))
	for _, r := range doc.Pharmacies {
		v := pharmacyView{Pharmacy: r.Pharmacy}
		for _, c := range r.Chips {
			v.Assigned = append(v.Assigned, c.Label)
		}
		out = append(out, v)
	}
	return out
}

type dashboardSummary struct {
	Counts   model.Counts   `json:"counts"`
	Settings model.Settings `json:"settings"`
}

func (d dashboardSummary) Text() string {
	return kvBlock([][2]string{
		{"Users", fmt.Sprintf("%d", d.Counts.Users)},
		{"Regions", fmt.Sprintf("%d", d.Counts.Regions)},
		{"Pharmacies", fmt.Sprintf("%d", d.Counts.Pharmacies)},
		{"Pickups", fmt.Sprintf("%d", d.Counts.Pickups)},
		{"Assignments", fmt.Sprintf("%d", d.Counts.AssignmentLinks)},
		{"Pickup photos", fmt.Sprintf("%d", d.Counts.PickupPhotos)},
	}) + "\n\n" + settingsView{Settings: d.Settings}.Text()
}

type settingsView struct {
	model.Settings
}

func (v settingsView) Text() string {
	return kvBlock([][2]string{
		{"Allowed pickups per day", fmt.Sprintf("%d", v.AllowedPickupsPerDay)},
		{"Require pickup location", yesNo(v.RequirePickupLocation)},
		{"Show history to drivers", yesNo(v.ShowHistoryToDrivers)},
		{"Min required photos", fmt.Sprintf("%d", v.MinRequiredPhotos)},
		{"Photo source", v.PhotoSourceMode},
	})
}

type configView struct {
	Path           string `json:"path"`
	Server         string `json:"server,omitempty"`
	Session        string `json:"session,omitempty"`
	Theme          string `json:"theme,omitempty"`
	Output         string `json:"output,omitempty"`
	TimeoutSeconds int    `json:"timeoutSeconds,omitempty"`
}

func (v configView) Text() string {
	return kvBlock([][2]string{
		{"Path", v.Path},
		{"Server", v.Server},
		{"Session", v.Session},
		{"Theme", v.Theme},
		{"Output", v.Output},
		{"Timeout (s)", fmt.Sprintf("%d", v.TimeoutSeconds)},
	})
}

type reportWritten struct {
	Written []string `json:"written"`
}

func (r reportWritten) Text() string {
	return strings.Join(r.Written, "\n")
}

type topicList struct {
	Topics []string `json:"topics"`
}

func (l topicList) Text() string {
	return strings.Join(l.Topics, "\n")
}

type docTopic struct {
	Topic    string `json:"topic"`
	Markdown string `json:"markdown"`
}

func (d docTopic) Text() string {
	r, err := glamour.NewTermRenderer(
		// Same style pick as the dashboard help pane, and for the same
		// reason: WithAutoStyle can block on terminal queries.
		glamour.WithStandardStyle(markdownStyle()),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return d.Markdown
	}
	out, err := r.Render(d.Markdown)
	if err != nil {
		return d.Markdown
	}
	return strings.TrimRight(out, "\n")
}

func markdownStyle() string {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("LIVADM_MD_STYLE"))) {
	case "light":
		return "light"
	case "dark":
		return "dark"
	}
	if lipgloss.HasDarkBackground() {
		return "dark"
	}
	return "light"
}

func kvBlock(pairs [][2]string) string {
	width := 0
	for _, p := range pairs {
		if len(p[0]) > width {
			width = len(p[0])
		}
	}
	lines := make([]string, 0, len(pairs))
	for _, p := range pairs {
		lines = append(lines, fmt.Sprintf("%-*s  %s", width+1, p[0]+":", p[1]))
	}
	return strings.Join(lines, "\n")
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
