package reconcile

import (
	"net/url"
	"strconv"
	"strings"
)

// Submission is the client-side form: target URL, HTTP method, action
// kind and field values, plus the row anchors the enclosing markup
// carries as data attributes. Zero anchors mean the form is not
// row-scoped (the creation forms at the top of each section).
type Submission struct {
	Kind   Kind
	Method string
	URL    string
	Fields url.Values

	UserID     int
	RegionID   int
	PharmacyID int
}

// FieldInt reads a numeric form field; 0 when absent or malformed.
func (s Submission) FieldInt(name string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s.Fields.Get(name)))
	if err != nil {
		return 0
	}
	return n
}

// UnassignURLFrom derives the remove endpoint from an assign endpoint
// by substituting the trailing path segment.
func UnassignURLFrom(assignURL string) string {
	i := strings.LastIndex(assignURL, "/")
	if i < 0 {
		return assignURL
	}
	return assignURL[:i] + "/unassign"
}
