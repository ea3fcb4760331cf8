package reconcile

import "strings"

// Kind selects the reconciliation routine for a submitted form. It is
// the typed form of the action tag carried in markup.
type Kind int

const (
	// KindNone marks plain forms: no reconciliation, the generic
	// submit-button feedback path applies.
	KindNone Kind = iota
	KindUserCreate
	KindRegionCreate
	KindPharmacyCreate
	KindUserToggle
	KindRegionToggle
	KindPharmacyToggle
	KindAssignUser
	KindUnassignUser
	KindUserDelete
	KindRegionDelete
	KindPharmacyDelete
	KindUserPassword
	KindUserGPSMode
	KindCutoffSet
	KindCutoffsWeek
)

var kindTags = map[string]Kind{
	"user-create":     KindUserCreate,
	"region-create":   KindRegionCreate,
	"pharmacy-create": KindPharmacyCreate,
	"user-toggle":     KindUserToggle,
	"region-toggle":   KindRegionToggle,
	"pharmacy-toggle": KindPharmacyToggle,
	"assign-user":     KindAssignUser,
	"unassign-user":   KindUnassignUser,
	"user-delete":     KindUserDelete,
	"region-delete":   KindRegionDelete,
	"pharmacy-delete": KindPharmacyDelete,
	"user-password":   KindUserPassword,
	"user-gps":        KindUserGPSMode,
	"cutoff-set":      KindCutoffSet,
	"cutoffs-week":    KindCutoffsWeek,
}

// ParseKind maps an action tag to its kind. Unknown or empty tags are
// KindNone; the dispatcher treats those as a no-op.
func ParseKind(tag string) Kind {
	if k, ok := kindTags[strings.TrimSpace(tag)]; ok {
		return k
	}
	return KindNone
}

func (k Kind) Tag() string {
	for tag, kind := range kindTags {
		if kind == k {
			return tag
		}
	}
	return ""
}

func (k Kind) String() string {
	if k == KindNone {
		return "none"
	}
	if tag := k.Tag(); tag != "" {
		return tag
	}
	return "unknown"
}
