// Package reconcile turns decoded server payloads into precise
// document mutations. One routine per action kind; routines never
// return errors. A missing structural anchor (a row or chip the
// response refers to that the document no longer has) aborts the
// routine silently, since only a manual refresh can recover.
package reconcile

import "livadm/internal/dashboard"

// Apply dispatches exactly one routine by the submission's kind and
// reports the outcome. An explicit error carried inside the success
// payload is surfaced first; the routine still runs so partial state in
// the payload is not lost. Unknown kinds are a no-op.
func Apply(doc *dashboard.Document, sub Submission, res Result) Outcome {
	var out Outcome
	if res == nil {
		res = NoPayload{}
	}
	if msg := res.Err(); msg != "" {
		out = errorOutcome(msg)
	}

	switch sub.Kind {
	case KindUserCreate:
		r, _ := res.(UserCreated)
		out = out.merge(applyUserCreate(doc, sub, r))
	case KindRegionCreate:
		r, _ := res.(RegionCreated)
		out = out.merge(applyRegionCreate(doc, sub, r))
	case KindPharmacyCreate:
		r, _ := res.(PharmacyCreated)
		out = out.merge(applyPharmacyCreate(doc, sub, r))
	case KindUserToggle:
		r, _ := res.(Toggled)
		out = out.merge(applyUserToggle(doc, sub, r))
	case KindRegionToggle:
		r, _ := res.(Toggled)
		out = out.merge(applyRegionToggle(doc, sub, r))
	case KindPharmacyToggle:
		r, _ := res.(Toggled)
		out = out.merge(applyPharmacyToggle(doc, sub, r))
	case KindAssignUser:
		r, _ := res.(Assigned)
		out = out.merge(applyAssign(doc, sub, r))
	case KindUnassignUser:
		r, _ := res.(Ack)
		out = out.merge(applyUnassign(doc, sub, r))
	case KindUserDelete:
		r, _ := res.(Ack)
		out = out.merge(applyUserDelete(doc, sub, r))
	case KindRegionDelete:
		r, _ := res.(Ack)
		out = out.merge(applyRegionDelete(doc, sub, r))
	case KindPharmacyDelete:
		r, _ := res.(Ack)
		out = out.merge(applyPharmacyDelete(doc, sub, r))
	case KindUserPassword:
		r, _ := res.(Ack)
		out = out.merge(applyPassword(doc, sub, r))
	case KindUserGPSMode:
		r, _ := res.(GPSModeSet)
		out = out.merge(applyGPSMode(doc, sub, r))
	case KindCutoffSet:
		r, _ := res.(CutoffSaved)
		out = out.merge(applyCutoffSet(doc, sub, r))
	case KindCutoffsWeek:
		r, _ := res.(WeekSaved)
		out = out.merge(applyCutoffsWeek(doc, sub, r))
	}
	return out
}
