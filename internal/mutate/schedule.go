package mutate

import (
	"net/url"
	"strings"

	"livadm/internal/dashboard"
	"livadm/internal/model"
	"livadm/internal/reconcile"
)

// CutoffsWeek validates the seven weekday values in form order and
// builds the weekly-batch submission. Empty days post as empty fields,
// which the server reads as "no cutoff". The first bad value aborts
// with a DayError naming the weekday.
func CutoffsWeek(pharmacyID int, days [7]string) (reconcile.Submission, error) {
	fields := url.Values{}
	for i, key := range model.DayKeys {
		hhmm, err := model.NormalizeHHMM(days[i])
		if err != nil {
			return reconcile.Submission{}, DayError{Day: key, Index: i, Err: err}
		}
		fields.Set(key, hhmm)
	}
	return reconcile.Submission{
		Kind:       reconcile.KindCutoffsWeek,
		Method:     "POST",
		URL:        dashboard.CutoffsPath(pharmacyID),
		Fields:     fields,
		PharmacyID: pharmacyID,
	}, nil
}

// DefaultCutoff posts a single default-cutoff change; an empty value
// clears it. This is the one-field endpoint, distinct from the weekly
// batch editor.
func DefaultCutoff(pharmacyID int, value string) (reconcile.Submission, error) {
	hhmm, err := model.NormalizeHHMM(strings.TrimSpace(value))
	if err != nil {
		return reconcile.Submission{}, err
	}

	fields := url.Values{}
	fields.Set("cutoff_local", hhmm)
	return reconcile.Submission{
		Kind:       reconcile.KindCutoffSet,
		Method:     "POST",
		URL:        dashboard.CutoffPath(pharmacyID),
		Fields:     fields,
		PharmacyID: pharmacyID,
	}, nil
}
