package mutate

import (
	"net/url"
	"strconv"

	"livadm/internal/dashboard"
	"livadm/internal/model"
	"livadm/internal/reconcile"
)

// Settings posts the whole settings draft the way the page's form
// does: checkbox fields are present only when checked. KindNone means
// no reconciliation routine runs; the generic submit feedback applies.
func Settings(s model.Settings) reconcile.Submission {
	fields := url.Values{}
	fields.Set("allowed_pickups_per_day", strconv.Itoa(s.AllowedPickupsPerDay))
	fields.Set("min_required_photos", strconv.Itoa(s.MinRequiredPhotos))
	fields.Set("photo_source_mode", s.PhotoSourceMode)
	if s.RequirePickupLocation {
		fields.Set("require_pickup_location_global", "on")
	}
	if s.ShowHistoryToDrivers {
		fields.Set("show_history_to_drivers", "on")
	}
	return reconcile.Submission{
		Kind:   reconcile.KindNone,
		Method: "POST",
		URL:    dashboard.SettingsPath,
		Fields: fields,
	}
}
