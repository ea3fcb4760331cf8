package mutate

import (
	"net/url"

	"livadm/internal/dashboard"
	"livadm/internal/model"
	"livadm/internal/reconcile"
)

// Password enforces the minimum length the password form shows and
// posts the replacement. The value itself never appears in logs or
// toasts.
func Password(userID int, newPassword string) (reconcile.Submission, error) {
	if len(newPassword) < 6 {
		return reconcile.Submission{}, ErrPasswordTooShort
	}

	fields := url.Values{}
	fields.Set("new_password", newPassword)
	return reconcile.Submission{
		Kind:   reconcile.KindUserPassword,
		Method: "POST",
		URL:    dashboard.UserPasswordPath(userID),
		Fields: fields,
		UserID: userID,
	}, nil
}

// GPSMode posts a per-user location-requirement change. Callers pass a
// parsed mode; the dropdown offers only valid ones and the CLI parses
// its argument first.
func GPSMode(userID int, mode model.GPSMode) reconcile.Submission {
	fields := url.Values{}
	fields.Set("gps_mode", string(mode))
	return reconcile.Submission{
		Kind:   reconcile.KindUserGPSMode,
		Method: "POST",
		URL:    dashboard.UserGPSPath(userID),
		Fields: fields,
		UserID: userID,
	}
}
