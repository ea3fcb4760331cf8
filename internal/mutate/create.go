package mutate

import (
	"net/url"
	"strconv"
	"strings"

	"livadm/internal/dashboard"
	"livadm/internal/model"
	"livadm/internal/reconcile"
)

// CreateUser validates the new-user form and builds its submission.
// The password is passed through untrimmed; leading spaces are legal.
func CreateUser(login, password, role string) (reconcile.Submission, error) {
	login = strings.TrimSpace(login)
	if login == "" {
		return reconcile.Submission{}, ErrLoginRequired
	}
	if password == "" {
		return reconcile.Submission{}, ErrPasswordRequired
	}
	r, err := model.ParseRole(role)
	if err != nil {
		return reconcile.Submission{}, err
	}

	fields := url.Values{}
	fields.Set("login", login)
	fields.Set("password", password)
	fields.Set("role", string(r))
	return reconcile.Submission{
		Kind:   reconcile.KindUserCreate,
		Method: "POST",
		URL:    dashboard.UserCreatePath,
		Fields: fields,
	}, nil
}

func CreateRegion(name string) (reconcile.Submission, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return reconcile.Submission{}, ErrNameRequired
	}

	fields := url.Values{}
	fields.Set("name", name)
	return reconcile.Submission{
		Kind:   reconcile.KindRegionCreate,
		Method: "POST",
		URL:    dashboard.RegionCreatePath,
		Fields: fields,
	}, nil
}

// CreatePharmacy builds the new-pharmacy submission. defaultCutoff is
// the optional Mon-Fri cutoff seed; empty skips the field and the
// pharmacy starts without cutoffs.
func CreatePharmacy(name string, regionID int, address, defaultCutoff string) (reconcile.Submission, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return reconcile.Submission{}, ErrNameRequired
	}
	if regionID <= 0 {
		return reconcile.Submission{}, ErrRegionRequired
	}

	fields := url.Values{}
	fields.Set("name", name)
	fields.Set("region_id", strconv.Itoa(regionID))
	fields.Set("address", strings.TrimSpace(address))
	if cutoff := strings.TrimSpace(defaultCutoff); cutoff != "" {
		hhmm, err := model.NormalizeHHMM(cutoff)
		if err != nil {
			return reconcile.Submission{}, err
		}
		fields.Set("default_weekday_cutoff_local", hhmm)
	}
	return reconcile.Submission{
		Kind:   reconcile.KindPharmacyCreate,
		Method: "POST",
		URL:    dashboard.PharmacyCreatePath,
		Fields: fields,
	}, nil
}
