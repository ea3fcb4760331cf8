package reconcile

import (
	"encoding/json"
	"fmt"

	"livadm/internal/model"
)

// Result is the decoded payload of a successful HTTP exchange. One
// concrete shape exists per action kind; DecodeResult picks it. The
// interface is sealed so the dispatcher's type switches stay
// exhaustive.
type Result interface {
	// Succeeded is the payload's explicit success marker.
	Succeeded() bool
	// Err is the logical error carried inside a success response, if
	// any ("Login already exists" and friends).
	Err() string

	isResult()
}

// status is the {ok, error} envelope every admin payload shares.
type status struct {
	Ok      bool   `json:"ok"`
	ErrText string `json:"error"`
}

func (s status) Succeeded() bool { return s.Ok }
func (s status) Err() string     { return s.ErrText }
func (status) isResult()         {}

// NoPayload stands for a 2xx response without a structured body, such
// as the settings form's followed redirect.
type NoPayload struct{}

func (NoPayload) Succeeded() bool { return true }
func (NoPayload) Err() string     { return "" }
func (NoPayload) isResult()       {}

type UserCreated struct {
	status
	User model.User `json:"user"`
}

type RegionCreated struct {
	status
	Region model.Region `json:"region"`
}

type PharmacyCreated struct {
	status
	Pharmacy model.Pharmacy `json:"pharmacy"`
}

// Toggled carries the flipped flag when the server reports it; a nil
// IsActive means the routine must invert the current rendering.
type Toggled struct {
	status
	IsActive *bool `json:"is_active"`
}

type Assigned struct {
	status
	AlreadyAssigned bool `json:"already_assigned"`
}

// Ack is the bare {ok} acknowledgement (deletes, unassign, password).
type Ack struct {
	status
}

type GPSModeSet struct {
	status
	GPSMode string `json:"gps_mode"`
}

// CutoffSaved is the single default-cutoff payload. Three shapes occur:
// a pre-formatted label, a raw time value to truncate to HH:MM, or a
// nil/empty raw value meaning no cutoff.
type CutoffSaved struct {
	status
	Label string  `json:"cutoff_label"`
	Raw   *string `json:"cutoff"`
}

type WeekSaved struct {
	status
	Cutoffs model.WeekCutoffs `json:"cutoffs"`
}

// DecodeResult unmarshals a payload into the shape its kind declares.
// A decode failure is a hard error, never a silent zero value.
func DecodeResult(kind Kind, body []byte) (Result, error) {
	var (
		res Result
		err error
	)
	switch kind {
	case KindUserCreate:
		var r UserCreated
		err = json.Unmarshal(body, &r)
		res = r
	case KindRegionCreate:
		var r RegionCreated
		err = json.Unmarshal(body, &r)
		res = r
	case KindPharmacyCreate:
		var r PharmacyCreated
		err = json.Unmarshal(body, &r)
		res = r
	case KindUserToggle, KindRegionToggle, KindPharmacyToggle:
		var r Toggled
		err = json.Unmarshal(body, &r)
		res = r
	case KindAssignUser:
		var r Assigned
		err = json.Unmarshal(body, &r)
		res = r
	case KindUnassignUser, KindUserDelete, KindRegionDelete, KindPharmacyDelete, KindUserPassword:
		var r Ack
		err = json.Unmarshal(body, &r)
		res = r
	case KindUserGPSMode:
		var r GPSModeSet
		err = json.Unmarshal(body, &r)
		res = r
	case KindCutoffSet:
		var r CutoffSaved
		err = json.Unmarshal(body, &r)
		res = r
	case KindCutoffsWeek:
		var r WeekSaved
		err = json.Unmarshal(body, &r)
		res = r
	default:
		return NoPayload{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s payload: %w", kind, err)
	}
	return res, nil
}
