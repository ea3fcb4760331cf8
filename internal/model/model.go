package model

import (
	"fmt"
	"strings"
)

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleDriver Role = "driver"
)

// Assignable reports whether users with this role belong in assign-user
// menus. Drivers get assigned to pharmacies; admins coordinate.
func (r Role) Assignable() bool {
	return r == RoleDriver
}

func ParseRole(s string) (Role, error) {
	switch Role(strings.TrimSpace(s)) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleDriver:
		return RoleDriver, nil
	}
	return "", fmt.Errorf("invalid role %q", s)
}

// GPSMode is the per-user pickup-location requirement: inherit the global
// setting, always require, or never require.
type GPSMode string

const (
	GPSInherit GPSMode = "inherit"
	GPSRequire GPSMode = "require"
	GPSNo      GPSMode = "no"
)

func ParseGPSMode(s string) (GPSMode, error) {
	switch GPSMode(strings.TrimSpace(s)) {
	case GPSInherit:
		return GPSInherit, nil
	case GPSRequire:
		return GPSRequire, nil
	case GPSNo:
		return GPSNo, nil
	}
	return "", fmt.Errorf("invalid gps mode %q", s)
}

type User struct {
	ID       int     `json:"id"`
	Login    string  `json:"login"`
	Role     Role    `json:"role"`
	IsActive bool    `json:"is_active"`
	GPSMode  GPSMode `json:"gps_mode"`
}

// Label is the display label used in rows, chips and menus.
func (u User) Label() string {
	return u.Login
}

type Region struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
}

type Pharmacy struct {
	ID         int         `json:"id"`
	Name       string      `json:"name"`
	RegionID   int         `json:"region_id"`
	RegionName string      `json:"region_name"`
	Address    string      `json:"address"`
	IsActive   bool        `json:"is_active"`
	Cutoffs    WeekCutoffs `json:"cutoffs"`
}

type Settings struct {
	AllowedPickupsPerDay  int    `json:"allowed_pickups_per_day"`
	RequirePickupLocation bool   `json:"require_pickup_location_global"`
	ShowHistoryToDrivers  bool   `json:"show_history_to_drivers"`
	MinRequiredPhotos     int    `json:"min_required_photos"`
	PhotoSourceMode       string `json:"photo_source_mode"`
}

type Counts struct {
	Users           int `json:"users"`
	Regions         int `json:"regions"`
	Pharmacies      int `json:"pharmacies"`
	Pickups         int `json:"pickups"`
	AssignmentLinks int `json:"user_pharmacy_links"`
	PickupPhotos    int `json:"pickup_photos"`
}
