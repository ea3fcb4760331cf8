package dashboard

import "fmt"

// Endpoint paths of the admin surface. The document owns them the way
// markup owns form action URLs; the transport layer only joins them to
// the configured base.
const (
	DashboardPath      = "/admin"
	UserCreatePath     = "/admin/users/create"
	RegionCreatePath   = "/admin/regions/create"
	PharmacyCreatePath = "/admin/pharmacies/create"
	SettingsPath       = "/admin/settings"
)

func UserTogglePath(id int) string {
	return fmt.Sprintf("/admin/users/%d/toggle-active", id)
}

func UserDeletePath(id int) string {
	return fmt.Sprintf("/admin/users/%d/delete", id)
}

func UserPasswordPath(id int) string {
	return fmt.Sprintf("/admin/users/%d/password", id)
}

func UserGPSPath(id int) string {
	return fmt.Sprintf("/admin/users/%d/gps", id)
}

func RegionTogglePath(id int) string {
	return fmt.Sprintf("/admin/regions/%d/toggle", id)
}

func RegionDeletePath(id int) string {
	return fmt.Sprintf("/admin/regions/%d/delete", id)
}

func PharmacyTogglePath(id int) string {
	return fmt.Sprintf("/admin/pharmacies/%d/toggle", id)
}

func PharmacyDeletePath(id int) string {
	return fmt.Sprintf("/admin/pharmacies/%d/delete", id)
}

func AssignPath(id int) string {
	return fmt.Sprintf("/admin/pharmacies/%d/assign", id)
}

func UnassignPath(id int) string {
	return fmt.Sprintf("/admin/pharmacies/%d/unassign", id)
}

func CutoffsPath(id int) string {
	return fmt.Sprintf("/admin/pharmacies/%d/cutoffs", id)
}

// CutoffPath is the single default-cutoff endpoint, distinct from the
// weekly batch editor.
func CutoffPath(id int) string {
	return fmt.Sprintf("/admin/pharmacies/%d/cutoff", id)
}
