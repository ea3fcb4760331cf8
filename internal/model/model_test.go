package model

import "testing"

func TestParseRole(t *testing.T) {
	if r, err := ParseRole(" driver "); err != nil || r != RoleDriver {
		t.Fatalf("expected driver; got %q, %v", r, err)
	}
	if r, err := ParseRole("admin"); err != nil || r != RoleAdmin {
		t.Fatalf("expected admin; got %q, %v", r, err)
	}
	if _, err := ParseRole("pilot"); err == nil {
		t.Fatalf("expected error for unknown role")
	}
}

func TestRole_Assignable(t *testing.T) {
	if !RoleDriver.Assignable() {
		t.Fatalf("expected drivers assignable")
	}
	if RoleAdmin.Assignable() {
		t.Fatalf("expected admins not assignable")
	}
}

func TestParseGPSMode(t *testing.T) {
	for _, s := range []string{"inherit", "require", "no"} {
		if m, err := ParseGPSMode(s); err != nil || string(m) != s {
			t.Fatalf("ParseGPSMode(%q): got %q, %v", s, m, err)
		}
	}
	if _, err := ParseGPSMode("sometimes"); err == nil {
		t.Fatalf("expected error for unknown gps mode")
	}
}

func TestUser_Label(t *testing.T) {
	u := User{ID: 3, Login: "alice"}
	if got := u.Label(); got != "alice" {
		t.Fatalf("expected alice; got %q", got)
	}
}
