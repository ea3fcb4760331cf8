package reconcile

import (
	"testing"

	"livadm/internal/model"
)

func TestApplyUserCreate_AppendsRowAndRegistersInMenus(t *testing.T) {
	doc := testDoc()
	// Harbor's menu starts emptied to check the adopt-on-empty rule.
	harbor, _ := doc.FindPharmacy(21)
	harbor.AssignMenu.Remove("2")
	harbor.AssignMenu.Remove("3")

	before := len(doc.Users)
	sub := Submission{Kind: KindUserCreate, URL: "/admin/users/create", Fields: form("login", "alice")}
	res := UserCreated{
		status: status{Ok: true},
		User:   model.User{ID: 7, Login: "alice", Role: model.RoleDriver, IsActive: true, GPSMode: model.GPSInherit},
	}

	out := Apply(doc, sub, res)

	if len(doc.Users) != before+1 {
		t.Fatalf("expected row count +1; got %d", len(doc.Users))
	}
	row, ok := doc.FindUser(7)
	if !ok || row.User.Login != "alice" {
		t.Fatalf("expected row with payload id 7; got %+v", row)
	}
	for _, p := range doc.Pharmacies {
		found := false
		for _, e := range p.AssignMenu.Entries {
			if e.Value == "7" && e.Label == "alice" {
				found = true
			}
		}
		if !found {
			t.Fatalf("expected alice in assign menu of pharmacy %d", p.Pharmacy.ID)
		}
	}
	// The emptied menu adopted alice as its sole, preselected entry.
	harbor, _ = doc.FindPharmacy(21)
	if harbor.AssignMenu.Value != "7" || harbor.AssignMenu.Label != "alice" {
		t.Fatalf("expected alice preselected in empty menu; got %q/%q",
			harbor.AssignMenu.Value, harbor.AssignMenu.Label)
	}
	// Central's existing selection stands.
	central, _ := doc.FindPharmacy(20)
	if central.AssignMenu.Value != "2" {
		t.Fatalf("expected selection kept in non-empty menu; got %q", central.AssignMenu.Value)
	}

	if !out.ClearForm {
		t.Fatalf("expected creation form cleared")
	}
	if len(out.Toasts) != 1 || out.Toasts[0].Severity != SeveritySuccess {
		t.Fatalf("expected one success toast; got %+v", out.Toasts)
	}
}

func TestApplyUserCreate_AdminRoleSkipsMenus(t *testing.T) {
	doc := testDoc()
	sub := Submission{Kind: KindUserCreate}
	res := UserCreated{
		status: status{Ok: true},
		User:   model.User{ID: 8, Login: "root2", Role: model.RoleAdmin, IsActive: true},
	}

	Apply(doc, sub, res)

	if _, ok := doc.FindUser(8); !ok {
		t.Fatalf("expected admin row appended")
	}
	for _, p := range doc.Pharmacies {
		for _, e := range p.AssignMenu.Entries {
			if e.Value == "8" {
				t.Fatalf("admin must not enter assign menus")
			}
		}
	}
}

func TestApplyUserCreate_MalformedPayloadNoPartialInsertion(t *testing.T) {
	doc := testDoc()
	before := len(doc.Users)

	out := Apply(doc, Submission{Kind: KindUserCreate}, UserCreated{status: status{Ok: true}})

	if len(doc.Users) != before {
		t.Fatalf("expected no insertion on missing entity")
	}
	if len(out.Toasts) != 1 || out.Toasts[0].Severity != SeverityError {
		t.Fatalf("expected one error toast; got %+v", out.Toasts)
	}
}

func TestApplyUserCreate_LogicalErrorSurfacesOnce(t *testing.T) {
	doc := testDoc()
	before := len(doc.Users)

	res := UserCreated{status: status{Ok: false, ErrText: "Login already exists"}}
	out := Apply(doc, Submission{Kind: KindUserCreate}, res)

	if len(doc.Users) != before {
		t.Fatalf("expected no insertion on logical failure")
	}
	if len(out.Toasts) != 1 {
		t.Fatalf("expected exactly one toast; got %+v", out.Toasts)
	}
	if out.Toasts[0].Severity != SeverityError || out.Toasts[0].Message != "Login already exists" {
		t.Fatalf("expected server message surfaced; got %+v", out.Toasts[0])
	}
}

func TestApplyRegionCreate_AppendsRow(t *testing.T) {
	doc := testDoc()
	res := RegionCreated{status: status{Ok: true}, Region: model.Region{ID: 11, Name: "South", IsActive: true}}

	out := Apply(doc, Submission{Kind: KindRegionCreate}, res)

	if _, ok := doc.FindRegion(11); !ok {
		t.Fatalf("expected region row appended")
	}
	if !out.ClearForm || out.HasError() {
		t.Fatalf("unexpected outcome %+v", out)
	}
}

func TestApplyPharmacyCreate_SimplifiedPathRequestsRefresh(t *testing.T) {
	doc := testDoc()
	before := len(doc.Pharmacies)
	res := PharmacyCreated{status: status{Ok: true}, Pharmacy: model.Pharmacy{ID: 30, Name: "East"}}

	out := Apply(doc, Submission{Kind: KindPharmacyCreate}, res)

	// No row synthesis; the refetch rebuilds the document instead.
	if len(doc.Pharmacies) != before {
		t.Fatalf("expected no direct row insertion; got %d", len(doc.Pharmacies))
	}
	if !out.Refresh {
		t.Fatalf("expected refresh directive")
	}
	if len(out.Toasts) != 1 || out.Toasts[0].Severity != SeveritySuccess {
		t.Fatalf("expected success toast; got %+v", out.Toasts)
	}
}
