package reconcile

import "testing"

func TestApplyAssign_AppendsChipWithDerivedUnassignURL(t *testing.T) {
	doc := testDoc()
	sub := Submission{
		Kind:       KindAssignUser,
		URL:        "/admin/pharmacies/21/assign",
		PharmacyID: 21,
		Fields:     form("user_id", "3"),
	}

	out := Apply(doc, sub, Assigned{status: status{Ok: true}})

	row, _ := doc.FindPharmacy(21)
	if len(row.Chips) != 1 {
		t.Fatalf("expected one chip; got %d", len(row.Chips))
	}
	chip := row.Chips[0]
	if chip.UserID != 3 || chip.Label != "erik" {
		t.Fatalf("unexpected chip %+v", chip)
	}
	if chip.UnassignURL != "/admin/pharmacies/21/unassign" {
		t.Fatalf("expected derived unassign url; got %q", chip.UnassignURL)
	}
	if len(out.Toasts) != 1 || out.Toasts[0].Message != "Assigned erik" {
		t.Fatalf("unexpected toasts %+v", out.Toasts)
	}
}

func TestApplyAssign_AlreadyAssignedIsInformationalNoop(t *testing.T) {
	doc := testDoc()
	sub := Submission{
		Kind:       KindAssignUser,
		URL:        "/admin/pharmacies/20/assign",
		PharmacyID: 20,
		Fields:     form("user_id", "2"),
	}

	out := Apply(doc, sub, Assigned{status: status{Ok: true}, AlreadyAssigned: true})

	row, _ := doc.FindPharmacy(20)
	if len(row.Chips) != 1 {
		t.Fatalf("expected chip count unchanged; got %d", len(row.Chips))
	}
	if len(out.Toasts) != 1 || out.Toasts[0].Severity != SeverityInfo {
		t.Fatalf("expected one info toast; got %+v", out.Toasts)
	}
}

func TestApplyAssign_DefensiveDuplicateScan(t *testing.T) {
	doc := testDoc()
	// Server claims a plain ok even though the chip already exists.
	sub := Submission{
		Kind:       KindAssignUser,
		URL:        "/admin/pharmacies/20/assign",
		PharmacyID: 20,
		Fields:     form("user_id", "2"),
	}

	Apply(doc, sub, Assigned{status: status{Ok: true}})

	row, _ := doc.FindPharmacy(20)
	if len(row.Chips) != 1 {
		t.Fatalf("never two chips for one identity; got %d", len(row.Chips))
	}
}

func TestApplyAssign_MissingAnchorsAbortSilently(t *testing.T) {
	doc := testDoc()

	out := Apply(doc, Submission{Kind: KindAssignUser, PharmacyID: 404, Fields: form("user_id", "2")},
		Assigned{status: status{Ok: true}})
	if len(out.Toasts) != 0 {
		t.Fatalf("expected silent abort for unknown pharmacy; got %+v", out.Toasts)
	}

	out = Apply(doc, Submission{Kind: KindAssignUser, PharmacyID: 20, Fields: form()},
		Assigned{status: status{Ok: true}})
	if len(out.Toasts) != 0 {
		t.Fatalf("expected silent abort for missing user_id; got %+v", out.Toasts)
	}
}

func TestApplyUnassign_RemovesExactlyThatChip(t *testing.T) {
	doc := testDoc()
	row, _ := doc.FindPharmacy(20)
	// A second chip so precision is observable.
	Apply(doc, Submission{Kind: KindAssignUser, URL: "/admin/pharmacies/20/assign", PharmacyID: 20, Fields: form("user_id", "3")},
		Assigned{status: status{Ok: true}})
	if len(row.Chips) != 2 {
		t.Fatalf("fixture expected two chips; got %d", len(row.Chips))
	}

	out := Apply(doc, Submission{Kind: KindUnassignUser, PharmacyID: 20, Fields: form("user_id", "2")},
		Ack{status: status{Ok: true}})

	if len(row.Chips) != 1 || row.Chips[0].UserID != 3 {
		t.Fatalf("expected only erik's chip to remain; got %+v", row.Chips)
	}
	if len(out.Toasts) != 1 || out.Toasts[0].Message != "Unassigned dasha" {
		t.Fatalf("expected toast naming the removed chip; got %+v", out.Toasts)
	}
}

func TestApplyUnassign_MissingChipAbortsSilently(t *testing.T) {
	doc := testDoc()

	out := Apply(doc, Submission{Kind: KindUnassignUser, PharmacyID: 20, Fields: form("user_id", "3")},
		Ack{status: status{Ok: true}})

	if len(out.Toasts) != 0 {
		t.Fatalf("expected silent abort; got %+v", out.Toasts)
	}
}

func TestUnassignURLFrom(t *testing.T) {
	if got := UnassignURLFrom("/admin/pharmacies/7/assign"); got != "/admin/pharmacies/7/unassign" {
		t.Fatalf("unexpected derivation %q", got)
	}
	if got := UnassignURLFrom("no-slash"); got != "no-slash" {
		t.Fatalf("expected passthrough; got %q", got)
	}
}
