package reconcile

import "testing"

func TestApplyCutoffSet_PreformattedLabel(t *testing.T) {
	doc := testDoc()

	out := Apply(doc, Submission{Kind: KindCutoffSet, PharmacyID: 20},
		CutoffSaved{status: status{Ok: true}, Label: "09:00"})

	row, _ := doc.FindPharmacy(20)
	if row.DefaultCutoffLabel != "09:00" {
		t.Fatalf("expected label 09:00; got %q", row.DefaultCutoffLabel)
	}
	if len(out.Toasts) != 1 || out.Toasts[0].Severity != SeveritySuccess {
		t.Fatalf("unexpected toasts %+v", out.Toasts)
	}
}

func TestApplyCutoffSet_RawValueTruncated(t *testing.T) {
	doc := testDoc()

	Apply(doc, Submission{Kind: KindCutoffSet, PharmacyID: 20},
		CutoffSaved{status: status{Ok: true}, Raw: strPtr("14:30:00")})

	row, _ := doc.FindPharmacy(20)
	if row.DefaultCutoffLabel != "14:30" {
		t.Fatalf("expected truncated 14:30; got %q", row.DefaultCutoffLabel)
	}
}

func TestApplyCutoffSet_NoCutoffSignal(t *testing.T) {
	doc := testDoc()
	row, _ := doc.FindPharmacy(20)
	row.DefaultCutoffLabel = "09:00"

	// Explicit null raw value switches to the muted rendering.
	Apply(doc, Submission{Kind: KindCutoffSet, PharmacyID: 20}, CutoffSaved{status: status{Ok: true}})

	if row.DefaultCutoffLabel != "" {
		t.Fatalf("expected muted no-cutoff rendering; got %q", row.DefaultCutoffLabel)
	}
}

func TestApplyCutoffSet_UnusableRawKeepsOldRendering(t *testing.T) {
	doc := testDoc()
	row, _ := doc.FindPharmacy(20)
	row.DefaultCutoffLabel = "09:00"

	out := Apply(doc, Submission{Kind: KindCutoffSet, PharmacyID: 20},
		CutoffSaved{status: status{Ok: true}, Raw: strPtr("garbage")})

	if row.DefaultCutoffLabel != "09:00" {
		t.Fatalf("expected old rendering kept; got %q", row.DefaultCutoffLabel)
	}
	if len(out.Toasts) != 0 {
		t.Fatalf("expected soft abort; got %+v", out.Toasts)
	}
}

func TestApplyCutoffsWeek_SummaryFromFormFieldsAndModalClose(t *testing.T) {
	doc := testDoc()
	fields := form(
		"mon", "09:00",
		"tue", "09:00",
		"wed", "09:00",
		"thu", "09:00",
		"fri", "09:00",
		"sat", "",
		"sun", "",
	)
	// The payload disagrees on purpose; the form fields win.
	res := WeekSaved{status: status{Ok: true}}
	res.Cutoffs.Set("mon", "23:45")

	out := Apply(doc, Submission{Kind: KindCutoffsWeek, PharmacyID: 20, Fields: fields}, res)

	row, _ := doc.FindPharmacy(20)
	want := "Mon 09:00, Tue 09:00, Wed 09:00, Thu 09:00, Fri 09:00, Sat —, Sun —"
	if got := row.Pharmacy.Cutoffs.Summary(); got != want {
		t.Fatalf("expected %q; got %q", want, got)
	}
	if !out.CloseModal {
		t.Fatalf("expected modal close directive")
	}
	if len(out.Toasts) != 1 || out.Toasts[0].Severity != SeveritySuccess {
		t.Fatalf("unexpected toasts %+v", out.Toasts)
	}
}

func TestApplySchedule_MissingRowAbortsSilently(t *testing.T) {
	doc := testDoc()

	if out := Apply(doc, Submission{Kind: KindCutoffSet, PharmacyID: 404}, CutoffSaved{status: status{Ok: true}}); len(out.Toasts) != 0 {
		t.Fatalf("expected silent abort; got %+v", out.Toasts)
	}
	if out := Apply(doc, Submission{Kind: KindCutoffsWeek, PharmacyID: 404, Fields: form()}, WeekSaved{status: status{Ok: true}}); len(out.Toasts) != 0 {
		t.Fatalf("expected silent abort; got %+v", out.Toasts)
	}
}
