package reconcile

// Severity of a toast notice.
type Severity string

const (
	SeverityError   Severity = "error"
	SeveritySuccess Severity = "success"
	SeverityInfo    Severity = "info"
)

type Toast struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// Outcome is what a reconciliation hands back to the front end: the
// toasts to show and the UI directives the routine decided on. The
// document itself is already mutated by the time an Outcome returns.
type Outcome struct {
	Toasts []Toast `json:"toasts,omitempty"`

	// ClearForm wipes the submitting form's fields (creation forms,
	// sensitive password inputs).
	ClearForm bool `json:"clear_form,omitempty"`
	// CloseModal dismisses the modal housing the form.
	CloseModal bool `json:"close_modal,omitempty"`
	// Refresh asks for a full document refetch shortly after; the
	// pharmacy-create simplified path uses it in place of row
	// synthesis.
	Refresh bool `json:"refresh,omitempty"`
}

func (o Outcome) merge(other Outcome) Outcome {
	o.Toasts = append(o.Toasts, other.Toasts...)
	o.ClearForm = o.ClearForm || other.ClearForm
	o.CloseModal = o.CloseModal || other.CloseModal
	o.Refresh = o.Refresh || other.Refresh
	return o
}

// HasError reports whether any toast carries the error severity; the
// CLI exit code keys off it.
func (o Outcome) HasError() bool {
	for _, t := range o.Toasts {
		if t.Severity == SeverityError {
			return true
		}
	}
	return false
}

func errorOutcome(msg string) Outcome {
	return Outcome{Toasts: []Toast{{Severity: SeverityError, Message: msg}}}
}

func successOutcome(msg string) Outcome {
	return Outcome{Toasts: []Toast{{Severity: SeveritySuccess, Message: msg}}}
}

func infoOutcome(msg string) Outcome {
	return Outcome{Toasts: []Toast{{Severity: SeverityInfo, Message: msg}}}
}
