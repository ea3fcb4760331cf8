package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	log "github.com/sirupsen/logrus"

	"livadm/internal/api"
	"livadm/internal/dashboard"
	"livadm/internal/reconcile"
)

// session is one command's connection: the API client plus the freshly
// fetched document every mutating command resolves rows against and
// reconciles into.
type session struct {
	client *api.Client
	doc    *dashboard.Document
}

func openSession(cmd *cobra.Command, app *App) (*session, error) {
	client, err := newClient(cmd, app)
	if err != nil {
		return nil, err
	}
	snap, err := client.FetchDashboard(cmd.Context())
	if err != nil {
		return nil, err
	}
	return &session{client: client, doc: dashboard.BuildDocument(snap)}, nil
}

// Row references accept a numeric id or a name; names match
// case-insensitively against the login or name column.

func (s *session) userByRef(ref string) (*dashboard.UserRow, bool) {
	ref = strings.TrimSpace(ref)
	if id, err := strconv.Atoi(ref); err == nil {
		return s.doc.FindUser(id)
	}
	for i := range s.doc.Users {
		if strings.EqualFold(s.doc.Users[i].User.Login, ref) {
			return &s.doc.Users[i], true
		}
	}
	return nil, false
}

func (s *session) regionByRef(ref string) (*dashboard.RegionRow, bool) {
	ref = strings.TrimSpace(ref)
	if id, err := strconv.Atoi(ref); err == nil {
		return s.doc.FindRegion(id)
	}
	for i := range s.doc.Regions {
		if strings.EqualFold(s.doc.Regions[i].Region.Name, ref) {
			return &s.doc.Regions[i], true
		}
	}
	return nil, false
}

func (s *session) pharmacyByRef(ref string) (*dashboard.PharmacyRow, bool) {
	ref = strings.TrimSpace(ref)
	if id, err := strconv.Atoi(ref); err == nil {
		return s.doc.FindPharmacy(id)
	}
	for i := range s.doc.Pharmacies {
		if strings.EqualFold(s.doc.Pharmacies[i].Pharmacy.Name, ref) {
			return &s.doc.Pharmacies[i], true
		}
	}
	return nil, false
}

// submit runs one submission through the classify/decode/reconcile
// pipeline and reports the outcome the way the page's toast area does.
func (s *session) submit(cmd *cobra.Command, app *App, sub reconcile.Submission) error {
	res, err := s.client.Do(cmd.Context(), sub)
	if err != nil {
		return writeErr(cmd, err)
	}

	out := reconcile.Apply(s.doc, sub, res)
	log.WithFields(log.Fields{
		"kind":   sub.Kind.String(),
		"toasts": len(out.Toasts),
	}).Debug("reconciled")

	if sub.Kind == reconcile.KindNone && len(out.Toasts) == 0 {
		// Plain form: no reconciliation routine, only the generic
		// submit feedback.
		out.Toasts = append(out.Toasts, reconcile.Toast{Severity: reconcile.SeveritySuccess, Message: "Saved"})
	}
	return writeOutcome(cmd, app, out)
}

// writeOutcome prints the reconciliation's toasts. Error toasts become
// the command's error so the process exits non-zero.
func writeOutcome(cmd *cobra.Command, app *App, out reconcile.Outcome) error {
	if app.outputFormat() == "json" {
		if err := writeOut(cmd, app, out); err != nil {
			return err
		}
	} else {
		for _, t := range out.Toasts {
			if t.Severity == reconcile.SeverityError {
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", t.Severity, t.Message)
		}
	}

	for _, t := range out.Toasts {
		if t.Severity == reconcile.SeverityError {
			return writeErr(cmd, errors.New(t.Message))
		}
	}
	return nil
}
