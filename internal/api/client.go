// Package api is the submission layer: it sends tagged-form
// submissions to the admin backend, marks them script-initiated so the
// server answers with structured payloads instead of redirects, and
// classifies every outcome as transport failure, server error, or a
// decoded typed result.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	log "github.com/sirupsen/logrus"

	"livadm/internal/dashboard"
	"livadm/internal/reconcile"
)

// ajaxMarker is how the server tells script submissions apart from
// full-page form posts.
const ajaxMarker = "XMLHttpRequest"

type Options struct {
	BaseURL string
	// Session is the admin session cookie value; empty means the
	// server is expected to accept anonymous requests (dev setups).
	Session string
	Timeout time.Duration
}

type Client struct {
	http *resty.Client
}

func New(opts Options) *Client {
	c := resty.New().
		SetBaseURL(strings.TrimRight(opts.BaseURL, "/")).
		SetHeader("X-Requested-With", ajaxMarker)
	if opts.Timeout > 0 {
		c.SetTimeout(opts.Timeout)
	}
	if opts.Session != "" {
		c.SetCookie(&http.Cookie{Name: "session", Value: opts.Session})
	}
	return &Client{http: c}
}

// Do performs one submission and classifies the outcome. Success means
// a decoded result; the caller reconciles with it. No retries: one
// submission, one request.
func (c *Client) Do(ctx context.Context, sub reconcile.Submission) (reconcile.Result, error) {
	method := strings.ToUpper(strings.TrimSpace(sub.Method))
	if method == "" {
		method = http.MethodPost
	}

	req := c.http.R().SetContext(ctx)
	if len(sub.Fields) > 0 {
		req.SetFormDataFromValues(sub.Fields)
	}

	resp, err := req.Execute(method, sub.URL)
	if err != nil {
		log.WithFields(log.Fields{
			"kind": sub.Kind.String(),
			"url":  sub.URL,
		}).WithError(err).Warn("submission transport failure")
		return nil, &TransportError{URL: sub.URL, Err: err}
	}

	log.WithFields(log.Fields{
		"kind":   sub.Kind.String(),
		"url":    sub.URL,
		"status": resp.StatusCode(),
	}).Debug("submission exchange")

	if !resp.IsSuccess() {
		return nil, &ServerError{
			Status:  resp.StatusCode(),
			Message: extractMessage(resp),
		}
	}

	if !jsonBody(resp) {
		// A followed redirect, or any other plain page: nothing for
		// the dispatcher to decode.
		return reconcile.NoPayload{}, nil
	}

	res, err := reconcile.DecodeResult(sub.Kind, resp.Body())
	if err != nil {
		return nil, &PayloadError{Kind: sub.Kind, Err: err}
	}
	return res, nil
}

// FetchDashboard loads the bootstrap snapshot: the admin page context
// as JSON.
func (c *Client) FetchDashboard(ctx context.Context) (dashboard.Snapshot, error) {
	resp, err := c.http.R().SetContext(ctx).Get(dashboard.DashboardPath)
	if err != nil {
		return dashboard.Snapshot{}, &TransportError{URL: dashboard.DashboardPath, Err: err}
	}
	if !resp.IsSuccess() {
		return dashboard.Snapshot{}, &ServerError{
			Status:  resp.StatusCode(),
			Message: extractMessage(resp),
		}
	}

	var snap dashboard.Snapshot
	if err := json.Unmarshal(resp.Body(), &snap); err != nil {
		return dashboard.Snapshot{}, &PayloadError{Kind: reconcile.KindNone, Err: err}
	}
	return snap, nil
}

func jsonBody(resp *resty.Response) bool {
	return strings.Contains(resp.Header().Get("Content-Type"), "application/json")
}

// extractMessage pulls a human-readable message out of an error
// response. Only structured bodies are trusted; FastAPI-style detail
// fields count only when they are plain strings. Everything else falls
// back to the generic status-coded message.
func extractMessage(resp *resty.Response) string {
	if jsonBody(resp) {
		var body struct {
			Error  string          `json:"error"`
			Detail json.RawMessage `json:"detail"`
		}
		if err := json.Unmarshal(resp.Body(), &body); err == nil {
			if msg := strings.TrimSpace(body.Error); msg != "" {
				return msg
			}
			var detail string
			if len(body.Detail) > 0 && json.Unmarshal(body.Detail, &detail) == nil {
				if msg := strings.TrimSpace(detail); msg != "" {
					return msg
				}
			}
		}
	}
	return genericMessage(resp.StatusCode())
}

func genericMessage(status int) string {
	return "admin error (" + strconv.Itoa(status) + ")"
}
