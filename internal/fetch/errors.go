package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Kind classifies the result of a single attempt or of a whole fetch.
type Kind string

const (
	KindSuccess    Kind = "success"
	KindTransient  Kind = "transient_status"
	KindPermanent  Kind = "permanent_status"
	KindTimeout    Kind = "timeout"
	KindNetwork    Kind = "network"
	KindUnexpected Kind = "unexpected"
	KindCancelled  Kind = "cancelled"
	KindExhausted  Kind = "exhausted"
)

// AttemptError describes why one GET attempt did not produce a usable response.
type AttemptError struct {
	Kind       Kind
	StatusCode int
	Reason     string
	Err        error
}

func (e *AttemptError) Error() string {
	switch e.Kind {
	case KindTransient, KindPermanent:
		return fmt.Sprintf("HTTP request failed with status %d: %s", e.StatusCode, e.Reason)
	default:
		if e.Err == nil {
			return string(e.Kind)
		}
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
}

func (e *AttemptError) Unwrap() error {
	return e.Err
}

// Retryable reports whether another attempt may succeed.
func (e *AttemptError) Retryable() bool {
	switch e.Kind {
	case KindTransient, KindTimeout, KindNetwork:
		return true
	default:
		return false
	}
}

// message renders the terminal error text placed in the envelope.
func (e *AttemptError) message() string {
	switch e.Kind {
	case KindTransient, KindPermanent:
		return e.Error()
	case KindTimeout:
		return "Request timed out after multiple attempts"
	case KindNetwork:
		return "Network error: " + errorText(e.Err)
	case KindCancelled:
		return "Request cancelled: " + errorText(e.Err)
	default:
		return "Unexpected error: " + errorText(e.Err)
	}
}

func errorText(err error) string {
	if err == nil {
		return "unknown error"
	}
	return err.Error()
}

// IsTransientStatus reports whether an HTTP status is worth retrying.
func IsTransientStatus(code int) bool {
	switch code {
	case http.StatusRequestTimeout,
		http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

func statusError(resp *http.Response) *AttemptError {
	kind := KindPermanent
	if IsTransientStatus(resp.StatusCode) {
		kind = KindTransient
	}
	return &AttemptError{
		Kind:       kind,
		StatusCode: resp.StatusCode,
		Reason:     reasonPhrase(resp),
	}
}

// reasonPhrase extracts "Service Unavailable" from "503 Service Unavailable".
func reasonPhrase(resp *http.Response) string {
	reason := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if reason == "" {
		reason = http.StatusText(resp.StatusCode)
	}
	return reason
}

// classify maps a transport or body read error onto a Kind. parent is the caller's
// context, used to tell a caller cancellation apart from the per-attempt timeout.
func classify(parent context.Context, err error) *AttemptError {
	if parent.Err() != nil {
		return &AttemptError{Kind: KindCancelled, Err: parent.Err()}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return &AttemptError{Kind: KindTimeout, Err: err}
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &AttemptError{Kind: KindTimeout, Err: err}
	}

	// Everything http.Client.Do reports is a *url.Error: TLS failures, refused
	// connections, malformed responses. Only a request it cannot send at all is ours.
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		if isRequestError(urlErr.Err) {
			return &AttemptError{Kind: KindUnexpected, Err: err}
		}
		return &AttemptError{Kind: KindNetwork, Err: urlErr.Err}
	}

	if errors.As(err, &netErr) || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return &AttemptError{Kind: KindNetwork, Err: err}
	}

	return &AttemptError{Kind: KindUnexpected, Err: err}
}

// requestErrors are the messages net/http uses for requests that never reach the wire.
var requestErrors = []string{
	"unsupported protocol scheme",
	"no Host in request URL",
	"nil Request.URL",
}

func isRequestError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	for _, text := range requestErrors {
		if strings.Contains(msg, text) {
			return true
		}
	}
	return false
}
