package profile

import (
	"errors"
	"fmt"
	"net/http"
)

// Reason tags why a profile fetch failed.
type Reason string

const (
	ReasonNotFound  Reason = "not_found"
	ReasonStatus    Reason = "status"
	ReasonTransport Reason = "transport"
	ReasonDecode    Reason = "decode"
)

// FetchError is returned by every upstream client. The dispatcher turns it
// into a soft in-channel message.
type FetchError struct {
	Game   string
	Reason Reason
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	msg := fmt.Sprintf("%s profile: %s", e.Game, e.Reason)
	if e.Status != 0 {
		msg += fmt.Sprintf(" (http %d)", e.Status)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *FetchError) Unwrap() error { return e.Err }

// StatusCode exposes the upstream HTTP status, 0 when none was received.
func (e *FetchError) StatusCode() int { return e.Status }

// NotFound builds the error used when the primary identifier lookup has no match.
func NotFound(game, what string) *FetchError {
	return &FetchError{Game: game, Reason: ReasonNotFound, Err: errors.New(what + " not found")}
}

func statusError(game string, status int, body []byte) *FetchError {
	reason := ReasonStatus
	if status == http.StatusNotFound {
		reason = ReasonNotFound
	}
	return &FetchError{
		Game:   game,
		Reason: reason,
		Status: status,
		Err:    fmt.Errorf("upstream responded: %s", truncate(body)),
	}
}

// ReasonOf extracts the failure tag from err, or "" when err is not a FetchError.
func ReasonOf(err error) Reason {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Reason
	}
	return ""
}

func truncate(b []byte) string {
	if len(b) > 200 {
		return string(b[:200]) + "..."
	}
	return string(b)
}
