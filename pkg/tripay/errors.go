package tripay

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrNoResponse      = errors.New("tripay: no response received")
	ErrRequestSetup    = errors.New("tripay: request setup error")
	ErrInvalidResponse = errors.New("tripay: invalid response body")
	ErrNoData          = errors.New("tripay: response has no data")
)

// RemoteError is returned when Tripay answers with a non-2xx status.
type RemoteError struct {
	StatusCode int
	Message    string
	Body       []byte
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("tripay: remote error %d: %s", e.StatusCode, e.Message)
}

// NoResponseError is returned when the request was sent but no response
// came back (network failure, timeout, cancelled context).
type NoResponseError struct {
	Err error
}

func (e *NoResponseError) Error() string {
	return fmt.Sprintf("%s: %v", ErrNoResponse.Error(), e.Err)
}

func (e *NoResponseError) Unwrap() error { return e.Err }

func (e *NoResponseError) Is(target error) bool { return target == ErrNoResponse }

// RequestSetupError is returned when the request could not be validated,
// encoded or built.
type RequestSetupError struct {
	Err error
}

func (e *RequestSetupError) Error() string {
	return fmt.Sprintf("%s: %v", ErrRequestSetup.Error(), e.Err)
}

func (e *RequestSetupError) Unwrap() error { return e.Err }

func (e *RequestSetupError) Is(target error) bool { return target == ErrRequestSetup }

func newRemoteError(status int, body []byte) *RemoteError {
	return &RemoteError{
		StatusCode: status,
		Message:    extractMessage(status, body),
		Body:       body,
	}
}

// extractMessage pulls the "message" field out of an error body, falling
// back to the HTTP status text.
func extractMessage(status int, body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if msg := strings.TrimSpace(payload.Message); msg != "" {
			return msg
		}
	}

	if text := http.StatusText(status); text != "" {
		return text
	}
	return "unknown error"
}
