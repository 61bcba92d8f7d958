package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrInvalidResponse is returned when a success response cannot be decoded
var ErrInvalidResponse = errors.New("invalid response from API")

// Error is a non-success HTTP response from the API
type Error struct {
	StatusCode int
	Reason     string
	Detail     string // "detail" field of the error body, if any
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api: %d %s: %s", e.StatusCode, e.Reason, e.Detail)
	}
	return fmt.Sprintf("api: %d %s", e.StatusCode, e.Reason)
}

// UserMessage is the text shown to the user for this failure
func (e *Error) UserMessage() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("request failed: %d %s", e.StatusCode, e.Reason)
}

// TransportError wraps failures to reach the API at all
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "could not reach API: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error { return e.Err }

// UserMessage turns any error returned by Client into the message shown inline
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.UserMessage()
	}
	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return transportErr.Error()
	}
	if errors.Is(err, ErrInvalidResponse) {
		return ErrInvalidResponse.Error()
	}
	return err.Error()
}

type errorBody struct {
	Detail json.RawMessage `json:"detail"`
}

// parseError extracts an Error from a non-success response
func parseError(resp *http.Response) error {
	apiErr := &Error{
		StatusCode: resp.StatusCode,
		Reason:     http.StatusText(resp.StatusCode),
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))

	var eb errorBody
	if json.Unmarshal(body, &eb) == nil && len(eb.Detail) > 0 {
		// FastAPI validation errors carry a list instead of a string
		var detail string
		if json.Unmarshal(eb.Detail, &detail) == nil {
			apiErr.Detail = detail
		}
	}
	return apiErr
}
