package bitbucket

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

/* Sentinel errors classifying a remote response
 * Wrapped by StatusError so callers can match with errors.Is
 */
var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrAccessDenied   = errors.New("access denied")
	ErrNotFound       = errors.New("not found")
	ErrRemote         = errors.New("remote failure")
)

// StatusError is returned for every response classified as a failure
type StatusError struct {
	StatusCode int
	StatusText string
	Message    string
	Kind       error
}

func (e *StatusError) Error() string {
	return e.Message
}

func (e *StatusError) Unwrap() error {
	return e.Kind
}

// interpretResponse classifies resp by status code and decodes the body into v
// An empty body is treated as {}
func interpretResponse(resp *http.Response, logger *zerolog.Logger, v any) error {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}
	if len(data) == 0 {
		data = []byte("{}")
	}
	logger.Debug().
		Int("status_code", resp.StatusCode).
		RawJSON("body", jsonOrQuoted(data)).
		Msg("HTTP response")

	if err := classify(resp.StatusCode, statusText(resp)); err != nil {
		return err
	}

	if v == nil {
		if !json.Valid(data) {
			return fmt.Errorf("decoding response body: invalid JSON")
		}
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decoding response body: %w", err)
	}
	return nil
}

// statusText returns the reason phrase sent by the remote, http.StatusText when it sent none
func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}

// classify maps a status code to a StatusError, or nil when the status is not a failure
func classify(statusCode int, text string) error {
	switch {
	case statusCode == http.StatusBadRequest:
		return &StatusError{StatusCode: statusCode, StatusText: text, Message: "invalid request", Kind: ErrInvalidRequest}
	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
		return &StatusError{StatusCode: statusCode, StatusText: text, Message: "access denied: " + text, Kind: ErrAccessDenied}
	case statusCode == http.StatusNotFound:
		return &StatusError{StatusCode: statusCode, StatusText: text, Message: "workspace not found", Kind: ErrNotFound}
	case statusCode > http.StatusBadRequest:
		return &StatusError{
			StatusCode: statusCode,
			StatusText: text,
			Message:    strings.TrimSpace(fmt.Sprintf("error %d %s", statusCode, text)),
			Kind:       ErrRemote,
		}
	}
	return nil
}

// jsonOrQuoted keeps log lines valid JSON when the remote answers with plain text
func jsonOrQuoted(data []byte) []byte {
	if json.Valid(data) {
		return data
	}
	quoted, _ := json.Marshal(string(data))
	return quoted
}
