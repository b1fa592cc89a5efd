package smartthings

import (
	"fmt"
	"strings"
)

// ErrorDetail is the nested error structure the API returns on command
// rejection.
type ErrorDetail struct {
	Code    string        `json:"code"`
	Message string        `json:"message"`
	Target  string        `json:"target,omitempty"`
	Details []ErrorDetail `json:"details,omitempty"`
}

// CommandError is a vendor-side rejection of a command execution.
type CommandError struct {
	RequestID string      `json:"requestId"`
	Detail    ErrorDetail `json:"error"`
}

// Summary flattens the nested detail into a single line suitable for a log
// record: code and message of the top-level error, the first nested detail,
// and the request id, joined with "; ".
func (e *CommandError) Summary() string {
	parts := make([]string, 0, 5)
	if e.Detail.Code != "" {
		parts = append(parts, e.Detail.Code)
	}
	if e.Detail.Message != "" {
		parts = append(parts, e.Detail.Message)
	}
	if e.Detail.Target != "" {
		parts = append(parts, fmt.Sprintf("target=%s", e.Detail.Target))
	}
	if len(e.Detail.Details) > 0 {
		d := e.Detail.Details[0]
		parts = append(parts, fmt.Sprintf("%s: %s", d.Code, d.Message))
	}
	if e.RequestID != "" {
		parts = append(parts, fmt.Sprintf("request=%s", e.RequestID))
	}
	if len(parts) == 0 {
		return "command rejected"
	}
	return strings.Join(parts, "; ")
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("smartthings: %s", e.Summary())
}

// StatusError is a non-2xx response without a parseable error body.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("smartthings: unexpected status %d: %s", e.StatusCode, e.Body)
}
