package api

import (
	"encoding/json"
	"fmt"
)

// Error is the single error shape for transport and application
// failures: HTTP status, a best-effort human-readable message, and the
// parsed response body (or raw text) as detail.
type Error struct {
	Status  int
	Message string
	Detail  any
}

// Error implements the error interface
func (e *Error) Error() string {
	return fmt.Sprintf("request failed (%d): %s", e.Status, e.Message)
}

// newError builds an *Error from a non-2xx response body. The body is
// parsed as JSON when possible; the message is extracted in preference
// order: string body, nested "detail" string, raw text.
func newError(status int, raw []byte) *Error {
	var detail any = string(raw)
	if len(raw) > 0 {
		var parsed any
		if err := json.Unmarshal(raw, &parsed); err == nil {
			detail = parsed
		}
	}

	return &Error{
		Status:  status,
		Message: extractMessage(detail),
		Detail:  detail,
	}
}

// extractMessage pulls a human-readable message out of a parsed error body
func extractMessage(detail any) string {
	switch d := detail.(type) {
	case string:
		if d != "" {
			return d
		}
	case map[string]any:
		if s, ok := d["detail"].(string); ok && s != "" {
			return s
		}
	}
	return "Request failed"
}
