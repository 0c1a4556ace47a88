// internal/erp/errors.go
package erp

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Error represents a failed call to the ERP, either transport-level or
// reported by the backend itself.
type Error struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *Error) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("erp: status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("erp: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// newTransportError wraps a network-level failure
func newTransportError(err error) *Error {
	return &Error{Message: err.Error(), Err: err}
}

// genericMessage is the fallback when no readable message can be extracted
// from an ERP error response.
const genericMessage = "the request could not be completed"

// serverMessage mirrors the ERP's {"message": "..."} error row
type serverMessage struct {
	Message string `json:"message"`
}

// extractMessage digs a human-readable message out of the ERP's nested
// error-response shapes. The backend reports failures in several formats:
// a plain "message" string, an "exception" of the form "Type: detail", or
// "_server_messages", which is a JSON array of JSON-encoded objects.
func extractMessage(body []byte) string {
	var envelope struct {
		Message        string `json:"message"`
		Exception      string `json:"exception"`
		ServerMessages string `json:"_server_messages"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return genericMessage
	}

	if envelope.ServerMessages != "" {
		var rows []string
		if err := json.Unmarshal([]byte(envelope.ServerMessages), &rows); err == nil && len(rows) > 0 {
			var msg serverMessage
			if err := json.Unmarshal([]byte(rows[0]), &msg); err == nil && msg.Message != "" {
				return msg.Message
			}
		}
	}

	if envelope.Exception != "" {
		// "frappe.exceptions.ValidationError: detail" -> "detail"
		if idx := strings.Index(envelope.Exception, ": "); idx >= 0 {
			return envelope.Exception[idx+2:]
		}
		return envelope.Exception
	}

	if envelope.Message != "" {
		return envelope.Message
	}

	return genericMessage
}

// parseErrorResponse converts a non-2xx ERP response into an *Error
func parseErrorResponse(statusCode int, body []byte) *Error {
	return &Error{
		StatusCode: statusCode,
		Message:    extractMessage(body),
	}
}
