// internal/erp/errors_test.go
package erp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractMessage_ServerMessages(t *testing.T) {
	// _server_messages is a JSON array of JSON-encoded objects.
	body := []byte(`{"_server_messages": "[\"{\\\"message\\\": \\\"Item SKU-1 is out of stock\\\"}\"]"}`)

	assert.Equal(t, "Item SKU-1 is out of stock", extractMessage(body))
}

func TestExtractMessage_ServerMessagesWinOverException(t *testing.T) {
	body := []byte(`{
		"_server_messages": "[\"{\\\"message\\\": \\\"Not enough stock\\\"}\"]",
		"exception": "frappe.exceptions.ValidationError: something else"
	}`)

	assert.Equal(t, "Not enough stock", extractMessage(body))
}

func TestExtractMessage_ExceptionDetail(t *testing.T) {
	body := []byte(`{"exception": "frappe.exceptions.ValidationError: Customer is required"}`)
	assert.Equal(t, "Customer is required", extractMessage(body))

	body = []byte(`{"exception": "SomethingWithoutDetail"}`)
	assert.Equal(t, "SomethingWithoutDetail", extractMessage(body))
}

func TestExtractMessage_PlainMessage(t *testing.T) {
	body := []byte(`{"message": "Not permitted"}`)
	assert.Equal(t, "Not permitted", extractMessage(body))
}

func TestExtractMessage_Fallbacks(t *testing.T) {
	assert.Equal(t, genericMessage, extractMessage([]byte(`not json`)))
	assert.Equal(t, genericMessage, extractMessage([]byte(`{}`)))
	assert.Equal(t, genericMessage, extractMessage([]byte(`{"_server_messages": "broken"}`)))
}

func TestParseErrorResponse(t *testing.T) {
	err := parseErrorResponse(417, []byte(`{"message": "Insufficient stock"}`))

	assert.Equal(t, 417, err.StatusCode)
	assert.Equal(t, "Insufficient stock", err.Message)
	assert.Equal(t, "erp: status 417: Insufficient stock", err.Error())
}

func TestTransportError(t *testing.T) {
	inner := assert.AnError
	err := newTransportError(inner)

	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), "erp: ")
}
