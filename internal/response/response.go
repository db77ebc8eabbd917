package response

import (
	"github.com/gin-gonic/gin"
)

// The wire format mirrors the contract the clients were built against: success
// bodies are plain objects ({pin}, {success:true}, ...) and failures carry a
// French message plus a machine-readable code.

// ErrorBody represents a structured error response.
type ErrorBody struct {
	Error string  `json:"error"`
	Code  ErrCode `json:"code"`
	// Fields holds field-level validation details when applicable.
	Fields map[string]string `json:"fields,omitempty"`
	// Valid is set (to false) only on PIN validation failures, where the
	// client checks the flag rather than the status code.
	Valid *bool `json:"valid,omitempty"`
}

// Fail sends an error response with an error code.
func Fail(c *gin.Context, statusCode int, code ErrCode) {
	c.JSON(statusCode, ErrorBody{Error: GetMessage(code), Code: code})
}

// FailWithFields sends an error response with field-level validation details.
func FailWithFields(c *gin.Context, statusCode int, code ErrCode, fields map[string]string) {
	c.JSON(statusCode, ErrorBody{Error: GetMessage(code), Code: code, Fields: fields})
}

// FailPin sends the PIN-mismatch response shape: {valid:false, error, code}.
func FailPin(c *gin.Context, statusCode int, code ErrCode) {
	valid := false
	c.JSON(statusCode, ErrorBody{Error: GetMessage(code), Code: code, Valid: &valid})
}

// AbortFail aborts the middleware chain and sends an error response.
func AbortFail(c *gin.Context, statusCode int, code ErrCode) {
	c.AbortWithStatusJSON(statusCode, ErrorBody{Error: GetMessage(code), Code: code})
}
