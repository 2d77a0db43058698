package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the error envelope returned by every failing endpoint.
// Details is only populated for request-binding failures.
type ErrorBody struct {
	Detail  string            `json:"detail"`
	Details map[string]string `json:"details,omitempty"`
}

// JSON writes a success payload verbatim. Endpoint bodies are part of the
// client contract, so there is no wrapping envelope.
func JSON(c *gin.Context, status int, payload any) {
	if status == 0 {
		status = http.StatusOK
	}
	c.JSON(status, payload)
}

// Error writes {"detail": ...} with the given status.
func Error(c *gin.Context, status int, detail string) {
	if status == 0 {
		status = http.StatusBadRequest
	}
	c.JSON(status, ErrorBody{Detail: detail})
}

// BindingError writes a 400 with per-field messages from the validator.
func BindingError(c *gin.Context, details map[string]string) {
	c.JSON(http.StatusBadRequest, ErrorBody{Detail: "invalid payload", Details: details})
}
