package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sj-cantos/launchpad-jia/pkg/model"
)

// The career endpoints have a fixed wire contract consumed by the web
// form: success payloads carry message/career/_id, failures carry a
// single error string. Helpers here keep handlers from hand-building
// those shapes.

// Career sends the stored career document with its storage-assigned
// primary key attached.
func Career(c *gin.Context, message string, career *model.Career) {
	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"career":  career,
		"_id":     career.CareerID,
	})
}

// ValidationFailed reports a field-level validation failure. The message
// already names the offending field and rule.
func ValidationFailed(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "Validation error: " + err.Error()})
}

// BadRequest sends a 400 with a business-rule message.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": message})
}

// NotFound sends a 404 response
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "resource not found"
	}
	c.JSON(http.StatusNotFound, gin.H{"error": message})
}

// Conflict sends a 409 response
func Conflict(c *gin.Context, message string) {
	c.JSON(http.StatusConflict, gin.H{"error": message})
}

// Internal sends a 500 response
// Note: Never expose internal error details to clients
func Internal(c *gin.Context, message string) {
	if message == "" {
		message = "internal server error"
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": message})
}

// TooManyRequests sends a 429 response
func TooManyRequests(c *gin.Context, message string) {
	if message == "" {
		message = "rate limit exceeded, please try again later"
	}
	c.JSON(http.StatusTooManyRequests, gin.H{"error": message})
}
