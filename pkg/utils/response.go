package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// StatusMapping pairs a sentinel error with the HTTP status it produces.
type StatusMapping struct {
	Err    error
	Status int
}

// MessageResponse sends a simple message response
func MessageResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"message": message,
	})
}

// ErrorResponse sends a standard error JSON response
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"error": message,
	})
}

// StatusFor returns the status of the first mapping err matches,
// falling back to 500.
func StatusFor(err error, mappings ...StatusMapping) int {
	for _, m := range mappings {
		if errors.Is(err, m.Err) {
			return m.Status
		}
	}
	return http.StatusInternalServerError
}

// ErrorFromErr writes err with the status chosen by StatusFor.
// The message is passed through unchanged.
func ErrorFromErr(c *gin.Context, err error, mappings ...StatusMapping) {
	ErrorResponse(c, StatusFor(err, mappings...), err.Error())
}
