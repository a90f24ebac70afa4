package dto

import (
	"github.com/gin-gonic/gin"

	"github.com/campuslms/rewards-api/internal/apperror"
)

// Envelope is the body shape every endpoint returns, success or failure.
// The HTTP status always mirrors StatusCode.
type Envelope struct {
	Message    string `json:"message"`
	Data       any    `json:"data"`
	StatusCode int    `json:"statusCode"`
}

// Respond writes a success envelope.
func Respond(c *gin.Context, statusCode int, message string, data any) {
	c.JSON(statusCode, Envelope{
		Message:    message,
		Data:       data,
		StatusCode: statusCode,
	})
}

// RespondError converts a domain error into the envelope. Non-domain errors
// collapse to a generic 500 so internals never reach the caller.
func RespondError(c *gin.Context, err error) {
	status := apperror.KindOf(err).HTTPStatus()
	c.JSON(status, Envelope{
		Message:    apperror.MessageOf(err),
		Data:       nil,
		StatusCode: status,
	})
}

// AbortError is RespondError for middleware: it also stops the handler chain.
func AbortError(c *gin.Context, err error) {
	status := apperror.KindOf(err).HTTPStatus()
	c.AbortWithStatusJSON(status, Envelope{
		Message:    apperror.MessageOf(err),
		Data:       nil,
		StatusCode: status,
	})
}
