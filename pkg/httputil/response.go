package httputil

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/healthnet/admin-api/pkg/errors"
)

// Every facade response is the flat envelope {"success": bool,
// "message"?: string, <payload>}. Payload keys are merged at the top level
// rather than nested, which is what the UI layer consumes.

// ErrorBody describes a failed operation inside the envelope.
type ErrorBody struct {
	Kind    errors.Kind `json:"kind"`
	Message string      `json:"message"`
}

func envelope(payload gin.H) gin.H {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	return body
}

// OK writes a 200 success envelope with the payload merged in.
func OK(c *gin.Context, payload gin.H) {
	c.JSON(http.StatusOK, envelope(payload))
}

// Created writes a 201 success envelope with the payload merged in.
func Created(c *gin.Context, payload gin.H) {
	c.JSON(http.StatusCreated, envelope(payload))
}

// Message writes a 200 success envelope carrying only a message.
func Message(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": msg})
}

// Error writes a failure envelope. The HTTP status comes from the error's
// kind; unknown errors map to 500 without leaking their cause.
func Error(c *gin.Context, err error) {
	appErr := errors.As(err)
	c.JSON(appErr.HTTPStatus(), gin.H{
		"success": false,
		"message": appErr.Message,
		"error":   ErrorBody{Kind: appErr.Kind, Message: appErr.Message},
	})
}
