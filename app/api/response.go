package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope is the response body shape shared by every endpoint.
type Envelope struct {
	Success bool                `json:"success"`
	Message string              `json:"message,omitempty"`
	Data    any                 `json:"data,omitempty"`
	Error   string              `json:"error,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data})
}

func OKMessage(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, Envelope{Success: true, Message: message, Data: data})
}

func Created(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, Envelope{Success: true, Message: message, Data: data})
}

func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Envelope{Success: false, Message: message})
}

func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, Envelope{Success: false, Message: message})
}

// ValidationFailed renders the per-field message map produced by a
// validator. The write never reached the store.
func ValidationFailed(c *gin.Context, errs map[string][]string) {
	c.JSON(http.StatusUnprocessableEntity, Envelope{
		Success: false,
		Message: "Validation errors",
		Errors:  errs,
	})
}

// Internal renders a store or other unexpected failure. The message
// gives the operation context, the error carries the underlying text.
func Internal(c *gin.Context, message string, err error) {
	c.JSON(http.StatusInternalServerError, Envelope{
		Success: false,
		Message: message,
		Error:   err.Error(),
	})
}
