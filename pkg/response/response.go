package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skillmatch/backend/pkg/logger"
)

// Response is the unified API envelope. Error carries a stable reason code,
// Message a human-readable explanation.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

// AppError is a structured application error: an HTTP status, a stable
// machine-readable reason code, and a human-readable message.
type AppError struct {
	HTTPStatus int
	Reason     string
	Message    string
}

func (e *AppError) Error() string {
	return e.Message
}

// --- Error constructors, one per taxonomy entry ---

// NewValidation reports missing or malformed input (400).
func NewValidation(reason, msg string) *AppError {
	return &AppError{HTTPStatus: http.StatusBadRequest, Reason: reason, Message: msg}
}

// NewAuthentication reports a missing, invalid or expired credential (401).
func NewAuthentication(reason, msg string) *AppError {
	return &AppError{HTTPStatus: http.StatusUnauthorized, Reason: reason, Message: msg}
}

// NewForbidden reports a policy DENY (403).
func NewForbidden(reason, msg string) *AppError {
	return &AppError{HTTPStatus: http.StatusForbidden, Reason: reason, Message: msg}
}

// NewNotFound reports an absent resource (404).
func NewNotFound(reason, msg string) *AppError {
	return &AppError{HTTPStatus: http.StatusNotFound, Reason: reason, Message: msg}
}

// NewConflict reports a duplicate record. Mapped to 400, not 409, for
// compatibility with existing clients.
func NewConflict(reason, msg string) *AppError {
	return &AppError{HTTPStatus: http.StatusBadRequest, Reason: reason, Message: msg}
}

// --- Gin helpers ---

// Success sends a 200 OK envelope with data.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    data,
	})
}

// SuccessMessage sends a 200 OK envelope with data and a message.
func SuccessMessage(c *gin.Context, data interface{}, msg string) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    data,
		Message: msg,
	})
}

// Created sends a 201 Created envelope with data.
func Created(c *gin.Context, data interface{}, msg string) {
	c.JSON(http.StatusCreated, Response{
		Success: true,
		Data:    data,
		Message: msg,
	})
}

// Error sends an error envelope. An *AppError keeps its status and reason;
// anything else is logged and returned as a generic 500 so internals do not
// leak to clients.
func Error(c *gin.Context, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.HTTPStatus, Response{
			Success: false,
			Error:   appErr.Reason,
			Message: appErr.Message,
		})
		return
	}

	logger.Error().Err(err).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Msg("internal error")

	c.JSON(http.StatusInternalServerError, Response{
		Success: false,
		Error:   "internal_error",
		Message: "internal server error",
	})
}

// BadRequest is a shortcut for ad-hoc validation failures in handlers.
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, Response{
		Success: false,
		Error:   "validation_error",
		Message: msg,
	})
}

// Unauthorized is a shortcut for credential failures in middleware.
func Unauthorized(c *gin.Context, reason, msg string) {
	c.JSON(http.StatusUnauthorized, Response{
		Success: false,
		Error:   reason,
		Message: msg,
	})
}

// Forbidden is a shortcut for policy denials in middleware.
func Forbidden(c *gin.Context, reason, msg string) {
	c.JSON(http.StatusForbidden, Response{
		Success: false,
		Error:   reason,
		Message: msg,
	})
}
