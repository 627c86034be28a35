package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, APIResponse{
		Status:  "success",
		Code:    http.StatusCreated,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError translates service sentinels into HTTP responses.
// Validation errors map to 400, permission errors to 403, missing resources
// to 404; anything unrecognized is a 500 and gets logged.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound),
		errors.Is(err, ErrAccountNotFound):
		RespondError(c, http.StatusNotFound, err.Error())

	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, err.Error())

	case errors.Is(err, ErrPermissionDenied),
		errors.Is(err, ErrReadersOnly),
		errors.Is(err, ErrJournalistRequired),
		errors.Is(err, ErrEditorRequired),
		errors.Is(err, ErrPublisherRequired),
		errors.Is(err, ErrNotSubscribed),
		errors.Is(err, ErrWrongPublisher),
		errors.Is(err, ErrStaffOnly):
		RespondError(c, http.StatusForbidden, err.Error())

	case errors.Is(err, ErrInvalidPage),
		errors.Is(err, ErrEmailAlreadyExists),
		errors.Is(err, ErrUsernameTaken),
		errors.Is(err, ErrPasswordMismatch),
		errors.Is(err, ErrEmptyTitle),
		errors.Is(err, ErrTitleTooLong),
		errors.Is(err, ErrEmptyContent),
		errors.Is(err, ErrPendingApplication),
		errors.Is(err, ErrInvalidRole),
		errors.Is(err, ErrInvalidResetToken),
		errors.Is(err, ErrResetTokenExpired):
		RespondError(c, http.StatusBadRequest, err.Error())

	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")

	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
