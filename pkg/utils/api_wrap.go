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

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

// HandleServiceError maps service sentinels onto HTTP responses.
func HandleServiceError(c *gin.Context, err error) {
	var detail *ValidationDetailError

	switch {
	case errors.As(err, &detail):
		RespondError(c, http.StatusUnprocessableEntity, detail.Error())
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, "Invalid input")
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, ErrNotAuthenticated):
		RespondError(c, http.StatusUnauthorized, "Sign-in required")
	case errors.Is(err, ErrAccountNotFound):
		RespondError(c, http.StatusNotFound, "Account not found")
	case errors.Is(err, ErrCategoryNotFound):
		RespondError(c, http.StatusNotFound, "Trade category not found")
	case errors.Is(err, ErrStateNotFound):
		RespondError(c, http.StatusNotFound, "State not found")
	case errors.Is(err, ErrSessionNotFound):
		RespondError(c, http.StatusNotFound, "Wizard session not found or expired")
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusConflict, "An account with this email already exists")
	case errors.Is(err, ErrNoQuestionsConfigured):
		RespondError(c, http.StatusUnprocessableEntity,
			"This category has no posting questions configured. Choose another category or contact support.")
	case errors.Is(err, ErrStepIncomplete):
		RespondError(c, http.StatusUnprocessableEntity, "Please complete the highlighted fields before continuing")
	case errors.Is(err, ErrAccountChoice):
		RespondError(c, http.StatusConflict, "Choose whether to create an account or sign in before continuing")
	case errors.Is(err, ErrWizardSuspended):
		RespondError(c, http.StatusConflict, "This posting is waiting for sign-in to complete")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
