package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

type ErrorBody struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

type AppError struct {
	Status  int
	Code    string
	Message string
	Details interface{}
}

func (e *AppError) Error() string {
	return e.Message
}

func NewAppError(status int, code, message string, details interface{}) *AppError {
	return &AppError{Status: status, Code: code, Message: message, Details: details}
}

// Error constructors for the fixed failure taxonomy. Login failures
// deliberately use one message for unknown username and wrong password.
func ErrValidation(message string) *AppError {
	return NewAppError(http.StatusBadRequest, "VALIDATION_ERROR", message, nil)
}

func ErrDuplicateUser() *AppError {
	return NewAppError(http.StatusBadRequest, "DUPLICATE_USER", "username already exists", nil)
}

func ErrInvalidCredentials() *AppError {
	return NewAppError(http.StatusBadRequest, "INVALID_CREDENTIALS", "invalid username or password", nil)
}

func ErrMissingToken() *AppError {
	return NewAppError(http.StatusUnauthorized, "MISSING_TOKEN", "missing bearer token", nil)
}

func ErrInvalidToken() *AppError {
	return NewAppError(http.StatusUnauthorized, "INVALID_TOKEN", "invalid bearer token", nil)
}

func ErrForbidden() *AppError {
	return NewAppError(http.StatusForbidden, "FORBIDDEN", "access denied", nil)
}

func ErrInternal(message string) *AppError {
	return NewAppError(http.StatusInternalServerError, "INTERNAL_ERROR", message, nil)
}

func RespondError(c *gin.Context, err error) {
	appErr, ok := err.(*AppError)
	if !ok {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: ErrorBody{
			Code:    "INTERNAL_ERROR",
			Message: "internal server error",
		}})
		return
	}

	c.JSON(appErr.Status, ErrorResponse{Error: ErrorBody{
		Code:    appErr.Code,
		Message: appErr.Message,
		Details: appErr.Details,
	}})
}

func RespondValidationError(c *gin.Context, details interface{}) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: ErrorBody{
		Code:    "VALIDATION_ERROR",
		Message: "invalid request",
		Details: details,
	}})
}

func RespondOK(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, payload)
}

func RespondMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"message": message})
}
