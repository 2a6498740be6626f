package internal

import (
	"encoding/json"
	"fmt"
	"net/http"
)

type ErrorType string

const (
	ErrorTypeValidation   ErrorType = "VALIDATION_ERROR"
	ErrorTypeNotFound     ErrorType = "NOT_FOUND"
	ErrorTypeUnauthorized ErrorType = "UNAUTHORIZED"
	ErrorTypeForbidden    ErrorType = "FORBIDDEN"
	ErrorTypeConflict     ErrorType = "CONFLICT"
	ErrorTypeInternal     ErrorType = "INTERNAL_ERROR"
	ErrorTypeExternal     ErrorType = "EXTERNAL_ERROR"
)

type ErrorCode string

const (
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrCodeInvalidDateRange ErrorCode = "INVALID_DATE_RANGE"
	ErrCodeInvalidRole      ErrorCode = "INVALID_ROLE"
	ErrCodeInvalidDisease   ErrorCode = "INVALID_DISEASE_CODE"
	ErrCodeInvalidQuota     ErrorCode = "INVALID_QUOTA"
	ErrCodeWeakPassword     ErrorCode = "WEAK_PASSWORD"

	ErrCodeBookingNotFound      ErrorCode = "BOOKING_NOT_FOUND"
	ErrCodeUserNotFound         ErrorCode = "USER_NOT_FOUND"
	ErrCodeMedicalLeaveNotFound ErrorCode = "MEDICAL_LEAVE_NOT_FOUND"
	ErrCodeClosedPeriodNotFound ErrorCode = "CLOSED_PERIOD_NOT_FOUND"

	ErrCodeBookingOverlap ErrorCode = "BOOKING_OVERLAP"
	ErrCodeRoleDayTaken   ErrorCode = "ROLE_DAY_TAKEN"
	ErrCodeUsernameTaken  ErrorCode = "USERNAME_TAKEN"

	ErrCodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	ErrCodeUserInactive       ErrorCode = "USER_INACTIVE"
	ErrCodeInvalidToken       ErrorCode = "INVALID_TOKEN"
	ErrCodeTokenExpired       ErrorCode = "TOKEN_EXPIRED"
	ErrCodeAdminOnly          ErrorCode = "ADMIN_ONLY"
)

type AppError struct {
	Type       ErrorType   `json:"type"`
	Code       ErrorCode   `json:"code"`
	Message    string      `json:"message"`
	Details    interface{} `json:"details,omitempty"`
	StatusCode int         `json:"-"`
	Cause      error       `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func (e *AppError) WithCause(cause error) *AppError {
	clone := *e
	clone.Cause = cause
	return &clone
}

func (e *AppError) WithDetails(details interface{}) *AppError {
	clone := *e
	clone.Details = details
	return &clone
}

func NewValidationError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

func NewNotFoundError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeNotFound,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusNotFound,
	}
}

func NewUnauthorizedError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeUnauthorized,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusUnauthorized,
	}
}

func NewForbiddenError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeForbidden,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusForbidden,
	}
}

func NewConflictError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeConflict,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusConflict,
	}
}

func NewInternalError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeInternal,
		Code:       "INTERNAL_ERROR",
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

var (
	ErrBookingNotFound      = NewNotFoundError("Rezervarea nu a fost găsită", ErrCodeBookingNotFound)
	ErrUserNotFound         = NewNotFoundError("Utilizatorul nu a fost găsit", ErrCodeUserNotFound)
	ErrMedicalLeaveNotFound = NewNotFoundError("Concediul medical nu a fost găsit", ErrCodeMedicalLeaveNotFound)
	ErrClosedPeriodNotFound = NewNotFoundError("Perioada de închidere nu a fost găsită", ErrCodeClosedPeriodNotFound)

	ErrStartAfterEnd  = NewValidationError("Data de început trebuie să fie înainte de data de sfârșit.", ErrCodeInvalidDateRange)
	ErrBookingOverlap = NewConflictError("Ai deja concediu în această perioadă.", ErrCodeBookingOverlap)
	ErrUsernameTaken  = NewConflictError("Username-ul există deja", ErrCodeUsernameTaken)

	ErrInvalidCredentials = NewUnauthorizedError("Username sau parolă incorectă.", ErrCodeInvalidCredentials)
	ErrUserInactive       = NewForbiddenError("Contul este dezactivat.", ErrCodeUserInactive)
	ErrInvalidToken       = NewUnauthorizedError("Token invalid", ErrCodeInvalidToken)
	ErrTokenExpired       = NewUnauthorizedError("Token expirat", ErrCodeTokenExpired)
	ErrAdminOnly          = NewForbiddenError("Operațiune permisă doar administratorilor.", ErrCodeAdminOnly)
)

func IsAppError(err error) (*AppError, bool) {
	if appErr, ok := err.(*AppError); ok {
		return appErr, true
	}
	return nil, false
}

type Response struct {
	Error *AppError `json:"error"`
}

func (e *AppError) ToHTTPResponse() (int, interface{}) {
	return e.StatusCode, Response{Error: e}
}

func (e *AppError) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    ErrorType   `json:"type"`
		Code    ErrorCode   `json:"code"`
		Message string      `json:"message"`
		Details interface{} `json:"details,omitempty"`
	}{
		Type:    e.Type,
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	})
}
