package errors

import (
	"fmt"
	"net/http"
)

// AppError represents a structured application error with user-friendly and technical details.
type AppError struct {
	TechnicalMessage string
	UserMessage      string
	Code             string
	HTTPStatus       int
	OriginalError    error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.OriginalError == nil {
		return fmt.Sprintf("%s: %s", e.Code, e.TechnicalMessage)
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.TechnicalMessage, e.OriginalError)
}

// Unwrap returns the original error for error chaining.
func (e *AppError) Unwrap() error {
	return e.OriginalError
}

// Is reports whether target is an AppError with the same code, so the
// sentinels below work with errors.Is.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// NewAppError creates a new AppError instance.
func NewAppError(technicalMessage, userMessage, code string, status int, originalErr error) *AppError {
	return &AppError{
		TechnicalMessage: technicalMessage,
		UserMessage:      userMessage,
		Code:             code,
		HTTPStatus:       status,
		OriginalError:    originalErr,
	}
}

// Common error codes
const (
	ErrCodeNetwork            = "NETWORK_ERROR"
	ErrCodeAuth               = "AUTH_ERROR"
	ErrCodeServer             = "SERVER_ERROR"
	ErrCodeMalformedData      = "MALFORMED_DATA"
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	ErrCodeRateLimited        = "RATE_LIMITED"
	ErrCodeInvalidParameters  = "INVALID_PARAMETERS"
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodeEmailTaken         = "EMAIL_TAKEN"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeInternal           = "INTERNAL_ERROR"
)

// Sentinels for errors.Is; only the code is compared.
var (
	ErrNetwork       = &AppError{Code: ErrCodeNetwork}
	ErrAuth          = &AppError{Code: ErrCodeAuth}
	ErrServer        = &AppError{Code: ErrCodeServer}
	ErrMalformedData = &AppError{Code: ErrCodeMalformedData}
)

// NewNetworkError wraps a transport failure (unreachable host, timeout, reset).
func NewNetworkError(technicalMessage string, err error) *AppError {
	return NewAppError(technicalMessage, MsgServiceUnavailable, ErrCodeNetwork, http.StatusServiceUnavailable, err)
}

// NewAuthError marks a rejected or expired credential.
func NewAuthError(technicalMessage string, status int) *AppError {
	return NewAppError(technicalMessage, MsgUnauthorized, ErrCodeAuth, status, nil)
}

// NewServerError marks a non-success response that is not an auth rejection.
func NewServerError(technicalMessage string, status int) *AppError {
	return NewAppError(technicalMessage, MsgServiceUnavailable, ErrCodeServer, status, nil)
}

// NewMalformedDataError marks a response body that does not have the listing shape.
func NewMalformedDataError(technicalMessage string, err error) *AppError {
	return NewAppError(technicalMessage, MsgServiceUnavailable, ErrCodeMalformedData, http.StatusBadGateway, err)
}

// NewInvalidParametersError marks a client input problem on the API side.
// The message is safe to show and is returned to the caller as is.
func NewInvalidParametersError(message string) *AppError {
	if message == "" {
		message = MsgInvalidParameters
	}
	return NewAppError(message, message, ErrCodeInvalidParameters, http.StatusBadRequest, nil)
}

func NewInvalidCredentialsError() *AppError {
	return NewAppError("email or password mismatch", MsgInvalidCredentials, ErrCodeInvalidCredentials, http.StatusUnauthorized, nil)
}

func NewEmailTakenError(email string) *AppError {
	return NewAppError("email already registered: "+email, MsgEmailTaken, ErrCodeEmailTaken, http.StatusConflict, nil)
}

func NewNotFoundError(technicalMessage string) *AppError {
	return NewAppError(technicalMessage, MsgListingNotFound, ErrCodeNotFound, http.StatusNotFound, nil)
}
