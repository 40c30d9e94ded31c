package errors

import (
	"context"
	stderrors "errors"
	"net/http"
	"strings"
)

// MapError converts a technical error into a user-friendly AppError.
func MapError(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if stderrors.As(err, &appErr) {
		if appErr.UserMessage == "" {
			appErr.UserMessage = MsgInternalError
		}
		if appErr.HTTPStatus == 0 {
			appErr.HTTPStatus = http.StatusInternalServerError
		}
		return appErr
	}

	technicalMessage := err.Error()

	switch {
	case stderrors.Is(err, context.DeadlineExceeded):
		return NewAppError(technicalMessage, MsgServiceUnavailable, ErrCodeServiceUnavailable, http.StatusServiceUnavailable, err)
	case strings.Contains(technicalMessage, "database query failed"),
		strings.Contains(technicalMessage, "server selection error"):
		return NewAppError(technicalMessage, MsgListingsUnavailable, ErrCodeServiceUnavailable, http.StatusServiceUnavailable, err)
	case strings.Contains(technicalMessage, "rate limit exceeded"):
		return NewAppError(technicalMessage, MsgRateLimited, ErrCodeRateLimited, http.StatusTooManyRequests, err)
	default:
		return NewAppError(technicalMessage, MsgInternalError, ErrCodeInternal, http.StatusInternalServerError, err)
	}
}
