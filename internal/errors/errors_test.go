package errors

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelsMatchByCode(t *testing.T) {
	err := fmt.Errorf("fetch listings: %w", NewAuthError("token expired", http.StatusUnauthorized))

	assert.True(t, stderrors.Is(err, ErrAuth))
	assert.False(t, stderrors.Is(err, ErrNetwork))
	assert.False(t, stderrors.Is(err, ErrServer))
}

func TestNetworkErrorUnwrapsOriginal(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := NewNetworkError("GET /listings", cause)

	assert.True(t, stderrors.Is(err, ErrNetwork))
	assert.True(t, stderrors.Is(err, cause))
	assert.Contains(t, err.Error(), "connection refused")
}

func TestMapErrorPassesAppErrorThrough(t *testing.T) {
	orig := NewInvalidParametersError("search too long")
	mapped := MapError(fmt.Errorf("wrapped: %w", orig))

	require.NotNil(t, mapped)
	assert.Equal(t, ErrCodeInvalidParameters, mapped.Code)
	assert.Equal(t, http.StatusBadRequest, mapped.HTTPStatus)
}

func TestMapErrorClassifiesPlainErrors(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		code   string
		status int
	}{
		{"deadline", fmt.Errorf("find: %w", context.DeadlineExceeded), ErrCodeServiceUnavailable, http.StatusServiceUnavailable},
		{"database", stderrors.New("database query failed: boom"), ErrCodeServiceUnavailable, http.StatusServiceUnavailable},
		{"other", stderrors.New("nil pointer somewhere"), ErrCodeInternal, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mapped := MapError(tc.err)
			assert.Equal(t, tc.code, mapped.Code)
			assert.Equal(t, tc.status, mapped.HTTPStatus)
			assert.NotEmpty(t, mapped.UserMessage)
		})
	}
}

func TestMapErrorNil(t *testing.T) {
	assert.Nil(t, MapError(nil))
}
