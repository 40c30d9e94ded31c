package validators

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "homeinsight-catalog/internal/errors"
	"homeinsight-catalog/internal/models"
)

func isInvalidParameters(err error) bool {
	var appErr *apperrors.AppError
	return stderrors.As(err, &appErr) && appErr.Code == apperrors.ErrCodeInvalidParameters
}

func TestValidateSearch(t *testing.T) {
	v := NewListingValidator()

	assert.NoError(t, v.ValidateSearch(""))
	assert.NoError(t, v.ValidateSearch(strings.Repeat("á", MaxSearchLength)))
	assert.True(t, isInvalidParameters(v.ValidateSearch(strings.Repeat("a", MaxSearchLength+1))))
}

func TestValidateImport(t *testing.T) {
	v := NewListingValidator()

	assert.NoError(t, v.ValidateImport(&models.Listing{ID: "1", Title: "Casa"}))
	assert.True(t, isInvalidParameters(v.ValidateImport(&models.Listing{Title: "Casa"})))
	assert.True(t, isInvalidParameters(v.ValidateImport(&models.Listing{ID: "1", Title: " "})))
	assert.True(t, isInvalidParameters(v.ValidateImport(&models.Listing{ID: "1", Title: "Casa", Value: -1})))
}

func TestValidateRegister(t *testing.T) {
	v := NewUserValidator()
	valid := models.RegisterRequest{FullName: "Ana Souza", Email: "ana@example.com", Password: "secret1"}
	assert.NoError(t, v.ValidateRegister(&valid))

	cases := map[string]models.RegisterRequest{
		"missing name":   {Email: "ana@example.com", Password: "secret1"},
		"short name":     {FullName: "A", Email: "ana@example.com", Password: "secret1"},
		"bad email":      {FullName: "Ana", Email: "ana.example.com", Password: "secret1"},
		"short password": {FullName: "Ana", Email: "ana@example.com", Password: "123"},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			assert.True(t, isInvalidParameters(v.ValidateRegister(&req)))
		})
	}
}

func TestValidateLogin(t *testing.T) {
	v := NewUserValidator()
	assert.NoError(t, v.ValidateLogin(&models.LoginRequest{Email: "ana@example.com", Password: "secret1"}))
	assert.Error(t, v.ValidateLogin(&models.LoginRequest{Email: "ana@example.com"}))
	assert.Error(t, v.ValidateLogin(&models.LoginRequest{Email: "nope", Password: "secret1"}))
}

func TestValidateSearchRejectsInvalidUTF8(t *testing.T) {
	v := NewListingValidator()

	assert.True(t, isInvalidParameters(v.ValidateSearch("casa\xff")))
	assert.True(t, isInvalidParameters(v.ValidateSearch("\xc3")))
	assert.NoError(t, v.ValidateSearch("São Paulo"))
}
