package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apperrors "homeinsight-catalog/internal/errors"
	"homeinsight-catalog/internal/middleware"
	"homeinsight-catalog/internal/models"
	"homeinsight-catalog/internal/services"
	"homeinsight-catalog/pkg/cache"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeSearcher struct {
	scope cache.Scope
	term  string
	out   []models.Listing
	hit   bool
	err   error
}

func (f *fakeSearcher) Search(_ context.Context, term string, scope cache.Scope) ([]models.Listing, bool, error) {
	f.term, f.scope = term, scope
	return f.out, f.hit, f.err
}

type fakeImporter struct {
	records []services.ImportListing
	deleted string
	err     error
}

func (f *fakeImporter) Import(_ context.Context, records []services.ImportListing) (*services.ImportResult, error) {
	f.records = records
	if f.err != nil {
		return nil, f.err
	}
	return &services.ImportResult{Imported: len(records), Rejected: []string{}}, nil
}

func (f *fakeImporter) Delete(_ context.Context, id string) error {
	f.deleted = id
	return f.err
}

type fakeAuthenticator struct {
	err error
}

func (f *fakeAuthenticator) Register(context.Context, *models.RegisterRequest) (*models.TokenDetails, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.TokenDetails{Token: "t", TokenType: "Bearer", ExpiresIn: "86400"}, nil
}

func (f *fakeAuthenticator) Login(ctx context.Context, req *models.LoginRequest) (*models.TokenDetails, error) {
	return f.Register(ctx, nil)
}

func listingRouter(s ListingSearcher, i ListingImporter) *gin.Engine {
	h := NewListingHandler(s, i)
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.GET("/api/listings", h.GetListings)
	r.GET("/api/listings/public", h.GetPublicListings)
	r.POST("/api/listings", h.ImportListings)
	r.DELETE("/api/listings/:id", h.DeleteListing)
	return r
}

func do(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSearchEndpointsPickScope(t *testing.T) {
	s := &fakeSearcher{out: []models.Listing{{ID: "1", Title: "Loft", Photos: []string{}, Exclusive: true}}}
	r := listingRouter(s, &fakeImporter{})

	w := do(r, http.MethodGet, "/api/listings?search=loft", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, cache.ScopePrivileged, s.scope)
	assert.Equal(t, "loft", s.term)
	assert.NotContains(t, w.Body.String(), "xclusive")

	var got []models.Listing
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got, 1)

	do(r, http.MethodGet, "/api/listings/public?search=", "")
	assert.Equal(t, cache.ScopePublic, s.scope)
	assert.Equal(t, "", s.term)
}

func TestSearchEmptyResultIsArray(t *testing.T) {
	r := listingRouter(&fakeSearcher{}, &fakeImporter{})

	w := do(r, http.MethodGet, "/api/listings/public", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestSearchErrorGoesThroughErrorHandler(t *testing.T) {
	s := &fakeSearcher{err: apperrors.NewInvalidParametersError("search term exceeds 200 characters")}
	r := listingRouter(s, &fakeImporter{})

	w := do(r, http.MethodGet, "/api/listings/public?search=x", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), apperrors.ErrCodeInvalidParameters)
}

func TestImportListings(t *testing.T) {
	imp := &fakeImporter{}
	r := listingRouter(&fakeSearcher{}, imp)

	w := do(r, http.MethodPost, "/api/listings", `[{"id":"a","title":"Casa","exclusive":true},{"id":"b","title":"Loft"}]`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, imp.records, 2)
	assert.True(t, imp.records[0].Exclusive)
	assert.False(t, imp.records[1].Exclusive)
	assert.JSONEq(t, `{"imported":2,"rejected":[]}`, w.Body.String())

	w = do(r, http.MethodPost, "/api/listings", `{"id":"a"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteListing(t *testing.T) {
	imp := &fakeImporter{}
	r := listingRouter(&fakeSearcher{}, imp)

	w := do(r, http.MethodDelete, "/api/listings/abc", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "abc", imp.deleted)

	imp.err = apperrors.NewNotFoundError("listing zz not found")
	w = do(r, http.MethodDelete, "/api/listings/zz", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUserHandler(t *testing.T) {
	a := &fakeAuthenticator{}
	h := NewUserHandler(a)
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.POST("/api/register", h.Register)
	r.POST("/api/login", h.Login)

	w := do(r, http.MethodPost, "/api/register", `{"full_name":"Ana","email":"ana@example.com","password":"secret1"}`)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = do(r, http.MethodPost, "/api/login", `{"email":"ana@example.com","password":"secret1"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var tok models.TokenDetails
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tok))
	assert.Equal(t, "t", tok.Token)

	w = do(r, http.MethodPost, "/api/login", `{"email":"not-an-email"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	a.err = apperrors.NewInvalidCredentialsError()
	w = do(r, http.MethodPost, "/api/login", `{"email":"ana@example.com","password":"secret1"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
