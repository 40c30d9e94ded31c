package handlers

import (
	"context"
	"net/http"
	"strings"

	apperrors "homeinsight-catalog/internal/errors"
	"homeinsight-catalog/internal/middleware"
	"homeinsight-catalog/internal/models"
	"homeinsight-catalog/internal/services"
	"homeinsight-catalog/pkg/cache"

	"github.com/gin-gonic/gin"
)

// MaxImportBatch caps the number of records accepted by one import request.
const MaxImportBatch = 1000

type ListingSearcher interface {
	Search(ctx context.Context, term string, scope cache.Scope) ([]models.Listing, bool, error)
}

type ListingImporter interface {
	Import(ctx context.Context, records []services.ImportListing) (*services.ImportResult, error)
	Delete(ctx context.Context, id string) error
}

type ListingHandler struct {
	searcher ListingSearcher
	importer ListingImporter
}

func NewListingHandler(searcher ListingSearcher, importer ListingImporter) *ListingHandler {
	return &ListingHandler{searcher: searcher, importer: importer}
}

// GetListings godoc
// @Summary Search all listings
// @Description Listings whose title, city, address or description contain the search term, exclusive listings included
// @Tags Listings
// @Produce json
// @Param search query string false "Search term, empty for all"
// @Security BearerAuth
// @Success 200 {array} models.Listing
// @Failure 401 {object} map[string]any
// @Router /listings [get]
func (h *ListingHandler) GetListings(c *gin.Context) {
	h.search(c, cache.ScopePrivileged)
}

// GetPublicListings godoc
// @Summary Search public listings
// @Description Same as /listings without exclusive listings and without authentication
// @Tags Listings
// @Produce json
// @Param search query string false "Search term, empty for all"
// @Success 200 {array} models.Listing
// @Router /listings/public [get]
func (h *ListingHandler) GetPublicListings(c *gin.Context) {
	h.search(c, cache.ScopePublic)
}

func (h *ListingHandler) search(c *gin.Context, scope cache.Scope) {
	listings, hit, err := h.searcher.Search(c.Request.Context(), c.Query("search"), scope)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if listings == nil {
		listings = []models.Listing{}
	}
	c.Set(middleware.ContextCacheHit, hit)
	c.JSON(http.StatusOK, listings)
}

// ImportListings godoc
// @Summary Import listings
// @Description Upserts listings by id; invalid records are reported and skipped
// @Tags Listings
// @Accept json
// @Produce json
// @Param listings body []services.ImportListing true "Listings"
// @Security BearerAuth
// @Success 200 {object} services.ImportResult
// @Failure 400 {object} map[string]any
// @Router /listings [post]
func (h *ListingHandler) ImportListings(c *gin.Context) {
	var records []services.ImportListing
	if err := c.ShouldBindJSON(&records); err != nil {
		_ = c.Error(apperrors.NewInvalidParametersError("request body must be a JSON array of listings"))
		return
	}
	if len(records) > MaxImportBatch {
		_ = c.Error(apperrors.NewInvalidParametersError("too many listings in one request"))
		return
	}

	result, err := h.importer.Import(c.Request.Context(), records)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// DeleteListing godoc
// @Summary Delete a listing
// @Tags Listings
// @Param id path string true "Listing ID"
// @Security BearerAuth
// @Success 204
// @Failure 404 {object} map[string]any
// @Router /listings/{id} [delete]
func (h *ListingHandler) DeleteListing(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		_ = c.Error(apperrors.NewInvalidParametersError("listing id is required"))
		return
	}
	if err := h.importer.Delete(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
