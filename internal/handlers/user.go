package handlers

import (
	"context"
	"net/http"

	apperrors "homeinsight-catalog/internal/errors"
	"homeinsight-catalog/internal/models"

	"github.com/gin-gonic/gin"
)

type Authenticator interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.TokenDetails, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.TokenDetails, error)
}

type UserHandler struct {
	users Authenticator
}

func NewUserHandler(users Authenticator) *UserHandler {
	return &UserHandler{users: users}
}

// Register godoc
// @Summary Register a new user
// @Tags Authentication
// @Accept json
// @Produce json
// @Param user body models.RegisterRequest true "User registration data"
// @Success 201 {object} models.TokenDetails
// @Failure 400 {object} map[string]any
// @Failure 409 {object} map[string]any
// @Router /register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.NewInvalidParametersError("full name, email, and password are required"))
		return
	}

	token, err := h.users.Register(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, token)
}

// Login godoc
// @Summary Login user
// @Description Authenticate user and return JWT token
// @Tags Authentication
// @Accept json
// @Produce json
// @Param credentials body models.LoginRequest true "Login credentials"
// @Success 200 {object} models.TokenDetails
// @Failure 401 {object} map[string]any
// @Router /login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.NewInvalidParametersError("email and password are required"))
		return
	}

	token, err := h.users.Login(c.Request.Context(), &req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, token)
}
