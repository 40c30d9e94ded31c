package validators

import (
	"regexp"
	"strings"

	apperrors "homeinsight-catalog/internal/errors"
	"homeinsight-catalog/internal/models"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type userValidator struct{}

func NewUserValidator() UserValidator {
	return &userValidator{}
}

func (v *userValidator) ValidateRegister(req *models.RegisterRequest) error {
	name := strings.TrimSpace(req.FullName)
	if name == "" || req.Email == "" || req.Password == "" {
		return apperrors.NewInvalidParametersError("full name, email, and password are required")
	}
	if len(name) < 2 || len(name) > 100 {
		return apperrors.NewInvalidParametersError("full name must be between 2 and 100 characters")
	}
	if !isValidEmail(req.Email) {
		return apperrors.NewInvalidParametersError("invalid email format")
	}
	return validatePassword(req.Password)
}

func (v *userValidator) ValidateLogin(req *models.LoginRequest) error {
	if req.Email == "" || req.Password == "" {
		return apperrors.NewInvalidParametersError("email and password are required")
	}
	if !isValidEmail(req.Email) {
		return apperrors.NewInvalidParametersError("invalid email format")
	}
	return validatePassword(req.Password)
}

func validatePassword(password string) error {
	if len(password) < 6 || len(password) > 72 {
		return apperrors.NewInvalidParametersError("password must be between 6 and 72 characters")
	}
	return nil
}

func isValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}
