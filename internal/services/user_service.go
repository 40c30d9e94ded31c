package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"homeinsight-catalog/internal/auth"
	apperrors "homeinsight-catalog/internal/errors"
	"homeinsight-catalog/internal/models"
	"homeinsight-catalog/internal/repositories"
	"homeinsight-catalog/internal/validators"
	"homeinsight-catalog/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	repo      repositories.UserRepository
	validator validators.UserValidator
	secret    string
	cost      int
}

func NewUserService(repo repositories.UserRepository, validator validators.UserValidator, jwtSecret string) *UserService {
	return &UserService{
		repo:      repo,
		validator: validator,
		secret:    jwtSecret,
		cost:      bcrypt.DefaultCost,
	}
}

func (s *UserService) Register(ctx context.Context, req *models.RegisterRequest) (*models.TokenDetails, error) {
	if err := s.validator.ValidateRegister(req); err != nil {
		return nil, err
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.repo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("database query failed: %v", err)
	}
	if existing != nil {
		return nil, apperrors.NewEmailTakenError(email)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %v", err)
	}

	user := &models.User{
		ID:       primitive.NewObjectID(),
		FullName: strings.TrimSpace(req.FullName),
		Email:    email,
		Password: string(hashed),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, apperrors.NewEmailTakenError(email)
		}
		return nil, fmt.Errorf("database query failed: %v", err)
	}

	logger.GlobalLogger.Printf("User registered: id=%s", user.ID.Hex())
	return auth.GenerateJWT(user.ID.Hex(), user.FullName, user.Email, s.secret)
}

func (s *UserService) Login(ctx context.Context, req *models.LoginRequest) (*models.TokenDetails, error) {
	if err := s.validator.ValidateLogin(req); err != nil {
		return nil, err
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.repo.FindByEmail(ctx, email)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.NewInvalidCredentialsError()
	}
	if err != nil {
		return nil, fmt.Errorf("database query failed: %v", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, apperrors.NewInvalidCredentialsError()
	}

	return auth.GenerateJWT(user.ID.Hex(), user.FullName, user.Email, s.secret)
}
