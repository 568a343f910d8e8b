package usecase

import (
	"context"
	"fmt"
	"time"

	"estate-marketplace/internal/data/entity"
	"estate-marketplace/internal/data/repository"
	"estate-marketplace/internal/dto/request"
	"estate-marketplace/internal/dto/response"
	"estate-marketplace/pkg/auth"
	"estate-marketplace/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	Me(ctx context.Context, userID string) (*response.UserResponse, error)
}

type authService struct {
	repo   *repository.Repository
	tokens *auth.TokenManager
	log    *zap.Logger
}

func NewAuthService(repo *repository.Repository, tokens *auth.TokenManager, log *zap.Logger) AuthService {
	return &authService{
		repo:   repo,
		tokens: tokens,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	role, ok := entity.ParseRole(req.Role)
	if !ok || role == entity.RoleAdmin {
		return nil, fmt.Errorf("invalid role %s", req.Role)
	}

	// Check email already registered
	existingUser, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existingUser != nil {
		return nil, fmt.Errorf("email already registered")
	}

	// Check username taken
	existingUser, err = s.repo.User.FindByUsername(ctx, req.Username)
	if err != nil {
		s.log.Error("Failed to check username", zap.Error(err), zap.String("username", req.Username))
		return nil, fmt.Errorf("check username: %w", err)
	}
	if existingUser != nil {
		return nil, fmt.Errorf("username already taken")
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("process password")
	}

	// Providers enter the admin verification queue; seekers are usable
	// immediately.
	verification := entity.VerificationApproved
	if role == entity.RoleProvider {
		verification = entity.VerificationPending
	}

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Phone:        req.Phone,
		Role:         role,
		Verification: verification,
		IsActive:     true,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("create user: %w", err)
	}

	token, err := s.tokens.Generate(user.ID.String(), string(user.Role))
	if err != nil {
		s.log.Error("Failed to generate token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("generate token: %w", err)
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("role", string(user.Role)),
	)

	return &response.AuthResponse{
		Token: token,
		User:  response.UserToResponse(user),
	}, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user for login", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("login: %w", err)
	}
	if user == nil || !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, fmt.Errorf("invalid email or password")
	}
	if !user.IsActive {
		return nil, fmt.Errorf("account is deactivated")
	}

	token, err := s.tokens.Generate(user.ID.String(), string(user.Role))
	if err != nil {
		s.log.Error("Failed to generate token", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("generate token: %w", err)
	}

	s.log.Info("User logged in", zap.String("user_id", user.ID.String()))

	return &response.AuthResponse{
		Token: token,
		User:  response.UserToResponse(user),
	}, nil
}

func (s *authService) Me(ctx context.Context, userID string) (*response.UserResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	user, err := s.repo.User.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get user", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}
