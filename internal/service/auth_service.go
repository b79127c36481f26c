package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dayvsonmarques/web-cardapio-sub001/internal/domain"
	"github.com/dayvsonmarques/web-cardapio-sub001/internal/dto"
	"github.com/dayvsonmarques/web-cardapio-sub001/internal/repository"
	"github.com/dayvsonmarques/web-cardapio-sub001/internal/utils"
)

// authService implements AuthService interface
type authService struct {
	userRepo         repository.UserRepository
	sessions         *utils.SessionManager
	blacklistService *SessionBlacklistService
	bcryptCost       int
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo repository.UserRepository,
	sessions *utils.SessionManager,
	blacklistService *SessionBlacklistService,
	bcryptCost int,
) AuthService {
	return &authService{
		userRepo:         userRepo,
		sessions:         sessions,
		blacklistService: blacklistService,
		bcryptCost:       bcryptCost,
	}
}

// Register registers a new user
func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.SessionResponse, error) {
	if !utils.ValidateEmail(req.Email) {
		return nil, fmt.Errorf("invalid email format")
	}

	if !utils.ValidatePassword(req.Password) {
		return nil, fmt.Errorf("password must be at least 8 characters long and contain uppercase, lowercase, and number")
	}

	// Check if user already exists
	_, err := s.userRepo.GetByEmail(ctx, utils.SanitizeEmail(req.Email))
	if err == nil {
		return nil, fmt.Errorf("user with email %s already exists", req.Email)
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to check user existence: %w", err)
	}

	passwordHash, err := utils.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Email:        utils.SanitizeEmail(req.Email),
		Name:         req.Name,
		PasswordHash: passwordHash,
		IsActive:     true,
	}

	err = s.userRepo.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.newSessionResponse(user)
}

// Login authenticates a user
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.SessionResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, utils.SanitizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("invalid email or password")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !user.IsActive {
		return nil, fmt.Errorf("user account is inactive")
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, fmt.Errorf("invalid email or password")
	}

	err = s.userRepo.UpdateLastLogin(ctx, user.ID)
	if err != nil {
		// Log error but don't fail the login
		_ = err
	}

	return s.newSessionResponse(user)
}

// Logout blacklists the presented session token. The token itself stays
// structurally valid until expiry; only the blacklist stops it.
func (s *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	err := s.blacklistService.AddToken(ctx, token, s.sessions.TokenTTL())
	if err != nil {
		return fmt.Errorf("failed to blacklist session: %w", err)
	}

	return nil
}

// GetUser gets user information
func (s *authService) GetUser(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	response := &dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		IsAdmin:   user.IsAdmin,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
		UpdatedAt: user.UpdatedAt.Format(time.RFC3339),
	}

	if user.LastLoginAt != nil {
		lastLogin := user.LastLoginAt.Format(time.RFC3339)
		response.LastLoginAt = &lastLogin
	}

	return response, nil
}

// ValidateSession validates a session token against the signing scheme and
// the blacklist
func (s *authService) ValidateSession(ctx context.Context, token string) (*domain.SessionClaims, error) {
	isBlacklisted, err := s.blacklistService.IsTokenBlacklisted(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to check session blacklist: %w", err)
	}
	if isBlacklisted {
		return nil, fmt.Errorf("session is revoked")
	}

	claims, err := s.sessions.Verify(token)
	if err != nil {
		return nil, fmt.Errorf("invalid session: %w", err)
	}

	return claims, nil
}

func (s *authService) newSessionResponse(user *domain.User) (*dto.SessionResponse, error) {
	token, err := s.sessions.Issue(domain.SessionClaims{
		UserID:  user.ID,
		Email:   user.Email,
		Name:    user.Name,
		IsAdmin: user.IsAdmin,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to issue session token: %w", err)
	}

	return &dto.SessionResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: s.sessions.TokenTTLSeconds(),
		User: dto.UserInfo{
			ID:      user.ID,
			Email:   user.Email,
			Name:    user.Name,
			IsAdmin: user.IsAdmin,
		},
	}, nil
}
