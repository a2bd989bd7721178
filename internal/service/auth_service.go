package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"hostel-management-backend/internal/models"
	"hostel-management-backend/internal/repository"
	"hostel-management-backend/pkg/utils"
)

type AuthService struct {
	mu         sync.Mutex
	users      repository.Store[models.User]
	tokens     repository.Store[models.RefreshToken]
	activities *ActivityService
	now        Clock
}

func NewAuthService(
	users repository.Store[models.User],
	tokens repository.Store[models.RefreshToken],
	activities *ActivityService,
	now Clock,
) *AuthService {
	return &AuthService{
		users:      users,
		tokens:     tokens,
		activities: activities,
		now:        now.orDefault(),
	}
}

// SignupInput is the body of an account signup
type SignupInput struct {
	Name         string `json:"name" binding:"required,max=255"`
	Email        string `json:"email" binding:"required,email"`
	Phone        string `json:"phone" binding:"max=50"`
	BusinessName string `json:"business_name" binding:"max=255"`
	BusinessType string `json:"business_type" binding:"max=100"`
	Password     string `json:"password" binding:"required,min=8,max=72"`
}

// LoginResponse represents the response structure for login
type LoginResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         *models.User `json:"user"`
}

// Signup creates an account and signs it in. The first account owns the
// business; later accounts are managers.
func (s *AuthService) Signup(ctx context.Context, in SignupInput) (*LoginResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	email := normalizeEmail(in.Email)
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	for _, u := range users {
		if u.Email == email {
			return nil, ErrEmailTaken
		}
	}

	passwordHash, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := models.RoleManager
	if len(users) == 0 {
		role = models.RoleOwner
	}
	user := &models.User{
		Name:         in.Name,
		Email:        email,
		Phone:        in.Phone,
		BusinessName: in.BusinessName,
		BusinessType: in.BusinessType,
		Role:         role,
		PasswordHash: passwordHash,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	resp, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	s.activities.Record(ctx, user.ID, models.ActivityAuth, "%s joined as %s", user.Name, user.Role)
	return resp, nil
}

// Login authenticates a user and returns tokens
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	email = normalizeEmail(email)
	user, err := repository.FindFirst(ctx, s.users, func(u *models.User) bool { return u.Email == email })
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !utils.ComparePassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	resp, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	s.activities.Record(ctx, user.ID, models.ActivityAuth, "%s signed in", user.Name)
	return resp, nil
}

// Refresh generates a new access token from a refresh token
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	token, err := s.findToken(ctx, refreshToken)
	if err != nil {
		return "", err
	}
	if token.Revoked || !s.now().Before(token.ExpiresAt) {
		return "", ErrInvalidToken
	}

	user, err := s.users.Get(ctx, token.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		return "", ErrInvalidToken
	}
	if err != nil {
		return "", fmt.Errorf("failed to load user: %w", err)
	}

	accessToken, err := utils.GenerateAccessToken(user.ID, string(user.Role))
	if err != nil {
		return "", fmt.Errorf("failed to generate access token: %w", err)
	}
	return accessToken, nil
}

// Logout revokes a refresh token
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	token, err := s.findToken(ctx, refreshToken)
	if err != nil {
		return err
	}
	if token.Revoked {
		return nil
	}

	token.Revoked = true
	if err := s.tokens.Update(ctx, token); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}

// Me returns the signed-in user
func (s *AuthService) Me(ctx context.Context, userID int64) (*models.User, error) {
	return s.users.Get(ctx, userID)
}

func (s *AuthService) issueTokens(ctx context.Context, user *models.User) (*LoginResponse, error) {
	accessToken, err := utils.GenerateAccessToken(user.ID, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken := utils.GenerateRefreshToken()
	now := s.now().UTC()
	record := &models.RefreshToken{
		UserID:    user.ID,
		TokenHash: utils.HashRefreshToken(refreshToken),
		ExpiresAt: now.Add(utils.GetRefreshTokenExpiry()),
		CreatedAt: now,
	}
	if err := s.tokens.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

func (s *AuthService) findToken(ctx context.Context, refreshToken string) (*models.RefreshToken, error) {
	hash := utils.HashRefreshToken(refreshToken)
	token, err := repository.FindFirst(ctx, s.tokens, func(t *models.RefreshToken) bool { return t.TokenHash == hash })
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidToken
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find refresh token: %w", err)
	}
	return token, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
