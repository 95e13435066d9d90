package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"goblog/internal/apperrors"
	"goblog/internal/config"
	"goblog/internal/models"
	"goblog/internal/repository"
)

type AuthService interface {
	Register(ctx context.Context, req repository.CreateUserRequest) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	IssueToken(userID string) (string, error)
	ParseToken(tokenString string) (string, error)
}

type authService struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewAuthService(userRepo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

func (s *authService) Register(ctx context.Context, req repository.CreateUserRequest) (*models.User, string, error) {
	existingUser, err := s.userRepo.GetUserByEmail(ctx, req.Email)
	if err == nil && existingUser != nil {
		return nil, "", apperrors.New(apperrors.KindConflict,
			"User with this email or username already exists")
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
	}

	// the store enforces username uniqueness via its constraint
	err = s.userRepo.CreateUser(ctx, user, req.Password)
	if err != nil {
		return nil, "", err
	}

	token, err := s.IssueToken(user.UserID)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.userRepo.VerifyPassword(ctx, email, password)
	if err != nil {
		return nil, "", err
	}

	token, err := s.IssueToken(user.UserID)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// IssueToken signs a stateless 24-hour token for the subject. Nothing is
// stored server-side; logout is a purely client-side concern.
func (s *authService) IssueToken(userID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID,
		"exp": now.Add(s.cfg.TokenDuration).Unix(),
		"iat": now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.cfg.JWTSecretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// ParseToken verifies the signature and expiry and returns the subject id.
func (s *authService) ParseToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JWTSecretKey), nil
	})

	if err != nil || !token.Valid {
		return "", apperrors.New(apperrors.KindUnauthorized, "Not authorized, token failed or expired")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", apperrors.New(apperrors.KindUnauthorized, "Not authorized, token failed or expired")
	}

	userID, ok := claims["sub"].(string)
	if !ok || userID == "" {
		return "", apperrors.New(apperrors.KindUnauthorized, "Not authorized, token failed or expired")
	}

	return userID, nil
}
