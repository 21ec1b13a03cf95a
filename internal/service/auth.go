package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/hsiaochiang/ExamWordPrep/internal/models"
	"go.uber.org/zap"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserExists         = errors.New("username already taken")
	ErrEmptyUsername      = errors.New("username must not be empty")
)

type AuthRI interface {
	User(ctx context.Context, username string) (models.User, error)
	SaveUser(ctx context.Context, user models.User) error
}

type Claims struct {
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
	jwt.RegisteredClaims
}

type AuthS struct {
	repo   AuthRI
	secret []byte
	ttl    time.Duration
	log    *zap.Logger
}

func NewAuthService(repo AuthRI, secret string, ttl time.Duration, log *zap.Logger) *AuthS {
	return &AuthS{
		repo:   repo,
		secret: []byte(secret),
		ttl:    ttl,
		log:    log,
	}
}

// Login checks the plaintext credentials against the stored user, stamps the
// login time and issues a bearer token.
func (a *AuthS) Login(ctx context.Context, username, password string) (models.User, string, error) {
	user, err := a.repo.User(ctx, username)
	if err != nil || user.Password != password {
		return models.User{}, "", ErrInvalidCredentials
	}

	now := time.Now().UTC()
	user.LastLoginAt = &now
	if err := a.repo.SaveUser(ctx, user); err != nil {
		a.log.Warn("failed to stamp login time", zap.String("username", username), zap.Error(err))
	}

	token, err := a.token(user)
	if err != nil {
		return models.User{}, "", fmt.Errorf("failed to sign token: %w", err)
	}

	return user, token, nil
}

// Register creates a non-admin account and logs it in.
func (a *AuthS) Register(ctx context.Context, username, password string) (models.User, string, error) {
	if strings.TrimSpace(username) == "" {
		return models.User{}, "", ErrEmptyUsername
	}
	if _, err := a.repo.User(ctx, username); err == nil {
		return models.User{}, "", ErrUserExists
	}

	now := time.Now().UTC()
	user := models.User{
		Username:    username,
		Password:    password,
		CreatedAt:   now,
		LastLoginAt: &now,
	}
	if err := a.repo.SaveUser(ctx, user); err != nil {
		return models.User{}, "", fmt.Errorf("failed to save user: %w", err)
	}

	token, err := a.token(user)
	if err != nil {
		return models.User{}, "", fmt.Errorf("failed to sign token: %w", err)
	}

	return user, token, nil
}

func (a *AuthS) VerifyToken(token string) (Claims, error) {
	claims := Claims{}
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return Claims{}, fmt.Errorf("invalid token: %w", err)
	}
	if !parsed.Valid {
		return Claims{}, errors.New("invalid token")
	}
	return claims, nil
}

func (a *AuthS) token(user models.User) (string, error) {
	now := time.Now()
	claims := Claims{
		Username: user.Username,
		IsAdmin:  user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}
