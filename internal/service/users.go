package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/hsiaochiang/ExamWordPrep/internal/models"
	"go.uber.org/zap"
)

var ErrLastAdmin = errors.New("cannot delete the last administrator")

type UserRI interface {
	User(ctx context.Context, username string) (models.User, error)
	Users(ctx context.Context) ([]models.User, error)
	SaveUser(ctx context.Context, user models.User) error
	DeleteUser(ctx context.Context, username string) error
}

// UserS covers administrative account management.
type UserS struct {
	repo UserRI
	log  *zap.Logger
}

func NewUserService(repo UserRI, log *zap.Logger) *UserS {
	return &UserS{
		repo: repo,
		log:  log,
	}
}

func (u *UserS) ListUsers(ctx context.Context) ([]models.User, error) {
	return u.repo.Users(ctx)
}

func (u *UserS) CreateUser(ctx context.Context, username, password string, isAdmin bool) (models.User, error) {
	if strings.TrimSpace(username) == "" {
		return models.User{}, ErrEmptyUsername
	}
	if _, err := u.repo.User(ctx, username); err == nil {
		return models.User{}, ErrUserExists
	}

	user := models.User{
		Username:  username,
		Password:  password,
		IsAdmin:   isAdmin,
		CreatedAt: time.Now().UTC(),
	}
	if err := u.repo.SaveUser(ctx, user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// UpdateUser changes the password and admin flag of an existing account.
func (u *UserS) UpdateUser(ctx context.Context, username, password string, isAdmin bool) (models.User, error) {
	user, err := u.repo.User(ctx, username)
	if err != nil {
		return models.User{}, err
	}

	user.Password = password
	user.IsAdmin = isAdmin
	if err := u.repo.SaveUser(ctx, user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// DeleteUser removes an account, refusing to remove the last admin so the
// app always stays manageable.
func (u *UserS) DeleteUser(ctx context.Context, username string) error {
	user, err := u.repo.User(ctx, username)
	if err != nil {
		return err
	}

	if user.IsAdmin {
		users, err := u.repo.Users(ctx)
		if err != nil {
			return err
		}
		admins := 0
		for _, other := range users {
			if other.IsAdmin {
				admins++
			}
		}
		if admins <= 1 {
			return ErrLastAdmin
		}
	}

	return u.repo.DeleteUser(ctx, username)
}
