package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/rocketscienceinc/tictactoe-server/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-server/internal/entity"
	"github.com/rocketscienceinc/tictactoe-server/internal/pkg"
)

type UserUseCase interface {
	Register(ctx context.Context, username, password string) (*entity.User, error)
	Login(ctx context.Context, username, password string) (*entity.User, error)
	Count(ctx context.Context) (int, error)
}

type userRepo interface {
	Save(ctx context.Context, user *entity.User) error
	Find(ctx context.Context, username string) (*entity.User, error)
	UpdateToken(ctx context.Context, username, token string) error
	Count(ctx context.Context) (int, error)
}

type userUseCase struct {
	logger *slog.Logger
	repo   userRepo
}

func NewUserUseCase(logger *slog.Logger, repo userRepo) UserUseCase {
	return &userUseCase{
		logger: logger.With("component", "user_usecase"),
		repo:   repo,
	}
}

func (that *userUseCase) Register(ctx context.Context, username, password string) (*entity.User, error) {
	_, err := that.repo.Find(ctx, username)
	if err == nil {
		return nil, apperror.ErrUserExists
	}

	if !errors.Is(err, apperror.ErrNotFound) {
		return nil, fmt.Errorf("failed to find user into storage: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		Username:     username,
		PasswordHash: string(hash),
		Token:        pkg.GenerateToken(),
	}

	if err = that.repo.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to save user into storage: %w", err)
	}

	that.logger.Info("user registered", "username", username)

	return user, nil
}

func (that *userUseCase) Login(ctx context.Context, username, password string) (*entity.User, error) {
	user, err := that.repo.Find(ctx, username)
	if errors.Is(err, apperror.ErrNotFound) {
		return nil, apperror.ErrInvalidCredentials
	}

	if err != nil {
		return nil, fmt.Errorf("failed to find user into storage: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperror.ErrInvalidCredentials
	}

	user.Token = pkg.GenerateToken()
	if err = that.repo.UpdateToken(ctx, username, user.Token); err != nil {
		return nil, fmt.Errorf("failed to update token: %w", err)
	}

	return user, nil
}

func (that *userUseCase) Count(ctx context.Context) (int, error) {
	count, err := that.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}

	return count, nil
}
