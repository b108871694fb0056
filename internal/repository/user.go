package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"

	"github.com/rocketscienceinc/tictactoe-server/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-server/internal/entity"
)

type UserRepository interface {
	Save(ctx context.Context, user *entity.User) error
	Find(ctx context.Context, username string) (*entity.User, error)
	UpdateToken(ctx context.Context, username, token string) error
	Count(ctx context.Context) (int, error)
}

type userRepository struct {
	conn *sql.DB
}

func NewUserRepository(conn *sql.DB) UserRepository {
	return &userRepository{
		conn: conn,
	}
}

func (that *userRepository) Save(ctx context.Context, user *entity.User) error {
	query := `INSERT INTO users (username, password, token) VALUES (?, ?, ?)`

	res, err := that.conn.ExecContext(ctx, query, user.Username, user.PasswordHash, user.Token)

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
		return apperror.ErrUserExists
	}

	if err != nil {
		return fmt.Errorf("can't save user: %w", err)
	}

	if user.ID, err = res.LastInsertId(); err != nil {
		return fmt.Errorf("can't get user id: %w", err)
	}

	return nil
}

func (that *userRepository) Find(ctx context.Context, username string) (*entity.User, error) {
	query := `SELECT username_id, username, password, token FROM users WHERE username = ?`

	var user entity.User

	err := that.conn.QueryRowContext(ctx, query, username).Scan(&user.ID, &user.Username, &user.PasswordHash, &user.Token)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("can't find user: %w", err)
	}

	return &user, nil
}

func (that *userRepository) UpdateToken(ctx context.Context, username, token string) error {
	query := `UPDATE users SET token = ? WHERE username = ?`

	res, err := that.conn.ExecContext(ctx, query, token, username)
	if err != nil {
		return fmt.Errorf("can't update token: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("can't update token: %w", err)
	}

	if affected == 0 {
		return apperror.ErrNotFound
	}

	return nil
}

func (that *userRepository) Count(ctx context.Context) (int, error) {
	var count int

	if err := that.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return 0, fmt.Errorf("can't count users: %w", err)
	}

	return count, nil
}
