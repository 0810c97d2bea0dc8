package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"blogpress/internal/models"
)

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetAll(ctx context.Context) ([]models.User, error) {
	query := `SELECT * FROM users ORDER BY username`

	var users []models.User
	err := r.db.SelectContext(ctx, &users, query)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}

	return users, nil
}

func (r *userRepository) GetAllWithPostCount(ctx context.Context) ([]models.UserWithPostCount, error) {
	query := `
		SELECT u.id, u.username, u.name, u.tagline, u.biography, u.twitter_handle,
			COUNT(p.id) AS post_count
		FROM users u
		LEFT JOIN posts p ON p.author_id = u.id AND p.published = TRUE
		GROUP BY u.id, u.username, u.name, u.tagline, u.biography, u.twitter_handle
		ORDER BY u.username
	`

	var users []models.UserWithPostCount
	err := r.db.SelectContext(ctx, &users, query)
	if err != nil {
		return nil, fmt.Errorf("listing users with post count: %w", err)
	}

	return users, nil
}

func (r *userRepository) GetByID(ctx context.Context, userID int) (*models.User, error) {
	query := `SELECT * FROM users WHERE id = $1`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user %d: %w", userID, ErrNotFound)
		}
		return nil, fmt.Errorf("getting user %d: %w", userID, err)
	}

	return &user, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `SELECT * FROM users WHERE username = $1`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user %q: %w", username, ErrNotFound)
		}
		return nil, fmt.Errorf("getting user %q: %w", username, err)
	}

	return &user, nil
}

func (r *userRepository) Save(ctx context.Context, user *models.User) error {
	if user.ID == 0 {
		query := `
			INSERT INTO users (username, name, tagline, biography, twitter_handle)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id
		`

		err := r.db.GetContext(ctx, &user.ID, query,
			user.Username, user.Name, user.Tagline, user.Biography, user.TwitterHandle)
		if err != nil {
			return fmt.Errorf("creating user %q: %w", user.Username, err)
		}

		return nil
	}

	query := `
		UPDATE users SET
			username = :username,
			name = :name,
			tagline = :tagline,
			biography = :biography,
			twitter_handle = :twitter_handle
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		return fmt.Errorf("updating user %d: %w", user.ID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking updated rows: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("user %d: %w", user.ID, ErrNotFound)
	}

	return nil
}

func (r *userRepository) Delete(ctx context.Context, userID int) error {
	query := `DELETE FROM users WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("deleting user %d: %w", userID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking deleted rows: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("user %d: %w", userID, ErrNotFound)
	}

	return nil
}

func (r *userRepository) Count(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM users`

	var count int
	err := r.db.GetContext(ctx, &count, query)
	if err != nil {
		return 0, fmt.Errorf("counting users: %w", err)
	}

	return count, nil
}
