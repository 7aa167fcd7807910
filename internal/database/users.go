package database

import (
	"context"
	"fmt"

	"photoproof-backend/internal/models"
)

func (c *Client) CreateUser(ctx context.Context, username, email, passwordHash string) error {
	_, err := c.db.ExecContext(ctx, `
		INSERT INTO users (username, email, password_hash)
		VALUES ($1, $2, $3)
	`, username, email, passwordHash)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (c *Client) GetUserByID(ctx context.Context, userID int32) (*models.User, error) {
	var user models.User
	err := c.db.QueryRowContext(ctx, `
		SELECT user_id, username, email, password_hash, created_at
		FROM users
		WHERE user_id = $1
	`, userID).Scan(
		&user.UserID, &user.Username, &user.Email, &user.PasswordHash, &user.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

func (c *Client) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := c.db.QueryRowContext(ctx, `
		SELECT user_id, username, email, password_hash, created_at
		FROM users
		WHERE email = $1
	`, email).Scan(
		&user.UserID, &user.Username, &user.Email, &user.PasswordHash, &user.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}
