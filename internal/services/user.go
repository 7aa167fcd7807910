package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"photoproof-backend/internal/models"
)

// UserStore is the slice of the entity repository the user operations need.
type UserStore interface {
	CreateUser(ctx context.Context, username, email, passwordHash string) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

type UserService struct {
	store      UserStore
	bcryptCost int
}

func NewUserService(store UserStore, bcryptCost int) *UserService {
	return &UserService{
		store:      store,
		bcryptCost: bcryptCost,
	}
}

func (s *UserService) SignUp(ctx context.Context, req models.SignUpRequest) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return s.store.CreateUser(ctx, req.Username, req.Email, string(hash))
}

// Login verifies the credentials and returns the user. Unknown emails and
// wrong passwords are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, req models.LoginRequest) (*models.User, error) {
	user, err := s.store.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &AuthError{Message: "invalid email or password"}
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, &AuthError{Message: "invalid email or password"}
	}

	return user, nil
}

func (s *UserService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.store.GetUserByEmail(ctx, email)
}
