package service

import (
	"context"

	"github.com/YourGothDaddy/fitness-tracker-sub000/entity"
	"github.com/YourGothDaddy/fitness-tracker-sub000/model"
	"github.com/YourGothDaddy/fitness-tracker-sub000/repository"
	"github.com/YourGothDaddy/fitness-tracker-sub000/util"

	"golang.org/x/crypto/bcrypt"
)

// AuthService handles registration and token issuance.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*model.User, error)
	Login(ctx context.Context, email, password string) (*model.User, string, error)
}

type authService struct {
	users        *repository.UserRepository
	jwtSecretKey []byte
}

// NewAuthService creates and returns a new AuthService.
func NewAuthService(users *repository.UserRepository, config *entity.Config) AuthService {
	return &authService{
		users:        users,
		jwtSecretKey: config.JWTSecretKey,
	}
}

// Register creates a user with a bcrypt-hashed password.
func (a *authService) Register(ctx context.Context, name, email, password string) (*model.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &model.User{Name: name, Email: email, Password: hashed}
	if err := a.users.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login handles user authentication
func (a *authService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := a.users.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword(user.Password, []byte(password)); err != nil {
		return nil, "", err
	}

	token, err := util.GenerateJWT(user.ID, user.Email, a.jwtSecretKey)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}
