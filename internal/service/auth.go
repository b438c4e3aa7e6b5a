package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/cinelog/cinelog/internal/model"
	"github.com/cinelog/cinelog/internal/store"
	"github.com/cinelog/cinelog/pkg/token"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type AuthService struct {
	users  store.UserStore
	tokens *token.Service
}

func NewAuthService(users store.UserStore, tokens *token.Service) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

func (s *AuthService) Register(ctx context.Context, name, email, password string) (*model.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %v", err)
	}

	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashed),
	}
	if err := s.users.Insert(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// LoginResult is what a successful login hands back to the client.
type LoginResult struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	AccessToken string `json:"accessToken"`
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	accessToken, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %v", err)
	}
	return &LoginResult{ID: user.ID, Name: user.Name, AccessToken: accessToken}, nil
}

func (s *AuthService) Me(ctx context.Context, userID int64) (*model.User, error) {
	return s.users.FindByID(ctx, userID)
}
