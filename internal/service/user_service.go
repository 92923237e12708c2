package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ShirinKhan1/system-design/internal/auth"
	"github.com/ShirinKhan1/system-design/internal/events"
	"github.com/ShirinKhan1/system-design/internal/models"
	"github.com/ShirinKhan1/system-design/internal/repository"
)

// ErrInvalidCredentials is returned on login when the user does not exist
// or the password does not match. Callers cannot tell which.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserDirectory is the cache-aside view of user persistence.
// Implemented by *repository.CachedUserRepository.
type UserDirectory interface {
	Create(ctx context.Context, user *models.User) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
}

// EventPublisher emits domain events, best-effort.
type EventPublisher interface {
	Publish(stream, eventType, key string, payload any)
}

// UserService owns registration, login and user reads. All reads go
// through the cache-aside directory.
type UserService struct {
	users     UserDirectory
	hasher    *auth.PasswordHasher
	tokens    *auth.TokenService
	publisher EventPublisher
	tokenTTL  time.Duration
}

func NewUserService(
	users UserDirectory,
	hasher *auth.PasswordHasher,
	tokens *auth.TokenService,
	publisher EventPublisher,
	tokenTTL time.Duration,
) *UserService {
	return &UserService{
		users:     users,
		hasher:    hasher,
		tokens:    tokens,
		publisher: publisher,
		tokenTTL:  tokenTTL,
	}
}

// Register hashes the password, inserts the user (which also warms the
// cache), publishes a user.created event and issues a bearer token.
// The relational insert is the only step that can fail the request;
// cache and event loss are tolerated.
func (s *UserService) Register(ctx context.Context, cmd RegisterCommand) (*models.User, string, error) {
	passwordHash, err := s.hasher.Hash(cmd.Password)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     cmd.Username,
		Email:        cmd.Email,
		PasswordHash: passwordHash,
		Age:          cmd.Age,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	s.publisher.Publish(events.UserEventsStream, events.UserCreated, user.Username, events.UserCreatedEvent{
		Username:  user.Username,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})

	token, err := s.tokens.Issue(user.Username, s.tokenTTL)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}
	return user, token, nil
}

// Login verifies the credentials and issues a bearer token.
func (s *UserService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", ErrInvalidCredentials
	}
	return s.tokens.Issue(user.Username, s.tokenTTL)
}

func (s *UserService) GetUser(ctx context.Context, username string) (*models.User, error) {
	return s.users.GetByUsername(ctx, username)
}

func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}
