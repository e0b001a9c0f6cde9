package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/prn-tf/hunter-codex/internal/auth"
	"github.com/prn-tf/hunter-codex/internal/domain"
	"github.com/prn-tf/hunter-codex/internal/repository"
)

// AuthService registers users and authenticates them against the credential
// store. Registration is decoupled from login: no token is issued on register.
type AuthService struct {
	userRepo repository.UserRepository
	tokens   *auth.TokenManager
	logger   zerolog.Logger
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, tokens *auth.TokenManager, logger zerolog.Logger) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
		logger:   logger.With().Str("service", "auth").Logger(),
	}
}

// RegisterInput contains the data needed to register a user.
// Format rules are enforced at the API boundary; the service re-checks
// uniqueness independently.
type RegisterInput struct {
	Username string
	Password string
}

// Register creates a new user account with a hashed password.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	exists, err := s.userRepo.ExistsByUsername(ctx, input.Username)
	if err != nil {
		s.logger.Error().Err(err).Str("username", input.Username).Msg("failed to check username existence")
		return nil, fmt.Errorf("%w: %v", ErrInternalError, err)
	}
	if exists {
		return nil, fmt.Errorf("%w: username %q", ErrUserAlreadyExists, input.Username)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to hash password")
		return nil, fmt.Errorf("%w: failed to hash password", ErrInternalError)
	}

	user := domain.NewUser(input.Username, string(passwordHash))
	user.ID = uuid.NewString()

	if err := s.userRepo.Create(ctx, user); err != nil {
		// The store enforces uniqueness too; a concurrent register can
		// slip past the existence check and surface here.
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("%w: username %q", ErrUserAlreadyExists, input.Username)
		}
		s.logger.Error().Err(err).Str("username", input.Username).Msg("failed to create user")
		return nil, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	s.logger.Info().
		Str("user_id", user.ID).
		Str("username", user.Username).
		Msg("user registered")

	return user, nil
}

// LoginInput contains login credentials.
type LoginInput struct {
	Username string
	Password string
}

// LoginOutput contains the issued token and the username for client display.
type LoginOutput struct {
	Token    string
	Username string
}

// Login verifies credentials and issues a bearer token.
// Unknown username and wrong password produce the same error so the
// response does not leak which accounts exist.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	user, err := s.userRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.logger.Debug().Str("username", input.Username).Msg("user not found during authentication")
			return nil, ErrInvalidCredentials
		}
		s.logger.Error().Err(err).Str("username", input.Username).Msg("failed to look up user")
		return nil, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		s.logger.Debug().Str("username", input.Username).Msg("invalid password during authentication")
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", user.ID).Msg("failed to issue token")
		return nil, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	s.logger.Info().
		Str("user_id", user.ID).
		Str("username", user.Username).
		Msg("user authenticated")

	return &LoginOutput{
		Token:    token,
		Username: user.Username,
	}, nil
}
