package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"tailorshop/internal/domain"
	userrepo "tailorshop/internal/repository/user"
)

var (
	// ErrInvalidCredentials is returned when email/password do not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken indicates the provided token could not be validated.
	ErrInvalidToken = errors.New("invalid token")
)

const bcryptCost = 12

// Service handles account registration, login, and token verification.
type Service struct {
	repo        userrepo.Repository
	tokens      *tokenManager
	passwordMin int
}

// New creates a Service signing tokens with the given secret and lifetime.
func New(repo userrepo.Repository, jwtSecret string, tokenTTL time.Duration) *Service {
	return &Service{
		repo:        repo,
		tokens:      newTokenManager(jwtSecret, tokenTTL),
		passwordMin: 6,
	}
}

// RegisterInput captures fields expected by the register endpoint.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Register creates a new account and returns it with a signed token. Role
// defaults to customer when omitted.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*domain.User, string, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if email == "" {
		return nil, "", domain.Invalid("email required")
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, "", domain.Invalid("name required")
	}
	password := strings.TrimSpace(in.Password)
	if len(password) < s.passwordMin {
		return nil, "", domain.Invalid(fmt.Sprintf("password must be at least %d characters", s.passwordMin))
	}
	role := strings.TrimSpace(in.Role)
	if role == "" {
		role = domain.RoleCustomer
	}
	if role != domain.RoleAdmin && role != domain.RoleCustomer {
		return nil, "", domain.Invalid(fmt.Sprintf("unknown role %q", role))
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, "", err
	}

	u, err := s.repo.Create(ctx, domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashed),
		Role:         role,
	})
	if err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(*u)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// Login validates credentials and returns the account with a signed token.
// The email is folded to lower case the same way Register stores it.
func (s *Service) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	u, err := s.repo.GetByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(strings.TrimSpace(password))); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(*u)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// Verify checks a bearer token and returns the principal it carries.
func (s *Service) Verify(token string) (domain.Principal, error) {
	return s.tokens.Verify(token)
}
