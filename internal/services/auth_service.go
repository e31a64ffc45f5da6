package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/GOLLA-MANJU34/Frontend-Developer-Task/internal/config"
	"github.com/GOLLA-MANJU34/Frontend-Developer-Task/internal/models"
	"github.com/GOLLA-MANJU34/Frontend-Developer-Task/internal/repo"
	"github.com/GOLLA-MANJU34/Frontend-Developer-Task/internal/utils"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// UserStore is the slice of the user repository the auth service needs.
type UserStore interface {
	Create(ctx context.Context, username, name, passwordHash, role string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

type AuthService struct {
	users UserStore
	cfg   *config.Config
}

type TokenResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	ExpiresIn   int64       `json:"expires_in"`
	User        interface{} `json:"user"`
}

// Claims is the token payload: identity and role, nothing else. ExpiresAt is
// only set when token expiry is configured.
type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

func NewAuthService(users UserStore, cfg *config.Config) *AuthService {
	return &AuthService{users: users, cfg: cfg}
}

// Register validates the registration input in declaration order, hashes the
// password, and inserts the user. The duplicate check rides on the unique
// constraint, not a prior read.
func (s *AuthService) Register(ctx context.Context, username, name, password, role string) (*models.User, error) {
	if len(username) < s.cfg.UsernameMinLen {
		return nil, utils.ErrValidation(fmt.Sprintf("username must be at least %d characters", s.cfg.UsernameMinLen))
	}
	if name == "" {
		return nil, utils.ErrValidation("name is required")
	}
	if len(password) < s.cfg.PasswordMinLen {
		return nil, utils.ErrValidation(fmt.Sprintf("password must be at least %d characters", s.cfg.PasswordMinLen))
	}
	if role == "" {
		role = models.RoleUser
	}
	if !models.ValidRole(role) {
		return nil, utils.ErrValidation("role must be one of: user, admin")
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, utils.ErrInternal("could not secure password")
	}

	user, err := s.users.Create(ctx, username, name, string(passwordHash), role)
	if err != nil {
		if errors.Is(err, repo.ErrDuplicateUsername) {
			return nil, utils.ErrDuplicateUser()
		}
		return nil, utils.ErrInternal("could not create user")
	}
	return user, nil
}

// Login verifies the credentials and issues a signed token. Unknown username
// and wrong password yield the same error.
func (s *AuthService) Login(ctx context.Context, username, password string) (*TokenResponse, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, utils.ErrInvalidCredentials()
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, utils.ErrInvalidCredentials()
	}

	token, expiresIn, err := s.IssueToken(user)
	if err != nil {
		return nil, utils.ErrInternal("could not generate token")
	}

	return &TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
		User: map[string]interface{}{
			"id":       user.ID,
			"username": user.Username,
			"name":     user.Name,
			"role":     user.Role,
		},
	}, nil
}

// IssueToken signs a token binding the user's identity and role. With a zero
// configured expiry the token carries no exp claim and never expires.
func (s *AuthService) IssueToken(user *models.User) (string, int64, error) {
	claims := Claims{
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  user.Username,
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}
	if s.cfg.JWTExpiry > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(s.cfg.JWTExpiry))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", 0, err
	}

	return signed, int64(s.cfg.JWTExpiry.Seconds()), nil
}

// GetByUsername resolves a user for callers that only hold a token identity.
func (s *AuthService) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.users.GetByUsername(ctx, username)
}
