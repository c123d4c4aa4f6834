package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"contactbook/internal/models"
	"contactbook/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Domain errors for auth flows.
var (
	// ErrInvalidCredentials covers both "no such user" and "wrong
	// password" so a caller cannot enumerate usernames.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateUser      = errors.New("username or email already in use")
	ErrInvalidToken       = errors.New("invalid token")
)

// AuthService handles registration, login and token issue/verify.
type AuthService struct {
	authRepo   repository.Authorization
	signingKey []byte
	tokenTTL   time.Duration
	bcryptCost int
}

func NewAuthService(repo repository.Authorization, cfg AuthConfig) *AuthService {
	cost := cfg.BcryptCost
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &AuthService{
		authRepo:   repo,
		signingKey: []byte(cfg.SigningKey),
		tokenTTL:   ttl,
		bcryptCost: cost,
	}
}

// SignUp hashes the password and creates a new user. Username and email
// collisions surface as ErrDuplicateUser.
func (s *AuthService) SignUp(ctx context.Context, username, email, password string) (models.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" {
		return models.User{}, fmt.Errorf("%w: username and email are required", ErrValidation)
	}

	hash, err := s.hashPassword(password)
	if err != nil {
		return models.User{}, fmt.Errorf("invalid password: %w", err)
	}

	id, err := s.authRepo.Create(ctx, username, email, hash)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return models.User{}, ErrDuplicateUser
		}
		return models.User{}, err
	}
	return models.User{ID: id, Username: username, Email: email, PasswordHash: hash}, nil
}

// Claims defines JWT claims: the identity plus standard iat/exp/jti.
type Claims struct {
	jwt.RegisteredClaims
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
}

// GenerateToken validates credentials and returns a signed JWT. A missing
// user and a wrong password are deliberately indistinguishable.
func (s *AuthService) GenerateToken(ctx context.Context, username, password string) (string, error) {
	u, err := s.authRepo.GetByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", ErrInvalidCredentials
	}

	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.issueToken(u.ID, u.Username)
}

// ParseToken verifies signature and expiry and returns the embedded userID.
func (s *AuthService) ParseToken(accessToken string) (int, error) {
	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.signingKey, nil
	})
	if err != nil {
		return 0, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return 0, ErrInvalidToken
	}

	return claims.UserID, nil
}

// helper: hash password safely
func (s *AuthService) hashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", fmt.Errorf("%w: password is required", ErrValidation)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// helper: verify password against hash (constant-time under the hood)
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// helper: issue a signed JWT carrying the user's identity
func (s *AuthService) issueToken(userID int, username string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID:   userID,
		Username: username,
	})
	return token.SignedString(s.signingKey)
}
