package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/frahmantamala/complaint-redressal/internal"
)

// Service is the main auth service with dependencies
type Service struct {
	credentials    CredentialRepository
	tokenGenerator TokenGenerator
	bcryptCost     int
	logger         *slog.Logger
}

// NewService creates a new auth service
func NewService(credentials CredentialRepository, tokenGen TokenGenerator, bcryptCost int, logger *slog.Logger) *Service {
	if bcryptCost < bcrypt.MinCost {
		bcryptCost = bcrypt.DefaultCost
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		credentials:    credentials,
		tokenGenerator: tokenGen,
		bcryptCost:     bcryptCost,
		logger:         logger,
	}
}

// NewJWTTokenGenerator creates a new JWT token generator
func NewJWTTokenGenerator(secret string, accessTTL time.Duration) *JWTTokenGenerator {
	if accessTTL <= 0 {
		accessTTL = 24 * time.Hour
	}
	return &JWTTokenGenerator{
		Secret:         []byte(secret),
		AccessTokenTTL: accessTTL,
		Issuer:         "complaint-redressal",
	}
}

// Authenticate verifies credentials against users then admins and issues a
// token whose role is ADMIN only when the username belongs to an admin.
func (s *Service) Authenticate(ctx context.Context, dto LoginDTO) (LoginResponse, error) {
	dto.Username = strings.TrimSpace(dto.Username)
	if err := dto.Validate(); err != nil {
		return LoginResponse{}, err
	}

	creds, err := s.credentials.FindCredentials(ctx, dto.Username)
	if err != nil {
		if !errors.Is(err, internal.ErrInvalidCredentials) {
			s.logger.Error("credential lookup failed", "error", err)
		}
		return LoginResponse{}, internal.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(creds.PasswordHash), []byte(dto.Password)); err != nil {
		s.logger.Warn("login with wrong password", "username", dto.Username)
		return LoginResponse{}, internal.ErrInvalidCredentials
	}

	principal := internal.Principal{
		ID:       creds.PrincipalID,
		Username: creds.Username,
		Role:     creds.Role,
	}
	token, err := s.tokenGenerator.GenerateAccessToken(principal)
	if err != nil {
		return LoginResponse{}, internal.NewInternalError("failed to issue token", err)
	}

	s.logger.Info("login succeeded", "principal_id", principal.ID, "role", principal.Role)
	return LoginResponse{Token: token, Role: principal.Role}, nil
}

// ValidateAccessToken validates access token and returns claims
func (s *Service) ValidateAccessToken(tokenString string) (*Claims, error) {
	return s.tokenGenerator.ValidateToken(tokenString)
}

// HashPassword creates a bcrypt hash of the password
func (s *Service) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// RBACAuthorization returns the role guard bound to this service's logger.
func (s *Service) RBACAuthorization() *RBACAuthorization {
	return NewRBACAuthorization(s.logger)
}

// GenerateAccessToken creates a new access token
func (j *JWTTokenGenerator) GenerateAccessToken(principal internal.Principal) (string, error) {
	now := time.Now()

	claims := &Claims{
		PrincipalID: principal.ID,
		Username:    principal.Username,
		Role:        principal.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(j.AccessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   strconv.FormatInt(principal.ID, 10),
			Issuer:    j.Issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(j.Secret)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ValidateToken validates a JWT token and returns claims
func (j *JWTTokenGenerator) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return j.Secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, internal.ErrTokenExpired
		}
		return nil, internal.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, internal.ErrInvalidToken
	}
	if claims.Role != internal.RoleUser && claims.Role != internal.RoleAdmin {
		return nil, internal.ErrInvalidToken
	}

	return claims, nil
}
