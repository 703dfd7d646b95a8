package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/frahmantamala/complaint-redressal/internal"
)

// Credentials is what login needs to know about an account in either table.
type Credentials struct {
	PrincipalID  int64
	Username     string
	PasswordHash string
	Role         string
}

// CredentialRepository finds an account by username, looking at citizens
// before admins.
type CredentialRepository interface {
	FindCredentials(ctx context.Context, username string) (*Credentials, error)
}

// TokenGenerator issues and validates signed session tokens.
type TokenGenerator interface {
	GenerateAccessToken(principal internal.Principal) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

// LoginResponse is returned by both login endpoints.
type LoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

// Claims represents JWT token claims
type Claims struct {
	PrincipalID int64  `json:"principal_id"`
	Username    string `json:"username"`
	Role        string `json:"role"`
	jwt.RegisteredClaims
}

func (c *Claims) Principal() *internal.Principal {
	return &internal.Principal{
		ID:       c.PrincipalID,
		Username: c.Username,
		Role:     c.Role,
	}
}

type JWTTokenGenerator struct {
	Secret         []byte
	AccessTokenTTL time.Duration
	Issuer         string
}
