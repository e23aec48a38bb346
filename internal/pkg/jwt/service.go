package jwt

import (
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const TokenTypeAccess = "access"

var ErrTokenInvalid = errors.New("token invalid")

type Claims struct {
	UserID    string `json:"user_id"`
	Role      string `json:"role,omitempty"`
	TokenType string `json:"token_type"`

	jwtlib.RegisteredClaims
}

type Service interface {
	GenerateAccessToken(userID, role string) (string, error)
	ValidateToken(tokenString string) (Claims, error)
	ExpiresIn() time.Duration
}

// HMACService signs HS256 access tokens. ExpiresIn is advertised to clients
// but not written into the token; tokens stay valid until the secret
// changes.
type HMACService struct {
	secret    []byte
	expiresIn time.Duration

	now func() time.Time
}

// NewHMACService uses secret when set and a random per-process key
// otherwise.
func NewHMACService(secret string, expiresIn time.Duration) (*HMACService, error) {
	key := []byte(secret)
	if len(key) == 0 {
		key = make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			return nil, fmt.Errorf("generate jwt secret: %w", err)
		}
	}
	return &HMACService{
		secret:    key,
		expiresIn: expiresIn,
		now:       time.Now,
	}, nil
}

func (s *HMACService) ExpiresIn() time.Duration {
	return s.expiresIn
}

func (s *HMACService) GenerateAccessToken(userID, role string) (string, error) {
	if userID == "" {
		return "", ErrTokenInvalid
	}

	now := s.now().UTC()
	c := Claims{
		UserID:    userID,
		Role:      role,
		TokenType: TokenTypeAccess,
		RegisteredClaims: jwtlib.RegisteredClaims{
			ID:       uuid.NewString(),
			IssuedAt: jwtlib.NewNumericDate(now),
			Subject:  userID,
		},
	}

	t := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, c)
	return t.SignedString(s.secret)
}

func (s *HMACService) ValidateToken(tokenString string) (Claims, error) {
	p := jwtlib.NewParser(jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}))

	var c Claims
	tok, err := p.ParseWithClaims(tokenString, &c, func(token *jwtlib.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		return Claims{}, ErrTokenInvalid
	}
	if tok == nil || !tok.Valid {
		return Claims{}, ErrTokenInvalid
	}
	if c.TokenType != TokenTypeAccess || c.UserID == "" {
		return Claims{}, ErrTokenInvalid
	}

	return c, nil
}
