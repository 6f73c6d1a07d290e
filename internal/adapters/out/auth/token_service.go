package auth

import (
	"errors"
	"fmt"
	"time"

	"hospitalfood/internal/core/domain/model/kernel"
	"hospitalfood/internal/core/domain/model/staff"
	"hospitalfood/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "hospitalfood"

var (
	_ ports.TokenIssuer = (*TokenService)(nil)
	_ ports.TokenParser = (*TokenService)(nil)
)

// Claims are the custom claims carried by an access token. Subject holds the staff ID.
type Claims struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	Location string `json:"location"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies HS512 access tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) (*TokenService, error) {
	if len(secret) < 32 {
		return nil, errors.New("jwt secret must be at least 32 bytes")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("token ttl must be positive, got %s", ttl)
	}

	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// WithClock replaces the time source. It is used by tests.
func (s *TokenService) WithClock(now func() time.Time) *TokenService {
	s.now = now
	return s
}

func (s *TokenService) Issue(member *staff.Staff) (string, error) {
	if err := member.Validate(); err != nil {
		return "", err
	}

	now := s.now()
	claims := Claims{
		Name:     member.Name(),
		Role:     member.Role().String(),
		Location: member.Location().Name(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   member.ID().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(s.secret)
}

// Parse returns ports.ErrInvalidToken for any token it did not issue or that has expired.
func (s *TokenService) Parse(token string) (ports.Principal, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS512.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return ports.Principal{}, fmt.Errorf("%w: %w", ports.ErrInvalidToken, err)
	}

	id, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return ports.Principal{}, fmt.Errorf("%w: bad subject", ports.ErrInvalidToken)
	}
	role, err := staff.ParseRole(claims.Role)
	if err != nil {
		return ports.Principal{}, fmt.Errorf("%w: bad role", ports.ErrInvalidToken)
	}

	return ports.Principal{
		StaffID:  id,
		Name:     claims.Name,
		Role:     role,
		Location: claims.Location,
	}, nil
}
