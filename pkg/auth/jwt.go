package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/healthnet/admin-api/internal/model"
)

// Claims carried by a session token. The token is opaque to clients; they
// store it and replay it on every call.
type Claims struct {
	jwt.RegisteredClaims
	UserID     string `json:"user_id"`
	Role       string `json:"role"`
	FacilityID string `json:"facility_id,omitempty"`
}

// JWTService issues and validates session tokens.
type JWTService interface {
	Generate(user *model.User) (string, error)
	Validate(token string) (*Claims, error)
}

type jwtService struct {
	secret []byte
	expiry time.Duration
}

func NewJWTService(secret string, expiry time.Duration) JWTService {
	return &jwtService{secret: []byte(secret), expiry: expiry}
}

func (s *jwtService) Generate(user *model.User) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
		UserID: user.ID.String(),
		Role:   string(user.Role),
	}
	if user.FacilityID != nil {
		claims.FacilityID = user.FacilityID.String()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *jwtService) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	if _, err := uuid.Parse(claims.UserID); err != nil {
		return nil, fmt.Errorf("invalid user id in token: %w", err)
	}
	return claims, nil
}

// Principal converts validated claims into the identity the scoping layer
// consumes.
func (c *Claims) Principal() (*model.Principal, error) {
	userID, err := uuid.Parse(c.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id in claims: %w", err)
	}
	p := &model.Principal{UserID: userID, Role: model.Role(c.Role)}
	if c.FacilityID != "" {
		facilityID, err := uuid.Parse(c.FacilityID)
		if err != nil {
			return nil, fmt.Errorf("invalid facility id in claims: %w", err)
		}
		p.FacilityID = &facilityID
	}
	return p, nil
}
