package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/piresc/fleettrack/internal/pkg/models"
)

// ErrMissingScope is returned for tokens without a company or sector
var ErrMissingScope = errors.New("token carries no company/sector scope")

// Claims are the operator scope claims plus the registered JWT claims
type Claims struct {
	UserID    string `json:"user_id"`
	Name      string `json:"name"`
	CompanyID string `json:"company_id"`
	SectorID  string `json:"sector_id"`
	Role      string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Scope returns the operator scope carried by the claims
func (c *Claims) Scope() models.Scope {
	return models.Scope{
		UserID:    c.UserID,
		Name:      c.Name,
		CompanyID: c.CompanyID,
		SectorID:  c.SectorID,
		Role:      c.Role,
	}
}

// GenerateToken signs an HS256 token for scope
func GenerateToken(scope models.Scope, cfg models.JWTConfig) (string, int64, error) {
	expiresAt := time.Now().Add(time.Duration(cfg.Expiration) * time.Minute)

	claims := Claims{
		UserID:    scope.UserID,
		Name:      scope.Name,
		CompanyID: scope.CompanyID,
		SectorID:  scope.SectorID,
		Role:      scope.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   scope.UserID,
			Issuer:    cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", 0, err
	}
	return signed, expiresAt.Unix(), nil
}

// ValidateToken verifies signature and expiry and requires a user, company and sector
func ValidateToken(tokenString string, secret string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.UserID == "" || claims.CompanyID == "" || claims.SectorID == "" {
		return nil, ErrMissingScope
	}
	return claims, nil
}
