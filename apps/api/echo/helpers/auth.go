package helpers

import (
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"

	"github.com/cardlect/cardlect/core"
	"github.com/cardlect/cardlect/core/identity"
)

// AppJWTConfig is the default JWT auth middleware config.
var AppJWTConfig = middleware.JWTConfig{
	SigningKey:    []byte(core.Conf.SecretKey),
	SigningMethod: middleware.AlgorithmHS256,
	ContextKey:    "identityToken",
	Claims:        new(Claims),
}

// Claims represents the authorization claims transmitted via a JWT.
type Claims struct {
	jwt.StandardClaims
	Name     string        `json:"name,omitempty"`
	Email    string        `json:"email,omitempty"`
	Role     identity.Role `json:"role,omitempty"`
	TenantID string        `json:"tenant_id,omitempty"`
}

func GetIdentityClaims(ident identity.Identity) *Claims {
	now := time.Now()
	return &Claims{
		StandardClaims: jwt.StandardClaims{
			Issuer:    core.Conf.AppName,
			Subject:   ident.ID,
			Audience:  "Cardlect Dashboard",
			ExpiresAt: now.Add(core.Conf.Server.JWTExpirationDelta).Unix(),
			IssuedAt:  now.Unix(),
		},
		Name:     ident.Name,
		Email:    ident.Email,
		Role:     ident.Role,
		TenantID: ident.TenantID,
	}
}

// GenerateToken generates a signed JWT token string representing the identity Claims.
func GenerateToken(claims *Claims) (string, error) {
	method := jwt.GetSigningMethod(AppJWTConfig.SigningMethod)
	token := jwt.NewWithClaims(method, claims)

	ss, err := token.SignedString(AppJWTConfig.SigningKey)
	if err != nil {
		return "", errors.New("signing token")
	}
	return ss, nil
}

func GetContextClaims(ctx echo.Context) (Claims, error) {
	if token, ok := ctx.Get(AppJWTConfig.ContextKey).(*jwt.Token); ok {
		if claims, ok := token.Claims.(*Claims); ok {
			return *claims, nil
		}
	}
	return Claims{}, ErrUnauthorized
}

// ClaimsSession rebuilds the session view carried by a token so the route
// guard can evaluate it.
func ClaimsSession(claims Claims) *identity.Session {
	return &identity.Session{
		Identity: identity.Identity{
			ID:       claims.Subject,
			Name:     claims.Name,
			Email:    claims.Email,
			Role:     claims.Role,
			TenantID: claims.TenantID,
		},
		EstablishedAt: time.Unix(claims.IssuedAt, 0).UTC(),
	}
}
