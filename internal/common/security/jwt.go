package security

import (
	"context"
	"errors"
	"fmt"
	"time"

	"taskdeck/internal/common"
	"taskdeck/internal/platform/config"

	"github.com/go-chi/jwtauth/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var TokenAuth *jwtauth.JWTAuth

func InitJWT() {
	TokenAuth = jwtauth.New("HS256", config.AppConfig.JWTKey, nil)
}

// GenerateToken mints a signed session token carrying the subject username,
// numeric user id, and role, expiring after the configured validity window.
// The jti claim is a per-token id, useful when correlating log lines.
func GenerateToken(username string, userID int64, role string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  username,
		"id":   userID,
		"role": role,
		"exp":  time.Now().Add(config.AppConfig.JWTExp).Unix(),
		"iat":  time.Now().Unix(),
		"jti":  uuid.NewString(),
	}
	_, tokenString, err := TokenAuth.Encode(claims)
	return tokenString, err
}

// ParseToken verifies the signature and structure of a session token and
// returns its claims. Tampered, malformed, and expired tokens all fail with
// common.ErrTokenInvalid; callers do not learn which.
func ParseToken(tokenString string) (map[string]any, error) {
	token, err := jwtauth.VerifyToken(TokenAuth, tokenString)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrTokenInvalid, err)
	}
	claims, err := token.AsMap(context.Background())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrTokenInvalid, err)
	}
	return claims, nil
}

// Helper functions to extract claims, used by the resolver middleware.
func GetUsernameFromClaims(claims map[string]any) (string, error) {
	username, ok := claims["sub"].(string)
	if !ok || username == "" {
		return "", errors.New("sub claim is missing or not a string")
	}
	return username, nil
}

func GetUserIDFromClaims(claims map[string]any) (int64, error) {
	switch id := claims["id"].(type) {
	case int64:
		return id, nil
	case float64:
		return int64(id), nil
	default:
		return 0, errors.New("id claim is missing or not numeric")
	}
}

func GetUserRoleFromClaims(claims map[string]any) (string, error) {
	role, ok := claims["role"].(string)
	if !ok {
		return "", errors.New("role claim is missing or not a string")
	}
	return role, nil
}
