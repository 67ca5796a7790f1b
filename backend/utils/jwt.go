package utils

import (
	"errors"
	"strings"
	"time"

	"saddwy/backend/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// Token purposes. The original platform reused one token shape for sessions,
// email validation and password recovery, which made any token redeemable
// anywhere. Here every token carries a purpose claim checked at redemption.
const (
	PurposeAccess   = "access"
	PurposeRefresh  = "refresh"
	PurposeValidate = "validate"
	PurposeRecovery = "recovery"
)

const (
	AccessTokenTTL  = time.Hour
	RefreshTokenTTL = 7 * 24 * time.Hour
	// Validation and recovery links sent by email stay usable for a day.
	EmailTokenTTL = 24 * time.Hour
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// GenerateToken issues a signed HS256 token for the user with the given
// purpose and lifetime.
func GenerateToken(userID uint, purpose string, ttl time.Duration, cfg *config.Config) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"purpose": purpose,
		"exp":     time.Now().Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTSecret))
}

// GenerateTokenPair issues the access/refresh pair returned at login.
func GenerateTokenPair(userID uint, cfg *config.Config) (string, string, error) {
	access, err := GenerateToken(userID, PurposeAccess, AccessTokenTTL, cfg)
	if err != nil {
		return "", "", err
	}
	refresh, err := GenerateToken(userID, PurposeRefresh, RefreshTokenTTL, cfg)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

// ParseToken verifies signature, expiry and purpose and returns the embedded
// user id. Any mismatch fails closed: an expired token reports ErrTokenExpired,
// everything else ErrInvalidToken.
func ParseToken(tokenString, purpose string, cfg *config.Config) (uint, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(cfg.JWTSecret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrTokenExpired
		}
		return 0, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, ErrInvalidToken
	}

	if p, _ := claims["purpose"].(string); p != purpose {
		return 0, ErrInvalidToken
	}

	userIDFloat, ok := claims["user_id"].(float64)
	if !ok {
		return 0, ErrInvalidToken
	}

	return uint(userIDFloat), nil
}

// ExtractUserIDFromToken reads the access token from the Authorization header
// and returns the authenticated user id.
func ExtractUserIDFromToken(c *fiber.Ctx, cfg *config.Config) (uint, error) {
	tokenString := strings.TrimPrefix(c.Get("Authorization"), "Bearer ")
	if tokenString == "" {
		return 0, ErrInvalidToken
	}

	return ParseToken(tokenString, PurposeAccess, cfg)
}
