package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/myjobsapp/myjobs-api/internal/config"
)

var ErrInvalidToken = errors.New("invalid or expired token")

type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// IssueTokenPair signs an HS256 access/refresh pair for the user ID.
func IssueTokenPair(userID uint) (*TokenPair, error) {
	cfg := config.LoadAuthConfig()

	access, err := signToken(userID, "access", cfg.AccessTokenTTL, cfg.Secret)
	if err != nil {
		return nil, err
	}
	refresh, err := signToken(userID, "refresh", cfg.RefreshTokenTTL, cfg.Secret)
	if err != nil {
		return nil, err
	}
	return &TokenPair{Access: access, Refresh: refresh}, nil
}

func signToken(userID uint, tokenType string, ttl time.Duration, secret string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  strconv.FormatUint(uint64(userID), 10),
		"type": tokenType,
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParseAccessToken validates the token and returns the subject user ID.
func ParseAccessToken(tokenString string) (uint, error) {
	cfg := config.LoadAuthConfig()

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(cfg.Secret), nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["type"] != "access" {
		return 0, ErrInvalidToken
	}
	sub, _ := claims["sub"].(string)
	id, err := strconv.ParseUint(sub, 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}
	return uint(id), nil
}
