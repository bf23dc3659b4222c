package config

import (
	"os"
	"sync"
	"time"
)

type AuthConfig struct {
	Secret          string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
}

var (
	authConfig *AuthConfig
	authOnce   sync.Once
)

func LoadAuthConfig() *AuthConfig {
	authOnce.Do(func() {
		secret := os.Getenv("JWT_SECRET")
		if secret == "" {
			secret = "dev-secret-change-me"
		}
		authConfig = &AuthConfig{
			Secret:          secret,
			AccessTokenTTL:  1 * time.Hour,
			RefreshTokenTTL: 7 * 24 * time.Hour,
		}
	})
	return authConfig
}
