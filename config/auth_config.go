package config

import (
	"fmt"
	"os"
)

const (
	AuthModeJwt     = "jwt"
	AuthModeSession = "session"
)

type AuthConfig struct {
	Mode       string
	JwksUrl    string
	AdminScope string
	AdminUser  string
}

// GetAuthConfig requires a JWKS endpoint only in jwt mode. Session mode trusts
// an unsigned session cookie, so it is only available to local runs; with real
// AWS the mode defaults to jwt.
func GetAuthConfig(useRealAws bool) (*AuthConfig, error) {
	defaultMode := AuthModeSession
	if useRealAws {
		defaultMode = AuthModeJwt
	}
	mode := getEnvOrDefault("AUTH_MODE", defaultMode)
	if mode != AuthModeJwt && mode != AuthModeSession {
		return nil, fmt.Errorf("AUTH_MODE must be %q or %q", AuthModeJwt, AuthModeSession)
	}
	if mode == AuthModeSession && useRealAws {
		return nil, fmt.Errorf("AUTH_MODE %q is only allowed when USE_REAL_AWS is false", AuthModeSession)
	}

	jwksUrl := os.Getenv("JWKS_URL")
	if jwksUrl == "" && mode == AuthModeJwt {
		region := getEnvOrDefault("AWS_REGION", "us-east-1")
		poolID := os.Getenv("COGNITO_USER_POOL_ID")
		if poolID == "" {
			return nil, fmt.Errorf("JWKS_URL or COGNITO_USER_POOL_ID must be set")
		}
		jwksUrl = fmt.Sprintf("https://cognito-idp.%s.amazonaws.com/%s/.well-known/jwks.json", region, poolID)
	}

	return &AuthConfig{
		Mode:       mode,
		JwksUrl:    jwksUrl,
		AdminScope: getEnvOrDefault("ADMIN_SCOPE", "admin"),
		AdminUser:  getEnvOrDefault("ADMIN_USER", "admin"),
	}, nil
}
