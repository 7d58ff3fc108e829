package middleware

import (
	"fmt"
	"github.com/MicahParks/keyfunc/v2"
	"github.com/Tejasai37/papercast/application/ports/outbound"
	"github.com/Tejasai37/papercast/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"net/http"
	"strings"
	"time"
)

const (
	ContextUserIDKey = "userID"
	ContextScopesKey = "scopes"

	SessionCookieName = "session"
)

type CustomClaims struct {
	jwt.RegisteredClaims
	Scopes string `json:"scope,omitempty"`
}

// AuthHandler resolves the caller identity. A request without credentials
// passes through anonymously; invalid credentials are rejected.
type AuthHandler interface {
	AuthMiddleware() gin.HandlerFunc
}

type jwtAuthHandler struct {
	logger  outbound.LoggerPort
	keyfunc jwt.Keyfunc
}

type sessionAuthHandler struct {
	adminUser  string
	adminScope string
}

func NewAuthHandler(logger outbound.LoggerPort, authConfig *config.AuthConfig) (AuthHandler, error) {
	if authConfig.Mode == config.AuthModeSession {
		return NewSessionAuthHandler(authConfig.AdminUser, authConfig.AdminScope), nil
	}

	options := keyfunc.Options{
		RefreshErrorHandler: func(err error) {
			logger.ErrorWithFields(err, "There was an error with the jwt.Keyfunc", map[string]interface{}{
				"jwks_url": authConfig.JwksUrl,
			})
		},
		RefreshInterval:   time.Hour,
		RefreshRateLimit:  time.Minute * 5,
		RefreshTimeout:    time.Second * 10,
		RefreshUnknownKID: true,
	}

	jwks, err := keyfunc.Get(authConfig.JwksUrl, options)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWKS from %s: %w", authConfig.JwksUrl, err)
	}

	return NewJwtAuthHandler(logger, jwks.Keyfunc), nil
}

func NewJwtAuthHandler(logger outbound.LoggerPort, keyfunc jwt.Keyfunc) AuthHandler {
	return &jwtAuthHandler{
		logger:  logger,
		keyfunc: keyfunc,
	}
}

func NewSessionAuthHandler(adminUser string, adminScope string) AuthHandler {
	return &sessionAuthHandler{
		adminUser:  adminUser,
		adminScope: adminScope,
	}
}

func (h *jwtAuthHandler) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")
		if tokenString == "" {
			c.Next()
			return
		}

		tokenString = strings.TrimPrefix(tokenString, "Bearer ")

		var claims CustomClaims
		token, err := jwt.ParseWithClaims(tokenString, &claims, h.keyfunc)
		if err != nil || !token.Valid {
			h.logger.DebugWithFields("Rejected bearer token", map[string]interface{}{
				"path": c.Request.URL.Path,
			})
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		if claims.Subject == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token claims"})
			return
		}

		c.Set(ContextUserIDKey, claims.Subject)
		c.Set(ContextScopesKey, strings.Fields(claims.Scopes))
		c.Next()
	}
}

// AuthMiddleware trusts the session cookie set at login. The configured admin
// user is granted the admin scope.
func (h *sessionAuthHandler) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := c.Cookie(SessionCookieName)
		if err != nil || user == "" {
			c.Next()
			return
		}

		scopes := []string{}
		if user == h.adminUser {
			scopes = append(scopes, h.adminScope)
		}
		c.Set(ContextUserIDKey, user)
		c.Set(ContextScopesKey, scopes)
		c.Next()
	}
}

// RequireScope rejects anonymous callers with 401 and callers lacking the
// scope with 403.
func RequireScope(scope string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if UserID(c) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		for _, granted := range c.GetStringSlice(ContextScopesKey) {
			if granted == scope {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "missing scope " + scope})
	}
}

func UserID(c *gin.Context) string {
	return c.GetString(ContextUserIDKey)
}
