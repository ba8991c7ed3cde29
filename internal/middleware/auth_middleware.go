package middleware

import (
	"net/http"
	"strings"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse mirrors the API error DTO locally to avoid an import cycle
// with internal/api.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// Context keys set by the auth middleware.
const (
	ContextUserID      = "userID"
	ContextDisplayName = "userDisplayName"
)

// AuthMiddleware provides Gin middleware for Firebase ID token verification.
type AuthMiddleware struct {
	firebaseAuthClient *auth.Client
	logger             *zap.Logger
}

// NewAuthMiddleware creates a new AuthMiddleware instance. A nil auth client
// is a setup programmer error and panics.
func NewAuthMiddleware(fbAuthClient *auth.Client, logger *zap.Logger) *AuthMiddleware {
	if fbAuthClient == nil {
		panic("Firebase Auth client is not initialized for AuthMiddleware")
	}
	return &AuthMiddleware{firebaseAuthClient: fbAuthClient, logger: logger}
}

// VerifyToken requires a valid Firebase bearer token and sets the member's
// identity in the Gin context.
func (m *AuthMiddleware) VerifyToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, errResp := m.tokenFromHeader(c)
		if errResp != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errResp)
			return
		}
		m.setIdentity(c, token)
		c.Next()
	}
}

// OptionalToken verifies a bearer token when one is present but lets
// anonymous requests through. Public surfaces (the directory) use this so
// liked flags can be decorated for signed-in members without gating reads.
func (m *AuthMiddleware) OptionalToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.Next()
			return
		}
		token, errResp := m.tokenFromHeader(c)
		if errResp != nil {
			// A present-but-invalid token is rejected rather than silently
			// downgraded to anonymous.
			c.AbortWithStatusJSON(http.StatusUnauthorized, errResp)
			return
		}
		m.setIdentity(c, token)
		c.Next()
	}
}

func (m *AuthMiddleware) tokenFromHeader(c *gin.Context) (*auth.Token, *ErrorResponse) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, &ErrorResponse{Error: "Authorization header is required"}
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, &ErrorResponse{Error: "Authorization header format must be 'Bearer {token}'"}
	}

	token, err := m.firebaseAuthClient.VerifyIDToken(c.Request.Context(), parts[1])
	if err != nil {
		m.logger.Warn("failed to verify Firebase ID token", zap.Error(err))
		return nil, &ErrorResponse{Error: "Invalid or expired authentication token"}
	}
	return token, nil
}

func (m *AuthMiddleware) setIdentity(c *gin.Context, token *auth.Token) {
	c.Set(ContextUserID, token.UID)
	if name, ok := token.Claims["name"].(string); ok {
		c.Set(ContextDisplayName, name)
	}
}
