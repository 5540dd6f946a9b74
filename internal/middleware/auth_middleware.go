package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/snpzone/skillhunt/internal/app/models/dto"
	"github.com/snpzone/skillhunt/internal/pkg/auth"
)

// Session cookie names, one per identity kind. Sessions are cookie-bound
// JWTs; no Authorization header is involved.
const (
	CompanyCookieName = "companyAuthToken"
	StudentCookieName = "studentAuthToken"
)

// Context keys set by SessionAuth for downstream handlers.
const (
	ContextRecordID = "recordID"
	ContextEmail    = "email"
	ContextKind     = "kind"
)

// CookieNameFor returns the session cookie name for an identity kind.
func CookieNameFor(kind auth.IdentityKind) string {
	if kind == auth.KindCompany {
		return CompanyCookieName
	}
	return StudentCookieName
}

// AuthMiddleware guards routes with the session cookie of one identity kind.
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

// SessionAuth validates the kind's session cookie and loads the claims into
// the request context. A token of the wrong kind is rejected the same as a
// missing one.
func (m *AuthMiddleware) SessionAuth(kind auth.IdentityKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(CookieNameFor(kind))
		if err != nil || tokenString == "" {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		claims, err := m.jwtService.ValidateSessionToken(tokenString)
		if err != nil {
			errorCode := dto.ErrorCodeInvalidToken
			errorMessage := "Invalid session"
			if errors.Is(err, auth.ErrExpiredToken) {
				errorCode = dto.ErrorCodeExpiredToken
				errorMessage = "Session expired"
			}
			errorDetail := dto.NewErrorDetail(errorCode, errorMessage)
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		if claims.Kind != kind {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		c.Set(ContextRecordID, claims.RecordID)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextKind, string(claims.Kind))

		c.Next()
	}
}

// RecordIDFromContext returns the authenticated record id set by SessionAuth.
func RecordIDFromContext(c *gin.Context) (int64, bool) {
	v, exists := c.Get(ContextRecordID)
	if !exists {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
