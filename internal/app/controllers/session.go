package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/snpzone/skillhunt/internal/app/models/dto"
	"github.com/snpzone/skillhunt/internal/middleware"
	"github.com/snpzone/skillhunt/internal/pkg/auth"
)

// setSessionCookie writes an HttpOnly session cookie scoped to the whole API.
func setSessionCookie(ctx *gin.Context, name, token string, maxAge int) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(name, token, maxAge, "/", "", false, true)
}

// clearSessionCookie expires a session cookie immediately.
func clearSessionCookie(ctx *gin.Context, name string) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(name, "", -1, "/", "", false, true)
}

// checkSession reports the validity of a kind's session cookie without
// failing the request. An absent or invalid cookie yields isLoggedIn=false
// with status 200.
func checkSession(ctx *gin.Context, jwtService *auth.JWTService, kind auth.IdentityKind) {
	tokenString, err := ctx.Cookie(middleware.CookieNameFor(kind))
	if err != nil || tokenString == "" {
		ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SessionStatusResponse{IsLoggedIn: false}})
		return
	}

	claims, err := jwtService.ValidateSessionToken(tokenString)
	if err != nil || claims.Kind != kind {
		ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SessionStatusResponse{IsLoggedIn: false}})
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{Data: dto.SessionStatusResponse{
		IsLoggedIn: true,
		RecordID:   claims.RecordID,
		Email:      claims.Email,
	}})
}
