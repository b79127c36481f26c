package handler

import (
	"net/http"
	"strings"

	"github.com/dayvsonmarques/web-cardapio-sub001/internal/dto"
	"github.com/dayvsonmarques/web-cardapio-sub001/internal/service"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the session token and adds user info to context.
// The token is read from the Authorization header or, failing that, from the
// session cookie, so both API clients and browsers are served.
func AuthMiddleware(authService service.AuthService, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c, cookieName)
		if token == "" {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error:   "Unauthorized",
				Message: "Session token is required",
			})
			c.Abort()
			return
		}

		claims, err := authService.ValidateSession(c.Request.Context(), token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error:   "Unauthorized",
				Message: "Invalid or expired session",
			})
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("is_admin", claims.IsAdmin)
		c.Set("session_token", token)
		c.Set("claims", claims)

		c.Next()
	}
}

// AdminMiddleware allows only administrators through. Must run after
// AuthMiddleware.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool("is_admin") {
			c.JSON(http.StatusForbidden, dto.ErrorResponse{
				Error:   "Forbidden",
				Message: "Administrator access required",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func extractToken(c *gin.Context, cookieName string) string {
	// A non-Bearer Authorization header (Basic, garbage) does not block
	// cookie auth; browsers can send both.
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
	}

	cookie, err := c.Cookie(cookieName)
	if err != nil {
		return ""
	}
	return cookie
}
