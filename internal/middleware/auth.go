package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"plantcare.app/leafclinic/pkg/view"
)

// SessionCookie carries the signed session token. No session state is held
// server-side; the cookie is the whole authenticated session.
const SessionCookie = "leafclinic_session"

// ContextUserID is the gin context key holding the authenticated user id.
const ContextUserID = "user_id"

const loginRequiredMessage = "You must login to access this page!"

type AuthMiddleware struct {
	secret string
}

func NewAuthMiddleware(secret string) *AuthMiddleware {
	return &AuthMiddleware{secret: secret}
}

// RequireAuth gates protected routes. A missing, malformed, or expired
// session cookie redirects to the login page with a standing message.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(SessionCookie)
		if err != nil || tokenString == "" {
			m.reject(c)
			return
		}

		token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(m.secret), nil
		})

		if err != nil || !token.Valid {
			m.reject(c)
			return
		}

		claims, ok := token.Claims.(*jwt.RegisteredClaims)
		if !ok || claims.Subject == "" {
			m.reject(c)
			return
		}

		c.Set(ContextUserID, claims.Subject)
		c.Next()
	}
}

func (m *AuthMiddleware) reject(c *gin.Context) {
	view.SetFlash(c, loginRequiredMessage)
	c.Redirect(http.StatusSeeOther, "/login")
	c.Abort()
}
