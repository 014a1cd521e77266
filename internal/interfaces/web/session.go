package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/shared/authorization"
)

const sessionCookie = "helpdesk_session"

const sessionKey = "session"

// RequireSession redirects anonymous visitors to the login page. The
// session cookie is a signed JWT; role flags sent to the backend always
// derive from it, never from anything the browser supplies.
func RequireSession(sessions *auth.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(sessionCookie)
		if err != nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		claims, err := sessions.Verify(token)
		if err != nil {
			clearSessionCookie(c)
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set(sessionKey, claims)
		c.Next()
	}
}

func getSession(c *gin.Context) *auth.SessionClaims {
	v, exists := c.Get(sessionKey)
	if !exists {
		return nil
	}
	claims, _ := v.(*auth.SessionClaims)
	return claims
}

func sessionActor(claims *auth.SessionClaims) authorization.Actor {
	return authorization.Actor{UserID: claims.UserID, Role: claims.Role}
}

func setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetCookie(sessionCookie, token, maxAge, "/", "", false, true)
}

func clearSessionCookie(c *gin.Context) {
	c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
}
