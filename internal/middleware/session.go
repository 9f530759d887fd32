package middleware

import (
	"net/http"
	"strings"

	"github.com/amaumene/moviehub/internal/constants"
	"github.com/amaumene/moviehub/internal/session"
	"github.com/gin-gonic/gin"
)

const sessionKey = "moviehub.session"

// LoadSession resolves the session cookie against the store and, when it
// names a live session, makes it available through CurrentSession.
func LoadSession(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if id, err := c.Cookie(constants.SessionCookieName); err == nil {
			if sess, ok := store.Get(id); ok {
				c.Set(sessionKey, sess)
			}
		}
		c.Next()
	}
}

// CurrentSession returns the session attached by LoadSession, if any.
func CurrentSession(c *gin.Context) (*session.Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil, false
	}
	sess, ok := v.(*session.Session)
	return sess, ok
}

// RequireLogin stops anonymous visitors. Pages redirect to the login form;
// API calls get a 401.
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentSession(c); ok {
			c.Next()
			return
		}

		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "login required"})
			return
		}
		c.Redirect(http.StatusSeeOther, "/login")
		c.Abort()
	}
}
