package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	appctx "bytebasket/internal/core/context"
)

// SessionCookie names the browsing-session cookie. The cookie carries
// only an opaque ID; all state lives server-side in the session store.
const SessionCookie = "bb_session"

// sessionKey is the gin context key for the session ID.
const sessionKey = "session_id"

// Session middleware assigns every browsing context a stable session ID,
// minting a cookie on first contact.
func Session(secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(SessionCookie)
		if err != nil || id == "" {
			id = uuid.New().String()
			http.SetCookie(c.Writer, &http.Cookie{
				Name:     SessionCookie,
				Value:    id,
				Path:     "/",
				HttpOnly: true,
				Secure:   secure,
				SameSite: http.SameSiteLaxMode,
			})
		}

		c.Set(sessionKey, id)
		c.Request = c.Request.WithContext(appctx.WithSessionID(c.Request.Context(), id))
		c.Next()
	}
}

// SessionID returns the session ID assigned by the Session middleware.
func SessionID(c *gin.Context) string {
	return c.GetString(sessionKey)
}
