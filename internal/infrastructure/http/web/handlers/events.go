package handlers

import (
	"encoding/json"
	"io"

	"github.com/gin-gonic/gin"

	"bytebasket/internal/infrastructure/session"
)

// EventsHandler streams session changes to the browser over SSE. A
// volunteer page holds this stream open; when the session logs out in
// another browsing context the event arrives and the page resets itself.
type EventsHandler struct {
	BaseHandler
}

// SessionEvents handles GET /events/session.
func (h *EventsHandler) SessionEvents(c *gin.Context) {
	id := h.SessionID(c)
	updates, cancel := h.Sessions.Watch(id)
	defer cancel()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	ctx := c.Request.Context()
	c.Stream(func(w io.Writer) bool {
		select {
		case sess, ok := <-updates:
			if !ok {
				return false
			}
			payload, _ := json.Marshal(sessionEvent(sess))
			c.SSEvent("session", string(payload))
			return true
		case <-ctx.Done():
			return false
		}
	})
}

func sessionEvent(s session.Session) map[string]any {
	return map[string]any{
		"authenticated":       s.Authenticated(),
		"volunteerRegistered": s.VolunteerRegistered,
		"volunteerName":       s.VolunteerName,
	}
}
