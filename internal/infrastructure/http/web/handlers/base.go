// Package handlers contains the console's page and action handlers. Pages
// render templates; actions are POST endpoints that call the platform API
// and redirect back. Failures a page can show are rendered inline; the
// rest flow to the error middleware.
package handlers

import (
	"html/template"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"bytebasket/internal/core/apperror"
	"bytebasket/internal/infrastructure/http/web/middleware"
	"bytebasket/internal/infrastructure/session"
	"bytebasket/pkg/logger"
)

// BaseHandler provides common handler utilities.
type BaseHandler struct {
	Templates *template.Template
	Sessions  session.Store
}

// SessionID returns the browsing session ID for this request.
func (h *BaseHandler) SessionID(c *gin.Context) string {
	return middleware.SessionID(c)
}

// CurrentSession loads the session, degrading to the zero session on
// store failure so pages render anonymously instead of erroring.
func (h *BaseHandler) CurrentSession(c *gin.Context) session.Session {
	sess, err := h.Sessions.Get(c.Request.Context(), h.SessionID(c))
	if err != nil {
		logger.Warn(c.Request.Context(), "session load failed", "error", err)
		return session.Session{}
	}
	return sess
}

// Render writes a page template with data.
func (h *BaseHandler) Render(c *gin.Context, status int, name string, data any) {
	c.Status(status)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := h.Templates.ExecuteTemplate(c.Writer, name, data); err != nil {
		logger.Error(c.Request.Context(), "template render failed",
			"template", name, "error", err)
	}
}

// Error registers an error for the error middleware and aborts.
func (h *BaseHandler) Error(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// Redirect issues a 303 so POST actions land on a GET page.
func (h *BaseHandler) Redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusSeeOther, location)
}

// RedirectWithNotice redirects carrying a one-shot notice query param.
func (h *BaseHandler) RedirectWithNotice(c *gin.Context, location, notice string) {
	sep := "?"
	if u, err := url.Parse(location); err == nil && u.RawQuery != "" {
		sep = "&"
	}
	c.Redirect(http.StatusSeeOther, location+sep+"notice="+url.QueryEscape(notice))
}

// ErrorMessage extracts a displayable message from err.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	if appErr, ok := apperror.AsAppError(err); ok {
		return appErr.Message
	}
	return "Something went wrong. Please try again."
}

// Page is the common template payload every page embeds.
type Page struct {
	Title            string
	Authenticated    bool
	ShowHealth       bool
	BackendReachable bool
	Error            string
	Notice           string
}
