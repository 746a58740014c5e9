package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"bytebasket/internal/core/apperror"
	"bytebasket/internal/domain/auth"
	"bytebasket/pkg/logger"
)

// DashboardAPI is the summary endpoint slice used by the dashboard page.
type DashboardAPI interface {
	DashboardSummary(ctx context.Context) (*auth.Dashboard, error)
}

// DashboardHandler renders the role-dependent dashboard.
type DashboardHandler struct {
	BaseHandler
	Auth *auth.Service
	API  DashboardAPI
}

type dashboardPage struct {
	Page
	User    *auth.User
	Summary auth.Dashboard
}

// Page renders the dashboard. Without a usable token it shows the
// Please-Log-In state without touching the API.
func (h *DashboardHandler) Page(c *gin.Context) {
	ctx := c.Request.Context()
	data := dashboardPage{Page: Page{Title: "Dashboard", Notice: c.Query("notice")}}

	user, err := h.Auth.CurrentUser(ctx, h.SessionID(c))
	if err != nil {
		if apperror.IsUnauthorized(err) {
			h.Render(c, 200, "dashboard.tmpl", data)
			return
		}
		data.Error = ErrorMessage(err)
		h.Render(c, apperror.GetHTTPStatus(err), "dashboard.tmpl", data)
		return
	}

	data.Authenticated = true
	data.User = user
	if summary, err := h.API.DashboardSummary(ctx); err != nil {
		logger.Warn(ctx, "dashboard summary fetch failed", "error", err)
	} else if summary != nil {
		data.Summary = *summary
	}
	h.Render(c, 200, "dashboard.tmpl", data)
}
