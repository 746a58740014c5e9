package handlers

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthChecker probes backend reachability for the page footer.
type HealthChecker interface {
	Check(ctx context.Context) (bool, time.Duration, error)
}

// HomeHandler renders the landing page and dispatches the ?page= views.
type HomeHandler struct {
	BaseHandler
	Health HealthChecker

	Inventory  *InventoryHandler
	FoodBanks  *FoodBankHandler
	Volunteer  *VolunteerHandler
	Donate     *DonateHandler
	Auth       *AuthHandler
	Dashboard  *DashboardHandler
	VerifyMail *VerifyEmailHandler
}

// Root dispatches on the page query parameter, defaulting to home.
func (h *HomeHandler) Root(c *gin.Context) {
	switch c.Query("page") {
	case "", "home":
		h.Home(c)
	case "signup":
		h.Auth.SignupPage(c)
	case "donate":
		h.Donate.Page(c)
	case "inventory":
		h.Inventory.Page(c)
	case "foodbank":
		h.FoodBanks.Page(c)
	case "dashboard":
		h.Dashboard.Page(c)
	case "volunteer":
		h.Volunteer.Page(c)
	case "contact":
		h.Contact(c)
	case "verify-email":
		h.VerifyMail.Page(c)
	default:
		h.Home(c)
	}
}

// Home renders the landing page with the backend reachability probe.
func (h *HomeHandler) Home(c *gin.Context) {
	page := h.pageData(c, "Home")
	page.ShowHealth = true
	if h.Health != nil {
		page.BackendReachable, _, _ = h.Health.Check(c.Request.Context())
	}
	h.Render(c, 200, "home.tmpl", page)
}

// Contact renders the static contact page.
func (h *HomeHandler) Contact(c *gin.Context) {
	h.Render(c, 200, "contact.tmpl", h.pageData(c, "Contact"))
}

func (h *HomeHandler) pageData(c *gin.Context, title string) Page {
	return Page{
		Title:         title,
		Authenticated: h.CurrentSession(c).Authenticated(),
		Notice:        c.Query("notice"),
	}
}
