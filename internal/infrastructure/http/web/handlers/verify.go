package handlers

import (
	"github.com/gin-gonic/gin"

	"bytebasket/internal/domain/auth"
)

// VerifyEmailHandler serves the email verification landing page. Both the
// literal /verify-email path and ?page=verify-email reach it.
type VerifyEmailHandler struct {
	BaseHandler
	Auth *auth.Service
}

type verifyPage struct {
	Page
	Verified bool
	Message  string
	Email    string
}

// Page verifies the token from the link and renders the result.
func (h *VerifyEmailHandler) Page(c *gin.Context) {
	data := verifyPage{Page: Page{Title: "Verify Email"}}

	msg, err := h.Auth.VerifyEmail(c.Request.Context(), c.Query("token"))
	if err != nil {
		data.Message = ErrorMessage(err)
		h.Render(c, 200, "verify_email.tmpl", data)
		return
	}
	data.Verified = true
	data.Message = msg
	h.Render(c, 200, "verify_email.tmpl", data)
}

// Resend handles POST /auth/resend-verification.
func (h *VerifyEmailHandler) Resend(c *gin.Context) {
	email := c.PostForm("email")
	if err := h.Auth.ResendVerification(c.Request.Context(), email); err != nil {
		data := verifyPage{
			Page:    Page{Title: "Verify Email"},
			Message: ErrorMessage(err),
			Email:   email,
		}
		h.Render(c, 200, "verify_email.tmpl", data)
		return
	}
	h.RedirectWithNotice(c, "/?page=signup", "Verification email sent. Check your inbox.")
}
