package handlers

import (
	"github.com/gin-gonic/gin"

	"bytebasket/internal/core/apperror"
	"bytebasket/internal/domain/auth"
)

// AuthHandler drives sign-in, registration and logout.
type AuthHandler struct {
	BaseHandler
	Auth *auth.Service
}

type signupPage struct {
	Page
	SignIn       auth.Credentials
	SignInErrors map[string]string
	SignUp       auth.SignUpInput
	SignUpErrors map[string]string
}

// SignupPage renders the combined sign-in / register page.
func (h *AuthHandler) SignupPage(c *gin.Context) {
	h.Render(c, 200, "signup.tmpl", signupPage{
		Page: Page{
			Title:         "Sign In",
			Authenticated: h.CurrentSession(c).Authenticated(),
			Notice:        c.Query("notice"),
		},
	})
}

// SignIn handles POST /signin.
func (h *AuthHandler) SignIn(c *gin.Context) {
	creds := auth.Credentials{
		Email:    c.PostForm("email"),
		Password: c.PostForm("password"),
	}
	_, err := h.Auth.SignIn(c.Request.Context(), h.SessionID(c), creds)
	if err != nil {
		data := signupPage{
			Page:   Page{Title: "Sign In"},
			SignIn: auth.Credentials{Email: creds.Email},
		}
		if fields := apperror.FieldErrors(err); fields != nil {
			data.SignInErrors = fields
		} else {
			data.Error = ErrorMessage(err)
		}
		h.Render(c, apperror.GetHTTPStatus(err), "signup.tmpl", data)
		return
	}
	h.Redirect(c, "/?page=dashboard")
}

// Register handles POST /register.
func (h *AuthHandler) Register(c *gin.Context) {
	in := auth.SignUpInput{
		Name:     c.PostForm("name"),
		Email:    c.PostForm("email"),
		Password: c.PostForm("password"),
		Role:     c.PostForm("role"),
	}
	_, signedIn, err := h.Auth.SignUp(c.Request.Context(), h.SessionID(c), in)
	if err != nil {
		data := signupPage{
			Page:   Page{Title: "Sign In"},
			SignUp: auth.SignUpInput{Name: in.Name, Email: in.Email, Role: in.Role},
		}
		if fields := apperror.FieldErrors(err); fields != nil {
			data.SignUpErrors = fields
		} else {
			data.Error = ErrorMessage(err)
		}
		h.Render(c, apperror.GetHTTPStatus(err), "signup.tmpl", data)
		return
	}
	if signedIn {
		h.Redirect(c, "/?page=dashboard")
		return
	}
	h.RedirectWithNotice(c, "/?page=signup",
		"Account created. Check your email to verify your address before signing in.")
}

// Logout handles POST /logout. The API call is best-effort; the local
// session always clears and the browser lands on home.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.Auth.SignOut(c.Request.Context(), h.SessionID(c)); err != nil {
		h.Error(c, err)
		return
	}
	h.Redirect(c, "/?page=home")
}
