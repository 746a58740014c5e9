package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"bytebasket/internal/core/apperror"
	"bytebasket/internal/domain/auth"
	"bytebasket/internal/domain/volunteer"
	"bytebasket/pkg/logger"
)

// AvailabilityOptions are the registration form's availability slots.
var AvailabilityOptions = []string{
	"weekday-mornings", "weekday-afternoons", "weekday-evenings",
	"weekend-mornings", "weekend-afternoons",
}

// VolunteerHandler drives the volunteer views and shift actions.
type VolunteerHandler struct {
	BaseHandler
	Shifts *volunteer.Service
	Auth   *auth.Service
}

type volunteerPage struct {
	Page
	View                volunteer.View
	Registered          bool
	VolunteerName       string
	Form                volunteer.RegistrationInput
	Errors              map[string]string
	AvailabilityOptions []string
	Date                string
	Shifts              []volunteer.Shift
	Upcoming            []volunteer.Shift
	Past                []volunteer.Shift
}

// Page renders the volunteer view for GET /?page=volunteer, applying the
// gating rules between views.
func (h *VolunteerHandler) Page(c *gin.Context) {
	ctx := c.Request.Context()
	sess := h.CurrentSession(c)

	requested := volunteer.ParseView(c.Query("view"))
	resolved, redirectSignup := volunteer.Resolve(requested, sess.Authenticated(), sess.VolunteerRegistered)
	if redirectSignup {
		h.RedirectWithNotice(c, "/?page=signup", "Sign in to register as a volunteer")
		return
	}

	data := volunteerPage{
		Page: Page{
			Title:         "Volunteer",
			Authenticated: sess.Authenticated(),
			Notice:        c.Query("notice"),
		},
		View:                resolved,
		Registered:          sess.VolunteerRegistered,
		VolunteerName:       sess.VolunteerName,
		AvailabilityOptions: AvailabilityOptions,
	}

	switch resolved {
	case volunteer.ViewSchedule:
		data.Date = c.Query("date")
		shifts, err := h.Shifts.Shifts(ctx, data.Date)
		if err != nil {
			data.Error = ErrorMessage(err)
		}
		data.Shifts = shifts
	case volunteer.ViewMyShifts:
		shifts, err := h.Shifts.MyShifts(ctx)
		if err != nil {
			data.Error = ErrorMessage(err)
		}
		data.Upcoming, data.Past = volunteer.SplitShifts(shifts, time.Now())
	}

	h.Render(c, 200, "volunteer.tmpl", data)
}

// Register handles POST /volunteers/register. On success the session
// records the registration so the register view gates to the schedule.
func (h *VolunteerHandler) Register(c *gin.Context) {
	in := volunteer.RegistrationInput{
		FirstName:        c.PostForm("firstName"),
		LastName:         c.PostForm("lastName"),
		Email:            c.PostForm("email"),
		Phone:            c.PostForm("phone"),
		Address:          c.PostForm("address"),
		City:             c.PostForm("city"),
		PostalCode:       c.PostForm("postalCode"),
		EmergencyContact: c.PostForm("emergencyContact"),
		EmergencyPhone:   c.PostForm("emergencyPhone"),
		Availability:     c.PostFormArray("availability"),
	}

	ctx := c.Request.Context()
	if err := h.Shifts.Register(ctx, in); err != nil {
		sess := h.CurrentSession(c)
		data := volunteerPage{
			Page:                Page{Title: "Volunteer", Authenticated: sess.Authenticated()},
			View:                volunteer.ViewRegister,
			Form:                in,
			AvailabilityOptions: AvailabilityOptions,
		}
		if fields := apperror.FieldErrors(err); fields != nil {
			data.Errors = fields
		} else {
			data.Error = ErrorMessage(err)
		}
		h.Render(c, apperror.GetHTTPStatus(err), "volunteer.tmpl", data)
		return
	}

	if err := h.Auth.MarkVolunteerRegistered(ctx, h.SessionID(c), in.FirstName); err != nil {
		logger.Warn(ctx, "failed to record volunteer registration in session", "error", err)
	}
	h.RedirectWithNotice(c, "/?page=volunteer&view=schedule", "Welcome aboard, "+in.FirstName+"!")
}

// SignUp handles POST /shifts/:id/signup.
func (h *VolunteerHandler) SignUp(c *gin.Context) {
	if _, err := h.Shifts.SignUp(c.Request.Context(), c.Param("id")); err != nil {
		h.Error(c, err)
		return
	}
	h.RedirectWithNotice(c, "/?page=volunteer&view=myshifts", "Shift confirmed")
}

// Cancel handles POST /shifts/:id/cancel. Like the other destructive
// actions it requires an explicit confirmation field.
func (h *VolunteerHandler) Cancel(c *gin.Context) {
	if c.PostForm("confirm") != "1" {
		h.Redirect(c, "/?page=volunteer&view=myshifts")
		return
	}
	if err := h.Shifts.Cancel(c.Request.Context(), c.Param("id")); err != nil {
		h.Error(c, err)
		return
	}
	h.RedirectWithNotice(c, "/?page=volunteer&view=myshifts", "Shift cancelled")
}
