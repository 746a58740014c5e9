package volunteer

// View is a volunteer page view.
type View string

const (
	ViewLanding  View = "landing"
	ViewRegister View = "register"
	ViewSchedule View = "schedule"
	ViewMyShifts View = "myshifts"
)

// ParseView maps a query value to a View, defaulting to the landing view.
func ParseView(s string) View {
	switch View(s) {
	case ViewRegister, ViewSchedule, ViewMyShifts:
		return View(s)
	default:
		return ViewLanding
	}
}

// Resolve applies the gating rules to a requested view transition:
// entering register unauthenticated redirects to the signup flow; entering
// register when already registered lands on the schedule instead. All
// other transitions pass through.
func Resolve(requested View, authenticated, registered bool) (view View, redirectSignup bool) {
	if requested == ViewRegister {
		if !authenticated {
			return ViewLanding, true
		}
		if registered {
			return ViewSchedule, false
		}
	}
	return requested, false
}
