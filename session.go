package gesture

// Session is the mutable gesture state owned by a Controller.
type Session struct {
	// Source holds the points captured when the contact count last changed.
	Source PointPair
	// Dest holds the most recent points for the current contact count.
	Dest PointPair
	// Active is the last committed transform. Incremental gestures compose
	// onto it.
	Active Transform
	// Preview is the transform currently displayed.
	Preview Transform
	// Count is the contact count recorded by the previous event.
	Count int

	DoubleTapPending bool
	Animating        bool
}

// Phase returns the gesture phase implied by the recorded contact count.
func (s Session) Phase() Phase {
	return phaseFor(s.Count)
}

func newSession() Session {
	return Session{Active: Identity(), Preview: Identity()}
}

// step is what a touch event does to the session.
type step uint8

const (
	// stepIgnore leaves the session untouched.
	stepIgnore step = iota
	// stepFinalize commits the preview and records zero contacts.
	stepFinalize
	// stepRebase commits the preview and captures a new baseline.
	stepRebase
	// stepPreview updates the destination points and recomputes the preview.
	stepPreview
)

// nextStep classifies an event carrying n contacts. stale forces a new
// baseline even when the count did not change.
func nextStep(recorded, n int, stale bool) step {
	switch {
	case n > maxContacts:
		return stepIgnore
	case n != recorded || stale:
		if n == 0 {
			return stepFinalize
		}
		return stepRebase
	case n == 0:
		return stepIgnore
	default:
		return stepPreview
	}
}
