package gesture

// TouchKind classifies a touch event.
type TouchKind uint8

const (
	TouchStart TouchKind = iota
	TouchMove
	TouchEnd
	TouchCancel
)

// String returns the kind name.
func (k TouchKind) String() string {
	switch k {
	case TouchStart:
		return "start"
	case TouchMove:
		return "move"
	case TouchEnd:
		return "end"
	case TouchCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// Contact is one active touch point in page coordinates.
type Contact struct {
	X, Y float64
}

// TouchEvent carries the contacts that are active after the event. For an
// end event this is the list of contacts still down.
type TouchEvent struct {
	Kind     TouchKind
	Contacts []Contact
}

// Phase is the gesture phase derived from the number of active contacts.
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseDragging
	PhasePinching
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseDragging:
		return "dragging"
	case PhasePinching:
		return "pinching"
	default:
		return "unknown"
	}
}

// maxContacts is the largest contact count the state machine tracks.
const maxContacts = 2

func phaseFor(count int) Phase {
	switch count {
	case 1:
		return PhaseDragging
	case 2:
		return PhasePinching
	default:
		return PhaseIdle
	}
}

// contactPoints converts the active contacts into an element-local pair.
// The caller guarantees 1 or 2 contacts.
func contactPoints(contacts []Contact, origin Vec2) PointPair {
	p0 := Vec2{X: contacts[0].X, Y: contacts[0].Y}.Sub(origin)
	if len(contacts) == 1 {
		return SinglePoint(p0)
	}
	p1 := Vec2{X: contacts[1].X, Y: contacts[1].Y}.Sub(origin)
	return PointPair{P0: p0, P1: p1}
}
