// Package script loads timed touch scripts and replays them through a
// gesture controller on a virtual clock.
//
// A script is a YAML document:
//
//	config:
//	  maxScale: 3
//	element: {x: 0, y: 0, width: 400, height: 300}
//	frameInterval: 16ms
//	settle: 1s
//	events:
//	  - {at: 0ms, kind: start, contacts: [[100, 100], [200, 100]]}
//	  - {at: 16ms, kind: move, contacts: [[50, 100], [250, 100]]}
//	  - {at: 32ms, kind: end}
//	  - {at: 500ms, kind: reset, force: true}
//
// Contacts are page coordinates. The viewport defaults to the element
// bounds. Events must be ordered by time.
package script

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/gesture"
	"github.com/gogpu/gesture/virtual"
)

// ErrInvalidScript is returned for scripts that cannot be replayed.
var ErrInvalidScript = errors.New("script: invalid script")

// DefaultSettle is how long playback keeps the clock running after the last
// event so that pending animations finish.
const DefaultSettle = time.Second

// Script is a decoded gesture script.
type Script struct {
	Config        gesture.Config `yaml:"config"`
	Element       gesture.Rect   `yaml:"element"`
	Viewport      *gesture.Rect  `yaml:"viewport"`
	FrameInterval time.Duration  `yaml:"frameInterval"`
	Settle        time.Duration  `yaml:"settle"`
	// Instant replays without a frame scheduler, so resets apply at once.
	Instant bool    `yaml:"instant"`
	Events  []Event `yaml:"events"`
}

// Event is one scripted input. Reset events call Controller.Reset instead
// of delivering a touch.
type Event struct {
	At       time.Duration
	Kind     gesture.TouchKind
	Contacts []gesture.Contact
	Reset    bool
	Force    bool
}

const resetKind = "reset"

var touchKinds = []gesture.TouchKind{
	gesture.TouchStart,
	gesture.TouchMove,
	gesture.TouchEnd,
	gesture.TouchCancel,
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (e *Event) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		At       time.Duration `yaml:"at"`
		Kind     string        `yaml:"kind"`
		Contacts [][]float64   `yaml:"contacts"`
		Force    bool          `yaml:"force"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}

	*e = Event{At: raw.At, Force: raw.Force}
	if raw.Kind == resetKind {
		e.Reset = true
		if len(raw.Contacts) > 0 {
			return fmt.Errorf("line %d: reset events carry no contacts", value.Line)
		}
		return nil
	}

	kind, ok := parseKind(raw.Kind)
	if !ok {
		return fmt.Errorf("line %d: unknown event kind %q", value.Line, raw.Kind)
	}
	e.Kind = kind
	for i, c := range raw.Contacts {
		if len(c) != 2 {
			return fmt.Errorf("line %d: contact %d has %d coordinates, want 2", value.Line, i, len(c))
		}
		e.Contacts = append(e.Contacts, gesture.Contact{X: c[0], Y: c[1]})
	}
	return nil
}

func parseKind(s string) (gesture.TouchKind, bool) {
	for _, k := range touchKinds {
		if k.String() == s {
			return k, true
		}
	}
	return 0, false
}

// Load decodes and validates a script. Missing config keys keep their
// defaults.
func Load(r io.Reader) (*Script, error) {
	s := &Script{
		Config:        gesture.DefaultConfig(),
		FrameInterval: virtual.DefaultFrameInterval,
		Settle:        DefaultSettle,
	}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidScript)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidScript, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks the script for problems that would make playback
// meaningless.
func (s *Script) Validate() error {
	var errs []error
	if err := s.Config.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalidScript, err))
	}
	if s.Element.Width <= 0 || s.Element.Height <= 0 {
		errs = append(errs, fmt.Errorf("%w: element must have a positive size, got %vx%v",
			ErrInvalidScript, s.Element.Width, s.Element.Height))
	}
	if s.FrameInterval <= 0 {
		errs = append(errs, fmt.Errorf("%w: frameInterval must be positive", ErrInvalidScript))
	}
	if s.Settle < 0 {
		errs = append(errs, fmt.Errorf("%w: settle must not be negative", ErrInvalidScript))
	}
	for i := 1; i < len(s.Events); i++ {
		if s.Events[i].At < s.Events[i-1].At {
			errs = append(errs, fmt.Errorf("%w: event %d at %v precedes event %d at %v",
				ErrInvalidScript, i, s.Events[i].At, i-1, s.Events[i-1].At))
		}
	}
	return errors.Join(errs...)
}

// ViewportRect returns the viewport, falling back to the element bounds.
func (s *Script) ViewportRect() gesture.Rect {
	if s.Viewport != nil {
		return *s.Viewport
	}
	return s.Element
}

// Frame is one displayed transform and the virtual time it was shown at.
type Frame struct {
	At        time.Duration
	Transform gesture.Transform
}

// Recording is the outcome of a playback.
type Recording struct {
	SessionID string
	Element   gesture.Rect
	Viewport  gesture.Rect
	Frames    []Frame
	// Final is the transform displayed when playback ended.
	Final   gesture.Transform
	Session gesture.Session
}

// Play replays s on a fresh controller. Options are passed to
// NewController; an observer set through them is replaced by the recorder.
func Play(ctx context.Context, s *Script, opts ...gesture.Option) (*Recording, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	clock := virtual.New(virtual.WithFrameInterval(s.FrameInterval))
	rec := &Recording{Element: s.Element, Viewport: s.ViewportRect()}

	host := gesture.Host{
		Element:  gesture.StaticRect(s.Element),
		Viewport: gesture.StaticRect(rec.Viewport),
		Frames:   clock,
		Timers:   clock,
	}
	if s.Instant {
		host.Frames = nil
	}

	all := append(append([]gesture.Option(nil), opts...), gesture.WithObserver(func(t gesture.Transform) {
		rec.Frames = append(rec.Frames, Frame{At: clock.Now(), Transform: t})
	}))
	c, err := gesture.NewController(host, s.Config, all...)
	if err != nil {
		return nil, err
	}
	defer c.Close()
	rec.SessionID = c.ID()

	for i, ev := range s.Events {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("script: playback stopped at event %d: %w", i, err)
		}
		clock.AdvanceTo(ev.At)
		if ev.Reset {
			err = c.Reset(ev.Force)
		} else {
			err = c.HandleTouch(gesture.TouchEvent{Kind: ev.Kind, Contacts: ev.Contacts})
		}
		if err != nil {
			return nil, fmt.Errorf("script: event %d: %w", i, err)
		}
	}
	clock.Advance(s.Settle)

	rec.Final = c.Transform()
	rec.Session = c.Session()
	return rec, nil
}

// Sample returns up to n frames spread evenly over the recording, always
// including the last one. n <= 0 returns every frame.
func (r *Recording) Sample(n int) []Frame {
	if n <= 0 || n >= len(r.Frames) {
		return r.Frames
	}
	if n == 1 {
		return r.Frames[len(r.Frames)-1:]
	}
	out := make([]Frame, 0, n)
	step := float64(len(r.Frames)-1) / float64(n-1)
	for i := 0; i < n; i++ {
		out = append(out, r.Frames[int(float64(i)*step+0.5)])
	}
	return out
}
