// Package display is the seam between the interaction loop and the
// windowing backend: a pixel surface plus a non-blocking event source.
package display

import "errors"

// Stop is returned by an app step to request orderly shutdown.
var Stop = errors.New("display: stop")

// Surface receives frames from the interaction loop.
type Surface interface {
	Size() (w, h int)
	// Clear erases the previous frame.
	Clear()
	// Update replaces the surface contents with an interleaved RGB
	// pixel buffer of the given row stride.
	Update(pix []byte, stride int) error
	// Present pushes the updated contents to the screen. Backends that
	// present on their own cadence return nil.
	Present() error
}

// Input hands out pending events, oldest first.
type Input interface {
	// PollEvent never blocks; ok is false once the queue is drained.
	PollEvent() (ev Event, ok bool)
}

// EventKind discriminates Event.
type EventKind uint8

const (
	EventQuit EventKind = iota + 1
	EventKey
	EventMouseButton
	EventMouseMotion
)

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyEscape
	KeyF1
)

// MouseButton identifies a pointer button.
type MouseButton uint8

const (
	MouseLeft MouseButton = iota + 1
	MouseRight
)

// Event is one input event. Kind selects which fields are meaningful:
// Key for EventKey, Button for EventMouseButton, X/Y for pointer events.
type Event struct {
	Kind   EventKind
	Key    KeyCode
	Button MouseButton
	Press  bool
	X, Y   int
}
