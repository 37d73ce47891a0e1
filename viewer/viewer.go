// Package viewer runs the paint/present interaction loop over a raster
// buffer, independent of any concrete display backend.
package viewer

import (
	"log/slog"
	"time"

	"ppmview/display"
	"ppmview/raster"
)

// Config wires a Viewer's collaborators.
type Config struct {
	Buffer  *raster.Buffer
	Surface display.Surface
	Input   display.Input
	Log     *slog.Logger
	// Now overrides the frame clock in tests.
	Now func() time.Time
}

// Viewer is the single-threaded interaction loop: drain input, apply
// paint strokes, push the buffer to the surface once per frame.
type Viewer struct {
	buf     *raster.Buffer
	surface display.Surface
	input   display.Input
	log     *slog.Logger
	now     func() time.Time

	running   bool
	mouseDown bool
}

// New returns a running Viewer over cfg.Buffer.
func New(cfg Config) *Viewer {
	log := cfg.Log
	if log == nil {
		log = slog.Default()
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Viewer{
		buf:     cfg.Buffer,
		surface: cfg.Surface,
		input:   cfg.Input,
		log:     log,
		now:     now,
		running: true,
	}
}

// Running reports whether the loop has been asked to stop.
func (v *Viewer) Running() bool { return v.running }

// Step runs one frame: clear, drain events, upload, present. It returns
// display.Stop once a quit event or Escape has been seen. The stop flag
// is evaluated only here, at the frame boundary; a frame that sees a
// quit event still finishes its upload and present.
func (v *Viewer) Step() error {
	if !v.running {
		return display.Stop
	}
	start := v.now()

	v.surface.Clear()

	for {
		ev, ok := v.input.PollEvent()
		if !ok {
			break
		}
		v.handle(ev)
	}

	if err := v.surface.Update(v.buf.Bytes(), v.buf.StrideBytes()); err != nil {
		return err
	}
	if err := v.surface.Present(); err != nil {
		return err
	}

	// Diagnostic only, never used for pacing.
	v.log.Debug("frame", "elapsed", v.now().Sub(start))

	if !v.running {
		return display.Stop
	}
	return nil
}

func (v *Viewer) handle(ev display.Event) {
	switch ev.Kind {
	case display.EventQuit:
		v.running = false
	case display.EventKey:
		if ev.Key == display.KeyEscape && ev.Press {
			v.running = false
		}
	case display.EventMouseButton:
		if ev.Button != display.MouseLeft {
			return
		}
		v.mouseDown = ev.Press
		// A press starts the stroke at the cursor.
		if ev.Press {
			v.paint(ev.X, ev.Y)
		}
	case display.EventMouseMotion:
		if v.mouseDown {
			v.paint(ev.X, ev.Y)
		}
	}
}

// paint marks one pixel of the stroke pure red. Coordinates outside the
// buffer are clipped by SetRGB.
func (v *Viewer) paint(x, y int) {
	v.buf.SetRGB(x, y, 0xFF, 0x00, 0x00)
}
