package display

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Headless is a Surface that remembers the last presented frame. It backs
// the no-window run mode and the loop tests.
type Headless struct {
	w, h     int
	frame    []byte
	stride   int
	clears   int
	presents int
}

// NewHeadless returns a headless surface of the given dimensions.
func NewHeadless(w, h int) *Headless {
	return &Headless{w: w, h: h}
}

func (s *Headless) Size() (int, int) { return s.w, s.h }

func (s *Headless) Clear() {
	for i := range s.frame {
		s.frame[i] = 0
	}
	s.clears++
}

func (s *Headless) Update(pix []byte, stride int) error {
	if len(s.frame) != len(pix) {
		s.frame = make([]byte, len(pix))
	}
	copy(s.frame, pix)
	s.stride = stride
	return nil
}

func (s *Headless) Present() error {
	s.presents++
	return nil
}

// Frame returns the last updated frame and its stride.
func (s *Headless) Frame() ([]byte, int) { return s.frame, s.stride }

// Clears returns how many times the surface has been cleared.
func (s *Headless) Clears() int { return s.clears }

// Presents returns how many frames have been presented.
func (s *Headless) Presents() int { return s.presents }

// HeadlessConfig controls the no-window runner.
type HeadlessConfig struct {
	Width  int
	Height int
	Hz     int
	Ticks  uint64
}

// RunHeadless drives the app loop without opening a window. It returns
// nil when the step requests Stop or the tick budget runs out, and the
// context error when ctx is canceled.
func RunHeadless(ctx context.Context, cfg HeadlessConfig, newApp func(Surface, Input) func() error) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("display: invalid headless hz: %d", cfg.Hz)
	}

	s := NewHeadless(cfg.Width, cfg.Height)
	step := newApp(s, NewQueue(0))

	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if err := step(); err != nil {
				if errors.Is(err, Stop) {
					return nil
				}
				return err
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}
