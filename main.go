package main

import (
	"context"
	"errors"
	"image/color"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"

	"ppmview/display"
	"ppmview/internal/buildinfo"
	"ppmview/ppm"
	"ppmview/raster"
	"ppmview/viewer"
)

// Test pattern dimensions, shown when no image is given.
const (
	patternWidth  = 480
	patternHeight = 270
)

var cli struct {
	Image string `arg:"" optional:"" type:"path" help:"P6 pixmap to display. A grayscale test pattern is shown when omitted."`

	Scale    int              `default:"1" help:"Integer window scale factor."`
	Hud      bool             `help:"Start with the FPS overlay visible (F1 toggles)."`
	Headless bool             `help:"Run without a window."`
	Hz       int              `default:"60" help:"Tick rate in headless mode."`
	Ticks    uint64           `help:"Stop after N ticks in headless mode (0 = run forever)."`
	Debug    bool             `help:"Enable per-frame debug logging."`
	Version  kong.VersionFlag `help:"Print version and exit."`
}

func main() {
	kong.Parse(&cli,
		kong.Name("ppmview"),
		kong.Description("Display a binary pixmap and paint on it with the mouse."),
		kong.Vars{"version": buildinfo.Short()},
	)

	level := slog.LevelInfo
	if cli.Debug {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)

	buf, err := loadBuffer(cli.Image)
	if err != nil {
		log.Error("decode failed", "file", cli.Image, "error", err)
		os.Exit(2)
	}

	newApp := func(s display.Surface, in display.Input) func() error {
		return viewer.New(viewer.Config{Buffer: buf, Surface: s, Input: in, Log: log}).Step
	}

	if cli.Headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err := display.RunHeadless(ctx, display.HeadlessConfig{
			Width:  buf.Width(),
			Height: buf.Height(),
			Hz:     cli.Hz,
			Ticks:  cli.Ticks,
		}, newApp)
		if err != nil && !errors.Is(err, context.Canceled) {
			log.Error("headless run failed", "error", err)
			os.Exit(1)
		}
		return
	}

	err = display.RunWindow(display.Config{
		Title:  "ppmview (" + buildinfo.Short() + ")",
		Width:  buf.Width(),
		Height: buf.Height(),
		Scale:  cli.Scale,
		HUD:    cli.Hud,
	}, newApp)
	if err != nil {
		log.Error("window run failed", "error", err)
		os.Exit(1)
	}
}

// loadBuffer decodes the named image, or builds the labeled test pattern
// when no path was given.
func loadBuffer(path string) (*raster.Buffer, error) {
	if path == "" {
		b := raster.Ramp(patternWidth, patternHeight)
		raster.Label(b, 8, 8, "no image given - drag to paint", color.RGBA{R: 0xFF, G: 0x40, B: 0x40, A: 0xFF})
		return b, nil
	}
	img, err := ppm.DecodeFile(path)
	if err != nil {
		return nil, err
	}
	return raster.FromImage(img), nil
}
