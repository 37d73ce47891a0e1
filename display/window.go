package display

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Config sizes and titles the desktop window.
type Config struct {
	Title  string
	Width  int
	Height int
	// Scale multiplies the window size. Cursor coordinates stay in
	// image space regardless.
	Scale int
	// HUD shows the diagnostics overlay at startup. F1 toggles it.
	HUD bool
}

// RunWindow opens a desktop window that displays the surface and forwards
// input. It blocks until the app step returns Stop or the backend fails.
func RunWindow(cfg Config, newApp func(Surface, Input) func() error) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("display: invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Scale <= 0 {
		cfg.Scale = 1
	}

	g := &game{
		surface: newWindowSurface(cfg.Width, cfg.Height),
		queue:   NewQueue(0),
		hud:     cfg.HUD,
		lastX:   -1,
		lastY:   -1,
	}
	g.step = newApp(g.surface, g.queue)

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(60)

	err := ebiten.RunGame(g)
	if g.fbImg != nil {
		g.fbImg.Deallocate()
	}
	if err != nil {
		return fmt.Errorf("display: %w", err)
	}
	return nil
}

// windowSurface holds the RGB frame the loop pushes each tick. Draw
// converts it to RGBA on the next render.
type windowSurface struct {
	w, h  int
	frame []byte
}

func newWindowSurface(w, h int) *windowSurface {
	return &windowSurface{w: w, h: h, frame: make([]byte, w*h*3)}
}

func (s *windowSurface) Size() (int, int) { return s.w, s.h }

func (s *windowSurface) Clear() {
	for i := range s.frame {
		s.frame[i] = 0
	}
}

func (s *windowSurface) Update(pix []byte, stride int) error {
	row := s.w * 3
	if stride < row {
		return fmt.Errorf("display: stride %d below row width %d", stride, row)
	}
	for y := 0; y < s.h; y++ {
		src := y * stride
		if src+row > len(pix) {
			break
		}
		copy(s.frame[y*row:(y+1)*row], pix[src:src+row])
	}
	return nil
}

// Present is a no-op: ebiten presents on its own Draw cadence.
func (s *windowSurface) Present() error { return nil }

type game struct {
	surface *windowSurface
	queue   *Queue
	step    func() error

	img   *image.RGBA
	fbImg *ebiten.Image

	hud   bool
	lastX int
	lastY int
}

func (g *game) Update() error {
	g.poll()
	if err := g.step(); err != nil {
		if errors.Is(err, Stop) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

// poll converts ebiten's per-tick input state into queued events.
func (g *game) poll() {
	if ebiten.IsWindowBeingClosed() {
		g.queue.Push(Event{Kind: EventQuit})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.queue.Push(Event{Kind: EventKey, Key: KeyEscape, Press: true})
	}
	if inpututil.IsKeyJustReleased(ebiten.KeyEscape) {
		g.queue.Push(Event{Kind: EventKey, Key: KeyEscape, Press: false})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.hud = !g.hud
	}

	x, y := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.queue.Push(Event{Kind: EventMouseButton, Button: MouseLeft, Press: true, X: x, Y: y})
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.queue.Push(Event{Kind: EventMouseButton, Button: MouseLeft, Press: false, X: x, Y: y})
	}
	if x != g.lastX || y != g.lastY {
		g.queue.Push(Event{Kind: EventMouseMotion, X: x, Y: y})
		g.lastX = x
		g.lastY = y
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	s := g.surface
	if g.img == nil {
		g.img = image.NewRGBA(image.Rect(0, 0, s.w, s.h))
		g.fbImg = ebiten.NewImage(s.w, s.h)
	}

	src := s.frame
	dst := g.img.Pix
	for i, j := 0, 0; i+2 < len(src) && j+3 < len(dst); i, j = i+3, j+4 {
		dst[j+0] = src[i+0]
		dst[j+1] = src[i+1]
		dst[j+2] = src[i+2]
		dst[j+3] = 0xFF
	}

	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)

	if g.hud {
		line := fmt.Sprintf("%dx%d  %0.1f fps  %0.1f tps", s.w, s.h, ebiten.ActualFPS(), ebiten.ActualTPS())
		text.Draw(screen, line, basicfont.Face7x13, 4, 14, color.RGBA{R: 0x40, G: 0xFF, B: 0x40, A: 0xFF})
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.surface.w, g.surface.h
}
