//go:build !tinygo && cgo

package hal

import (
	"image"

	"tftgauge/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

// WindowConfig controls the desktop preview window.
type WindowConfig struct {
	Scale int
	TPS   int
}

// RunWindow starts a desktop window that displays the framebuffer.
// It blocks until the window closes.
func RunWindow(newApp AppFactory, cfg WindowConfig, opts ...Option) error {
	if cfg.Scale <= 0 {
		cfg.Scale = 4
	}
	if cfg.TPS <= 0 {
		cfg.TPS = 30
	}

	h, err := newHost(opts...)
	if err != nil {
		return err
	}
	defer h.Close()

	step, err := newApp(h)
	if err != nil {
		return err
	}

	fb := h.fb
	g := &hostGame{fb: fb, step: step}
	ebiten.SetWindowTitle("tftgauge (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(fb.Width()*cfg.Scale, fb.Height()*cfg.Scale)
	ebiten.SetTPS(cfg.TPS)
	return ebiten.RunGame(g)
}

type hostGame struct {
	fb      Framebuffer
	img     *image.RGBA
	fbImg   *ebiten.Image
	scratch []byte
	step    func() error
}

func (g *hostGame) Update() error {
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	w, h := g.fb.Width(), g.fb.Height()
	if g.img == nil || g.img.Bounds().Dx() != w || g.img.Bounds().Dy() != h {
		g.img = image.NewRGBA(image.Rect(0, 0, w, h))
		g.scratch = make([]byte, len(g.fb.Buffer()))
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(w, h)
	}

	snapshot(g.fb, g.scratch)
	decodeRGB565(g.img, g.scratch, g.fb.StrideBytes())

	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.fb.Width(), g.fb.Height()
}
