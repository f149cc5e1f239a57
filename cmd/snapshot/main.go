//go:build !tinygo

// Command snapshot renders the instruments headlessly and saves the final
// frame as a PNG, scaled up with a caption strip underneath. Handy for docs
// and for eyeballing layout changes without a window or a panel.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"tftgauge/app"
	"tftgauge/hal"
	"tftgauge/internal/config"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const captionHeight = 18

func main() {
	var (
		out     = flag.String("o", "snapshot.png", "output PNG path")
		cfgPath = flag.String("config", "", "config file (yaml or toml)")
		mode    = flag.String("mode", "", "graph, gauge or both (default from config)")
		frames  = flag.Int("frames", 160, "steps to render before the snapshot")
		scale   = flag.Int("scale", 4, "output pixels per panel pixel")
		quiet   = flag.Bool("q", false, "no progress bar")
	)
	flag.Parse()

	if err := run(*out, *cfgPath, *mode, *frames, *scale, *quiet); err != nil {
		fmt.Fprintln(os.Stderr, "snapshot:", err)
		os.Exit(1)
	}
}

func run(out, cfgPath, mode string, frames, scale int, quiet bool) error {
	fc, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	if mode != "" {
		fc.Mode = mode
	}
	cfg, err := fc.App()
	if err != nil {
		return err
	}

	var progress io.Writer = io.Discard
	if !quiet {
		progress = os.Stderr
	}
	img, err := render(cfg, frames, progress)
	if err != nil {
		return err
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := png.Encode(f, compose(img, scale, caption(cfg, frames))); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// render steps a sine-fed instrument frames times and returns the panel.
func render(cfg app.Config, frames int, progress io.Writer) (*image.RGBA, error) {
	h, err := hal.New(hal.WithSerial(&bytes.Buffer{}), hal.WithLogOutput(io.Discard))
	if err != nil {
		return nil, err
	}
	src := app.NewSineSource(cfg.Trace.Min, cfg.Trace.Max, cfg.Period)
	step, err := app.NewWithSource(h, cfg, src)
	if err != nil {
		return nil, err
	}

	bar := progressbar.NewOptions(frames,
		progressbar.OptionSetWriter(progress),
		progressbar.OptionSetDescription("rendering"),
		progressbar.OptionShowCount(),
	)
	for i := 0; i < frames; i++ {
		if err := step(); err != nil {
			return nil, err
		}
		_ = bar.Add(1)
	}
	_ = bar.Finish()
	return hal.Image(h.Display().Framebuffer()), nil
}

func caption(cfg app.Config, frames int) string {
	return fmt.Sprintf("%s  %s  %g..%g  %d frames", cfg.Trace.Title, cfg.Mode, cfg.Trace.Min, cfg.Trace.Max, frames)
}

// compose scales src by n with hard pixel edges and adds a caption strip.
func compose(src *image.RGBA, n int, text string) *image.RGBA {
	if n < 1 {
		n = 1
	}
	b := src.Bounds()
	w, h := b.Dx()*n, b.Dy()*n
	dst := image.NewRGBA(image.Rect(0, 0, w, h+captionHeight))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.RGBA{0x20, 0x20, 0x20, 0xFF}), image.Point{}, draw.Src)
	draw.NearestNeighbor.Scale(dst, image.Rect(0, 0, w, h), src, b, draw.Src, nil)

	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.RGBA{0xE0, 0xE0, 0xE0, 0xFF}),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(4, h+captionHeight-5),
	}
	d.DrawString(text)
	return dst
}
