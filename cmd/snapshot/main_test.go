//go:build !tinygo

package main

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"tftgauge/app"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderGraph(t *testing.T) {
	cfg := app.DefaultConfig()
	img, err := render(cfg, 20, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 160, 128), img.Bounds())

	// Rules span the full width.
	assert.Equal(t, color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}, img.RGBAAt(100, 12))
	assert.Equal(t, color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}, img.RGBAAt(100, 116))
}

func TestComposeScalesWithHardEdges(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 1))
	src.SetRGBA(0, 0, color.RGBA{0xFF, 0, 0, 0xFF})
	src.SetRGBA(1, 0, color.RGBA{0, 0, 0xFF, 0xFF})

	dst := compose(src, 3, "x")
	assert.Equal(t, image.Rect(0, 0, 6, 3+captionHeight), dst.Bounds())
	for x := 0; x < 3; x++ {
		assert.Equal(t, color.RGBA{0xFF, 0, 0, 0xFF}, dst.RGBAAt(x, 2))
		assert.Equal(t, color.RGBA{0, 0, 0xFF, 0xFF}, dst.RGBAAt(x+3, 0))
	}
}

func TestRunWritesPNG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "gauge.png")
	require.NoError(t, run(out, "", "both", 5, 2, true))

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 320, 256+captionHeight), img.Bounds())

	assert.Error(t, run(out, "", "pie", 1, 1, true))
}
