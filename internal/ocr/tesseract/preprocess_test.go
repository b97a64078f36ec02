package tesseract

import (
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
)

func uniformImage(c color.NRGBA, w, h int) image.Image {
	return imaging.New(w, h, c)
}

func TestIsDark(t *testing.T) {
	dark := uniformImage(color.NRGBA{R: 20, G: 20, B: 30, A: 255}, 64, 64)
	light := uniformImage(color.NRGBA{R: 230, G: 230, B: 235, A: 255}, 64, 64)

	assert.True(t, isDark(dark))
	assert.False(t, isDark(light))
}

func TestPrepare_UpscalesSmallCaptures(t *testing.T) {
	small := uniformImage(color.NRGBA{R: 200, G: 200, B: 200, A: 255}, 400, 300)

	got := prepare(small)

	assert.Equal(t, minHeight, got.Bounds().Dy())
}

func TestPrepare_InvertsDarkScreenshots(t *testing.T) {
	// Dark-theme capture: after prepare, the dominant tone should be light.
	dark := uniformImage(color.NRGBA{R: 25, G: 25, B: 25, A: 255}, 200, minHeight)

	got := prepare(dark)

	assert.False(t, isDark(got))
}
