package tesseract

import (
	"image"

	"github.com/disintegration/imaging"
)

// Tesseract struggles below roughly this height on stash grid text.
const minHeight = 1200

// prepare normalizes a stash screenshot for recognition: grayscale, a
// contrast and sharpen pass, upscaling of small captures, and inversion of
// dark-theme screenshots so the text reads dark-on-light.
func prepare(src image.Image) image.Image {
	img := imaging.Grayscale(src)
	img = imaging.AdjustContrast(img, 15)
	img = imaging.Sharpen(img, 0.7)

	if img.Bounds().Dy() < minHeight {
		img = imaging.Resize(img, 0, minHeight, imaging.Lanczos)
	}

	if isDark(img) {
		img = imaging.Invert(img)
	}

	return img
}

// isDark reports whether the image is mostly dark, sampling every fourth
// pixel to keep the scan cheap on large screenshots.
func isDark(img image.Image) bool {
	b := img.Bounds()

	var sum, count uint64

	for y := b.Min.Y; y < b.Max.Y; y += 4 {
		for x := b.Min.X; x < b.Max.X; x += 4 {
			r, g, bl, _ := img.At(x, y).RGBA()
			sum += uint64((r + g + bl) / 3 >> 8)
			count++
		}
	}

	if count == 0 {
		return false
	}

	return sum/count < 128
}
