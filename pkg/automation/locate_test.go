package automation

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testScreen builds a gray screen with a distinct bright square at (x, y).
func testScreen(w, h, x, y, side int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for py := 0; py < h; py++ {
		for px := 0; px < w; px++ {
			img.Set(px, py, color.RGBA{R: 40, G: 40, B: 40, A: 255})
		}
	}
	for py := y; py < y+side; py++ {
		for px := x; px < x+side; px++ {
			img.Set(px, py, color.RGBA{R: 230, G: 230, B: 230, A: 255})
		}
	}
	return img
}

// subImage copies a region out of img.
func subImage(img image.Image, r Region) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, r.Width, r.Height))
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			out.Set(x, y, img.At(r.X+x, r.Y+y))
		}
	}
	return out
}

func TestFindTemplateExactMatch(t *testing.T) {
	screen := testScreen(200, 150, 60, 40, 20)
	template := subImage(screen, Region{X: 55, Y: 35, Width: 30, Height: 30})

	match, found := FindTemplate(screen, template, 0.9)

	require.True(t, found)
	assert.Equal(t, 55, match.Bounds.X)
	assert.Equal(t, 35, match.Bounds.Y)
	assert.Equal(t, 30, match.Bounds.Width)
	assert.Equal(t, 30, match.Bounds.Height)
	assert.Equal(t, 1.0, match.Confidence)
}

func TestFindTemplateMiss(t *testing.T) {
	screen := testScreen(200, 150, 60, 40, 20)

	// A template that exists nowhere on the screen.
	template := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			template.Set(x, y, color.RGBA{R: 255, G: 0, B: 0, A: 255})
		}
	}

	_, found := FindTemplate(screen, template, 0.95)
	assert.False(t, found)
}

func TestFindTemplateLowConfidenceAcceptsNear(t *testing.T) {
	screen := testScreen(100, 100, 30, 30, 20)
	template := subImage(screen, Region{X: 30, Y: 30, Width: 20, Height: 20})

	// Perturb a few template pixels; a high bar still matches, near-zero
	// differences being averaged over the whole patch.
	template.Set(0, 0, color.RGBA{R: 0, G: 0, B: 0, A: 255})
	template.Set(1, 1, color.RGBA{R: 0, G: 0, B: 0, A: 255})

	match, found := FindTemplate(screen, template, 0.9)
	require.True(t, found)
	assert.Equal(t, 30, match.Bounds.X)
	assert.Equal(t, 30, match.Bounds.Y)
	assert.Less(t, match.Confidence, 1.0)
	assert.GreaterOrEqual(t, match.Confidence, 0.9)
}

func TestFindTemplateLargerThanScreen(t *testing.T) {
	screen := image.NewRGBA(image.Rect(0, 0, 20, 20))
	template := image.NewRGBA(image.Rect(0, 0, 40, 40))

	_, found := FindTemplate(screen, template, 0.5)
	assert.False(t, found)
}

func TestFindTemplateEmptyTemplate(t *testing.T) {
	screen := image.NewRGBA(image.Rect(0, 0, 20, 20))
	template := image.NewRGBA(image.Rect(0, 0, 0, 0))

	_, found := FindTemplate(screen, template, 0.5)
	assert.False(t, found)
}

func TestToGrayReusesGray(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 5, 5))
	assert.Same(t, gray, toGray(gray))
}
