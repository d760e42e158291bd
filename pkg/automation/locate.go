package automation

import (
	"image"
)

// Match is a template hit on the screen.
type Match struct {
	Bounds     Region
	Confidence float64
}

// FindTemplate slides template over screen and returns the best placement
// whose similarity reaches minConfidence. Similarity is 1 minus the mean
// absolute per-channel difference in grayscale, so an exact sub-image scores
// 1.0. The bool return is false when nothing on screen reaches the bar.
//
// The scan is exhaustive; screens are a few megapixels and templates are
// small UI fragments, which keeps this well under interactive latency. Rows
// early-exit once the accumulated difference already disqualifies the offset.
func FindTemplate(screen, template image.Image, minConfidence float64) (Match, bool) {
	sg := toGray(screen)
	tg := toGray(template)

	sw, sh := sg.Rect.Dx(), sg.Rect.Dy()
	tw, th := tg.Rect.Dx(), tg.Rect.Dy()
	if tw == 0 || th == 0 || tw > sw || th > sh {
		return Match{}, false
	}

	pixels := float64(tw * th)
	// Total difference allowed before an offset can no longer reach the bar.
	budget := (1 - minConfidence) * pixels * 255

	best := Match{Confidence: -1}
	for oy := 0; oy <= sh-th; oy++ {
		for ox := 0; ox <= sw-tw; ox++ {
			diff, ok := diffAt(sg, tg, ox, oy, budget)
			if !ok {
				continue
			}
			confidence := 1 - diff/(pixels*255)
			if confidence > best.Confidence {
				best = Match{
					Bounds:     Region{X: ox, Y: oy, Width: tw, Height: th},
					Confidence: confidence,
				}
				if confidence == 1 {
					return best, true
				}
			}
		}
	}
	if best.Confidence >= minConfidence {
		return best, true
	}
	return Match{}, false
}

// diffAt sums absolute grayscale differences for the template placed at
// (ox, oy), bailing out once the sum exceeds budget.
func diffAt(screen, template *image.Gray, ox, oy int, budget float64) (float64, bool) {
	tw, th := template.Rect.Dx(), template.Rect.Dy()
	var sum float64
	for y := 0; y < th; y++ {
		srow := screen.Pix[(oy+y)*screen.Stride+ox:]
		trow := template.Pix[y*template.Stride:]
		for x := 0; x < tw; x++ {
			d := int(srow[x]) - int(trow[x])
			if d < 0 {
				d = -d
			}
			sum += float64(d)
		}
		if sum > budget {
			return 0, false
		}
	}
	return sum, true
}

// toGray converts any image to 8-bit grayscale, reusing it when possible.
func toGray(img image.Image) *image.Gray {
	if g, ok := img.(*image.Gray); ok {
		return g
	}
	bounds := img.Bounds()
	gray := image.NewGray(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			gray.Set(x-bounds.Min.X, y-bounds.Min.Y, img.At(x, y))
		}
	}
	return gray
}
