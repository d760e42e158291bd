package automation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseButton(t *testing.T) {
	tests := []struct {
		input string
		want  Button
		ok    bool
	}{
		{"left", ButtonLeft, true},
		{"right", ButtonRight, true},
		{"middle", ButtonMiddle, true},
		{"LEFT", "", false},
		{"center", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseButton(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSizeContains(t *testing.T) {
	size := Size{Width: 1920, Height: 1080}

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"origin", Point{0, 0}, true},
		{"center", Point{960, 540}, true},
		{"bottom-right inside", Point{1919, 1079}, true},
		{"x at width", Point{1920, 500}, false},
		{"y at height", Point{500, 1080}, false},
		{"negative x", Point{-1, 500}, false},
		{"negative y", Point{500, -1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, size.Contains(tt.p))
		})
	}
}

func TestRegionCenter(t *testing.T) {
	r := Region{X: 10, Y: 20, Width: 100, Height: 50}
	assert.Equal(t, Point{X: 60, Y: 45}, r.Center())
}

func TestRegionClipTo(t *testing.T) {
	screen := Size{Width: 100, Height: 100}

	tests := []struct {
		name  string
		in    Region
		want  Region
		empty bool
	}{
		{
			name: "fully inside",
			in:   Region{X: 10, Y: 10, Width: 20, Height: 20},
			want: Region{X: 10, Y: 10, Width: 20, Height: 20},
		},
		{
			name: "negative origin",
			in:   Region{X: -10, Y: -5, Width: 30, Height: 30},
			want: Region{X: 0, Y: 0, Width: 20, Height: 25},
		},
		{
			name: "overhangs right and bottom",
			in:   Region{X: 90, Y: 95, Width: 30, Height: 30},
			want: Region{X: 90, Y: 95, Width: 10, Height: 5},
		},
		{
			name:  "entirely off screen",
			in:    Region{X: 200, Y: 200, Width: 10, Height: 10},
			empty: true,
		},
		{
			name:  "entirely negative",
			in:    Region{X: -50, Y: -50, Width: 10, Height: 10},
			empty: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.ClipTo(screen)
			if tt.empty {
				assert.True(t, got.Empty())
				return
			}
			assert.Equal(t, tt.want, got)
			assert.False(t, got.Empty())
		})
	}
}
