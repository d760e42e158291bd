package automation

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"strings"
	"sync"
	"time"
)

// FakeDriver is an in-memory Driver for tests. It tracks cursor position,
// records every injected input, and serves captures from a configurable
// screen image.
type FakeDriver struct {
	mu sync.Mutex

	Screen      Size
	Cursor      Point
	ScreenImage image.Image // served by CaptureScreen when set
	Windows     []Window
	ActiveTitle string

	// Error injection knobs.
	CaptureErr error

	// Recorded side effects, in order.
	Clicks    []FakeClick
	Typed     []string
	Taps      []string
	Toggles   []FakeToggle
	Hotkeys   [][]string
	Scrolls   []FakeScroll
	Drags     []Point
	MoveCount int
}

type FakeClick struct {
	At     *Point
	Button Button
	Clicks int
}

type FakeToggle struct {
	Key  string
	Down bool
}

type FakeScroll struct {
	Amount int
	At     *Point
}

// NewFakeDriver returns a fake with a 1920x1080 screen and the cursor at
// the center, far from the failsafe corner.
func NewFakeDriver() *FakeDriver {
	return &FakeDriver{
		Screen: Size{Width: 1920, Height: 1080},
		Cursor: Point{X: 960, Y: 540},
	}
}

func (f *FakeDriver) ScreenSize() (Size, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Screen, nil
}

func (f *FakeDriver) MousePosition() (Point, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Cursor, nil
}

func (f *FakeDriver) MoveMouse(ctx context.Context, p Point, duration time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Cursor = p
	f.MoveCount++
	return nil
}

func (f *FakeDriver) Click(p *Point, button Button, clicks int, interval time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p != nil {
		f.Cursor = *p
	}
	f.Clicks = append(f.Clicks, FakeClick{At: p, Button: button, Clicks: clicks})
	return nil
}

func (f *FakeDriver) Drag(ctx context.Context, p Point, button Button, duration time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Cursor = p
	f.Drags = append(f.Drags, p)
	return nil
}

func (f *FakeDriver) Scroll(amount int, p *Point) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p != nil {
		f.Cursor = *p
	}
	f.Scrolls = append(f.Scrolls, FakeScroll{Amount: amount, At: p})
	return nil
}

func (f *FakeDriver) TypeText(ctx context.Context, text string, interval time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Typed = append(f.Typed, text)
	return nil
}

func (f *FakeDriver) TapKey(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Taps = append(f.Taps, key)
	return nil
}

func (f *FakeDriver) ToggleKey(key string, down bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Toggles = append(f.Toggles, FakeToggle{Key: key, Down: down})
	return nil
}

func (f *FakeDriver) Hotkey(keys []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Hotkeys = append(f.Hotkeys, keys)
	return nil
}

func (f *FakeDriver) CaptureScreen(region *Region) (image.Image, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.CaptureErr != nil {
		return nil, f.CaptureErr
	}
	img := f.ScreenImage
	if img == nil {
		size := f.Screen
		img = image.NewRGBA(image.Rect(0, 0, size.Width, size.Height))
	}
	if region == nil {
		return img, nil
	}
	sub := image.NewRGBA(image.Rect(0, 0, region.Width, region.Height))
	for y := 0; y < region.Height; y++ {
		for x := 0; x < region.Width; x++ {
			sub.Set(x, y, img.At(region.X+x, region.Y+y))
		}
	}
	return sub, nil
}

func (f *FakeDriver) PixelColor(p Point) (color.RGBA, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.ScreenImage == nil {
		return color.RGBA{A: 0xff}, nil
	}
	r, g, b, _ := f.ScreenImage.At(p.X, p.Y).RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 0xff}, nil
}

func (f *FakeDriver) ActiveWindowTitle() (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ActiveTitle, nil
}

func (f *FakeDriver) WindowTitles() ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	titles := make([]string, len(f.Windows))
	for i, w := range f.Windows {
		titles[i] = w.Title
	}
	return titles, nil
}

func (f *FakeDriver) FindWindows(fragment string) ([]Window, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []Window
	for _, w := range f.Windows {
		if strings.Contains(strings.ToLower(w.Title), strings.ToLower(fragment)) {
			out = append(out, w)
		}
	}
	return out, nil
}

// InputLog renders the recorded side effects for assertion messages.
func (f *FakeDriver) InputLog() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return fmt.Sprintf("clicks=%v typed=%v taps=%v toggles=%v hotkeys=%v scrolls=%v drags=%v moves=%d",
		f.Clicks, f.Typed, f.Taps, f.Toggles, f.Hotkeys, f.Scrolls, f.Drags, f.MoveCount)
}
