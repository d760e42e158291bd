// Package automation defines the injected capability boundary around the
// ambient screen and input state. The gateway never touches a global: every
// read or mutation of cursor position, keyboard state or pixels goes through
// a Driver, so tests can substitute a fake backend.
package automation

import (
	"context"
	"image"
	"image/color"
	"time"
)

// Button is a validated mouse button name.
type Button string

const (
	ButtonLeft   Button = "left"
	ButtonRight  Button = "right"
	ButtonMiddle Button = "middle"
)

// ParseButton validates a raw button string.
func ParseButton(s string) (Button, bool) {
	switch Button(s) {
	case ButtonLeft, ButtonRight, ButtonMiddle:
		return Button(s), true
	}
	return "", false
}

// Point is a screen coordinate in pixels, origin top-left.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Size is the screen dimensions in pixels.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Contains reports whether p lies inside [0,w) x [0,h).
func (s Size) Contains(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < s.Width && p.Y < s.Height
}

// Region is a rectangular screen area.
type Region struct {
	X      int `json:"left"`
	Y      int `json:"top"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Center returns the midpoint of the region.
func (r Region) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// ClipTo clamps the region to the given screen size. The returned region may
// be empty when the input lies entirely off screen.
func (r Region) ClipTo(s Size) Region {
	out := r
	if out.X < 0 {
		out.Width += out.X
		out.X = 0
	}
	if out.Y < 0 {
		out.Height += out.Y
		out.Y = 0
	}
	if out.X+out.Width > s.Width {
		out.Width = s.Width - out.X
	}
	if out.Y+out.Height > s.Height {
		out.Height = s.Height - out.Y
	}
	if out.Width < 0 {
		out.Width = 0
	}
	if out.Height < 0 {
		out.Height = 0
	}
	return out
}

// Empty reports whether the region has no area.
func (r Region) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Window describes a top-level window known to the backend.
type Window struct {
	Title  string `json:"title"`
	Bounds Region `json:"bounds"`
}

// Driver is the automation backend. Implementations own all ambient screen
// state; the gateway validates parameters and serializes calls, nothing more.
//
// Calls that accept a duration block for that duration by design, to keep the
// human-like pacing of the motion. There is no cancellation: a started motion
// runs to completion even when ctx is already done.
type Driver interface {
	// ScreenSize returns the primary display dimensions.
	ScreenSize() (Size, error)
	// MousePosition returns the current cursor location.
	MousePosition() (Point, error)
	// MoveMouse moves the cursor to p, taking duration to get there.
	MoveMouse(ctx context.Context, p Point, duration time.Duration) error
	// Click presses and releases button at p, or at the current position
	// when p is nil. interval separates consecutive clicks.
	Click(p *Point, button Button, clicks int, interval time.Duration) error
	// Drag holds button down at the current position and releases it at p.
	Drag(ctx context.Context, p Point, button Button, duration time.Duration) error
	// Scroll turns the wheel by amount clicks (positive is up), optionally
	// moving to p first.
	Scroll(amount int, p *Point) error

	// TypeText injects literal keystrokes, pausing interval between them.
	TypeText(ctx context.Context, text string, interval time.Duration) error
	// TapKey presses and releases a single key symbol.
	TapKey(key string) error
	// ToggleKey holds a key down or releases it.
	ToggleKey(key string, down bool) error
	// Hotkey presses the keys together, releasing in reverse order.
	Hotkey(keys []string) error

	// CaptureScreen grabs the full screen, or only region when non-nil.
	CaptureScreen(region *Region) (image.Image, error)
	// PixelColor reads the color of a single screen pixel.
	PixelColor(p Point) (color.RGBA, error)

	// ActiveWindowTitle returns the focused window's title.
	ActiveWindowTitle() (string, error)
	// WindowTitles lists the titles of all visible windows.
	WindowTitles() ([]string, error)
	// FindWindows returns windows whose titles contain fragment.
	FindWindows(fragment string) ([]Window, error)
}
