package automation

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"
	"time"

	"github.com/go-vgo/robotgo"

	"github.com/Viewmorphic-AI/autogui-mcp/pkg/errors"
)

// moveStep is the interpolation interval for timed cursor motion.
const moveStep = 10 * time.Millisecond

// RobotgoDriver drives the real screen and input devices through robotgo.
type RobotgoDriver struct{}

// NewRobotgoDriver probes the display and returns the production driver.
func NewRobotgoDriver() (*RobotgoDriver, error) {
	w, h := robotgo.GetScreenSize()
	if w <= 0 || h <= 0 {
		return nil, errors.New(errors.CodeDriverUnavailable, "automation",
			"no usable display detected, is a display server attached?", nil)
	}
	return &RobotgoDriver{}, nil
}

func (d *RobotgoDriver) ScreenSize() (Size, error) {
	w, h := robotgo.GetScreenSize()
	if w <= 0 || h <= 0 {
		return Size{}, errors.New(errors.CodeDriverUnavailable, "automation", "display size unavailable", nil)
	}
	return Size{Width: w, Height: h}, nil
}

func (d *RobotgoDriver) MousePosition() (Point, error) {
	x, y := robotgo.Location()
	return Point{X: x, Y: y}, nil
}

// MoveMouse interpolates the motion over duration so the pointer travels a
// visible path instead of teleporting. Sub-step remainders are slept off at
// the end to keep the total duration honest.
func (d *RobotgoDriver) MoveMouse(ctx context.Context, p Point, duration time.Duration) error {
	if duration <= 0 {
		robotgo.Move(p.X, p.Y)
		return nil
	}

	start, err := d.MousePosition()
	if err != nil {
		return err
	}

	steps := int(duration / moveStep)
	if steps < 1 {
		steps = 1
	}
	began := time.Now()
	for i := 1; i <= steps; i++ {
		x := start.X + (p.X-start.X)*i/steps
		y := start.Y + (p.Y-start.Y)*i/steps
		robotgo.Move(x, y)
		time.Sleep(moveStep)
	}
	if rest := duration - time.Since(began); rest > 0 {
		time.Sleep(rest)
	}
	robotgo.Move(p.X, p.Y)
	return nil
}

func (d *RobotgoDriver) Click(p *Point, button Button, clicks int, interval time.Duration) error {
	if p != nil {
		robotgo.Move(p.X, p.Y)
	}
	if clicks < 1 {
		clicks = 1
	}
	for i := 0; i < clicks; i++ {
		robotgo.Click(string(button), false)
		if interval > 0 && i < clicks-1 {
			time.Sleep(interval)
		}
	}
	return nil
}

func (d *RobotgoDriver) Drag(ctx context.Context, p Point, button Button, duration time.Duration) error {
	if err := robotgo.Toggle(string(button), "down"); err != nil {
		return errors.New(errors.CodeInternal, "automation", "button press failed", err)
	}
	moveErr := d.MoveMouse(ctx, p, duration)
	if err := robotgo.Toggle(string(button), "up"); err != nil {
		return errors.New(errors.CodeInternal, "automation", "button release failed", err)
	}
	return moveErr
}

func (d *RobotgoDriver) Scroll(amount int, p *Point) error {
	if p != nil {
		robotgo.Move(p.X, p.Y)
	}
	robotgo.Scroll(0, amount)
	return nil
}

func (d *RobotgoDriver) TypeText(ctx context.Context, text string, interval time.Duration) error {
	if interval <= 0 {
		robotgo.TypeStr(text)
		return nil
	}
	for _, r := range text {
		robotgo.TypeStr(string(r))
		time.Sleep(interval)
	}
	return nil
}

func (d *RobotgoDriver) TapKey(key string) error {
	if err := robotgo.KeyTap(key); err != nil {
		return errors.Newf(errors.CodeInternal, "automation", err, "key tap %q failed", key)
	}
	return nil
}

func (d *RobotgoDriver) ToggleKey(key string, down bool) error {
	state := "up"
	if down {
		state = "down"
	}
	if err := robotgo.KeyToggle(key, state); err != nil {
		return errors.Newf(errors.CodeInternal, "automation", err, "key toggle %q %s failed", key, state)
	}
	return nil
}

// Hotkey holds each key down in order, then releases in reverse, matching
// how a human chords a combination.
func (d *RobotgoDriver) Hotkey(keys []string) error {
	for i, key := range keys {
		if err := robotgo.KeyToggle(key, "down"); err != nil {
			// Release whatever is already held before reporting.
			for j := i - 1; j >= 0; j-- {
				_ = robotgo.KeyToggle(keys[j], "up")
			}
			return errors.Newf(errors.CodeInternal, "automation", err, "hotkey press %q failed", key)
		}
	}
	var firstErr error
	for i := len(keys) - 1; i >= 0; i-- {
		if err := robotgo.KeyToggle(keys[i], "up"); err != nil && firstErr == nil {
			firstErr = errors.Newf(errors.CodeInternal, "automation", err, "hotkey release %q failed", keys[i])
		}
	}
	return firstErr
}

func (d *RobotgoDriver) CaptureScreen(region *Region) (image.Image, error) {
	var img image.Image
	if region != nil {
		img = robotgo.CaptureImg(region.X, region.Y, region.Width, region.Height)
	} else {
		img = robotgo.CaptureImg()
	}
	if img == nil {
		return nil, errors.New(errors.CodeCaptureFailed, "automation", "screen capture returned no image", nil)
	}
	return img, nil
}

func (d *RobotgoDriver) PixelColor(p Point) (color.RGBA, error) {
	hex := robotgo.GetPixelColor(p.X, p.Y)
	c, err := parseHexColor(hex)
	if err != nil {
		return color.RGBA{}, errors.Newf(errors.CodeCaptureFailed, "automation", err, "pixel read at (%d, %d) failed", p.X, p.Y)
	}
	return c, nil
}

func (d *RobotgoDriver) ActiveWindowTitle() (string, error) {
	return robotgo.GetTitle(), nil
}

func (d *RobotgoDriver) WindowTitles() ([]string, error) {
	procs, err := robotgo.Process()
	if err != nil {
		return nil, errors.New(errors.CodeInternal, "automation", "process enumeration failed", err)
	}
	titles := make([]string, 0, len(procs))
	seen := make(map[string]struct{}, len(procs))
	for _, proc := range procs {
		title := robotgo.GetTitle(proc.Pid)
		if title == "" {
			continue
		}
		if _, dup := seen[title]; dup {
			continue
		}
		seen[title] = struct{}{}
		titles = append(titles, title)
	}
	return titles, nil
}

func (d *RobotgoDriver) FindWindows(fragment string) ([]Window, error) {
	procs, err := robotgo.Process()
	if err != nil {
		return nil, errors.New(errors.CodeInternal, "automation", "process enumeration failed", err)
	}
	needle := strings.ToLower(fragment)
	var windows []Window
	for _, proc := range procs {
		title := robotgo.GetTitle(proc.Pid)
		if title == "" || !strings.Contains(strings.ToLower(title), needle) {
			continue
		}
		x, y, w, h := robotgo.GetBounds(proc.Pid)
		windows = append(windows, Window{
			Title:  title,
			Bounds: Region{X: x, Y: y, Width: w, Height: h},
		})
	}
	return windows, nil
}

// parseHexColor decodes robotgo's RRGGBB pixel representation.
func parseHexColor(hex string) (color.RGBA, error) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("unexpected pixel color %q", hex)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("unexpected pixel color %q: %w", hex, err)
	}
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}, nil
}
