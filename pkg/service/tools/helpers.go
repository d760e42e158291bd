package tools

import (
	"math"
	"time"

	"github.com/Viewmorphic-AI/autogui-mcp/pkg/automation"
	"github.com/Viewmorphic-AI/autogui-mcp/pkg/errors"
)

// Argument coercion. JSON numbers arrive through the transport as float64;
// every accessor tolerates both float64 and int so handlers never see the
// distinction.

func stringArg(args map[string]any, name string) (string, error) {
	v, ok := args[name]
	if !ok {
		return "", errors.Newf(errors.CodeInvalidArgument, "tools", nil, "%s is required", name)
	}
	s, ok := v.(string)
	if !ok {
		return "", errors.Newf(errors.CodeInvalidArgument, "tools", nil, "%s must be a string", name)
	}
	return s, nil
}

func optStringArg(args map[string]any, name, fallback string) (string, error) {
	v, ok := args[name]
	if !ok || v == nil {
		return fallback, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", errors.Newf(errors.CodeInvalidArgument, "tools", nil, "%s must be a string", name)
	}
	return s, nil
}

func numberValue(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func intArg(args map[string]any, name string) (int, error) {
	v, ok := args[name]
	if !ok {
		return 0, errors.Newf(errors.CodeInvalidArgument, "tools", nil, "%s is required", name)
	}
	n, ok := numberValue(v)
	if !ok || n != math.Trunc(n) {
		return 0, errors.Newf(errors.CodeInvalidArgument, "tools", nil, "%s must be an integer", name)
	}
	return int(n), nil
}

// optIntArg returns nil when the argument is absent.
func optIntArg(args map[string]any, name string) (*int, error) {
	v, ok := args[name]
	if !ok || v == nil {
		return nil, nil
	}
	n, ok := numberValue(v)
	if !ok || n != math.Trunc(n) {
		return nil, errors.Newf(errors.CodeInvalidArgument, "tools", nil, "%s must be an integer", name)
	}
	out := int(n)
	return &out, nil
}

func optIntArgDefault(args map[string]any, name string, fallback int) (int, error) {
	p, err := optIntArg(args, name)
	if err != nil {
		return 0, err
	}
	if p == nil {
		return fallback, nil
	}
	return *p, nil
}

func optFloatArg(args map[string]any, name string, fallback float64) (float64, error) {
	v, ok := args[name]
	if !ok || v == nil {
		return fallback, nil
	}
	n, ok := numberValue(v)
	if !ok {
		return 0, errors.Newf(errors.CodeInvalidArgument, "tools", nil, "%s must be a number", name)
	}
	return n, nil
}

// secondsArg reads an optional duration expressed in seconds, rejecting
// negative values.
func secondsArg(args map[string]any, name string) (time.Duration, error) {
	secs, err := optFloatArg(args, name, 0)
	if err != nil {
		return 0, err
	}
	if secs < 0 {
		return 0, errors.Newf(errors.CodeInvalidArgument, "tools", nil, "%s must not be negative", name)
	}
	return time.Duration(secs * float64(time.Second)), nil
}

func stringSliceArg(args map[string]any, name string) ([]string, error) {
	v, ok := args[name]
	if !ok || v == nil {
		return nil, nil
	}
	raw, ok := v.([]any)
	if !ok {
		return nil, errors.Newf(errors.CodeInvalidArgument, "tools", nil, "%s must be an array of strings", name)
	}
	out := make([]string, len(raw))
	for i, item := range raw {
		s, ok := item.(string)
		if !ok {
			return nil, errors.Newf(errors.CodeInvalidArgument, "tools", nil, "%s must be an array of strings", name)
		}
		out[i] = s
	}
	return out, nil
}

// regionArg reads an optional [left, top, width, height] array.
func regionArg(args map[string]any, name string) (*automation.Region, error) {
	v, ok := args[name]
	if !ok || v == nil {
		return nil, nil
	}
	raw, ok := v.([]any)
	if !ok || len(raw) != 4 {
		return nil, errors.Newf(errors.CodeInvalidArgument, "tools", nil, "%s must be [left, top, width, height]", name)
	}
	vals := make([]int, 4)
	for i, item := range raw {
		n, ok := numberValue(item)
		if !ok || n != math.Trunc(n) {
			return nil, errors.Newf(errors.CodeInvalidArgument, "tools", nil, "%s must contain integers", name)
		}
		vals[i] = int(n)
	}
	if vals[2] <= 0 || vals[3] <= 0 {
		return nil, errors.Newf(errors.CodeInvalidArgument, "tools", nil, "%s width and height must be positive", name)
	}
	return &automation.Region{X: vals[0], Y: vals[1], Width: vals[2], Height: vals[3]}, nil
}

// pointArg reads the optional x/y pair shared by the click-family tools.
// Either both or neither must be present.
func pointArg(args map[string]any) (*automation.Point, error) {
	x, err := optIntArg(args, "x")
	if err != nil {
		return nil, err
	}
	y, err := optIntArg(args, "y")
	if err != nil {
		return nil, err
	}
	if x == nil && y == nil {
		return nil, nil
	}
	if x == nil || y == nil {
		return nil, errors.New(errors.CodeInvalidArgument, "tools", "x and y must be given together", nil)
	}
	return &automation.Point{X: *x, Y: *y}, nil
}

// checkBounds verifies p against the live screen size.
func checkBounds(deps ToolDependencies, p automation.Point) error {
	size, err := deps.Driver.ScreenSize()
	if err != nil {
		return err
	}
	if !size.Contains(p) {
		return errors.Newf(errors.CodeOutOfBounds, "tools", nil,
			"(%d, %d) is outside the screen bounds %dx%d", p.X, p.Y, size.Width, size.Height)
	}
	return nil
}
