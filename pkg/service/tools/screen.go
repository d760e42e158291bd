package tools

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/jpeg" // template decoding
	"image/png"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Viewmorphic-AI/autogui-mcp/pkg/automation"
	"github.com/Viewmorphic-AI/autogui-mcp/pkg/errors"
)

const defaultConfidence = 0.9

// resolveRegion clips an optional caller region to the live screen bounds.
// A nil input stays nil (full-screen capture).
func resolveRegion(deps ToolDependencies, region *automation.Region) (*automation.Region, error) {
	if region == nil {
		return nil, nil
	}
	size, err := deps.Driver.ScreenSize()
	if err != nil {
		return nil, err
	}
	clipped := region.ClipTo(size)
	if clipped.Empty() {
		return nil, errors.Newf(errors.CodeOutOfBounds, "tools", nil,
			"region [%d, %d, %d, %d] lies entirely off screen", region.X, region.Y, region.Width, region.Height)
	}
	return &clipped, nil
}

func handleScreenshot(ctx context.Context, args map[string]any, deps ToolDependencies) mcp.CallToolResult {
	filename, err := optStringArg(args, "filename", "")
	if err != nil {
		return createErrorResult(err)
	}
	region, err := regionArg(args, "region")
	if err != nil {
		return createErrorResult(err)
	}
	region, err = resolveRegion(deps, region)
	if err != nil {
		return createErrorResult(err)
	}

	img, err := deps.Driver.CaptureScreen(region)
	if err != nil {
		return createErrorResult(errors.New(errors.CodeCaptureFailed, "tools", "screen capture failed", err))
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return createErrorResult(errors.New(errors.CodeCaptureFailed, "tools", "png encoding failed", err))
	}

	data := map[string]any{
		"width":  img.Bounds().Dx(),
		"height": img.Bounds().Dy(),
	}
	if region != nil {
		data["region"] = []int{region.X, region.Y, region.Width, region.Height}
	}

	if filename == "" {
		data["message"] = "Screenshot taken"
		return createImageResult(data, base64.StdEncoding.EncodeToString(buf.Bytes()))
	}

	// Strip any directory components so callers cannot write outside the
	// configured screenshots dir.
	savePath := filepath.Join(deps.Config.ScreenshotDir, filepath.Base(filename))
	if err := os.MkdirAll(deps.Config.ScreenshotDir, 0o755); err != nil {
		return createErrorResult(errors.New(errors.CodeInternal, "tools", "failed to create screenshots directory", err))
	}
	if err := os.WriteFile(savePath, buf.Bytes(), 0o644); err != nil {
		return createErrorResult(errors.New(errors.CodeInternal, "tools", "failed to save screenshot", err))
	}
	data["filename"] = savePath
	data["message"] = fmt.Sprintf("Screenshot saved to %s", savePath)
	return createToolResult(data)
}

// locate loads a template image and searches the (optionally clipped) screen
// for it. Both locate tools share it and differ only in result shaping.
func locate(args map[string]any, deps ToolDependencies) (automation.Match, bool, error) {
	imagePath, err := stringArg(args, "image_path")
	if err != nil {
		return automation.Match{}, false, err
	}
	confidence, err := optFloatArg(args, "confidence", defaultConfidence)
	if err != nil {
		return automation.Match{}, false, err
	}
	if confidence <= 0 || confidence > 1 {
		return automation.Match{}, false, errors.Newf(errors.CodeInvalidArgument, "tools", nil,
			"confidence must be in (0, 1], got %g", confidence)
	}
	region, err := regionArg(args, "region")
	if err != nil {
		return automation.Match{}, false, err
	}
	region, err = resolveRegion(deps, region)
	if err != nil {
		return automation.Match{}, false, err
	}

	file, err := os.Open(imagePath)
	if err != nil {
		return automation.Match{}, false, errors.Newf(errors.CodeInvalidArgument, "tools", err,
			"cannot open template image %s", imagePath)
	}
	defer file.Close()
	template, _, err := image.Decode(file)
	if err != nil {
		return automation.Match{}, false, errors.Newf(errors.CodeInvalidArgument, "tools", err,
			"cannot decode template image %s", imagePath)
	}

	screen, err := deps.Driver.CaptureScreen(region)
	if err != nil {
		return automation.Match{}, false, errors.New(errors.CodeCaptureFailed, "tools", "screen capture failed", err)
	}

	match, found := automation.FindTemplate(screen, template, confidence)
	if found && region != nil {
		// Matches are relative to the captured region; report screen coords.
		match.Bounds.X += region.X
		match.Bounds.Y += region.Y
	}
	return match, found, nil
}

func handleLocateOnScreen(ctx context.Context, args map[string]any, deps ToolDependencies) mcp.CallToolResult {
	match, found, err := locate(args, deps)
	if err != nil {
		return createErrorResult(err)
	}
	if !found {
		return createToolResult(map[string]any{
			"found":   false,
			"message": "Image not found on screen",
		})
	}
	return createToolResult(map[string]any{
		"found":      true,
		"left":       match.Bounds.X,
		"top":        match.Bounds.Y,
		"width":      match.Bounds.Width,
		"height":     match.Bounds.Height,
		"confidence": match.Confidence,
		"message":    fmt.Sprintf("Found image at (%d, %d)", match.Bounds.X, match.Bounds.Y),
	})
}

func handleLocateCenterOnScreen(ctx context.Context, args map[string]any, deps ToolDependencies) mcp.CallToolResult {
	match, found, err := locate(args, deps)
	if err != nil {
		return createErrorResult(err)
	}
	if !found {
		return createToolResult(map[string]any{
			"found":   false,
			"message": "Image not found on screen",
		})
	}
	center := match.Bounds.Center()
	return createToolResult(map[string]any{
		"found":      true,
		"x":          center.X,
		"y":          center.Y,
		"confidence": match.Confidence,
		"message":    fmt.Sprintf("Found image center at (%d, %d)", center.X, center.Y),
	})
}

func handleGetPixelColor(ctx context.Context, args map[string]any, deps ToolDependencies) mcp.CallToolResult {
	x, err := intArg(args, "x")
	if err != nil {
		return createErrorResult(err)
	}
	y, err := intArg(args, "y")
	if err != nil {
		return createErrorResult(err)
	}
	point := automation.Point{X: x, Y: y}
	if err := checkBounds(deps, point); err != nil {
		return createErrorResult(err)
	}

	c, err := deps.Driver.PixelColor(point)
	if err != nil {
		return createErrorResult(err)
	}
	return createToolResult(map[string]any{
		"x":   x,
		"y":   y,
		"r":   int(c.R),
		"g":   int(c.G),
		"b":   int(c.B),
		"hex": fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B),
	})
}

func handlePixelMatchesColor(ctx context.Context, args map[string]any, deps ToolDependencies) mcp.CallToolResult {
	x, err := intArg(args, "x")
	if err != nil {
		return createErrorResult(err)
	}
	y, err := intArg(args, "y")
	if err != nil {
		return createErrorResult(err)
	}
	colorSpec, err := stringArg(args, "color")
	if err != nil {
		return createErrorResult(err)
	}
	tolerance, err := optIntArgDefault(args, "tolerance", 0)
	if err != nil {
		return createErrorResult(err)
	}
	if tolerance < 0 || tolerance > 255 {
		return createErrorResult(errors.Newf(errors.CodeInvalidArgument, "tools", nil,
			"tolerance must be in [0, 255], got %d", tolerance))
	}

	want, err := parseColorSpec(colorSpec)
	if err != nil {
		return createErrorResult(err)
	}

	point := automation.Point{X: x, Y: y}
	if err := checkBounds(deps, point); err != nil {
		return createErrorResult(err)
	}
	got, err := deps.Driver.PixelColor(point)
	if err != nil {
		return createErrorResult(err)
	}

	matches := within(int(got.R), want[0], tolerance) &&
		within(int(got.G), want[1], tolerance) &&
		within(int(got.B), want[2], tolerance)

	return createToolResult(map[string]any{
		"x":       x,
		"y":       y,
		"color":   colorSpec,
		"matches": matches,
	})
}

func within(got, want, tolerance int) bool {
	d := got - want
	if d < 0 {
		d = -d
	}
	return d <= tolerance
}

// parseColorSpec accepts '#RRGGBB' or '(R, G, B)'.
func parseColorSpec(spec string) ([3]int, error) {
	spec = strings.TrimSpace(spec)
	switch {
	case strings.HasPrefix(spec, "#"):
		hex := strings.TrimPrefix(spec, "#")
		if len(hex) != 6 {
			return [3]int{}, errors.Newf(errors.CodeInvalidArgument, "tools", nil,
				"hex color must be #RRGGBB, got %q", spec)
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return [3]int{}, errors.Newf(errors.CodeInvalidArgument, "tools", err, "invalid hex color %q", spec)
		}
		return [3]int{int(v >> 16), int(v >> 8 & 0xff), int(v & 0xff)}, nil

	case strings.HasPrefix(spec, "("):
		parts := strings.Split(strings.Trim(spec, "() "), ",")
		if len(parts) != 3 {
			return [3]int{}, errors.Newf(errors.CodeInvalidArgument, "tools", nil,
				"RGB color must have 3 components, got %q", spec)
		}
		var out [3]int
		for i, part := range parts {
			v, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil || v < 0 || v > 255 {
				return [3]int{}, errors.Newf(errors.CodeInvalidArgument, "tools", nil,
					"invalid RGB component %q in %q", part, spec)
			}
			out[i] = v
		}
		return out, nil

	default:
		return [3]int{}, errors.Newf(errors.CodeInvalidArgument, "tools", nil,
			"invalid color format %q, use '#RRGGBB' or '(R, G, B)'", spec)
	}
}
