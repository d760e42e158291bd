package tools

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Viewmorphic-AI/autogui-mcp/pkg/errors"
)

func handleCountdown(ctx context.Context, args map[string]any, deps ToolDependencies) mcp.CallToolResult {
	seconds, err := intArg(args, "seconds")
	if err != nil {
		return createErrorResult(err)
	}
	if seconds < 0 {
		return createErrorResult(errors.New(errors.CodeInvalidArgument, "tools", "seconds must not be negative", nil))
	}

	// Tick per second so the remaining time shows up in the log stream.
	for remaining := seconds; remaining > 0; remaining-- {
		deps.Logger.Debug("Countdown", slog.Int("remaining", remaining))
		time.Sleep(time.Second)
	}

	return createToolResult(map[string]any{
		"seconds": seconds,
		"message": fmt.Sprintf("Countdown completed for %d seconds", seconds),
	})
}

func handleDisplayMousePosition(ctx context.Context, args map[string]any, deps ToolDependencies) mcp.CallToolResult {
	seconds, err := optIntArgDefault(args, "seconds", 5)
	if err != nil {
		return createErrorResult(err)
	}
	if seconds < 0 {
		return createErrorResult(errors.New(errors.CodeInvalidArgument, "tools", "seconds must not be negative", nil))
	}

	// One sample per second, surfaced through the log stream while the call
	// blocks, the way a user would watch the coordinates live.
	samples := make([]map[string]any, 0, seconds)
	for remaining := seconds; remaining > 0; remaining-- {
		pos, err := deps.Driver.MousePosition()
		if err != nil {
			return createErrorResult(err)
		}
		deps.Logger.Info("Mouse position", slog.Int("x", pos.X), slog.Int("y", pos.Y))
		samples = append(samples, map[string]any{"x": pos.X, "y": pos.Y})
		time.Sleep(time.Second)
	}

	pos, err := deps.Driver.MousePosition()
	if err != nil {
		return createErrorResult(err)
	}
	return createToolResult(map[string]any{
		"seconds": seconds,
		"x":       pos.X,
		"y":       pos.Y,
		"samples": samples,
		"message": fmt.Sprintf("Mouse position displayed for %d seconds", seconds),
	})
}

func handleFailSafeCheck(ctx context.Context, args map[string]any, deps ToolDependencies) mcp.CallToolResult {
	enabled := deps.Config.FailSafe
	message := "Failsafe disabled"
	if enabled {
		message = "Failsafe enabled"
	}
	return createToolResult(map[string]any{
		"enabled": enabled,
		"message": message,
	})
}
