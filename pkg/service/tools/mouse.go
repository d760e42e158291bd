package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Viewmorphic-AI/autogui-mcp/pkg/automation"
	"github.com/Viewmorphic-AI/autogui-mcp/pkg/errors"
)

func handleMoveMouse(ctx context.Context, args map[string]any, deps ToolDependencies) mcp.CallToolResult {
	x, err := intArg(args, "x")
	if err != nil {
		return createErrorResult(err)
	}
	y, err := intArg(args, "y")
	if err != nil {
		return createErrorResult(err)
	}
	duration, err := secondsArg(args, "duration")
	if err != nil {
		return createErrorResult(err)
	}

	target := automation.Point{X: x, Y: y}
	if err := checkBounds(deps, target); err != nil {
		return createErrorResult(err)
	}

	if err := deps.Driver.MoveMouse(ctx, target, duration); err != nil {
		return createErrorResult(err)
	}
	return createToolResult(map[string]any{
		"x":       x,
		"y":       y,
		"message": fmt.Sprintf("Mouse moved to (%d, %d)", x, y),
	})
}

func handleMoveMouseRelative(ctx context.Context, args map[string]any, deps ToolDependencies) mcp.CallToolResult {
	dx, err := intArg(args, "dx")
	if err != nil {
		return createErrorResult(err)
	}
	dy, err := intArg(args, "dy")
	if err != nil {
		return createErrorResult(err)
	}
	duration, err := secondsArg(args, "duration")
	if err != nil {
		return createErrorResult(err)
	}

	pos, err := deps.Driver.MousePosition()
	if err != nil {
		return createErrorResult(err)
	}
	target := automation.Point{X: pos.X + dx, Y: pos.Y + dy}
	if err := checkBounds(deps, target); err != nil {
		return createErrorResult(err)
	}

	if err := deps.Driver.MoveMouse(ctx, target, duration); err != nil {
		return createErrorResult(err)
	}
	return createToolResult(map[string]any{
		"dx":      dx,
		"dy":      dy,
		"x":       target.X,
		"y":       target.Y,
		"message": fmt.Sprintf("Mouse moved relative by (%d, %d)", dx, dy),
	})
}

// buttonArg validates the button name before the driver is ever touched.
func buttonArg(args map[string]any) (automation.Button, error) {
	raw, err := optStringArg(args, "button", string(automation.ButtonLeft))
	if err != nil {
		return "", err
	}
	button, ok := automation.ParseButton(raw)
	if !ok {
		return "", errors.Newf(errors.CodeInvalidButton, "tools", nil,
			"unrecognized button %q, want left, right or middle", raw)
	}
	return button, nil
}

func handleClick(ctx context.Context, args map[string]any, deps ToolDependencies) mcp.CallToolResult {
	button, err := buttonArg(args)
	if err != nil {
		return createErrorResult(err)
	}
	point, err := pointArg(args)
	if err != nil {
		return createErrorResult(err)
	}
	clicks, err := optIntArgDefault(args, "clicks", 1)
	if err != nil {
		return createErrorResult(err)
	}
	if clicks < 1 {
		return createErrorResult(errors.New(errors.CodeInvalidArgument, "tools", "clicks must be at least 1", nil))
	}
	interval, err := secondsArg(args, "interval")
	if err != nil {
		return createErrorResult(err)
	}
	if point != nil {
		if err := checkBounds(deps, *point); err != nil {
			return createErrorResult(err)
		}
	}

	if err := deps.Driver.Click(point, button, clicks, interval); err != nil {
		return createErrorResult(err)
	}

	location := "at current mouse position"
	data := map[string]any{"clicks": clicks, "button": string(button)}
	if point != nil {
		location = fmt.Sprintf("at (%d, %d)", point.X, point.Y)
		data["x"] = point.X
		data["y"] = point.Y
	}
	data["message"] = fmt.Sprintf("Clicked %s button %d time(s) %s", button, clicks, location)
	return createToolResult(data)
}

func handleDoubleClick(ctx context.Context, args map[string]any, deps ToolDependencies) mcp.CallToolResult {
	button, err := buttonArg(args)
	if err != nil {
		return createErrorResult(err)
	}
	point, err := pointArg(args)
	if err != nil {
		return createErrorResult(err)
	}
	if point != nil {
		if err := checkBounds(deps, *point); err != nil {
			return createErrorResult(err)
		}
	}

	if err := deps.Driver.Click(point, button, 2, 0); err != nil {
		return createErrorResult(err)
	}
	return createToolResult(map[string]any{
		"button":  string(button),
		"message": fmt.Sprintf("Double-clicked %s button", button),
	})
}

func handleRightClick(ctx context.Context, args map[string]any, deps ToolDependencies) mcp.CallToolResult {
	point, err := pointArg(args)
	if err != nil {
		return createErrorResult(err)
	}
	if point != nil {
		if err := checkBounds(deps, *point); err != nil {
			return createErrorResult(err)
		}
	}

	if err := deps.Driver.Click(point, automation.ButtonRight, 1, 0); err != nil {
		return createErrorResult(err)
	}
	return createToolResult(map[string]any{"message": "Right-clicked"})
}

func handleDragTo(ctx context.Context, args map[string]any, deps ToolDependencies) mcp.CallToolResult {
	x, err := intArg(args, "x")
	if err != nil {
		return createErrorResult(err)
	}
	y, err := intArg(args, "y")
	if err != nil {
		return createErrorResult(err)
	}
	duration, err := secondsArg(args, "duration")
	if err != nil {
		return createErrorResult(err)
	}
	button, err := buttonArg(args)
	if err != nil {
		return createErrorResult(err)
	}

	target := automation.Point{X: x, Y: y}
	if err := checkBounds(deps, target); err != nil {
		return createErrorResult(err)
	}

	if err := deps.Driver.Drag(ctx, target, button, duration); err != nil {
		return createErrorResult(err)
	}
	return createToolResult(map[string]any{
		"x":       x,
		"y":       y,
		"message": fmt.Sprintf("Dragged to (%d, %d)", x, y),
	})
}

func handleDragRelative(ctx context.Context, args map[string]any, deps ToolDependencies) mcp.CallToolResult {
	dx, err := intArg(args, "dx")
	if err != nil {
		return createErrorResult(err)
	}
	dy, err := intArg(args, "dy")
	if err != nil {
		return createErrorResult(err)
	}
	duration, err := secondsArg(args, "duration")
	if err != nil {
		return createErrorResult(err)
	}
	button, err := buttonArg(args)
	if err != nil {
		return createErrorResult(err)
	}

	pos, err := deps.Driver.MousePosition()
	if err != nil {
		return createErrorResult(err)
	}
	target := automation.Point{X: pos.X + dx, Y: pos.Y + dy}
	if err := checkBounds(deps, target); err != nil {
		return createErrorResult(err)
	}

	if err := deps.Driver.Drag(ctx, target, button, duration); err != nil {
		return createErrorResult(err)
	}
	return createToolResult(map[string]any{
		"dx":      dx,
		"dy":      dy,
		"message": fmt.Sprintf("Dragged relative by (%d, %d)", dx, dy),
	})
}

func handleScroll(ctx context.Context, args map[string]any, deps ToolDependencies) mcp.CallToolResult {
	clicks, err := intArg(args, "clicks")
	if err != nil {
		return createErrorResult(err)
	}
	point, err := pointArg(args)
	if err != nil {
		return createErrorResult(err)
	}
	if point != nil {
		if err := checkBounds(deps, *point); err != nil {
			return createErrorResult(err)
		}
	}

	if err := deps.Driver.Scroll(clicks, point); err != nil {
		return createErrorResult(err)
	}
	return createToolResult(map[string]any{
		"clicks":  clicks,
		"message": fmt.Sprintf("Scrolled %d clicks", clicks),
	})
}

func handleGetMousePosition(ctx context.Context, args map[string]any, deps ToolDependencies) mcp.CallToolResult {
	pos, err := deps.Driver.MousePosition()
	if err != nil {
		return createErrorResult(err)
	}
	return createToolResult(map[string]any{"x": pos.X, "y": pos.Y})
}
