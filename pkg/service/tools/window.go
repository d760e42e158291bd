package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

func handleGetScreenSize(ctx context.Context, args map[string]any, deps ToolDependencies) mcp.CallToolResult {
	size, err := deps.Driver.ScreenSize()
	if err != nil {
		return createErrorResult(err)
	}
	return createToolResult(map[string]any{
		"width":  size.Width,
		"height": size.Height,
	})
}

func handleGetActiveWindowTitle(ctx context.Context, args map[string]any, deps ToolDependencies) mcp.CallToolResult {
	title, err := deps.Driver.ActiveWindowTitle()
	if err != nil {
		return createErrorResult(err)
	}
	return createToolResult(map[string]any{"title": title})
}

func handleGetAllWindowTitles(ctx context.Context, args map[string]any, deps ToolDependencies) mcp.CallToolResult {
	titles, err := deps.Driver.WindowTitles()
	if err != nil {
		return createErrorResult(err)
	}
	if titles == nil {
		titles = []string{}
	}
	return createToolResult(map[string]any{
		"titles": titles,
		"count":  len(titles),
	})
}

func handleGetWindowsWithTitle(ctx context.Context, args map[string]any, deps ToolDependencies) mcp.CallToolResult {
	fragment, err := stringArg(args, "title_fragment")
	if err != nil {
		return createErrorResult(err)
	}

	windows, err := deps.Driver.FindWindows(fragment)
	if err != nil {
		return createErrorResult(err)
	}

	out := make([]map[string]any, 0, len(windows))
	for _, w := range windows {
		out = append(out, map[string]any{
			"title":  w.Title,
			"left":   w.Bounds.X,
			"top":    w.Bounds.Y,
			"width":  w.Bounds.Width,
			"height": w.Bounds.Height,
		})
	}
	return createToolResult(map[string]any{
		"windows": out,
		"count":   len(out),
	})
}
