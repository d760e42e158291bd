package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Viewmorphic-AI/autogui-mcp/pkg/automation"
	"github.com/Viewmorphic-AI/autogui-mcp/pkg/errors"
)

func handleTypeText(ctx context.Context, args map[string]any, deps ToolDependencies) mcp.CallToolResult {
	text, err := stringArg(args, "text")
	if err != nil {
		return createErrorResult(err)
	}
	interval, err := secondsArg(args, "interval")
	if err != nil {
		return createErrorResult(err)
	}

	if err := deps.Driver.TypeText(ctx, text, interval); err != nil {
		return createErrorResult(err)
	}

	preview := text
	// Truncate on a rune boundary so the preview stays valid UTF-8.
	if runes := []rune(text); len(runes) > 50 {
		preview = string(runes[:50]) + "..."
	}
	return createToolResult(map[string]any{
		"length":  len(text),
		"message": fmt.Sprintf("Typed text: %s", preview),
	})
}

// keyArg validates the key name against the key table before any driver call.
func keyArg(args map[string]any) (string, error) {
	raw, err := stringArg(args, "key")
	if err != nil {
		return "", err
	}
	key, ok := automation.NormalizeKey(raw)
	if !ok {
		return "", errors.Newf(errors.CodeUnknownKey, "tools", nil, "unknown key %q", raw)
	}
	return key, nil
}

func handlePressKey(ctx context.Context, args map[string]any, deps ToolDependencies) mcp.CallToolResult {
	key, err := keyArg(args)
	if err != nil {
		return createErrorResult(err)
	}
	if err := deps.Driver.TapKey(key); err != nil {
		return createErrorResult(err)
	}
	return createToolResult(map[string]any{
		"key":     key,
		"message": fmt.Sprintf("Pressed key: %s", key),
	})
}

func handleKeyDown(ctx context.Context, args map[string]any, deps ToolDependencies) mcp.CallToolResult {
	key, err := keyArg(args)
	if err != nil {
		return createErrorResult(err)
	}
	if err := deps.Driver.ToggleKey(key, true); err != nil {
		return createErrorResult(err)
	}
	return createToolResult(map[string]any{
		"key":     key,
		"message": fmt.Sprintf("Key held down: %s", key),
	})
}

func handleKeyUp(ctx context.Context, args map[string]any, deps ToolDependencies) mcp.CallToolResult {
	key, err := keyArg(args)
	if err != nil {
		return createErrorResult(err)
	}
	if err := deps.Driver.ToggleKey(key, false); err != nil {
		return createErrorResult(err)
	}
	return createToolResult(map[string]any{
		"key":     key,
		"message": fmt.Sprintf("Key released: %s", key),
	})
}

func handleHotkey(ctx context.Context, args map[string]any, deps ToolDependencies) mcp.CallToolResult {
	raw, err := stringSliceArg(args, "keys")
	if err != nil {
		return createErrorResult(err)
	}
	if len(raw) == 0 {
		return createErrorResult(errors.New(errors.CodeInvalidArgument, "tools", "keys must not be empty", nil))
	}

	// Validate the whole chord before touching a single key.
	keys := make([]string, len(raw))
	for i, name := range raw {
		key, ok := automation.NormalizeKey(name)
		if !ok {
			return createErrorResult(errors.Newf(errors.CodeUnknownKey, "tools", nil, "unknown key %q", name))
		}
		keys[i] = key
	}

	if err := deps.Driver.Hotkey(keys); err != nil {
		return createErrorResult(err)
	}
	return createToolResult(map[string]any{
		"keys":    keys,
		"message": fmt.Sprintf("Pressed hotkey: %s", strings.Join(keys, "+")),
	})
}
