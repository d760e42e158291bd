package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

func handleAlert(ctx context.Context, args map[string]any, deps ToolDependencies) mcp.CallToolResult {
	message, err := stringArg(args, "message")
	if err != nil {
		return createErrorResult(err)
	}
	title, err := optStringArg(args, "title", "Alert")
	if err != nil {
		return createErrorResult(err)
	}

	if err := deps.Prompter.Alert(message, title); err != nil {
		return createErrorResult(err)
	}
	return createToolResult(map[string]any{
		"message": message,
		"title":   title,
	})
}

func handleConfirm(ctx context.Context, args map[string]any, deps ToolDependencies) mcp.CallToolResult {
	message, err := stringArg(args, "message")
	if err != nil {
		return createErrorResult(err)
	}
	title, err := optStringArg(args, "title", "Confirm")
	if err != nil {
		return createErrorResult(err)
	}
	options, err := stringSliceArg(args, "options")
	if err != nil {
		return createErrorResult(err)
	}

	choice, err := deps.Prompter.Confirm(message, title, options)
	if err != nil {
		return createErrorResult(err)
	}

	shown := options
	if len(shown) == 0 {
		shown = []string{"OK", "Cancel"}
	}
	return createToolResult(map[string]any{
		"message": message,
		"title":   title,
		"options": shown,
		"result":  choice,
	})
}

func handlePrompt(ctx context.Context, args map[string]any, deps ToolDependencies) mcp.CallToolResult {
	message, err := stringArg(args, "message")
	if err != nil {
		return createErrorResult(err)
	}
	title, err := optStringArg(args, "title", "Prompt")
	if err != nil {
		return createErrorResult(err)
	}
	defaultText, err := optStringArg(args, "default", "")
	if err != nil {
		return createErrorResult(err)
	}

	text, answered, err := deps.Prompter.Prompt(message, title, defaultText)
	if err != nil {
		return createErrorResult(err)
	}

	data := map[string]any{
		"message":  message,
		"title":    title,
		"default":  defaultText,
		"answered": answered,
	}
	if answered {
		data["result"] = text
	}
	return createToolResult(data)
}

func handlePassword(ctx context.Context, args map[string]any, deps ToolDependencies) mcp.CallToolResult {
	message, err := stringArg(args, "message")
	if err != nil {
		return createErrorResult(err)
	}
	title, err := optStringArg(args, "title", "Password")
	if err != nil {
		return createErrorResult(err)
	}

	entered, err := deps.Prompter.Password(message, title)
	if err != nil {
		return createErrorResult(err)
	}

	// The secret itself never leaves the process.
	data := map[string]any{
		"message": message,
		"title":   title,
	}
	if entered {
		data["result"] = "[REDACTED]"
	} else {
		data["result"] = nil
	}
	return createToolResult(data)
}
