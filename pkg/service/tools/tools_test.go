package tools

import (
	"io"
	"log/slog"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/require"

	"github.com/Viewmorphic-AI/autogui-mcp/pkg/automation"
	"github.com/Viewmorphic-AI/autogui-mcp/pkg/config"
	"github.com/Viewmorphic-AI/autogui-mcp/pkg/dialogs"
)

// newTestDeps wires a fake driver and prompter behind real dependencies. The
// settle pause is zeroed so tests never sleep.
func newTestDeps() (ToolDependencies, *automation.FakeDriver, *dialogs.FakePrompter) {
	driver := automation.NewFakeDriver()
	prompter := &dialogs.FakePrompter{}

	cfg := config.DefaultConfig()
	cfg.ActionPause = 0

	deps := ToolDependencies{
		Driver:   driver,
		Prompter: prompter,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Config:   cfg,
	}
	return deps, driver, prompter
}

// decodeResult unpacks the JSON payload every handler embeds in its first
// text content block.
func decodeResult(t *testing.T, result mcp.CallToolResult) ToolResult {
	t.Helper()

	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "first content block must be text")

	var res ToolResult
	require.NoError(t, json.Unmarshal([]byte(text.Text), &res))
	return res
}

// requireSuccess decodes a result and asserts the handler reported success.
func requireSuccess(t *testing.T, result mcp.CallToolResult) ToolResult {
	t.Helper()
	res := decodeResult(t, result)
	require.False(t, result.IsError, "unexpected error: %s", res.Error)
	require.True(t, res.Success)
	return res
}

// requireError decodes a result and asserts the handler reported the code.
func requireError(t *testing.T, result mcp.CallToolResult, code string) ToolResult {
	t.Helper()
	res := decodeResult(t, result)
	require.True(t, result.IsError)
	require.False(t, res.Success)
	require.Equal(t, code, string(res.Code))
	return res
}
