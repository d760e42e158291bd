package tools

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/pkg/errors"

	richerrors "github.com/Viewmorphic-AI/autogui-mcp/pkg/errors"
)

// RegisterTools registers every configured tool against the MCP server. All
// handlers share one dispatch gate, so invocations execute strictly one at a
// time regardless of how the transport delivers them.
func RegisterTools(mcpServer *server.MCPServer, deps ToolDependencies) error {
	if err := validateDependencies(deps); err != nil {
		return errors.Wrap(err, "invalid tool dependencies")
	}

	deps.gate = &sync.Mutex{}

	for _, config := range toolConfigs {
		if err := registerTool(mcpServer, config, deps); err != nil {
			return errors.Wrapf(err, "failed to register tool %s", config.Name)
		}
	}
	return nil
}

func registerTool(mcpServer *server.MCPServer, config ToolConfig, deps ToolDependencies) error {
	if config.Handler == nil {
		return errors.Errorf("tool %s has no handler", config.Name)
	}

	tool := mcp.Tool{
		Name:        config.Name,
		Description: config.Description,
		InputSchema: BuildToolSchema(config),
	}

	mcpServer.AddTool(tool, wrapHandler(config, deps))

	deps.Logger.Debug("Registered tool",
		slog.String("name", config.Name),
		slog.String("category", string(config.Category)))

	return nil
}

func validateDependencies(deps ToolDependencies) error {
	if deps.Driver == nil {
		return errors.New("Driver is required but not provided")
	}
	if deps.Prompter == nil {
		return errors.New("Prompter is required but not provided")
	}
	if deps.Logger == nil {
		return errors.New("Logger is required but not provided")
	}
	if deps.Config == nil {
		return errors.New("Config is required but not provided")
	}
	return nil
}

// wrapHandler turns an internal handler into an MCP handler, adding the
// pieces every tool shares: the serialization gate, an invocation ID on every
// log line, the failsafe check for mutating tools, and the settle pause.
//
// The wrapper never returns a Go error; each request yields exactly one
// structured result.
func wrapHandler(config ToolConfig, deps ToolDependencies) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		logger := deps.Logger.With(
			slog.String("tool", config.Name),
			slog.String("invocation_id", uuid.NewString()),
		)

		deps.gate.Lock()
		defer deps.gate.Unlock()

		if config.Mutating && deps.Config.FailSafe {
			if err := checkFailsafe(deps); err != nil {
				logger.Warn("Failsafe triggered, input injection refused")
				result := createErrorResult(err)
				return &result, nil
			}
		}

		handlerDeps := deps
		handlerDeps.Logger = logger

		start := time.Now()
		result := config.Handler(ctx, req.GetArguments(), handlerDeps)

		if config.Mutating && !result.IsError && deps.Config.ActionPause > 0 {
			time.Sleep(deps.Config.ActionPause)
		}

		logger.Info("Tool invocation finished",
			slog.Bool("success", !result.IsError),
			slog.Duration("elapsed", time.Since(start)))

		return &result, nil
	}
}

// checkFailsafe refuses input injection while the cursor sits in the
// top-left corner, the classic manual abort gesture.
func checkFailsafe(deps ToolDependencies) error {
	pos, err := deps.Driver.MousePosition()
	if err != nil {
		return err
	}
	if pos.X == 0 && pos.Y == 0 {
		return richerrors.New(richerrors.CodeFailsafeTriggered, "tools",
			"cursor is in the failsafe corner; move it away or disable the failsafe", nil)
	}
	return nil
}
