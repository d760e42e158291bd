// Package bootstrap provides server initialization and setup logic.
package bootstrap

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/server"
	"github.com/pkg/errors"

	"github.com/Viewmorphic-AI/autogui-mcp/pkg/automation"
	"github.com/Viewmorphic-AI/autogui-mcp/pkg/config"
	"github.com/Viewmorphic-AI/autogui-mcp/pkg/dialogs"
	"github.com/Viewmorphic-AI/autogui-mcp/pkg/service/tools"
)

const serverInstructions = `This server exposes desktop GUI automation: mouse
movement and clicks, keyboard input, screen capture, template location,
window queries and user dialogs.

WARNING: these tools control the machine they run on. Moves, clicks and
keystrokes are injected into whatever application has focus and cannot be
undone. Keep the failsafe enabled: parking the cursor in the top-left corner
blocks further input injection.`

// Bootstrapper handles server initialization and tool registration.
type Bootstrapper struct {
	logger   *slog.Logger
	config   *config.Config
	driver   automation.Driver
	prompter dialogs.Prompter
}

// NewBootstrapper creates a new bootstrapper instance.
func NewBootstrapper(logger *slog.Logger, cfg *config.Config, driver automation.Driver, prompter dialogs.Prompter) *Bootstrapper {
	return &Bootstrapper{
		logger:   logger,
		config:   cfg,
		driver:   driver,
		prompter: prompter,
	}
}

// CreateMCPServer creates a new mcp-go server with tool capabilities.
func (b *Bootstrapper) CreateMCPServer() *server.MCPServer {
	return server.NewMCPServer(
		b.config.ServiceName,
		b.config.ServiceVersion,
		server.WithToolCapabilities(false),
		server.WithInstructions(serverInstructions),
		server.WithLogging(),
	)
}

// RegisterComponents registers all tools with the MCP server.
func (b *Bootstrapper) RegisterComponents(mcpServer *server.MCPServer) error {
	if mcpServer == nil {
		return errors.New("mcp server not initialized")
	}

	deps := tools.ToolDependencies{
		Driver:   b.driver,
		Prompter: b.prompter,
		Logger:   b.logger,
		Config:   b.config,
	}
	if err := tools.RegisterTools(mcpServer, deps); err != nil {
		return errors.Wrap(err, "failed to register tools")
	}

	b.logger.Info("Registered tools", slog.Int("count", len(tools.GetToolConfigs())))
	return nil
}
