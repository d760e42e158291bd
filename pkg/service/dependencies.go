// Package service assembles the gateway from its injected capabilities and
// owns the serve lifecycle.
package service

import (
	"context"
	"fmt"
	"log/slog"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/Viewmorphic-AI/autogui-mcp/pkg/automation"
	"github.com/Viewmorphic-AI/autogui-mcp/pkg/config"
	"github.com/Viewmorphic-AI/autogui-mcp/pkg/dialogs"
	"github.com/Viewmorphic-AI/autogui-mcp/pkg/service/bootstrap"
	"github.com/Viewmorphic-AI/autogui-mcp/pkg/service/tools"
)

// Dependencies holds everything the server needs. All ambient screen state
// lives behind Driver; all user interaction behind Prompter.
type Dependencies struct {
	Logger   *slog.Logger
	Config   *config.Config
	Driver   automation.Driver
	Prompter dialogs.Prompter
}

func (d *Dependencies) Validate() error {
	var errs []error

	if d.Logger == nil {
		errs = append(errs, fmt.Errorf("logger is required"))
	}
	if d.Config == nil {
		errs = append(errs, fmt.Errorf("config is required"))
	}
	if d.Driver == nil {
		errs = append(errs, fmt.Errorf("automation driver is required"))
	}
	if d.Prompter == nil {
		errs = append(errs, fmt.Errorf("dialog prompter is required"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("dependency validation failed: %v", errs)
	}
	return nil
}

// Server is the assembled MCP server, ready to serve stdio.
type Server struct {
	dependencies *Dependencies
	mcpServer    *mcpserver.MCPServer
}

// NewServerFromDeps validates the dependencies, creates the underlying MCP
// server and registers every tool against it.
func NewServerFromDeps(deps *Dependencies) (*Server, error) {
	if err := deps.Validate(); err != nil {
		return nil, fmt.Errorf("invalid dependencies: %w", err)
	}

	bootstrapper := bootstrap.NewBootstrapper(deps.Logger, deps.Config, deps.Driver, deps.Prompter)

	mcpServer := bootstrapper.CreateMCPServer()
	if mcpServer == nil {
		return nil, fmt.Errorf("failed to create MCP server")
	}
	if err := bootstrapper.RegisterComponents(mcpServer); err != nil {
		return nil, fmt.Errorf("failed to register components: %w", err)
	}

	return &Server{
		dependencies: deps,
		mcpServer:    mcpServer,
	}, nil
}

// Start serves MCP over stdio until the client disconnects or the process
// receives a shutdown signal. It blocks.
func (s *Server) Start(ctx context.Context) error {
	s.dependencies.Logger.Info("Serving MCP over stdio",
		slog.String("service", s.dependencies.Config.ServiceName),
		slog.Int("tools", len(tools.GetToolConfigs())))
	return mcpserver.ServeStdio(s.mcpServer)
}

// Stop tears the server down. The stdio transport ends with its streams, so
// there is nothing to unwind beyond logging; in-flight invocations finish
// because dispatch is synchronous.
func (s *Server) Stop(ctx context.Context) error {
	s.dependencies.Logger.Info("Server stopping")
	return nil
}
