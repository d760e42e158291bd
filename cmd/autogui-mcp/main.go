package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Viewmorphic-AI/autogui-mcp/pkg/automation"
	"github.com/Viewmorphic-AI/autogui-mcp/pkg/config"
	"github.com/Viewmorphic-AI/autogui-mcp/pkg/dialogs"
	"github.com/Viewmorphic-AI/autogui-mcp/pkg/service"
)

// Build-time variables set via ldflags
var (
	// Version is the semantic version of the application
	Version = "dev"
	// GitCommit is the git commit SHA at build time
	GitCommit = "unknown"
	// BuildTime is the time of the build
	BuildTime = "unknown"
)

var (
	configFile string
	envFile    string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "autogui-mcp",
	Short: "MCP server exposing desktop GUI automation tools",
	Long: `autogui-mcp serves GUI automation over the Model Context Protocol:
mouse movement and clicks, keyboard input, screen capture, on-screen image
location, window queries and native user dialogs. The server speaks MCP over
stdio; point an MCP client at the binary and call the tools it lists.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve MCP over stdio (the default when no subcommand is given)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Print the key names accepted by press_key, key_down, key_up and hotkey",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range automation.KnownKeys() {
			fmt.Println(name)
		}
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(getVersion())
	},
}

func main() {
	setupLogging("info")

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "Path to .env file (default: ./.env if present)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func runServe() error {
	cfg, err := config.Load(configFile, envFile)
	if err != nil {
		log.Error().Err(err).Msg("Failed to load configuration")
		return err
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("Invalid configuration")
		return err
	}

	setupLogging(cfg.LogLevel)

	log.Info().
		Str("version", getVersion()).
		Str("service", cfg.ServiceName).
		Bool("failsafe", cfg.FailSafe).
		Msg("Starting autogui MCP server")

	driver, err := automation.NewRobotgoDriver()
	if err != nil {
		log.Error().Err(err).Msg("Display automation unavailable")
		return err
	}

	mcpServer, err := service.NewServerFromDeps(&service.Dependencies{
		Logger:   createSlogLogger(cfg.LogLevel),
		Config:   cfg,
		Driver:   driver,
		Prompter: dialogs.NewZenityPrompter(),
	})
	if err != nil {
		log.Error().Err(err).Msg("Failed to create server")
		return err
	}

	runServerWithShutdown(mcpServer)
	return nil
}

// createSlogLogger creates a structured logger for dependency injection.
// Logs go to stderr; stdout carries the MCP stdio transport.
func createSlogLogger(logLevel string) *slog.Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseSlogLevel(logLevel),
	})
	return slog.New(handler)
}

func parseSlogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// runServerWithShutdown runs the server with graceful shutdown handling.
func runServerWithShutdown(mcpServer *service.Server) {
	ctx := context.Background()

	serverErr := make(chan error, 1)
	go func() {
		if err := mcpServer.Start(ctx); err != nil {
			serverErr <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		log.Info().Str("signal", sig.String()).Msg("Received shutdown signal")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := mcpServer.Stop(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Error during server shutdown")
		}

		// Wait a moment for final logs to be written
		time.Sleep(100 * time.Millisecond)

	case err := <-serverErr:
		if err != nil {
			log.Error().Err(err).Msg("Server failed")
			os.Exit(1)
		}
	}
}

// setupLogging configures the process-level zerolog logger.
func setupLogging(level string) {
	logLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		logLevel = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(logLevel)

	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	})
}

func getVersion() string {
	if Version == "dev" {
		return fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime)
	}
	return fmt.Sprintf("v%s (commit: %s, built: %s)", Version, GitCommit, BuildTime)
}
