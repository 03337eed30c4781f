// Taskwell: task-tracking MCP server.
//
// An MCP server that gives AI coding tools a shared task-tracking
// workspace: users, projects, tasks, tags, and comments with filtering,
// search, statistics, and narrative summaries.
//
// Usage:
//
//	taskwell serve    # Start MCP server (stdio transport)
//	taskwell update   # Update to the latest version
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	"github.com/taskwell/taskwell/internal/config"
	"github.com/taskwell/taskwell/internal/logging"
	"github.com/taskwell/taskwell/internal/server"
	"github.com/taskwell/taskwell/internal/updater"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "serve":
		if err := run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "update":
		runUpdate()
	case "--help", "-h", "help":
		printUsage()
		os.Exit(0)
	case "--version", "-v", "version":
		fmt.Printf("taskwell v%s\n", server.Version)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	logging.Init(cfg.Env)

	s, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	// Background version check — logs to stderr so it doesn't interfere
	// with MCP's stdio transport on stdout.
	go checkForUpdates()

	// SIGINT/SIGTERM end the stdio session; the client closing stdin
	// does the same, so this is just a fallback for terminal runs.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Info().Msg("shutting down")
		os.Exit(0)
	}()

	log.Info().Str("version", server.Version).Msg("serving MCP over stdio")
	return mcpserver.ServeStdio(s)
}

// checkForUpdates runs a non-blocking version check and logs a notice
// if an update is available. Best-effort: network failures are
// silently ignored.
func checkForUpdates() {
	result := updater.CheckVersion(server.Version)
	if result.UpdateAvailable {
		log.Info().
			Str("current", result.CurrentVersion).
			Str("latest", result.LatestVersion).
			Str("release", result.ReleaseURL).
			Msg("update available: run `taskwell update`")
	}
}

// runUpdate performs a self-update to the latest version.
func runUpdate() {
	fmt.Fprintf(os.Stderr, "Checking for updates...\n")

	result := updater.CheckVersion(server.Version)
	if !result.UpdateAvailable {
		fmt.Fprintf(os.Stderr, "Already at the latest version (v%s)\n", result.CurrentVersion)
		return
	}

	fmt.Fprintf(os.Stderr, "New version available: v%s -> v%s\n", result.CurrentVersion, result.LatestVersion)
	fmt.Fprintf(os.Stderr, "Downloading...\n")

	if err := updater.SelfUpdate(server.Version); err != nil {
		fmt.Fprintf(os.Stderr, "Update failed: %v\n", err)
		fmt.Fprintf(os.Stderr, "\n   You can download manually from:\n   %s\n", result.ReleaseURL)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "Updated to v%s!\n", result.LatestVersion)
	fmt.Fprintf(os.Stderr, "   Restart taskwell to use the new version.\n")
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Taskwell v%s — task-tracking MCP server

Usage:
  taskwell serve    Start the MCP server (stdio transport)
  taskwell update   Update to the latest version

Environment:
  TASKWELL_ENV          Logging profile: dev, prod, or local (default: prod)
  TASKWELL_SEED         Start with the sample workspace (default: true)
  TASKWELL_SERVER_NAME  Name reported in the MCP handshake (default: taskwell)

Configuration:
  Add to your AI tool's MCP config:

  {
    "mcpServers": {
      "taskwell": {
        "command": "taskwell",
        "args": ["serve"]
      }
    }
  }
`, server.Version)
}
