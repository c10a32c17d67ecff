package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/ironsheep/channel-viewer/internal/camera"
	"github.com/ironsheep/channel-viewer/internal/controller"
	"github.com/ironsheep/channel-viewer/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("channel-viewer %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			fmt.Printf("  Camera:     %v\n", camera.Supported)
			return
		case "--help", "-h", "help":
			fmt.Println("channel-viewer - MCP server for viewing and editing one image")
			fmt.Println()
			fmt.Println("Usage: channel-viewer [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  CHANNEL_VIEWER_LOG_LEVEL=debug        Log level (debug, info, warn, error)")
			fmt.Println("  CHANNEL_VIEWER_CAMERA_INDEX=0         Webcam device index")
			fmt.Println("  CHANNEL_VIEWER_MAX_DIMENSION=2000     Largest width or height for resize")
			fmt.Println("  CHANNEL_VIEWER_MAX_RADIUS=1000        Largest circle radius")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			return
		}
	}

	// Logs go to stderr; stdout is for MCP protocol
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLevel(os.Getenv("CHANNEL_VIEWER_LOG_LEVEL")),
	}))
	slog.SetDefault(logger)

	logger.Debug("starting channel-viewer", "version", Version, "built", BuildTime, "commit", GitCommit)

	defaults := controller.DefaultLimits()
	limits := controller.Limits{
		MaxDimension: envInt(logger, "CHANNEL_VIEWER_MAX_DIMENSION", defaults.MaxDimension),
		MaxRadius:    envInt(logger, "CHANNEL_VIEWER_MAX_RADIUS", defaults.MaxRadius),
	}
	cameraIndex := envInt(logger, "CHANNEL_VIEWER_CAMERA_INDEX", 0)

	ctrl := controller.New(
		controller.WithCamera(camera.Default(cameraIndex)),
		controller.WithLimits(limits),
		controller.WithLogger(logger),
	)

	server.Version = Version
	srv := server.New(ctrl)
	srv.SetLogger(logger)
	if err := srv.Run(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// envInt reads a positive integer from the environment, keeping def when the
// variable is unset or invalid.
func envInt(logger *slog.Logger, name string, def int) int {
	v := os.Getenv(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		logger.Warn("ignoring invalid environment value", "name", name, "value", v)
		return def
	}
	return n
}
