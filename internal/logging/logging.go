// Package logging configures the process-wide zerolog logger.
//
// The server speaks MCP over stdout, so all log output goes to stderr.
package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/taskwell/taskwell/internal/config"
)

// Init sets up the global logger for the given environment: debug level
// in dev, info in prod, and a human-readable console writer at trace
// level for local runs.
func Init(env string) {
	zerolog.TimestampFieldName = "timestamp"

	logger := zerolog.New(os.Stderr).
		With().
		Timestamp().
		Int("pid", os.Getpid()).
		Logger()

	switch env {
	case config.EnvDev:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case config.EnvLocal:
		zerolog.SetGlobalLevel(zerolog.TraceLevel)

		consoleWriter := zerolog.NewConsoleWriter()
		consoleWriter.TimeFormat = time.DateTime
		consoleWriter.Out = os.Stderr
		logger = logger.Output(consoleWriter)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	log.Logger = logger
}
