package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
	"gopkg.in/natefinch/lumberjack.v2"
)

const serviceName = "iet-portal"

// Setup builds the process logger.
//   - level: trace, debug, info, warn, error, fatal or panic; anything else is info
//   - format: "pretty" for console output, otherwise JSON lines
//   - file: optional path; JSON lines are also appended there with rotation
//
// It also sets the global level, so child loggers obey it.
func Setup(level, format, file string) zerolog.Logger {
	var out io.Writer = os.Stdout
	if format == "pretty" {
		out = zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
			// Colors only when a person is watching.
			NoColor: !term.IsTerminal(int(os.Stdout.Fd())),
		}
	}

	if file != "" {
		out = zerolog.MultiLevelWriter(out, &lumberjack.Logger{
			Filename:   file,
			MaxSize:    50, // megabytes
			MaxBackups: 7,
			MaxAge:     30, // days
			Compress:   true,
		})
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	return zerolog.New(out).
		With().
		Timestamp().
		Str("service", serviceName).
		Caller().
		Logger()
}
