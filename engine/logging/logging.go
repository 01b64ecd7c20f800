package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/Graylog2/go-gelf/gelf"
	"github.com/rs/zerolog"

	"github.com/1siamBot/stellar-armada/engine/config"
)

// ParseLevel maps a config string to a zerolog level, defaulting to info
func ParseLevel(s string) zerolog.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "INFO":
		return zerolog.InfoLevel
	case "WARN":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// New builds the process logger: colored console output on out, plus a
// Graylog sink when enabled. The returned closer flushes the sink.
func New(cfg config.LogConfig, out io.Writer) (zerolog.Logger, io.Closer, error) {
	writers := []io.Writer{
		zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: "15:04:05",
		},
	}

	var closer io.Closer = nopCloser{}
	if cfg.GraylogEnabled {
		gw, err := gelf.NewWriter(cfg.GraylogAddress)
		if err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("connecting to graylog at %s: %w", cfg.GraylogAddress, err)
		}
		writers = append(writers, gw)
		closer = gw
	}

	zerolog.TimestampFunc = func() time.Time {
		return time.Now().UTC()
	}
	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(ParseLevel(cfg.Level)).
		With().Timestamp().Logger()

	logger.Debug().Str("loglevel", logger.GetLevel().String()).Msg("Logging set up")
	return logger, closer, nil
}

// Must is New on stdout, falling back to console-only output when the
// Graylog sink cannot be reached
func Must(cfg config.LogConfig) (zerolog.Logger, io.Closer) {
	logger, closer, err := New(cfg, os.Stdout)
	if err == nil {
		return logger, closer
	}
	cfg.GraylogEnabled = false
	logger, closer, _ = New(cfg, os.Stdout)
	logger.Warn().Err(err).Msg("graylog disabled")
	return logger, closer
}

// Component derives a child logger tagged with the component name
func Component(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str("component", name).Logger()
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
