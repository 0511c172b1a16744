package telemetry

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	mu     sync.RWMutex
	level  = zerolog.InfoLevel
	pretty bool
	logger = newLogger(os.Stdout)
)

// Init configures the level ("debug", "info", ...) and format ("json" or "pretty").
func Init(lvl, format string) {
	parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(lvl)))
	if err != nil || parsed == zerolog.NoLevel {
		parsed = zerolog.InfoLevel
	}
	zerolog.TimeFieldFormat = time.RFC3339

	mu.Lock()
	defer mu.Unlock()
	level = parsed
	pretty = strings.EqualFold(strings.TrimSpace(format), "pretty")
	logger = newLogger(os.Stdout)
}

// SetOutput redirects log lines to w and returns a func restoring stdout.
func SetOutput(w io.Writer) func() {
	mu.Lock()
	defer mu.Unlock()
	logger = newLogger(w)
	return func() {
		mu.Lock()
		defer mu.Unlock()
		logger = newLogger(os.Stdout)
	}
}

func newLogger(w io.Writer) zerolog.Logger {
	if pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// Debug writes a debug-level log line with the given fields.
func Debug(msg string, fields map[string]any) {
	write(zerolog.DebugLevel, msg, fields)
}

// Info writes an info-level log line with the given fields.
func Info(msg string, fields map[string]any) {
	write(zerolog.InfoLevel, msg, fields)
}

// Warn writes a warn-level log line with the given fields.
func Warn(msg string, fields map[string]any) {
	write(zerolog.WarnLevel, msg, fields)
}

// Error writes an error-level log line with the given fields.
func Error(msg string, fields map[string]any) {
	write(zerolog.ErrorLevel, msg, fields)
}

func write(lvl zerolog.Level, msg string, fields map[string]any) {
	mu.RLock()
	l := logger
	mu.RUnlock()

	l.WithLevel(lvl).Fields(safeFields(fields)).Msg(msg)
}

// safeFields renames caller keys that would collide with the keys zerolog
// writes itself, so each line stays a JSON object with unique keys.
func safeFields(fields map[string]any) map[string]any {
	collides := false
	for k := range fields {
		if isReserved(k) {
			collides = true
			break
		}
	}
	if !collides {
		return fields
	}
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		if isReserved(k) {
			k = "field_" + k
		}
		out[k] = v
	}
	return out
}

func isReserved(key string) bool {
	switch key {
	case zerolog.MessageFieldName, zerolog.LevelFieldName, zerolog.TimestampFieldName:
		return true
	}
	return false
}
