package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/ericogr/pokebattle/internal/constants"
)

type Fields map[string]interface{}

var levels = map[string]int{"debug": 0, "info": 1, "warn": 2, "error": 3, "fatal": 4}

var (
	mu       sync.Mutex
	out      io.Writer = os.Stderr
	minLevel           = levelFromEnv()
	exit               = os.Exit
)

func levelFromEnv() int {
	if l, ok := levels[strings.ToLower(strings.TrimSpace(os.Getenv(constants.EnvLogLevel)))]; ok {
		return l
	}
	return levels["info"]
}

// SetOutput redirects log lines and returns a func restoring the previous
// writer. Tests use it to capture output.
func SetOutput(w io.Writer) (restore func()) {
	mu.Lock()
	defer mu.Unlock()
	prev := out
	out = w
	return func() {
		mu.Lock()
		out = prev
		mu.Unlock()
	}
}

// SetLevel drops lines below level ("debug", "info", "warn", "error").
// Unknown names are ignored.
func SetLevel(level string) {
	l, ok := levels[strings.ToLower(level)]
	if !ok {
		return
	}
	mu.Lock()
	minLevel = l
	mu.Unlock()
}

// output writes one JSON object per line. The caller's map is copied so
// field sets can be reused across calls.
func output(level, msg string, fields Fields, err error) {
	mu.Lock()
	defer mu.Unlock()
	if levels[level] < minLevel {
		return
	}
	line := make(Fields, len(fields)+4)
	for k, v := range fields {
		line[k] = v
	}
	if err != nil {
		line["error"] = err.Error()
	}
	line["level"] = level
	line["ts"] = time.Now().UTC().Format(time.RFC3339)
	line["msg"] = msg
	b, mErr := json.Marshal(line)
	if mErr != nil {
		// fallback to plain logging
		fmt.Fprintf(out, "%s: %s (%v)\n", level, msg, line)
		return
	}
	out.Write(append(b, '\n'))
}

// Debug logs verbose diagnostics; dropped unless the level is debug.
func Debug(msg string, fields Fields) {
	output("debug", msg, fields, nil)
}

// Info logs an informational message with optional fields.
func Info(msg string, fields Fields) {
	output("info", msg, fields, nil)
}

// Warn logs a recoverable problem with optional fields.
func Warn(msg string, fields Fields) {
	output("warn", msg, fields, nil)
}

// Error logs an error message and includes the error text in the fields.
func Error(msg string, err error, fields Fields) {
	output("error", msg, fields, err)
}

// Fatal logs a fatal error and exits the process.
func Fatal(msg string, err error, fields Fields) {
	output("fatal", msg, fields, err)
	exit(1)
}
