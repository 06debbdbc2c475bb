// Package logger provides levelled diagnostics for the binaries. Player-facing
// narration does not go through here.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
)

type Logger struct {
	infoLogger  *log.Logger
	warnLogger  *log.Logger
	errorLogger *log.Logger
}

// NewLogger writes info and warnings to out and errors to errOut.
func NewLogger(out, errOut io.Writer) *Logger {
	return &Logger{
		infoLogger:  log.New(out, "[SEA-INFO] ", log.Ldate|log.Ltime|log.Lmsgprefix),
		warnLogger:  log.New(out, "[SEA-WARN] ", log.Ldate|log.Ltime|log.Lmsgprefix),
		errorLogger: log.New(errOut, "[SEA-ERROR] ", log.Ldate|log.Ltime|log.Lmsgprefix),
	}
}

func Default() *Logger { return NewLogger(os.Stderr, os.Stderr) }

func (l *Logger) Info(format string, args ...any)  { l.infoLogger.Printf(format, args...) }
func (l *Logger) Warn(format string, args ...any)  { l.warnLogger.Printf(format, args...) }
func (l *Logger) Error(format string, args ...any) { l.errorLogger.Printf(format, args...) }

// Event logs a match event as one key=value line.
func (l *Logger) Event(eventType, side string, payload map[string]any) {
	l.infoLogger.Printf("[EVENT:%s] side=%s %s", eventType, side, formatPayload(payload))
}

// Fatal logs and exits with status 1.
func (l *Logger) Fatal(format string, args ...any) {
	l.errorLogger.Printf(format, args...)
	os.Exit(1)
}

func formatPayload(p map[string]any) string {
	if len(p) == 0 {
		return "-"
	}
	return fmt.Sprint(p)
}
