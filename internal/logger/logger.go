// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 The nttt Authors

package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// TODO: Consider log rotation

// levelEnv selects the minimum log level (debug, info, warn, error).
const levelEnv = "NTTT_LOG_LEVEL"

var (
	defaultLogger *slog.Logger
	logFileHandle *os.File
)

// LogFilePath determines the path for the application log file based on XDG spec.
func LogFilePath() (string, error) {
	stateDir := os.Getenv("XDG_STATE_HOME")
	if stateDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("could not get user home directory: %w", err)
		}
		stateDir = filepath.Join(homeDir, ".local", "state")
	}

	return filepath.Join(stateDir, "nttt", "app.log"), nil
}

func levelFromEnv() slog.Level {
	switch strings.ToLower(os.Getenv(levelEnv)) {
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

// openLogFile creates the log directory and opens the log file for appending.
func openLogFile() (*os.File, error) {
	logFilePath, err := LogFilePath()
	if err != nil {
		return nil, err
	}
	logDir := filepath.Dir(logFilePath)
	if err := os.MkdirAll(logDir, 0750); err != nil {
		return nil, fmt.Errorf("creating log directory %s: %w", logDir, err)
	}
	file, err := os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0640)
	if err != nil {
		return nil, fmt.Errorf("opening log file %s: %w", logFilePath, err)
	}
	return file, nil
}

// InitLogger initializes the logger based on the execution mode (TUI or CLI).
// The TUI owns the terminal, so in TUI mode nothing is written to stderr.
func InitLogger(isTUI bool) {
	Close()

	var writers []io.Writer
	file, err := openLogFile()
	if err != nil {
		if !isTUI {
			fmt.Fprintf(os.Stderr, "File logging disabled: %v\n", err)
		}
	} else {
		logFileHandle = file
		writers = append(writers, file)
	}
	if !isTUI {
		writers = append(writers, os.Stderr)
	}

	var w io.Writer
	switch len(writers) {
	case 0:
		w = io.Discard
	case 1:
		w = writers[0]
	default:
		w = io.MultiWriter(writers...)
	}

	SetLogger(slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: levelFromEnv()})))
	Debug("logging configured", "tui", isTUI)
}

// Close releases the log file, if one is open.
func Close() {
	if logFileHandle != nil {
		_ = logFileHandle.Close()
		logFileHandle = nil
	}
}

// SetLogger replaces the default logger instance, e.g. in tests.
func SetLogger(l *slog.Logger) {
	defaultLogger = l
}

func get() *slog.Logger {
	if defaultLogger == nil {
		// Not initialized: discard rather than write to a terminal the TUI may own.
		defaultLogger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return defaultLogger
}

// Info logs an informational message.
func Info(msg string, args ...any) {
	get().Info(msg, args...)
}

// Error logs an error message.
func Error(msg string, args ...any) {
	get().Error(msg, args...)
}

// Debug logs a debug message.
func Debug(msg string, args ...any) {
	get().Debug(msg, args...)
}

// Warn logs a warning message.
func Warn(msg string, args ...any) {
	get().Warn(msg, args...)
}
