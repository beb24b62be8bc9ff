package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gogpu/gg"

	"github.com/lixenwraith/backdrop/constants"
)

const (
	logDir      = constants.LogDir
	logFileName = constants.LogFileName
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging routes log output to logs/backdrop.log when debug is set and
// discards it otherwise. The raster backend's slog output follows the same sink.
// Returns the open file for the caller to close, nil when disabled.
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		gg.SetLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	truncate, rotateErr := rotateLog(logPath)
	flags := os.O_CREATE | os.O_WRONLY | os.O_APPEND
	if truncate {
		flags |= os.O_TRUNC
	}

	f, err := os.OpenFile(logPath, flags, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	gg.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	log.Printf("backdrop: logging started pid=%d", os.Getpid())
	if rotateErr != nil {
		log.Printf("backdrop: %v, truncated current log", rotateErr)
	}
	return f
}

var renameFile = os.Rename

// rotateLog moves an oversized log aside under a timestamped name.
// Returns true when the current file is still oversized and must be truncated.
func rotateLog(logPath string) (bool, error) {
	info, err := os.Stat(logPath)
	if err != nil || info.Size() <= maxLogSize {
		return false, nil
	}
	stamp := time.Now().Format("20060102-150405")
	rotated := filepath.Join(logDir, fmt.Sprintf("backdrop-%s.log", stamp))
	if err := renameFile(logPath, rotated); err != nil {
		return true, fmt.Errorf("rotate %s: %w", logPath, err)
	}
	return false, nil
}
