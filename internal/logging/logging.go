// Package logging owns the process-wide structured logger.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// DefaultMaxLogFiles is how many per-run log files are kept
const DefaultMaxLogFiles = 200

// Environment overrides
const (
	EnvDebug       = "DROIDSOUND_DEBUG"
	EnvDebugFile   = "DROIDSOUND_DEBUG_FILE"
	EnvMaxLogFiles = "DROIDSOUND_MAX_LOG_FILES"
)

// Logger is shared by every package. It discards until Initialize enables it,
// so library callers and tests never see a nil logger.
var Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))

// Options selects where debug logs go
type Options struct {
	Debug       bool
	DebugFile   string
	MaxLogFiles int
	// Quiet suppresses the "logs at ..." notice on stdout
	Quiet bool
}

// Initialize installs the logger. Environment variables only fill in values
// the caller left unset.
func Initialize(opts Options) (string, error) {
	opts = withEnv(opts)

	if !opts.Debug && opts.DebugFile == "" {
		Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
		return "", nil
	}

	path, err := logFilePath(opts)
	if err != nil {
		return "", err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return "", fmt.Errorf("failed to open log file: %w", err)
	}

	Logger = slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	Logger.Info("Debug logging initialized", "log_file", path, "pid", os.Getpid())

	if !opts.Quiet {
		fmt.Fprintf(os.Stderr, "Debug mode enabled. Logs: %s\n", path)
	}
	return path, nil
}

// SetOutput points the logger at w, used by tests that assert on log lines
func SetOutput(w io.Writer) {
	Logger = slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func withEnv(opts Options) Options {
	if os.Getenv(EnvDebug) == "1" {
		opts.Debug = true
	}
	if f := os.Getenv(EnvDebugFile); f != "" && opts.DebugFile == "" {
		opts.DebugFile = f
	}
	if v := os.Getenv(EnvMaxLogFiles); v != "" && opts.MaxLogFiles == 0 {
		if n, err := strconv.Atoi(v); err == nil {
			opts.MaxLogFiles = n
		}
	}
	if opts.MaxLogFiles == 0 {
		opts.MaxLogFiles = DefaultMaxLogFiles
	}
	return opts
}

func logFilePath(opts Options) (string, error) {
	if opts.DebugFile != "" {
		if err := os.MkdirAll(filepath.Dir(opts.DebugFile), 0755); err != nil {
			return "", fmt.Errorf("failed to create log directory: %w", err)
		}
		return opts.DebugFile, nil
	}

	dir, err := LogDir()
	if err != nil {
		return "", fmt.Errorf("failed to get log directory: %w", err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create log directory: %w", err)
	}

	if opts.MaxLogFiles > 0 {
		if err := rotate(dir, opts.MaxLogFiles); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: log rotation failed: %v\n", err)
		}
	}

	return filepath.Join(dir, uuid.NewString()+".log"), nil
}

// rotate deletes the oldest .log files so that one more fits under keep
func rotate(dir string, keep int) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read log directory: %w", err)
	}

	type logFile struct {
		path    string
		modTime time.Time
	}
	var files []logFile
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".log" {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		files = append(files, logFile{filepath.Join(dir, e.Name()), info.ModTime()})
	}

	if len(files) < keep {
		return nil
	}

	slices.SortFunc(files, func(a, b logFile) int { return a.modTime.Compare(b.modTime) })

	for _, f := range files[:len(files)-keep+1] {
		if err := os.Remove(f.path); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to delete old log file %s: %v\n", f.path, err)
		}
	}
	return nil
}

// LogDir returns the per-OS directory that holds rotated run logs
func LogDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Logs", "droidsound"), nil
	case "linux":
		state := os.Getenv("XDG_STATE_HOME")
		if state == "" {
			state = filepath.Join(home, ".local", "state")
		}
		return filepath.Join(state, "droidsound"), nil
	case "windows":
		local := os.Getenv("LOCALAPPDATA")
		if local == "" {
			local = filepath.Join(home, "AppData", "Local")
		}
		return filepath.Join(local, "droidsound", "logs"), nil
	default:
		return filepath.Join(home, ".droidsound", "logs"), nil
	}
}
