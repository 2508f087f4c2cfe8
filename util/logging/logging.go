package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config is the configuration of the zerolog logger and writers
type Config struct {
	// Enable console logging
	WithConsoleLog bool

	// Enable console logging coloring
	WithColor bool

	// WithCaller adds the file:line information of the logger caller
	WithCaller bool

	// Level is the minimum level logged: debug, info, warn, error
	Level string

	// WithLogFile makes the framework log to a file
	// the fields below can be skipped if this value is false!
	WithLogFile bool

	// File is the path of the logfile
	File string

	// MaxSize the max size in MB of the logfile before it's rolled
	MaxSize int

	// MaxBackups the max number of rolled files to keep
	MaxBackups int

	// MaxAge the max age in days to keep a logfile
	MaxAge int
}

const (
	TimeFormat = "15:04:05.000"
)

var (
	consoleWriter = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: TimeFormat}
)

// SetDefaultConsoleWriter set the default console writer
func SetDefaultConsoleWriter(w zerolog.ConsoleWriter) {
	consoleWriter = w
}

// Configure sets up the global logger
func Configure(config Config) error {
	var writers []io.Writer

	level := zerolog.InfoLevel
	if config.Level != "" {
		l, err := zerolog.ParseLevel(config.Level)
		if err != nil {
			return fmt.Errorf("log level: %w", err)
		}
		level = l
	}

	if config.WithConsoleLog {
		consoleWriter.NoColor = !config.WithColor
		writers = append(writers, consoleWriter)
	}
	if config.WithLogFile {
		fileWriter, err := newRollingFile(config)
		if err != nil {
			return err
		}
		writers = append(writers, fileWriter)
	}

	var logger zerolog.Logger
	switch len(writers) {
	case 0:
		logger = zerolog.Nop()
	case 1:
		logger = zerolog.New(writers[0]).Level(level).With().Timestamp().Logger()
	default:
		logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).Level(level).With().Timestamp().Logger()
	}
	if config.WithCaller {
		logger = logger.With().Caller().Logger()
	}
	log.Logger = logger
	return nil
}

func newRollingFile(config Config) (io.Writer, error) {
	if config.File == "" {
		return nil, fmt.Errorf("log file path is not set")
	}
	dir := filepath.Dir(config.File)
	if err := os.MkdirAll(dir, 0744); err != nil {
		return nil, fmt.Errorf("can't create log directory %s: %w", dir, err)
	}

	return &lumberjack.Logger{
		Filename:   config.File,
		MaxBackups: config.MaxBackups, // files
		MaxSize:    config.MaxSize,    // megabytes
		MaxAge:     config.MaxAge,     // days
	}, nil
}
