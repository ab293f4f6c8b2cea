package logger

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	TargetConsole = "console"
	TargetStdout  = "stdout"
	TargetFile    = "file"
)

var (
	mu     sync.RWMutex
	global = zerolog.New(os.Stderr).With().Timestamp().Logger()
)

// InitGlobalLogger replaces the process wide logger according to cfg.
// Unknown targets are ignored; with no usable target logs go to stderr.
func InitGlobalLogger(cfg *Config) {
	writers := make([]io.Writer, 0, len(cfg.Targets))
	for _, target := range cfg.Targets {
		switch target {
		case TargetConsole:
			writers = append(writers, zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
		case TargetStdout:
			writers = append(writers, os.Stdout)
		case TargetFile:
			if cfg.Filename == "" {
				continue
			}
			writers = append(writers, &lumberjack.Logger{
				Filename:   cfg.Filename,
				MaxSize:    cfg.MaxSize,
				MaxBackups: cfg.MaxBackups,
				MaxAge:     cfg.MaxAge,
				Compress:   cfg.Compress,
			})
		}
	}

	if len(writers) == 0 {
		writers = append(writers, os.Stderr)
	}

	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	l := zerolog.New(zerolog.MultiLevelWriter(writers...)).Level(level).With().Timestamp().Logger()

	mu.Lock()
	global = l
	mu.Unlock()
}

func get() *zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()

	l := global

	return &l
}

func Debug(msg string, keyvals ...any) {
	get().Debug().Fields(keyvals).Msg(msg)
}

func Info(msg string, keyvals ...any) {
	get().Info().Fields(keyvals).Msg(msg)
}

func Warn(msg string, keyvals ...any) {
	get().Warn().Fields(keyvals).Msg(msg)
}

func Error(msg string, keyvals ...any) {
	get().Error().Fields(keyvals).Msg(msg)
}
