package logger

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

var (
	log  zerolog.Logger
	once sync.Once
)

func get() *zerolog.Logger {
	once.Do(func() {
		zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs
		level := zerolog.InfoLevel
		if parsed, err := zerolog.ParseLevel(strings.ToLower(os.Getenv("LOG_LEVEL"))); err == nil && parsed != zerolog.NoLevel {
			level = parsed
		}
		log = zerolog.New(os.Stdout).Level(level).With().Timestamp().Logger()
	})
	return &log
}

func Debug(msg string, args ...any) {
	emit(get().Debug(), msg, args...)
}

func Info(msg string, args ...any) {
	emit(get().Info(), msg, args...)
}

func Warn(msg string, args ...any) {
	emit(get().Warn(), msg, args...)
}

func Error(msg string, args ...any) {
	emit(get().Error(), msg, args...)
}

func Fatal(msg string, args ...any) {
	emit(get().Fatal(), msg, args...)
}

// emit accepts either key/value pairs ("key", value, ...) or bare values
// (typically a single error), matching how call sites use this package.
func emit(ev *zerolog.Event, msg string, args ...any) {
	i := 0
	for i < len(args) {
		key, ok := args[i].(string)
		if ok && i+1 < len(args) {
			ev = appendField(ev, key, args[i+1])
			i += 2
			continue
		}
		switch v := args[i].(type) {
		case error:
			ev = ev.Err(v)
		default:
			ev = ev.Interface(fmt.Sprintf("arg%d", i), v)
		}
		i++
	}
	ev.Msg(msg)
}

func appendField(ev *zerolog.Event, key string, val any) *zerolog.Event {
	switch v := val.(type) {
	case error:
		return ev.AnErr(key, v)
	case string:
		return ev.Str(key, v)
	case int:
		return ev.Int(key, v)
	case bool:
		return ev.Bool(key, v)
	default:
		return ev.Interface(key, v)
	}
}
