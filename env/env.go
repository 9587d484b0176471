// Package env reads process configuration from environment variables.
//
// Keys are compared case-insensitive, and values are parsed with the same strategies used for command arguments.
// A variable that isn't set, is empty, or can't be parsed results in the caller's default.
package env

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/saylorsolutions/cmdctx/argument"
)

func getEnv() map[string]string {
	envMap := map[string]string{}
	environ := os.Environ()
	for i := 0; i < len(environ); i++ {
		key, val, found := strings.Cut(environ[i], "=")
		if !found {
			continue
		}
		envMap[strings.ToLower(key)] = val
	}
	return envMap
}

// Val will attempt to get an environment variable value using the given key.
// If the variable isn't set, or is empty, then the defaultVal will be returned.
func Val(key string, defaultVal string) string {
	val, ok := getEnv()[strings.ToLower(key)]
	if !ok {
		return defaultVal
	}
	trimmed := strings.TrimSpace(val)
	if len(trimmed) == 0 {
		return defaultVal
	}
	return trimmed
}

// Parse interprets an environment variable with the given [argument.Strategy].
func Parse[T any](key string, defaultVal T, strategy *argument.Strategy[T]) T {
	sval := Val(key, "")
	if len(sval) == 0 {
		return defaultVal
	}
	val, ok := strategy.Parse(sval)
	if !ok {
		return defaultVal
	}
	return val
}

var (
	DefaultTrue  = append([]string{"1"}, argument.TrueValues...)  // DefaultTrue are the values considered "true" when using [Bool], and can be changed.
	DefaultFalse = append([]string{"0"}, argument.FalseValues...) // DefaultFalse are the values considered "false" when using [Bool], and can be changed.
)

// Bool interprets an environment variable as a boolean, using [DefaultTrue] and [DefaultFalse], ignoring case.
func Bool(key string, defaultVal bool) bool {
	sval := Val(key, "")
	switch {
	case len(sval) == 0:
		return defaultVal
	case containsFold(DefaultTrue, sval):
		return true
	case containsFold(DefaultFalse, sval):
		return false
	default:
		return defaultVal
	}
}

func containsFold(vals []string, s string) bool {
	for _, val := range vals {
		if strings.EqualFold(val, s) {
			return true
		}
	}
	return false
}

// Int interprets an environment variable as a base 10 integer.
func Int(key string, defaultVal int64) int64 {
	return Parse(key, defaultVal, argument.Int64)
}

// Float interprets an environment variable as a float64.
func Float(key string, defaultVal float64) float64 {
	return Parse(key, defaultVal, argument.Float64)
}

// Duration interprets an environment variable as a [time.Duration].
// Go's duration syntax, like "1h30m", is tried first, followed by [argument.ParseDuration], which accepts values like "1 day, 2 hours".
func Duration(key string, defaultVal time.Duration) time.Duration {
	sval := Val(key, "")
	if len(sval) == 0 {
		return defaultVal
	}
	if dval, err := time.ParseDuration(sval); err == nil {
		return dval
	}
	if dval, ok := argument.ParseDurationSafely(sval); ok {
		return dval
	}
	return defaultVal
}

// Locale interprets an environment variable as a BCP 47 language tag, like "de-DE".
func Locale(key string, defaultVal language.Tag) language.Tag {
	sval := Val(key, "")
	if len(sval) == 0 {
		return defaultVal
	}
	// POSIX locales look like "de_DE.UTF-8".
	sval, _, _ = strings.Cut(sval, ".")
	tag, err := language.Parse(strings.ReplaceAll(sval, "_", "-"))
	if err != nil {
		return defaultVal
	}
	return tag
}

// LogLevel interprets an environment variable as a [slog.Level], like "debug" or "warn+2".
func LogLevel(key string, defaultVal slog.Level) slog.Level {
	sval := Val(key, "")
	if len(sval) == 0 {
		return defaultVal
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(sval)); err != nil {
		return defaultVal
	}
	return level
}
