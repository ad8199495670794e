package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync/atomic"
)

// Level is a log severity.
type Level int32

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
)

func (l Level) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel accepts the level names case-insensitively.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return DEBUG, nil
	case "INFO", "":
		return INFO, nil
	case "WARN", "WARNING":
		return WARN, nil
	case "ERROR":
		return ERROR, nil
	default:
		return INFO, fmt.Errorf("unknown log level %q", s)
	}
}

var (
	std   = log.New(os.Stderr, "", log.LstdFlags)
	level atomic.Int32
)

func init() {
	level.Store(int32(INFO))
}

// SetLevel drops messages below l.
func SetLevel(l Level) {
	level.Store(int32(l))
}

// GetLevel returns the current threshold.
func GetLevel() Level {
	return Level(level.Load())
}

// SetOutput redirects all log output.
func SetOutput(w io.Writer) {
	std.SetOutput(w)
}

func Debugf(format string, args ...any) { logf(DEBUG, format, args...) }
func Infof(format string, args ...any)  { logf(INFO, format, args...) }
func Warnf(format string, args ...any)  { logf(WARN, format, args...) }
func Errorf(format string, args ...any) { logf(ERROR, format, args...) }

func logf(l Level, format string, args ...any) {
	if l < GetLevel() {
		return
	}
	std.Printf("[%s] %s", l, fmt.Sprintf(format, args...))
}
