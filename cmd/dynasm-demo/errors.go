// Completion: 100% - Error handling complete
package main

import "fmt"

// ErrorLevel indicates the severity of a demo-level error.
type ErrorLevel int

const (
	LevelWarning ErrorLevel = iota
	LevelError
	LevelFatal
)

func (l ErrorLevel) String() string {
	switch l {
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	case LevelFatal:
		return "fatal error"
	default:
		return "unknown"
	}
}

// ErrorCategory classifies where a demo error originated: the CLI layer
// itself, or the engine it drives.
type ErrorCategory int

const (
	CategoryUsage ErrorCategory = iota
	CategoryEngine
	CategoryPlatform
)

func (c ErrorCategory) String() string {
	switch c {
	case CategoryUsage:
		return "usage"
	case CategoryEngine:
		return "engine"
	case CategoryPlatform:
		return "platform"
	default:
		return "unknown"
	}
}

// DemoError wraps a message with the level/category pair the CLI prints
// and exits on; engine errors carry the dynasm.Status that produced them.
type DemoError struct {
	Level    ErrorLevel
	Category ErrorCategory
	Message  string
}

func (e *DemoError) Error() string {
	return fmt.Sprintf("%s (%s): %s", e.Level, e.Category, e.Message)
}

func engineError(format string, args ...any) error {
	return &DemoError{Level: LevelError, Category: CategoryEngine, Message: fmt.Sprintf(format, args...)}
}

func usageError(format string, args ...any) error {
	return &DemoError{Level: LevelError, Category: CategoryUsage, Message: fmt.Sprintf(format, args...)}
}
