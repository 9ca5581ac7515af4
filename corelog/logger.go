// Package corelog provides the core's single, swappable structured logger.
//
// It mirrors the teacher's global-logger idiom (a package-level reference
// guarded by a mutex, defaulting to a no-op backend, replaceable once at
// plugin load) but, unlike a hand-rolled JSON formatter, is backed by a real
// structured-logging library: github.com/joeycumines/logiface fronting
// github.com/rs/zerolog via github.com/joeycumines/izerolog.
package corelog

import (
	"io"
	"sync"

	"github.com/joeycumines/izerolog"
	"github.com/joeycumines/logiface"
	"github.com/rs/zerolog"
)

// Event is the concrete logiface event type this module logs through.
type Event = izerolog.Event

// Logger is the concrete logiface logger type this module logs through.
type Logger = logiface.Logger[*Event]

// Category identifies which component emitted a log record. Categories
// mirror the component letters of SPEC_FULL.md §4.J.
type Category string

const (
	CategoryABI       Category = "abi"
	CategoryEntity    Category = "entity"
	CategoryEvent     Category = "event"
	CategoryTracking  Category = "tracking"
	CategoryArea      Category = "area"
	CategoryLifecycle Category = "lifecycle"
	CategoryScheduler Category = "scheduler"
)

var (
	mu     sync.RWMutex
	active *Logger
)

func init() {
	active = newDiscardLogger()
}

func newDiscardLogger() *Logger {
	return izerolog.L.New(
		izerolog.L.WithZerolog(zerolog.New(io.Discard)),
		izerolog.L.WithLevel(logiface.LevelDisabled),
	)
}

// New constructs a Logger writing zerolog-formatted records to w at or
// above level.
func New(w io.Writer, level logiface.Level) *Logger {
	return izerolog.L.New(
		izerolog.L.WithZerolog(zerolog.New(w).With().Timestamp().Logger()),
		izerolog.L.WithLevel(level),
	)
}

// SetLogger installs l as the process-wide logger. A nil l restores the
// no-op default. Safe to call concurrently with Get, but intended to be
// called at most once, at plugin load (see runtime.WithLogger).
func SetLogger(l *Logger) {
	mu.Lock()
	defer mu.Unlock()
	if l == nil {
		l = newDiscardLogger()
	}
	active = l
}

// Get returns the currently installed logger.
func Get() *Logger {
	mu.RLock()
	defer mu.RUnlock()
	return active
}

// With returns a Builder at the given level for the installed logger,
// pre-tagged with category. Callers chain field setters and terminate with
// Log/Logf, e.g.:
//
//	corelog.With(corelog.CategoryArea, logiface.LevelWarning).
//		Str("cell", cellKey).Err(err).Log("queue drain failed")
func With(category Category, level logiface.Level) *logiface.Builder[*Event] {
	b := Get().Build(level)
	return b.Str("category", string(category))
}

func Debug(category Category) *logiface.Builder[*Event] {
	return With(category, logiface.LevelDebug)
}

func Info(category Category) *logiface.Builder[*Event] {
	return With(category, logiface.LevelInformational)
}

func Warn(category Category) *logiface.Builder[*Event] {
	return With(category, logiface.LevelWarning)
}

func Error(category Category) *logiface.Builder[*Event] {
	return With(category, logiface.LevelError)
}
