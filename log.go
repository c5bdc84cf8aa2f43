package errlog

import (
	"io"
	"os"
)

// Log collects errors and leveled messages during a unit of work and holds at
// most one success value. Entries are kept in insertion order. The max level
// only affects what is read or displayed: hidden messages stay stored.
//
// The zero value is an empty Log with default settings, ready to use.
// A Log is not safe for concurrent use. Guard a shared instance with a mutex.
type Log[T, E any] struct {
	entries []Entry[E]
	success *T

	formatMode     FormatMode
	maxLevel       Level
	maxLevelSet    bool
	delimiter      string
	join           bool
	instantDisplay bool

	display DisplayFunc
	writer  io.Writer
}

// New creates an empty Log with default presentation settings: all levels
// shown, normal formatting, no delimiter, no joining, console output.
func New[T, E any](capacityRaw ...int) *Log[T, E] {
	var capacity int
	if len(capacityRaw) > 0 && capacityRaw[0] > 0 {
		capacity = capacityRaw[0]
	}
	return &Log[T, E]{
		entries: make([]Entry[E], 0, capacity),
		writer:  os.Stdout,
	}
}

// NewErrorLog creates a Log storing plain Go errors.
func NewErrorLog[T any](capacityRaw ...int) *Log[T, error] {
	return New[T, error](capacityRaw...)
}

// WithMaxLevel sets the most verbose message level that is shown.
// With LevelOff every message is hidden, errors still show.
func (l *Log[T, E]) WithMaxLevel(level Level) *Log[T, E] {
	if !level.IsValid() {
		level = LevelTrace
	}
	l.maxLevel = level
	l.maxLevelSet = true
	return l
}

// WithFormatMode sets how error payloads are rendered.
func (l *Log[T, E]) WithFormatMode(mode FormatMode) *Log[T, E] {
	l.formatMode = mode
	return l
}

// WithDelimiter sets the string put between joined entries and written after a
// non-joined display.
func (l *Log[T, E]) WithDelimiter(delimiter string) *Log[T, E] {
	l.delimiter = delimiter
	return l
}

// ClearDelimiter resets the delimiter to the empty string.
func (l *Log[T, E]) ClearDelimiter() *Log[T, E] {
	l.delimiter = ""
	return l
}

// WithJoin makes Display emit all visible entries as one joined record.
func (l *Log[T, E]) WithJoin(join bool) *Log[T, E] {
	l.join = join
	return l
}

// WithInstantDisplay makes every push display the new entries right away.
// Entries shown that way are skipped by later calls to Display.
func (l *Log[T, E]) WithInstantDisplay(instant bool) *Log[T, E] {
	l.instantDisplay = instant
	return l
}

// WithDisplayFunc replaces the sink that receives displayed records.
// A nil fn restores the console sink.
func (l *Log[T, E]) WithDisplayFunc(fn DisplayFunc) *Log[T, E] {
	l.display = fn
	return l
}

// WithWriter sets the writer used by the default console sink and for the
// trailing delimiter. A nil writer discards output.
func (l *Log[T, E]) WithWriter(w io.Writer) *Log[T, E] {
	if w == nil {
		w = io.Discard
	}
	l.writer = w
	return l
}

// MaxLevel returns the level threshold, LevelTrace until one is set.
func (l *Log[T, E]) MaxLevel() Level {
	if !l.maxLevelSet {
		return LevelTrace
	}
	return l.maxLevel
}

func (l *Log[T, E]) FormatMode() FormatMode { return l.formatMode }
func (l *Log[T, E]) Delimiter() string      { return l.delimiter }
func (l *Log[T, E]) Join() bool             { return l.join }
func (l *Log[T, E]) InstantDisplay() bool   { return l.instantDisplay }

// DisplayFunc returns the sink in use.
func (l *Log[T, E]) DisplayFunc() DisplayFunc {
	if l.display == nil {
		return ConsoleSink(l.writer)
	}
	return l.display
}

// SetSuccess stores v as the success value, replacing any previous one.
func (l *Log[T, E]) SetSuccess(v T) *Log[T, E] {
	l.success = &v
	return l
}

// Success returns the success value and whether one is set.
func (l *Log[T, E]) Success() (T, bool) {
	if l.success == nil {
		var zero T
		return zero, false
	}
	return *l.success, true
}

// SuccessPtr returns a pointer to the stored success value, or nil.
// Writes through the pointer change the stored value.
func (l *Log[T, E]) SuccessPtr() *T {
	return l.success
}

// HasSuccess returns true if a success value is set.
func (l *Log[T, E]) HasSuccess() bool {
	return l.success != nil
}

// TakeSuccess removes and returns the success value.
func (l *Log[T, E]) TakeSuccess() (T, bool) {
	v, ok := l.Success()
	l.success = nil
	return v, ok
}

// ClearSuccess discards the success value.
func (l *Log[T, E]) ClearSuccess() *Log[T, E] {
	l.success = nil
	return l
}

// ExitCode returns 0 when a success value is set and 1 otherwise.
func (l *Log[T, E]) ExitCode() int {
	if l.success != nil {
		return 0
	}
	return 1
}
