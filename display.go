package errlog

import (
	"io"
	"os"
	"strings"
)

// RenderJoined renders every visible entry and joins them with the delimiter.
// It returns false if no entry is visible.
func (l *Log[T, E]) RenderJoined() (string, bool) {
	parts := make([]string, 0, len(l.entries))
	for _, e := range l.entries {
		if msg, ok := e.RenderFiltered(l.formatMode, l.MaxLevel()); ok {
			parts = append(parts, msg)
		}
	}
	if len(parts) == 0 {
		return "", false
	}
	return strings.Join(parts, l.delimiter), true
}

// Display sends the visible entries to the display sink.
//
// Without join every visible entry is one record, followed by the delimiter
// (if any) written to the Log's writer. With join a single record of level
// Error holding RenderJoined is sent. In instant display mode entries already
// shown at push time are skipped, joined output is always rebuilt in full.
func (l *Log[T, E]) Display() {
	switch {
	case l.join:
		l.displayJoined()
	case l.instantDisplay:
		l.displayPending()
		l.writeDelimiter()
	default:
		l.displayEach()
		l.writeDelimiter()
	}
}

// DisplayOk displays the entries and returns the success value.
func (l *Log[T, E]) DisplayOk() (T, bool) {
	l.Display()
	return l.Success()
}

// DisplayPtr displays the entries and returns a pointer to the success value,
// or nil if none is set.
func (l *Log[T, E]) DisplayPtr() *T {
	l.Display()
	return l.SuccessPtr()
}

// DisplayTake displays the entries and removes the success value from the Log.
func (l *Log[T, E]) DisplayTake() (T, bool) {
	l.Display()
	return l.TakeSuccess()
}

// DisplayOr displays the entries and returns the success value or fallback.
func (l *Log[T, E]) DisplayOr(fallback T) T {
	if v, ok := l.DisplayOk(); ok {
		return v
	}
	return fallback
}

// DisplayOrElse displays the entries and returns the success value, calling
// fallback only if none is set.
func (l *Log[T, E]) DisplayOrElse(fallback func() T) T {
	if v, ok := l.DisplayOk(); ok {
		return v
	}
	return fallback()
}

// DisplayOrZero displays the entries and returns the success value or the zero
// value of T.
func (l *Log[T, E]) DisplayOrZero() T {
	v, _ := l.DisplayOk()
	return v
}

// MustDisplay displays the entries and returns the success value.
// It panics if no success value is set, use it at the top of a program.
func (l *Log[T, E]) MustDisplay() T {
	v, ok := l.DisplayOk()
	if !ok {
		panic("No success value")
	}
	return v
}

// MustDisplayTake is MustDisplay that also removes the success value.
func (l *Log[T, E]) MustDisplayTake() T {
	v, ok := l.DisplayTake()
	if !ok {
		panic("No success value")
	}
	return v
}

func (l *Log[T, E]) displayEach() {
	sink := l.DisplayFunc()
	for _, e := range l.entries {
		if msg, ok := e.RenderFiltered(l.formatMode, l.MaxLevel()); ok {
			sink(e.Level(), e.timestamp, msg)
		}
	}
}

func (l *Log[T, E]) displayJoined() {
	if msg, ok := l.RenderJoined(); ok {
		l.DisplayFunc()(LevelError, now(), msg)
	}
}

// displayPending shows visible entries that were not shown yet and marks them.
func (l *Log[T, E]) displayPending() {
	sink := l.DisplayFunc()
	for i := range l.entries {
		e := &l.entries[i]
		if e.shown {
			continue
		}
		msg, ok := e.RenderFiltered(l.formatMode, l.MaxLevel())
		if !ok {
			continue
		}
		e.shown = true
		sink(e.Level(), e.timestamp, msg)
	}
}

// flushInstant runs after every push.
func (l *Log[T, E]) flushInstant() {
	if !l.instantDisplay {
		return
	}
	if l.join {
		l.displayJoined()
		return
	}
	l.displayPending()
}

func (l *Log[T, E]) writeDelimiter() {
	if l.delimiter == "" {
		return
	}
	w := l.writer
	if w == nil {
		w = os.Stdout
	}
	_, _ = io.WriteString(w, l.delimiter)
}
