package errlog

import (
	"fmt"
	"reflect"
)

// PushError appends err as an error entry.
func (l *Log[T, E]) PushError(err E) *Log[T, E] {
	return l.PushEntry(NewErrorEntry(err))
}

// PushEntry appends an already built entry, for example one taken from
// another Log. It counts as not yet displayed.
func (l *Log[T, E]) PushEntry(entry Entry[E]) *Log[T, E] {
	entry.shown = false
	l.entries = append(l.entries, entry)
	l.flushInstant()
	return l
}

// PushMessage appends a message with the given level. Messages are stored
// regardless of the max level.
func (l *Log[T, E]) PushMessage(level Level, message string) *Log[T, E] {
	return l.PushEntry(NewMessageEntry[E](level, message))
}

// Errorf appends an error level message.
func (l *Log[T, E]) Errorf(format string, args ...any) *Log[T, E] {
	return l.PushMessage(LevelError, fmt.Sprintf(format, args...))
}

// Warnf appends a warning message.
func (l *Log[T, E]) Warnf(format string, args ...any) *Log[T, E] {
	return l.PushMessage(LevelWarn, fmt.Sprintf(format, args...))
}

// Infof appends an info message.
func (l *Log[T, E]) Infof(format string, args ...any) *Log[T, E] {
	return l.PushMessage(LevelInfo, fmt.Sprintf(format, args...))
}

// Debugf appends a debug message.
func (l *Log[T, E]) Debugf(format string, args ...any) *Log[T, E] {
	return l.PushMessage(LevelDebug, fmt.Sprintf(format, args...))
}

// Tracef appends a trace message.
func (l *Log[T, E]) Tracef(format string, args ...any) *Log[T, E] {
	return l.PushMessage(LevelTrace, fmt.Sprintf(format, args...))
}

// MergeResult stores v as the success value when err is nil and returns true.
// Otherwise err is appended and false is returned, the success value is kept.
func (l *Log[T, E]) MergeResult(v T, err E) bool {
	if isNil(err) {
		l.SetSuccess(v)
		return true
	}
	l.PushError(err)
	return false
}

// MergeOk stores v as the success value when ok is true, for comma-ok results.
// It returns ok and never adds an entry.
//
//	log.MergeOk(cache.Get(key))
func (l *Log[T, E]) MergeOk(v T, ok bool) bool {
	if ok {
		l.SetSuccess(v)
	}
	return ok
}

// ClearEntries removes all entries. The success value is kept.
func (l *Log[T, E]) ClearEntries() *Log[T, E] {
	l.entries = make([]Entry[E], 0, cap(l.entries))
	return l
}

// PushResult returns v and true when err is nil. Otherwise it appends err to l
// and returns the zero value and false. l is not modified on success.
//
//	n, ok := errlog.PushResult(log, v, err)
func PushResult[U, T, E any](l *Log[T, E], v U, err E) (U, bool) {
	if isNil(err) {
		return v, true
	}
	l.PushError(err)
	var zero U
	return zero, false
}

// PushResultFunc is PushResult for errors of a type other than the Log's,
// converted with convert before they are stored.
func PushResultFunc[U, F, T, E any](l *Log[T, E], v U, err F, convert func(F) E) (U, bool) {
	if isNil(err) {
		return v, true
	}
	l.PushError(convert(err))
	var zero U
	return zero, false
}

// MergeResultFunc is MergeResult for errors of a type other than the Log's.
func MergeResultFunc[T, F, E any](l *Log[T, E], v T, err F, convert func(F) E) bool {
	if isNil(err) {
		l.SetSuccess(v)
		return true
	}
	l.PushError(convert(err))
	return false
}

// AppendEntries moves all entries of src after the entries of dst, leaving
// src empty. The success values of both logs are untouched.
func AppendEntries[T, U, E any](dst *Log[T, E], src *Log[U, E]) *Log[T, E] {
	if src == nil || any(dst) == any(src) || len(src.entries) == 0 {
		return dst
	}
	dst.entries = append(dst.entries, src.entries...)
	src.entries = make([]Entry[E], 0)
	dst.flushInstant()
	return dst
}

// PrependEntries moves all entries of src before the entries of dst, leaving
// src empty.
func PrependEntries[T, U, E any](dst *Log[T, E], src *Log[U, E]) *Log[T, E] {
	if src == nil || any(dst) == any(src) || len(src.entries) == 0 {
		return dst
	}
	entries := make([]Entry[E], 0, len(src.entries)+len(dst.entries))
	entries = append(entries, src.entries...)
	entries = append(entries, dst.entries...)
	dst.entries = entries
	src.entries = make([]Entry[E], 0)
	dst.flushInstant()
	return dst
}

// MapLog converts l into a Log with other success and error types. Entries keep
// their order, levels and timestamps, error payloads go through mapErr and the
// success value, if any, through mapValue. Presentation settings are copied.
// l is left empty and without a success value.
func MapLog[T, E, U, F any](l *Log[T, E], mapValue func(T) U, mapErr func(E) F) *Log[U, F] {
	out := &Log[U, F]{
		entries:        make([]Entry[F], 0, len(l.entries)),
		formatMode:     l.formatMode,
		maxLevel:       l.maxLevel,
		maxLevelSet:    l.maxLevelSet,
		delimiter:      l.delimiter,
		join:           l.join,
		instantDisplay: l.instantDisplay,
		display:        l.display,
		writer:         l.writer,
	}
	for _, e := range l.entries {
		mapped := Entry[F]{
			kind:      e.kind,
			level:     e.level,
			message:   e.message,
			timestamp: e.timestamp,
			shown:     e.shown,
		}
		if e.kind == KindError {
			mapped.err = mapErr(e.err)
		}
		out.entries = append(out.entries, mapped)
	}
	if v, ok := l.TakeSuccess(); ok {
		out.SetSuccess(mapValue(v))
	}
	l.entries = make([]Entry[E], 0)
	return out
}

// isNil reports whether an error value means "no error": a nil interface or a
// nil pointer, map, slice, func or chan. Values of other kinds are errors.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
