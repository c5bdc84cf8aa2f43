package errlog

import "time"

// EntryKind tells which variant an Entry holds.
type EntryKind uint8

const (
	// KindError marks an entry holding an error payload.
	KindError EntryKind = iota
	// KindMessage marks an entry holding a leveled text message.
	KindMessage
)

func (k EntryKind) String() string {
	if k == KindMessage {
		return "message"
	}
	return "error"
}

// Entry is one stored unit of a Log: either an error payload of type E or a
// leveled message. Entries are immutable once created.
type Entry[E any] struct {
	kind      EntryKind
	err       E
	level     Level
	message   string
	timestamp int64

	// set when the entry has been streamed out by instant display
	shown bool
}

// now is replaced in tests.
var now = func() int64 {
	return time.Now().Unix()
}

// NewErrorEntry creates an entry holding err, stamped with the current time.
func NewErrorEntry[E any](err E) Entry[E] {
	return Entry[E]{
		kind:      KindError,
		err:       err,
		level:     LevelError,
		timestamp: now(),
	}
}

// NewMessageEntry creates a message entry, stamped with the current time.
// LevelOff is not a message level and is stored as LevelError.
func NewMessageEntry[E any](level Level, message string) Entry[E] {
	if level == LevelOff || !level.IsValid() {
		level = LevelError
	}
	return Entry[E]{
		kind:      KindMessage,
		level:     level,
		message:   message,
		timestamp: now(),
	}
}

func (e Entry[E]) Kind() EntryKind  { return e.kind }
func (e Entry[E]) IsError() bool    { return e.kind == KindError }
func (e Entry[E]) IsMessage() bool  { return e.kind == KindMessage }
func (e Entry[E]) Timestamp() int64 { return e.timestamp }

// Time returns the timestamp as time.Time.
func (e Entry[E]) Time() time.Time {
	return time.Unix(e.timestamp, 0)
}

// Err returns the error payload and true for error entries.
func (e Entry[E]) Err() (E, bool) {
	if e.kind != KindError {
		var zero E
		return zero, false
	}
	return e.err, true
}

// Message returns the text of a message entry, empty for error entries.
func (e Entry[E]) Message() string {
	return e.message
}

// Level returns the message level, or LevelError for error entries.
func (e Entry[E]) Level() Level {
	if e.kind == KindError {
		return LevelError
	}
	return e.level
}

// Visible reports whether the entry passes the threshold max.
// Errors are always visible.
func (e Entry[E]) Visible(max Level) bool {
	return e.kind == KindError || e.level.Enabled(max)
}

// Render returns the text of the entry. Errors are rendered with mode,
// messages are returned verbatim.
func (e Entry[E]) Render(mode FormatMode) string {
	if e.kind == KindError {
		return renderPayload(e.err, mode)
	}
	return e.message
}

// RenderFiltered is Render that returns false for messages more verbose than max.
func (e Entry[E]) RenderFiltered(mode FormatMode, max Level) (string, bool) {
	if !e.Visible(max) {
		return "", false
	}
	return e.Render(mode), true
}

// FormatTimestamp renders a unix timestamp in RFC 3339, UTC.
func FormatTimestamp(unix int64) string {
	return time.Unix(unix, 0).UTC().Format(time.RFC3339)
}
