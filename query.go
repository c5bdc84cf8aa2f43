package errlog

import "iter"

// Entries returns a copy of all stored entries, hidden messages included.
func (l *Log[T, E]) Entries() []Entry[E] {
	result := make([]Entry[E], len(l.entries))
	copy(result, l.entries)
	return result
}

// All iterates over all stored entries in insertion order.
func (l *Log[T, E]) All() iter.Seq[Entry[E]] {
	return func(yield func(Entry[E]) bool) {
		for _, e := range l.entries {
			if !yield(e) {
				return
			}
		}
	}
}

// Len returns the number of stored entries, hidden messages included.
func (l *Log[T, E]) Len() int {
	return len(l.entries)
}

// Empty returns true if no entry is stored
func (l *Log[T, E]) Empty() bool {
	return len(l.entries) == 0
}

// NotEmpty returns true if at least one entry is stored
func (l *Log[T, E]) NotEmpty() bool {
	return len(l.entries) > 0
}

// First returns the first stored entry and false if the Log is empty.
func (l *Log[T, E]) First() (Entry[E], bool) {
	if len(l.entries) == 0 {
		return Entry[E]{}, false
	}
	return l.entries[0], true
}

// Last returns the last stored entry and false if the Log is empty.
func (l *Log[T, E]) Last() (Entry[E], bool) {
	if len(l.entries) == 0 {
		return Entry[E]{}, false
	}
	return l.entries[len(l.entries)-1], true
}

// VisibleEntries returns a copy of the entries that pass the max level.
func (l *Log[T, E]) VisibleEntries() []Entry[E] {
	return l.filter(l.entries)
}

// Messages returns a copy of the visible message entries. Errors are left out.
func (l *Log[T, E]) Messages() []Entry[E] {
	var out []Entry[E]
	for _, e := range l.entries {
		if e.kind == KindMessage && e.Visible(l.MaxLevel()) {
			out = append(out, e)
		}
	}
	return out
}

// Errors returns the payloads of all error entries in order.
// Errors are never hidden by the max level.
func (l *Log[T, E]) Errors() []E {
	var out []E
	for _, e := range l.entries {
		if e.kind == KindError {
			out = append(out, e.err)
		}
	}
	return out
}

// TakeEntries removes all entries from the Log and returns the visible ones.
// Messages hidden by the max level are discarded.
func (l *Log[T, E]) TakeEntries() []Entry[E] {
	out := l.filter(l.entries)
	l.entries = make([]Entry[E], 0)
	return out
}

// TakeMessages removes all message entries from the Log and returns the visible
// ones. Error entries stay in place.
func (l *Log[T, E]) TakeMessages() []Entry[E] {
	var out []Entry[E]
	kept := make([]Entry[E], 0, len(l.entries))
	for _, e := range l.entries {
		if e.kind != KindMessage {
			kept = append(kept, e)
			continue
		}
		if e.Visible(l.MaxLevel()) {
			out = append(out, e)
		}
	}
	l.entries = kept
	return out
}

func (l *Log[T, E]) filter(entries []Entry[E]) []Entry[E] {
	out := make([]Entry[E], 0, len(entries))
	for _, e := range entries {
		if e.Visible(l.MaxLevel()) {
			out = append(out, e)
		}
	}
	return out
}
