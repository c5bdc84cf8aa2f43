package errlog

import (
	"errors"
	"strconv"
	"strings"
)

// Err returns a combined error from all error entries, or nil if there are none.
// Messages are not included. Payloads that are not errors are rendered with the
// Log's format mode.
func (l *Log[T, E]) Err() error {
	var errs []error
	for _, e := range l.entries {
		if e.kind != KindError {
			continue
		}
		if err, ok := any(e.err).(error); ok && err != nil {
			errs = append(errs, err)
			continue
		}
		errs = append(errs, errors.New(renderPayload(e.err, l.formatMode)))
	}

	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	}
	return &multiError{errors: errs}
}

// multiError represents multiple errors combined into one
type multiError struct {
	errors []error
}

// Error implements the error interface for multiError
func (m *multiError) Error() string {
	if len(m.errors) == 0 {
		return ""
	}
	if len(m.errors) == 1 {
		return m.errors[0].Error()
	}

	var builder strings.Builder
	builder.Grow(50 + len(m.errors)*100)

	builder.WriteString("multiple errors (")
	builder.WriteString(strconv.Itoa(len(m.errors)))
	builder.WriteString("): ")
	for i, err := range m.errors {
		builder.WriteString("(")
		builder.WriteString(strconv.Itoa(i + 1))
		builder.WriteString(") ")
		builder.WriteString(safeErrorString(err))
		if i < len(m.errors)-1 {
			builder.WriteString("; ")
		}
	}
	return builder.String()
}

// Unwrap returns the underlying errors for error chain traversal
func (m *multiError) Unwrap() []error {
	return m.errors
}

func safeErrorString(err error) (res string) {
	if err == nil {
		return ""
	}
	defer func() {
		if r := recover(); r != nil {
			res = "external error (formatting failed)"
		}
	}()
	return err.Error()
}
