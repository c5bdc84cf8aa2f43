// Package errlog collects errors and log messages during a unit of work and
// displays them together, instead of returning on the first failure.
//
// A Log[T, E] keeps an ordered list of entries, each either an error payload
// of type E or a leveled message, plus at most one success value of type T:
//
//	log := errlog.NewErrorLog[int]()
//	v, err := strconv.Atoi("abc")
//	errlog.PushResult(log, v, err) // stored, work continues
//	log.MergeResult(strconv.Atoi("123"))
//	n := log.MustDisplay() // prints the parse error, returns 123
//
// The max level hides verbose messages from every read and display while they
// stay stored. Output goes through a DisplayFunc sink: the console by default,
// or slog, zap, OpenTelemetry spans and tview dialogs.
package errlog
