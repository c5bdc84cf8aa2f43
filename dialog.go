package errlog

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DialogPagePrefix prefixes the page names of dialogs added by DialogSink.
const DialogPagePrefix = "errlog_dialog_"

// DialogSink shows every record as a modal dialog on top of pages. The dialog
// is removed when its button is pressed.
//
// When app is not nil dialogs are queued on the application's event loop in
// the order the records arrive, so the sink may be called from any goroutine,
// including the event loop. Records sent before app runs are shown once it
// starts.
func DialogSink(app *tview.Application, pages *tview.Pages) DisplayFunc {
	var seq atomic.Uint64
	queue := &dialogQueue{app: app}
	return func(level Level, timestamp int64, message string) {
		name := fmt.Sprintf("%s%d", DialogPagePrefix, seq.Add(1))
		show := func() {
			modal := newDialog(level, timestamp, message, func() {
				pages.RemovePage(name)
				if app != nil {
					app.SetFocus(pages)
				}
			})
			pages.AddPage(name, modal, false, true)
			if app != nil {
				app.SetFocus(modal)
			}
		}
		if app == nil {
			show()
			return
		}
		queue.push(show)
	}
}

// dialogQueue hands updates to the event loop one at a time, in FIFO order.
// A drain goroutine runs only while updates are pending.
type dialogQueue struct {
	app *tview.Application

	mu       sync.Mutex
	pending  []func()
	draining bool
}

func (q *dialogQueue) push(update func()) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.pending = append(q.pending, update)
	if !q.draining {
		q.draining = true
		go q.drain()
	}
}

func (q *dialogQueue) drain() {
	for {
		q.mu.Lock()
		if len(q.pending) == 0 {
			q.draining = false
			q.mu.Unlock()
			return
		}
		update := q.pending[0]
		q.pending[0] = nil
		q.pending = q.pending[1:]
		q.mu.Unlock()

		q.app.QueueUpdateDraw(update)
	}
}

func newDialog(level Level, timestamp int64, message string, onDismiss func()) *tview.Modal {
	modal := tview.NewModal().
		SetText(message).
		AddButtons([]string{"OK"}).
		SetDoneFunc(func(int, string) {
			if onDismiss != nil {
				onDismiss()
			}
		})
	modal.SetBorderColor(dialogColor(level)).
		SetTitle(" " + dialogTitle(level, timestamp) + " ").
		SetTitleAlign(tview.AlignLeft)
	return modal
}

func dialogTitle(level Level, timestamp int64) string {
	title := cases.Title(language.English).String(strings.ToLower(level.String()))
	if timestamp > 0 {
		title += " - " + FormatTimestamp(timestamp)
	}
	return title
}

func dialogColor(level Level) tcell.Color {
	switch level {
	case LevelError:
		return tcell.ColorRed
	case LevelWarn:
		return tcell.ColorYellow
	case LevelInfo:
		return tcell.ColorGreen
	default:
		return tcell.ColorGray
	}
}
