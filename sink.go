package errlog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/fatih/color"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// DisplayFunc receives every displayed record: the level, the unix timestamp
// of the entry and the rendered text. It is the only place where a Log has
// side effects.
type DisplayFunc func(level Level, timestamp int64, message string)

// LevelSlogTrace is the slog level used for LevelTrace records.
const LevelSlogTrace = slog.LevelDebug - 4

var levelColors = map[Level]*color.Color{
	LevelError: color.New(color.FgRed, color.Bold),
	LevelWarn:  color.New(color.FgYellow),
	LevelInfo:  color.New(color.FgGreen),
	LevelDebug: color.New(color.FgCyan),
	LevelTrace: color.New(color.FgHiBlack),
}

// ConsoleSink writes one "LEVEL: message" line per record to w.
// The level label is colored when w is the terminal's stdout or stderr.
func ConsoleSink(w io.Writer) DisplayFunc {
	if w == nil {
		w = os.Stdout
	}
	colored := w == os.Stdout || w == os.Stderr
	return func(level Level, _ int64, message string) {
		label := level.String()
		if c, ok := levelColors[level]; ok && colored {
			label = c.Sprint(label)
		}
		fmt.Fprintf(w, "%s: %s\n", label, message)
	}
}

// SlogSink sends records to a slog logger, the default logger if nil.
// The entry timestamp is attached as the "timestamp" attribute.
func SlogSink(logger *slog.Logger) DisplayFunc {
	return func(level Level, timestamp int64, message string) {
		l := logger
		if l == nil {
			l = slog.Default()
		}
		l.LogAttrs(context.Background(), slogLevel(level), message, slog.Int64("timestamp", timestamp))
	}
}

func slogLevel(level Level) slog.Level {
	switch level {
	case LevelWarn:
		return slog.LevelWarn
	case LevelInfo:
		return slog.LevelInfo
	case LevelDebug:
		return slog.LevelDebug
	case LevelTrace:
		return LevelSlogTrace
	default:
		return slog.LevelError
	}
}

// ZapSink sends records to a zap logger, a no-op logger if nil.
// Zap has no trace level, trace records are logged at debug level and carry
// the original level in the "errlog_level" field.
func ZapSink(logger *zap.Logger) DisplayFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(level Level, timestamp int64, message string) {
		fields := []zap.Field{
			zap.Int64("timestamp", timestamp),
			zap.String("errlog_level", level.String()),
		}
		switch level {
		case LevelWarn:
			logger.Warn(message, fields...)
		case LevelInfo:
			logger.Info(message, fields...)
		case LevelDebug, LevelTrace:
			logger.Debug(message, fields...)
		default:
			logger.Error(message, fields...)
		}
	}
}

// SpanEventName is the name of span events added by SpanSink.
const SpanEventName = "errlog.entry"

// SpanSink records every record as an event on span, stamped with the entry
// timestamp.
func SpanSink(span trace.Span) DisplayFunc {
	return func(level Level, timestamp int64, message string) {
		if span == nil || !span.IsRecording() {
			return
		}
		span.AddEvent(SpanEventName,
			trace.WithTimestamp(time.Unix(timestamp, 0)),
			trace.WithAttributes(
				attribute.String("log.severity", level.String()),
				attribute.String("log.message", message),
			),
		)
	}
}

// MultiSink sends every record to all sinks in order.
func MultiSink(sinks ...DisplayFunc) DisplayFunc {
	return func(level Level, timestamp int64, message string) {
		for _, sink := range sinks {
			if sink != nil {
				sink(level, timestamp, message)
			}
		}
	}
}
