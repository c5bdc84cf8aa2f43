package errlog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/LeSnake04/errlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestConsoleSink(t *testing.T) {
	buf := &bytes.Buffer{}
	log := errlog.NewErrorLog[int]().WithDisplayFunc(errlog.ConsoleSink(buf))
	log.Warnf("disk almost full").PushError(errors.New("write failed"))

	log.Display()

	assert.Equal(t, "WARN: disk almost full\nERROR: write failed\n", buf.String())
}

func TestDefaultSinkUsesWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	log := errlog.NewErrorLog[int]().WithWriter(buf).WithDelimiter("--\n")
	log.Infof("hello")

	log.Display()

	assert.Equal(t, "INFO: hello\n--\n", buf.String())
}

func TestSlogSink(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: errlog.LevelSlogTrace}))
	log := errlog.NewErrorLog[int]().WithDisplayFunc(errlog.SlogSink(logger))
	log.PushEntry(errlog.NewMessageEntry[error](errlog.LevelWarn, "careful"))
	log.Tracef("deep")

	log.Display()

	out := buf.String()
	assert.Contains(t, out, "level=WARN msg=careful")
	assert.Contains(t, out, "level=DEBUG-4 msg=deep")
	assert.Contains(t, out, "timestamp=")
}

func TestZapSink(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := errlog.NewErrorLog[int]().WithDisplayFunc(errlog.ZapSink(zap.New(core)))
	log.PushError(errors.New("boom")).Infof("info").Tracef("trace")

	log.Display()

	entries := logs.AllUntimed()
	require.Len(t, entries, 3)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	assert.Equal(t, "boom", entries[0].Message)
	assert.Equal(t, zapcore.InfoLevel, entries[1].Level)
	assert.Equal(t, zapcore.DebugLevel, entries[2].Level)
	assert.Equal(t, "TRACE", entries[2].ContextMap()["errlog_level"])
	assert.Contains(t, entries[0].ContextMap(), "timestamp")

	assert.NotPanics(t, func() { errlog.ZapSink(nil)(errlog.LevelInfo, 0, "dropped") })
}

func TestSpanSink(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	_, span := provider.Tracer("errlog_test").Start(context.Background(), "work")

	log := errlog.NewErrorLog[int]().WithDisplayFunc(errlog.SpanSink(span))
	log.Warnf("slow").PushError(errors.New("failed"))
	log.Display()
	span.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	events := spans[0].Events()
	require.Len(t, events, 2)
	assert.Equal(t, errlog.SpanEventName, events[0].Name)

	attrs := map[string]string{}
	for _, kv := range events[1].Attributes {
		attrs[string(kv.Key)] = kv.Value.AsString()
	}
	assert.Equal(t, "ERROR", attrs["log.severity"])
	assert.Equal(t, "failed", attrs["log.message"])

	assert.NotPanics(t, func() { errlog.SpanSink(nil)(errlog.LevelInfo, 0, "dropped") })
}

func TestMultiSink(t *testing.T) {
	first, second := &recorder{}, &recorder{}
	log := errlog.NewErrorLog[int]().WithDisplayFunc(errlog.MultiSink(first.sink, nil, second.sink))
	log.Infof("both")

	log.Display()

	assert.Equal(t, []string{"both"}, first.messages())
	assert.Equal(t, []string{"both"}, second.messages())
}
