package logging

import (
	"context"
	"testing"
)

type captureLogger struct {
	fields map[string]any
}

func (c *captureLogger) With(fields ...Field) Logger {
	for _, f := range fields {
		c.fields[f.Key] = f.Value
	}
	return c
}

func (c *captureLogger) Debug(context.Context, string, ...Field) {}
func (c *captureLogger) Info(context.Context, string, ...Field)  {}
func (c *captureLogger) Warn(context.Context, string, ...Field)  {}
func (c *captureLogger) Error(context.Context, string, ...Field) {}

func TestWithRequestLoggerAnnotatesAndStores(t *testing.T) {
	base := &captureLogger{fields: map[string]any{}}
	ctx, log := WithRequestLogger(context.Background(), base)
	if log == nil {
		t.Fatal("WithRequestLogger returned nil logger")
	}
	id := RequestIDFromContext(ctx)
	if id == "" {
		t.Fatal("no request_id attached to context")
	}
	if got := base.fields["request_id"]; got != id {
		t.Errorf("logger annotated with %v, context carries %q", got, id)
	}
	if LoggerFromContext(ctx) == nil {
		t.Error("annotated logger not stored on context")
	}
}

func TestWithRequestLoggerKeepsExistingID(t *testing.T) {
	base := &captureLogger{fields: map[string]any{}}
	ctx, _ := WithRequestLogger(context.Background(), base)
	first := RequestIDFromContext(ctx)
	ctx, _ = WithRequestLogger(ctx, base)
	if second := RequestIDFromContext(ctx); second != first {
		t.Errorf("request_id changed across nested calls: %q then %q", first, second)
	}
}

func TestWithRequestLoggerNilInputs(t *testing.T) {
	ctx, log := WithRequestLogger(nil, nil)
	if ctx == nil || log == nil {
		t.Fatal("nil context or logger returned")
	}
	if RequestIDFromContext(nil) != "" {
		t.Error("nil context should have no request_id")
	}
	if LoggerFromContext(nil) != nil {
		t.Error("nil context should have no logger")
	}
}

func TestNoopLoggerIsInert(t *testing.T) {
	log := Noop()
	if log.With(String("k", "v")) == nil {
		t.Fatal("Noop.With returned nil")
	}
	log.Info(context.Background(), "dropped", Int("n", 1))
}
