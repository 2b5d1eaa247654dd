// Package observability provides the logging and tracing hooks the library
// emits through. Everything defaults to no-ops; hosts that want output
// plug in their own implementation or use TextLogger.
package observability

import (
	"context"
	"fmt"
	"io"
	"sync"
)

type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	With(fields ...Field) Logger
}

type Field interface {
	Key() string
	Value() interface{}
}

type stringField struct{ key, val string }

func (f stringField) Key() string        { return f.key }
func (f stringField) Value() interface{} { return f.val }

type intField struct {
	key string
	val int
}

func (f intField) Key() string        { return f.key }
func (f intField) Value() interface{} { return f.val }

type float64Field struct {
	key string
	val float64
}

func (f float64Field) Key() string        { return f.key }
func (f float64Field) Value() interface{} { return f.val }

type errorField struct {
	key string
	err error
}

func (f errorField) Key() string        { return f.key }
func (f errorField) Value() interface{} { return f.err }

func String(key, value string) Field          { return stringField{key, value} }
func Int(key string, value int) Field         { return intField{key, value} }
func Float64(key string, value float64) Field { return float64Field{key, value} }
func Error(key string, err error) Field       { return errorField{key, err} }

type NopLogger struct{}

func (NopLogger) Debug(string, ...Field) {}
func (NopLogger) Info(string, ...Field)  {}
func (NopLogger) Warn(string, ...Field)  {}
func (NopLogger) Error(string, ...Field) {}
func (NopLogger) With(...Field) Logger   { return NopLogger{} }

// TextLogger writes one line per entry to w, "level msg key=value ...".
// Used by the script runner and by printMatrix.
func TextLogger(w io.Writer) Logger {
	return &textLogger{w: w, mu: &sync.Mutex{}}
}

type textLogger struct {
	w    io.Writer
	mu   *sync.Mutex
	with []Field
}

func (l *textLogger) log(level, msg string, fields []Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.w, "%s %s", level, msg)
	for _, f := range append(l.with, fields...) {
		fmt.Fprintf(l.w, " %s=%v", f.Key(), f.Value())
	}
	fmt.Fprintln(l.w)
}

func (l *textLogger) Debug(msg string, fields ...Field) { l.log("DEBUG", msg, fields) }
func (l *textLogger) Info(msg string, fields ...Field)  { l.log("INFO", msg, fields) }
func (l *textLogger) Warn(msg string, fields ...Field)  { l.log("WARN", msg, fields) }
func (l *textLogger) Error(msg string, fields ...Field) { l.log("ERROR", msg, fields) }

func (l *textLogger) With(fields ...Field) Logger {
	return &textLogger{w: l.w, mu: l.mu, with: append(append([]Field{}, l.with...), fields...)}
}

// Tracer provides tracing hooks for script and transform operations.
type Tracer interface {
	StartSpan(ctx context.Context, name string) (context.Context, Span)
}

// Span represents a tracing span.
type Span interface {
	SetTag(key string, value interface{})
	SetError(err error)
	Finish()
}

type nopTracer struct{}

func (nopTracer) StartSpan(ctx context.Context, _ string) (context.Context, Span) {
	return ctx, nopSpan{}
}

// NopTracer returns a tracer that does nothing.
func NopTracer() Tracer { return nopTracer{} }

type nopSpan struct{}

func (nopSpan) SetTag(string, interface{}) {}
func (nopSpan) SetError(error)             {}
func (nopSpan) Finish()                    {}

// Standard metric names emitted by the library.
const (
	MetricScriptTime     = "script.execute.duration"
	MetricTransformCount = "transform.ops.count"
	MetricStackDepth     = "transform.stack.depth"
)
