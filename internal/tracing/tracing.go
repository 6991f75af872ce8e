/*
Package tracing routes diagnostic output of latinga packages to the
core tracer of schuko.

Packages of this module trace to the core tracer of gtrace, which tests
redirect into the test log:

    func TestSomething(t *testing.T) {
        teardown := testconfig.QuickConfig(t)
        defer teardown()
        gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
        ...
    }

*/
package tracing

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}

// UseLog routes the core tracer to the standard logger, as command line
// tools do.
func UseLog() {
	gtrace.CoreTracer = gologadapter.New()
}

// Quiet sets the core tracer to report errors only.
func Quiet() {
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
}

// Verbose sets the core tracer to report informational messages.
func Verbose() {
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
}

// Debugf traces a debug message.
func Debugf(format string, args ...interface{}) {
	CT().Debugf(format, args...)
}

// Infof traces an informational message.
func Infof(format string, args ...interface{}) {
	CT().Infof(format, args...)
}

// Errorf traces an error message.
func Errorf(format string, args ...interface{}) {
	CT().Errorf(format, args...)
}
