// Package observability wires OpenTelemetry tracing and metrics for chain
// dispatch.
//
// InitTracer and InitMeter install global OTLP/HTTP providers; StartSpan
// and the Metrics instruments then work against whatever provider is
// installed, including the no-op default, so tests need no collector.
package observability
