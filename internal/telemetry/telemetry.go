// Package telemetry wraps OpenTelemetry tracing for calculations.
//
// The package only uses the otel API. Without a configured SDK the global
// provider is a no-op, so spans cost almost nothing; an embedding program can
// install a real provider with otel.SetTracerProvider.
package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// InstrumentationName identifies the tracer of this module.
const InstrumentationName = "github.com/agbru/combicalc"

// Attribute keys set on calculation spans.
const (
	AttrOperation = attribute.Key("combicalc.operation")
	AttrAlgorithm = attribute.Key("combicalc.algorithm")
	AttrN         = attribute.Key("combicalc.n")
	AttrR         = attribute.Key("combicalc.r")
	AttrBits      = attribute.Key("combicalc.result.bits")
)

// Tracer returns the tracer from the global provider.
func Tracer() trace.Tracer {
	return otel.Tracer(InstrumentationName)
}

// StartCalculation starts a span named "<operation>/<algorithm>".
//
// Parameters:
//   - ctx: The parent context.
//   - operation: "binomial" or "reduce".
//   - algorithm: The strategy key.
//   - attrs: Additional attributes such as AttrN.Int64(n).
//
// Returns:
//   - context.Context: The context carrying the new span.
//   - trace.Span: The span, to be finished with EndSpan.
func StartCalculation(ctx context.Context, operation, algorithm string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	all := make([]attribute.KeyValue, 0, len(attrs)+2)
	all = append(all, AttrOperation.String(operation), AttrAlgorithm.String(algorithm))
	all = append(all, attrs...)
	return Tracer().Start(ctx, operation+"/"+algorithm, trace.WithAttributes(all...))
}

// EndSpan sets the span status from err and ends it.
func EndSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
