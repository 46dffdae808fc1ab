package ports

import "context"

// Span is a single traced operation.
type Span interface {
	// End completes the span.
	End()

	// RecordError records an error on the span.
	RecordError(err error)

	// SetAttribute sets a key/value attribute on the span.
	SetAttribute(key string, value any)
}

// Tracer starts spans around engine operations.
type Tracer interface {
	// Start begins a span and returns the derived context.
	Start(ctx context.Context, name string) (context.Context, Span)
}
