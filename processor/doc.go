// Package processor implements a priority-ordered chain of responsibility.
//
// A Processor declares which requests it supports and handles them. A Chain
// holds processors ordered by ascending priority and delegates each request
// to the first one that supports it, tagging the response with that entry's
// name. When nothing matches, the chain answers with a StatusNotImplemented
// response instead of an error.
//
//	chain := processor.NewChain().
//	    Add(processor.NewBasic("foo", "bar"), processor.WithName("p1"), processor.WithPriority(5)).
//	    Add(processor.NewBasic("foo", "baz"), processor.WithName("p2"), processor.WithPriority(3))
//
//	resp, err := chain.Process(ctx, processor.NewRequest("foo", nil))
//	// resp.Output() == "baz", resp.Name() == "p2"
//
// A Chain is itself a Processor, so chains nest.
//
// # Middleware
//
// Middleware wraps a single processor with cross-cutting behavior. Compose
// applies several, the first being outermost:
//
//	p := processor.Compose(
//	    processor.WithLogging(log),
//	    processor.WithMetrics(metrics, "p1"),
//	    processor.WithTracing("p1"),
//	)(inner)
//
// Middleware never changes Supports, and a retrying middleware retries only
// the processor it wraps; the chain does not fall through to the next entry
// when a processor fails.
package processor
