package processor

// Middleware wraps a processor with cross-cutting behavior. Implementations
// delegate Supports unchanged.
type Middleware func(Processor) Processor

// Compose combines middlewares into one. The first is outermost:
// Compose(a, b, c)(p) is a(b(c(p))).
func Compose(middlewares ...Middleware) Middleware {
	return func(inner Processor) Processor {
		for i := len(middlewares) - 1; i >= 0; i-- {
			inner = middlewares[i](inner)
		}
		return inner
	}
}

// Wrap applies middlewares to p.
func Wrap(p Processor, middlewares ...Middleware) Processor {
	return Compose(middlewares...)(p)
}
