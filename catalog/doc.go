// Package catalog turns declarative chain entries into processors.
//
// A Registry maps a kind name to a Factory. Build walks a list of
// config.EntryConfig values, creates each processor through the registry,
// wraps it with the configured middlewares and adds it to a new
// processor.Chain under the entry's name and priority.
//
//	reg := catalog.NewRegistry()
//	catalog.RegisterBuiltins(reg)
//	chain, err := catalog.Build(reg, cfg.Enabled(),
//	    catalog.WithMiddleware(processor.WithLogging(log)),
//	)
package catalog
