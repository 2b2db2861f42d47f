// Package logger provides structured logging on top of zerolog.
//
// Loggers carry a service tag and may be scoped to a component. Fields are
// passed as maps so call sites stay independent of zerolog's event API:
//
//	log := logger.Get("chain")
//	log.Debug("request unmatched", logger.Fields(logger.FieldRequestName, "foo"))
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
package logger
