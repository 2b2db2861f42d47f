package logger

import "time"

// Standard field keys.
const (
	FieldComponent   = "component"
	FieldRequestID   = "request_id"
	FieldRequestName = "request_name"
	FieldProcessor   = "processor"
	FieldPriority    = "priority"
	FieldStatus      = "status"
	FieldOperation   = "operation"
	FieldError       = "error"
	FieldDuration    = "duration_ms"
	FieldPath        = "path"
)

// Fields builds a field map from alternating key-value pairs.
// Non-string keys and a trailing odd value are dropped.
//
//	logger.Info("dispatched", logger.Fields("processor", "p2", "status", 200))
func Fields(kvs ...any) map[string]any {
	m := make(map[string]any, len(kvs)/2)
	for i := 0; i < len(kvs)-1; i += 2 {
		if key, ok := kvs[i].(string); ok {
			m[key] = kvs[i+1]
		}
	}
	return m
}

// ErrorFields creates fields for an operation that failed.
func ErrorFields(op string, err error) map[string]any {
	return map[string]any{
		FieldOperation: op,
		FieldError:     err.Error(),
	}
}

// DurationFields creates fields for a timed operation.
func DurationFields(op string, d time.Duration) map[string]any {
	return map[string]any{
		FieldOperation: op,
		FieldDuration:  d.Milliseconds(),
	}
}
