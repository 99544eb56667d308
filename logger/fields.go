package logger

// Standard field names for structured logging.
const (
	FieldModule     = "module"
	FieldPath       = "path"
	FieldCount      = "count"
	FieldDurationMS = "duration_ms"
	FieldError      = "error"
)
