package logger

// Standard field names for consistent structured logging across ada.
// Use these constants instead of raw strings to ensure consistency.
const (
	// Components
	FieldComponent = "component"

	// Query compilation
	FieldQuery   = "query"
	FieldSpan    = "span"
	FieldKinds   = "kinds"
	FieldMatches = "matches"
	FieldShape   = "shape"

	// Timing
	FieldDurationUS = "time_us"

	// Errors
	FieldError  = "error"
	FieldOffset = "offset"

	// Counts and sizes
	FieldCount = "count"

	// Files and paths
	FieldFile = "file"
	FieldPath = "path"
)
