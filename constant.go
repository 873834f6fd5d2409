// FILE: constant.go
package rapidlog

// Log level constants, totally ordered by severity
const (
	LevelDebug    int64 = 10
	LevelInfo     int64 = 20
	LevelWarning  int64 = 30
	LevelError    int64 = 40
	LevelCritical int64 = 50
)

// Named configuration presets
const (
	PresetLowMemory  = "low-memory"
	PresetBalanced   = "balanced"
	PresetThroughput = "throughput"
)

// Keys added to fallback lines when a record's fields cannot be encoded
const (
	fallbackErrorKey  = "rapidlog_error"
	fallbackFieldsKey = "rapidlog_fields_repr"
)
