// FILE: override.go
package rapidlog

import (
	"fmt"
	"strconv"
	"strings"
)

// ApplyOverrides applies string key-value overrides to the configuration.
// Each override should be in the format "key=value". This is the hook for
// CLI flags and environment wiring; the result still goes through resolve
// and validation at logger construction.
//
// Example:
//
//	cfg := rapidlog.DefaultConfig()
//	err := cfg.ApplyOverrides(
//	    "level=debug",
//	    "preset=throughput",
//	    "batch_size=512",
//	)
func (c *Config) ApplyOverrides(overrides ...string) error {
	var errs []error

	for _, override := range overrides {
		key, value, err := parseKeyValue(override)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		if err := applyConfigField(c, key, value); err != nil {
			errs = append(errs, err)
		}
	}

	return combineConfigErrors(errs)
}

// combineConfigErrors combines multiple configuration errors into a single error.
func combineConfigErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	if len(errs) == 1 {
		return errs[0]
	}

	var sb strings.Builder
	sb.WriteString("rapidlog: multiple configuration errors:")
	for i, err := range errs {
		errMsg := err.Error()
		// Remove "rapidlog: " prefix from individual errors to avoid duplication
		errMsg = strings.TrimPrefix(errMsg, "rapidlog: ")
		sb.WriteString(fmt.Sprintf("\n  %d. %s", i+1, errMsg))
	}
	return fmt.Errorf("%s", sb.String())
}

// applyConfigField applies a single key-value override to a Config.
func applyConfigField(cfg *Config, key, value string) error {
	switch key {
	case "level":
		// Accept both numeric ranks and named levels
		if numVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			cfg.Level = numVal
		} else {
			levelVal, err := ParseLevel(value)
			if err != nil {
				return fmtErrorf("invalid level value '%s': %w", value, err)
			}
			cfg.Level = levelVal
		}

	case "preset":
		if _, ok := presets[value]; !ok {
			return fmtErrorf("unknown preset: '%s' (use %s, %s, or %s)",
				value, PresetLowMemory, PresetBalanced, PresetThroughput)
		}
		cfg.Preset = value

	case "queue_size":
		intVal, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmtErrorf("invalid integer value for queue_size '%s': %w", value, err)
		}
		cfg.QueueSize = intVal

	case "batch_size":
		intVal, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmtErrorf("invalid integer value for batch_size '%s': %w", value, err)
		}
		cfg.BatchSize = intVal

	case "emitter_buffer_size":
		intVal, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmtErrorf("invalid integer value for emitter_buffer_size '%s': %w", value, err)
		}
		cfg.EmitterBufferSize = intVal

	case "flush_interval_ms":
		intVal, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmtErrorf("invalid integer value for flush_interval_ms '%s': %w", value, err)
		}
		cfg.FlushIntervalMs = intVal

	case "internal_errors_to_stderr":
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			return fmtErrorf("invalid boolean value for internal_errors_to_stderr '%s': %w", value, err)
		}
		cfg.InternalErrorsToStderr = boolVal

	default:
		return fmtErrorf("unknown configuration key '%s'", key)
	}

	return nil
}
