// Package logging provides structured logging utilities for cooklang components.
//
// # Overview
//
// This package wraps the standard library slog package with project defaults
// and conventions for consistent logging across all components. It supports
// environment-based log level configuration, module/version context injection,
// and automatic source location tracking for debug logs.
//
// # Features
//
//   - Structured JSON logging to stderr
//   - Environment-based log level configuration (LOG_LEVEL)
//   - Automatic module and version context
//   - Source location tracking for debug logs
//   - Flexible log level parsing
//   - Integration with standard library log package
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("cook", "v1.0.0")
//	    defer slog.Info("application started")
//
//	    // Use slog as normal
//	    slog.Info("parsing recipe", "path", "bread.cook")
//	    slog.Debug("detailed state", "data", complexObject)
//	    slog.Error("operation failed", "error", err)
//	}
//
// Creating a custom logger:
//
//	logger := logging.NewStructuredLogger("parser", "v2.0.0", "debug")
//	logger.Info("parse starting", "files", 3)
//
// Setting explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("cli", "v1.0.0", "warn")
//
// Converting standard library logger:
//
//	stdLogger := logging.NewLogLogger(slog.LevelInfo, false)
//	stdLogger.Println("legacy log message")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity:
//
//	LOG_LEVEL=debug cook parse bread.cook
//	LOG_LEVEL=error cook units
//
// If LOG_LEVEL is not set, defaults to INFO level.
//
// # Output Format
//
// All logs are written to stderr in JSON format:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "parse complete",
//	    "module": "cook",
//	    "version": "v1.0.0",
//	    "diagnostics": 0
//	}
//
// Debug logs include source location:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "DEBUG",
//	    "source": {
//	        "function": "parser.Parse",
//	        "file": "parser.go",
//	        "line": 45
//	    },
//	    "msg": "parsing block",
//	    "module": "cook",
//	    "version": "v1.0.0"
//	}
//
// # Best Practices
//
// 1. Set default logger early in main():
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("cook", version)
//	    defer slog.Info("application started")
//	    // ...
//	}
//
// 2. Include context in log messages:
//
//	slog.Info("recipe parsed",
//	    "path", "bread.cook",
//	    "sections", 2,
//	    "duration_ms", 3,
//	)
//
// 3. Use appropriate log levels:
//
//	slog.Debug("token consumed", "kind", k)  // Development/troubleshooting
//	slog.Info("parse complete")              // Normal operations
//	slog.Warn("empty quantity unit")         // Potential issues
//	slog.Error("unit table load failed")     // Errors requiring action
//
// 4. Log errors with context:
//
//	slog.Error("failed to parse recipe",
//	    "error", err,
//	    "run_id", runID,
//	    "path", path,
//	)
//
// # Integration
//
// This package is used by:
//   - pkg/cli - CLI command logging
//   - pkg/serializer - Output writer logging
//   - pkg/convert - Unit table load logging
//
// All components share consistent logging format and configuration.
package logging
