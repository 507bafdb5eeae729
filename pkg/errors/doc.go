// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeUnknownUnit,
//	    "failed to convert quantity",
//	    cause,
//	    map[string]interface{}{
//	        "unit": unit,
//	        "ingredient": name,
//	    },
//	)
package errors
