package logging

import (
	"maps"
	"strings"

	"github.com/goliatone/go-portfolio/pkg/interfaces"
)

const fieldOperation = "operation"

// WithFields attaches structured fields to a logger when the implementation
// supports the optional FieldsLogger extension. Callers can pass nil or an
// empty map to skip allocation safely.
func WithFields(logger interfaces.Logger, fields map[string]any) interfaces.Logger {
	if logger == nil || len(fields) == 0 {
		return logger
	}

	if fieldsLogger, ok := logger.(interfaces.FieldsLogger); ok {
		copied := make(map[string]any, len(fields))
		maps.Copy(copied, fields)
		return fieldsLogger.WithFields(copied)
	}

	return logger
}

// WithOperation tags logger with the name of the command or query being run.
func WithOperation(logger interfaces.Logger, operation string) interfaces.Logger {
	operation = strings.TrimSpace(operation)
	if operation == "" {
		return logger
	}
	return WithFields(logger, map[string]any{fieldOperation: operation})
}
