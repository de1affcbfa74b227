// Package logger provides structured logging functionality for the
// application, built on log/slog. It configures the process-wide default
// logger from server configuration and propagates request-scoped loggers
// through context.Context.
package logger
