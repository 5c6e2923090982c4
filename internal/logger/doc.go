// Package logger holds the process-wide zap logger.
// Every helper takes a context so call sites stay uniform; the level is shared
// through an atomic level and can be changed after configuration is loaded.
package logger
