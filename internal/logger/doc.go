// Package logger provides a structured logging solution using the Zap logging library.
// It keeps one process-wide sugared logger writing to stderr, an atomic level that the
// configuration can change after startup, and context helpers so that a session can
// attach fields (such as a session ID) to every line it logs.
package logger
