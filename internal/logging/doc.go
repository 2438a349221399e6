// Package logging provides a small structured JSON logger.
//
// Entries are single-line JSON objects with time, level, msg and an
// optional fields map. Child loggers created with With share the parent's
// writer and lock.
package logging
