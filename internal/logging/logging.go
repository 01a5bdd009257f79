// Package logging provides job-correlated logging for slice jobs. It wraps
// the standard library's log.Logger with a job ID prefix rather than
// introducing a structured logging dependency.
package logging

import (
	"log"
	"os"

	"github.com/google/uuid"
)

// JobLogger logs lines prefixed with a job's correlation ID, so interleaved
// output from concurrent jobs (or concurrent layers within one job) can be
// told apart.
type JobLogger struct {
	id     uuid.UUID
	logger *log.Logger
}

// NewJob creates a fresh job ID and a logger that prefixes every line with
// it.
func NewJob() *JobLogger {
	id := uuid.New()
	return &JobLogger{
		id:     id,
		logger: log.New(os.Stderr, "["+id.String()[:8]+"] ", log.LstdFlags),
	}
}

// ID returns the job's correlation ID.
func (j *JobLogger) ID() uuid.UUID {
	return j.id
}

// Infof logs a routine progress line.
func (j *JobLogger) Infof(format string, args ...interface{}) {
	j.logger.Printf(format, args...)
}

// Warnf logs a soft failure that did not abort the job — a degenerate
// triangle skipped, an unclosed contour dropped, and so on.
func (j *JobLogger) Warnf(format string, args ...interface{}) {
	j.logger.Printf("warning: "+format, args...)
}

// Fatalf logs a fatal error that aborted the job. It does not call
// os.Exit — the caller is expected to already be returning the error up
// the stack.
func (j *JobLogger) Fatalf(format string, args ...interface{}) {
	j.logger.Printf("fatal: "+format, args...)
}
