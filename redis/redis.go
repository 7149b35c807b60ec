package redis

import (
	"context"
	"errors"
)

var (
	ErrNotExecuted = errors.New("redis pipeline, response not available until pipeline executes")
	ErrExecuted    = errors.New("redis pipeline, pipeline already executed")
	ErrDiscarded   = errors.New("redis pipeline, pipeline discarded")
	ErrTxAborted   = errors.New("redis pipeline, transaction aborted")
)

// Response is the deferred reply handle of a single queued command.
// Get returns ErrNotExecuted until the owning Pipeliner has executed.
// An absent value (e.g. GET on a missing key) is normalized to an
// untyped nil with a nil error.
type Response interface {
	Get() (interface{}, error)
}

type Pipeliner interface {
	// Queue appends a command to the batch and returns its deferred reply handle.
	Queue(ctx context.Context, cmd string, args ...interface{}) (Response, error)
	// Len returns the number of queued commands.
	Len() int
	// Exec sends the batch and resolves every queued Response.
	Exec(ctx context.Context) error
	// Discard abandons the batch and voids its pending Responses.
	Discard() error
}

type Conn interface {
	Pipeline() Pipeliner
	TxPipeline() Pipeliner
	IsNil(err error) bool
	Close() error
}
