package redisresult

import (
	"errors"
	"log"
	"os"
)

var (
	ErrPipelineExecuted  = errors.New("redis result, pipeline already executed")
	ErrPipelineDiscarded = errors.New("redis result, pipeline discarded")
)

var errLog = Logger(log.New(os.Stderr, "[redis result] ", log.Ldate|log.Ltime|log.Lshortfile))

// Logger is used to log critical error messages.
type Logger interface {
	Print(v ...interface{})
}

// SetLogger is used to set the logger for critical errors.
// The initial logger is os.Stderr.
func SetLogger(logger Logger) error {
	if logger == nil {
		return errors.New("logger is nil")
	}
	errLog = logger
	return nil
}
