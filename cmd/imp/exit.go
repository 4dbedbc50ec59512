package main

import "fmt"

const (
	exitValidation = 1
	exitRuntime    = 2
)

// exitError carries a process exit code alongside the message cobra prints.
type exitError struct {
	code int
	msg  string
}

func (e *exitError) Error() string { return e.msg }

func failf(code int, format string, args ...any) error {
	return &exitError{code: code, msg: fmt.Sprintf(format, args...)}
}
