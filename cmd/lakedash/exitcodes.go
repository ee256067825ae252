// Copyright 2026 The Lakedash Authors
// SPDX-License-Identifier: MIT

package main

import "fmt"

// Exit codes for the lakedash CLI.
const (
	ExitOK            = 0 // Success.
	ExitInvalidArgs   = 1 // Bad flags, arguments or configuration.
	ExitRenderFailure = 2 // An export or render produced no usable output.
	ExitServeFailure  = 3 // The server failed to start or stopped with an error.
)

// exitCodeError carries a non-zero exit code through cobra's error handling.
type exitCodeError struct {
	code int
	msg  string
}

func (e *exitCodeError) Error() string { return e.msg }

// ExitCode returns the exit code for this error.
func (e *exitCodeError) ExitCode() int { return e.code }

// exitError creates an exitCodeError. If msg is empty, the error message is
// set to a generic description of the exit code.
func exitError(code int, format string, args ...any) *exitCodeError {
	msg := fmt.Sprintf(format, args...)
	if msg == "" {
		switch code {
		case ExitRenderFailure:
			msg = "lakedash: render failed"
		case ExitServeFailure:
			msg = "lakedash: server failed"
		default:
			msg = "lakedash: error"
		}
	}
	return &exitCodeError{code: code, msg: msg}
}
