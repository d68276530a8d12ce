// Package executil runs external commands and decodes their plist output.
//
// It is the only place in the module that spawns processes. Callers hand it
// an argv slice (never a shell string) and optionally bytes for standard
// input; secrets must travel through stdin so they never appear in process
// listings.
package executil

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

// Result holds the outcome of a command that ran to completion.
type Result struct {
	ExitCode int
	Stdout   []byte
	Stderr   []byte
}

// Success reports whether the command exited with status zero.
func (r *Result) Success() bool {
	return r.ExitCode == 0
}

// Runner executes a command. A non-zero exit is reported through
// Result.ExitCode; the error is reserved for commands that could not be
// started or waited on.
type Runner interface {
	Exec(ctx context.Context, argv []string, stdin []byte) (*Result, error)
}

// ExecRunner is a Runner backed by os/exec.
type ExecRunner struct {
	logger *log.Logger
}

// NewExecRunner creates a runner that logs through logger.
// A nil logger uses the logrus standard logger.
func NewExecRunner(logger *log.Logger) *ExecRunner {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &ExecRunner{logger: logger}
}

// Exec runs argv and waits for it. stdin, when non-nil, is written to the
// child's standard input and is never logged.
func (r *ExecRunner) Exec(ctx context.Context, argv []string, stdin []byte) (*Result, error) {
	if len(argv) == 0 {
		return nil, errors.New("empty command")
	}

	logger := r.logger.WithFields(log.Fields{
		"command":     argv[0],
		"args":        Sanitize(argv[1:]),
		"stdin_bytes": len(stdin),
	})
	logger.Debug("executing command")

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if stdin != nil {
		cmd.Stdin = bytes.NewReader(stdin)
	}

	startTime := time.Now()
	err := cmd.Run()
	duration := time.Since(startTime)

	if ctxErr := ctx.Err(); ctxErr != nil {
		logger.WithError(ctxErr).Error("command interrupted")
		return nil, &ExecError{
			Argv:     Sanitize(argv),
			ExitCode: -1,
			Stderr:   strings.TrimSpace(stderr.String()),
			Cause:    ctxErr,
		}
	}

	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			logger.WithError(err).Error("failed to run command")
			return nil, &ExecError{Argv: Sanitize(argv), ExitCode: -1, Cause: err}
		}
	}

	result := &Result{
		ExitCode: cmd.ProcessState.ExitCode(),
		Stdout:   stdout.Bytes(),
		Stderr:   stderr.Bytes(),
	}

	logger.WithFields(log.Fields{
		"exit_code":   result.ExitCode,
		"duration_ms": duration.Milliseconds(),
	}).Debug("command completed")

	return result, nil
}

// ExecError reports a command that failed to run, exited non-zero when a
// zero exit was required, or printed output that could not be decoded.
type ExecError struct {
	Argv     []string
	ExitCode int
	Stderr   string
	Cause    error
}

func (e *ExecError) Error() string {
	msg := fmt.Sprintf("exec %v", e.Argv)
	if e.ExitCode != 0 {
		msg += fmt.Sprintf(": exit status %d", e.ExitCode)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf(": %s", e.Stderr)
	}
	if e.Cause != nil {
		msg += fmt.Sprintf(": %v", e.Cause)
	}
	return msg
}

func (e *ExecError) Unwrap() error {
	return e.Cause
}

// IsExecError checks if an error is an ExecError.
func IsExecError(err error) bool {
	var execErr *ExecError
	return errors.As(err, &execErr)
}
