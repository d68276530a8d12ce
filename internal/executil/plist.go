package executil

import (
	"bytes"
	"context"
	"strings"

	"howett.net/plist"
)

// GetStructuredInfo runs argv through r and decodes its standard output as
// a property list into v. It fails with an *ExecError when the command
// cannot run, exits non-zero, or prints something that is not a plist.
func GetStructuredInfo(ctx context.Context, r Runner, argv []string, v any) error {
	result, err := r.Exec(ctx, argv, nil)
	if err != nil {
		return err
	}

	if !result.Success() {
		return &ExecError{
			Argv:     Sanitize(argv),
			ExitCode: result.ExitCode,
			Stderr:   strings.TrimSpace(string(result.Stderr)),
		}
	}

	if err := plist.NewDecoder(bytes.NewReader(result.Stdout)).Decode(v); err != nil {
		return &ExecError{Argv: Sanitize(argv), Cause: err}
	}

	return nil
}
