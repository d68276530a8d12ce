package executil_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deploymenttheory/go-corestorage/internal/executil"
	"github.com/deploymenttheory/go-corestorage/internal/executil/executiltest"
)

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := os.Stat("/bin/sh"); err != nil {
		t.Skip("/bin/sh not available")
	}
}

func TestExecRunner_Exec(t *testing.T) {
	requireShell(t)
	runner := executil.NewExecRunner(nil)
	ctx := context.Background()

	tests := []struct {
		name       string
		argv       []string
		stdin      []byte
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{
			name:       "stdin is piped to the child",
			argv:       []string{"/bin/sh", "-c", "cat"},
			stdin:      []byte("hunter2"),
			wantStdout: "hunter2",
		},
		{
			name:       "non-zero exit is a result not an error",
			argv:       []string{"/bin/sh", "-c", "echo boom >&2; exit 3"},
			wantCode:   3,
			wantStderr: "boom\n",
		},
		{
			name:       "nil stdin",
			argv:       []string{"/bin/sh", "-c", "printf ok"},
			wantStdout: "ok",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := runner.Exec(ctx, tt.argv, tt.stdin)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, result.ExitCode)
			assert.Equal(t, tt.wantStdout, string(result.Stdout))
			assert.Equal(t, tt.wantStderr, string(result.Stderr))
		})
	}
}

func TestExecRunner_ExecFailures(t *testing.T) {
	runner := executil.NewExecRunner(nil)

	_, err := runner.Exec(context.Background(), nil, nil)
	assert.Error(t, err)

	_, err = runner.Exec(context.Background(), []string{"/nonexistent/diskutil", "list"}, nil)
	require.Error(t, err)
	assert.True(t, executil.IsExecError(err))
}

func TestExecRunner_ExecContextDone(t *testing.T) {
	requireShell(t)
	runner := executil.NewExecRunner(nil)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	result, err := runner.Exec(ctx, []string{"/bin/sh", "-c", "exec sleep 5"}, nil)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, executil.IsExecError(err))
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	var execErr *executil.ExecError
	require.True(t, errors.As(err, &execErr))
	assert.Equal(t, -1, execErr.ExitCode)
}

func TestFakeRunner_RecordsStdin(t *testing.T) {
	tests := []struct {
		name    string
		stdin   []byte
		wantNil bool
	}{
		{name: "no stdin", stdin: nil, wantNil: true},
		{name: "empty stdin", stdin: []byte{}},
		{name: "passphrase", stdin: []byte("hunter2")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := executiltest.NewFakeRunner()
			_, err := runner.Exec(context.Background(), []string{"diskutil", "list"}, tt.stdin)
			require.NoError(t, err)

			calls := runner.Calls()
			require.Len(t, calls, 1)
			if tt.wantNil {
				assert.Nil(t, calls[0].Stdin)
				return
			}
			assert.NotNil(t, calls[0].Stdin)
			assert.Equal(t, tt.stdin, calls[0].Stdin)
		})
	}
}

func TestGetStructuredInfo(t *testing.T) {
	argv := []string{"/usr/sbin/diskutil", "list", "-plist"}
	ctx := context.Background()

	t.Run("decodes plist stdout", func(t *testing.T) {
		runner := executiltest.NewFakeRunner().OnPlist(argv, map[string]any{
			"WholeDisks": []any{"disk0", "disk1"},
		})

		var out struct {
			WholeDisks []string `plist:"WholeDisks"`
		}
		require.NoError(t, executil.GetStructuredInfo(ctx, runner, argv, &out))
		assert.Equal(t, []string{"disk0", "disk1"}, out.WholeDisks)
	})

	t.Run("non-zero exit", func(t *testing.T) {
		runner := executiltest.NewFakeRunner().OnExit(argv, 1, "Could not find disk\n")

		var out map[string]any
		err := executil.GetStructuredInfo(ctx, runner, argv, &out)
		require.Error(t, err)

		var execErr *executil.ExecError
		require.True(t, errors.As(err, &execErr))
		assert.Equal(t, 1, execErr.ExitCode)
		assert.Equal(t, "Could not find disk", execErr.Stderr)
	})

	t.Run("unparseable stdout", func(t *testing.T) {
		runner := executiltest.NewFakeRunner().On(argv, &executil.Result{Stdout: []byte("<plist><dict><key>")})

		var out map[string]any
		err := executil.GetStructuredInfo(ctx, runner, argv, &out)
		require.Error(t, err)
		assert.True(t, executil.IsExecError(err))
	})

	t.Run("runner error is returned", func(t *testing.T) {
		boom := errors.New("fork failed")
		runner := executiltest.NewFakeRunner().OnError(argv, boom)

		var out map[string]any
		err := executil.GetStructuredInfo(ctx, runner, argv, &out)
		assert.ErrorIs(t, err, boom)
	})
}

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "plain arguments untouched",
			args: []string{"corestorage", "unlockVolume", "6C1AD8A4-3E5C-4A1E-9F2B-1E1D2C3B4A59", "-stdinpassphrase"},
			want: []string{"corestorage", "unlockVolume", "6C1AD8A4-3E5C-4A1E-9F2B-1E1D2C3B4A59", "-stdinpassphrase"},
		},
		{
			name: "key value secrets",
			args: []string{"password=hunter2", "secret=abc", "p=x"},
			want: []string{"password=****", "secret=****", "p=****"},
		},
		{
			name: "long flags",
			args: []string{"--token=abc123", "--passphrase=correct horse"},
			want: []string{"--token=****", "--passphrase=**** horse"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, executil.Sanitize(tt.args))
		})
	}
}
