// Package executiltest provides a scripted executil.Runner for tests.
package executiltest

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"howett.net/plist"

	"github.com/deploymenttheory/go-corestorage/internal/executil"
)

// Call records one invocation made through a FakeRunner.
type Call struct {
	Argv  []string
	Stdin []byte
}

// Command returns the invocation's argv joined with single spaces.
func (c Call) Command() string {
	return strings.Join(c.Argv, " ")
}

type response struct {
	result *executil.Result
	err    error
}

// FakeRunner returns canned results keyed by the space-joined argv.
// Unscripted commands fail with exit status 1.
type FakeRunner struct {
	mu        sync.Mutex
	responses map[string]response
	calls     []Call
}

// NewFakeRunner creates an empty FakeRunner.
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{responses: make(map[string]response)}
}

// On scripts the result returned for argv.
func (f *FakeRunner) On(argv []string, result *executil.Result) *FakeRunner {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[strings.Join(argv, " ")] = response{result: result}
	return f
}

// OnPlist scripts a successful run whose stdout is v encoded as an XML plist.
func (f *FakeRunner) OnPlist(argv []string, v any) *FakeRunner {
	data, err := plist.MarshalIndent(v, plist.XMLFormat, "\t")
	if err != nil {
		panic(fmt.Sprintf("encode plist fixture: %v", err))
	}
	return f.On(argv, &executil.Result{Stdout: data})
}

// OnExit scripts a run that exits with code and prints stderr.
func (f *FakeRunner) OnExit(argv []string, code int, stderr string) *FakeRunner {
	return f.On(argv, &executil.Result{ExitCode: code, Stderr: []byte(stderr)})
}

// OnError scripts a run that cannot be started.
func (f *FakeRunner) OnError(argv []string, err error) *FakeRunner {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[strings.Join(argv, " ")] = response{err: err}
	return f
}

// Exec implements executil.Runner.
func (f *FakeRunner) Exec(_ context.Context, argv []string, stdin []byte) (*executil.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	call := Call{Argv: append([]string(nil), argv...)}
	if stdin != nil {
		call.Stdin = append(make([]byte, 0, len(stdin)), stdin...)
	}
	f.calls = append(f.calls, call)

	resp, ok := f.responses[call.Command()]
	if !ok {
		return &executil.Result{ExitCode: 1, Stderr: []byte("unscripted command")}, nil
	}
	if resp.err != nil {
		return nil, resp.err
	}
	return resp.result, nil
}

// Calls returns every invocation made so far.
func (f *FakeRunner) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Call(nil), f.calls...)
}

// Ran reports whether argv was invoked.
func (f *FakeRunner) Ran(argv []string) bool {
	want := strings.Join(argv, " ")
	for _, c := range f.Calls() {
		if c.Command() == want {
			return true
		}
	}
	return false
}
