package corestorage

import (
	log "github.com/sirupsen/logrus"

	"github.com/deploymenttheory/go-corestorage/internal/executil"
	"github.com/deploymenttheory/go-corestorage/internal/types"
)

// Client queries and controls CoreStorage volumes through diskutil.
// It holds no state between calls.
type Client struct {
	runner   executil.Runner
	logger   *log.Logger
	diskutil string
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for diagnostics.
func WithLogger(logger *log.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithDiskutilPath overrides the diskutil binary location.
func WithDiskutilPath(path string) Option {
	return func(c *Client) {
		if path != "" {
			c.diskutil = path
		}
	}
}

// NewClient creates a Client that runs diskutil through runner.
func NewClient(runner executil.Runner, opts ...Option) *Client {
	c := &Client{
		runner:   runner,
		logger:   log.StandardLogger(),
		diskutil: types.DiskutilPath,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewDefaultClient creates a Client that spawns the real diskutil.
func NewDefaultClient(logger *log.Logger, opts ...Option) *Client {
	opts = append([]Option{WithLogger(logger)}, opts...)
	c := NewClient(nil, opts...)
	c.runner = executil.NewExecRunner(c.logger)
	return c
}

// DiskutilPath returns the diskutil binary the client invokes.
func (c *Client) DiskutilPath() string {
	return c.diskutil
}

func (c *Client) csInfoCommand(target string) []string {
	return []string{c.diskutil, "cs", "info", "-plist", target}
}

func (c *Client) listCommand() []string {
	return []string{c.diskutil, "list", "-plist"}
}

func (c *Client) coreStorageListCommand() []string {
	return []string{c.diskutil, "corestorage", "list", "-plist"}
}

func (c *Client) coreStorageInfoCommand(id string) []string {
	return []string{c.diskutil, "corestorage", "info", "-plist", id}
}

func (c *Client) unlockCommand(id string) []string {
	return []string{c.diskutil, "corestorage", "unlockVolume", id, "-stdinpassphrase"}
}

func (c *Client) revertCommand(id string) []string {
	return []string{c.diskutil, "corestorage", "revert", id, "-stdinpassphrase"}
}
