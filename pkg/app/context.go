package app

import (
	"context"
	"io"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/deploymenttheory/go-corestorage/pkg/corestorage"
)

// Context holds application-wide configuration and state
type Context struct {
	context.Context

	// Output preferences
	OutputFormat string
	Verbose      bool
	Quiet        bool
	Out          io.Writer

	Logger *log.Logger
	Client *corestorage.Client
}

// NewContext creates a new application context
func NewContext(parent context.Context, client *corestorage.Client, logger *log.Logger) *Context {
	if parent == nil {
		parent = context.Background()
	}
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &Context{
		Context:      parent,
		OutputFormat: "table",
		Out:          os.Stdout,
		Logger:       logger,
		Client:       client,
	}
}

// Log outputs a message based on verbosity settings
func (c *Context) Log(message string) {
	if !c.Quiet && c.Verbose {
		c.Logger.Info(message)
	}
}
