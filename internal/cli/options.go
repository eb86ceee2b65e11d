package cli

import (
	"io"
	"os"
)

// Options contains the configuration shared by every command.
type Options struct {
	Debug    bool
	Metrics  bool
	Markdown bool
	Echo     bool

	In  io.Reader
	Out io.Writer
	Err io.Writer
}

func (o Options) withDefaults() Options {
	if o.In == nil {
		o.In = os.Stdin
	}
	if o.Out == nil {
		o.Out = os.Stdout
	}
	if o.Err == nil {
		o.Err = os.Stderr
	}
	return o
}
