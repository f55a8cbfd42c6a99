//go:build windows

package source

import (
	"errors"
	"time"
)

// ErrCommandUnsupported is returned when running commands under a
// pseudo-terminal is not available.
var ErrCommandUnsupported = errors.New("command sources are not supported on Windows")

// Command is unavailable on Windows.
type Command struct {
	command string
}

// NewCommand returns a source that fails to start.
func NewCommand(command, _ string, _ time.Duration) *Command {
	return &Command{command: command}
}

func (c *Command) Name() string { return c.command }
func (c *Command) SetWidth(int) {}
func (c *Command) Start(Sender) error { return ErrCommandUnsupported }
func (c *Command) Reload() error { return nil }
func (c *Command) Close() error { return nil }
