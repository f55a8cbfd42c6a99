//go:build !windows

package source

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"sync"
	"syscall"
	"time"

	"github.com/creack/pty"

	"github.com/andyrewlee/marquee/internal/logging"
	"github.com/andyrewlee/marquee/internal/messages"
	"github.com/andyrewlee/marquee/internal/safego"
)

const killGrace = 200 * time.Millisecond

// Command runs a shell command under a pseudo-terminal, so tools keep their
// colors, and shows its output. With an interval it re-runs forever.
type Command struct {
	command  string
	dir      string
	interval time.Duration

	mu      sync.Mutex
	cols    uint16
	cancel  context.CancelFunc
	trigger chan struct{}
	wg      sync.WaitGroup
}

// NewCommand returns a source for command. interval <= 0 runs it once.
func NewCommand(command, dir string, interval time.Duration) *Command {
	return &Command{
		command:  command,
		dir:      dir,
		interval: interval,
		cols:     80,
		trigger:  make(chan struct{}, 1),
	}
}

func (c *Command) Name() string { return c.command }

// SetWidth sets the terminal width reported to the command.
func (c *Command) SetWidth(cols int) {
	if cols < 1 {
		return
	}
	c.mu.Lock()
	c.cols = uint16(cols)
	c.mu.Unlock()
}

func (c *Command) Start(send Sender) error {
	ctx, cancel := context.WithCancel(context.Background())
	c.mu.Lock()
	c.cancel = cancel
	c.mu.Unlock()

	safego.GoWait(&c.wg, "command-source", func() { c.loop(ctx, send) })
	return nil
}

func (c *Command) loop(ctx context.Context, send Sender) {
	for {
		out, err := c.runOnce(ctx)
		if ctx.Err() != nil {
			return
		}
		send(messages.ContentLoaded{Source: c.command, Text: Normalize(out)})
		if err != nil {
			logging.Debug("command %q: %v", c.command, err)
		}
		if c.interval <= 0 {
			send(messages.SourceExited{Source: c.command, Err: err})
			select {
			case <-ctx.Done():
				return
			case <-c.trigger:
			}
			continue
		}

		timer := time.NewTimer(c.interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-c.trigger:
			timer.Stop()
		case <-timer.C:
		}
	}
}

func (c *Command) runOnce(ctx context.Context) (string, error) {
	cmd := exec.CommandContext(ctx, "sh", "-c", c.command)
	cmd.Dir = c.dir
	cmd.Env = append(os.Environ(), "TERM=xterm-256color")
	// The pty makes the shell a session leader; signal its whole group so
	// children holding the terminal open do not outlive a cancel.
	cmd.Cancel = func() error {
		return stopGroup(cmd.Process.Pid, killGrace)
	}

	c.mu.Lock()
	size := &pty.Winsize{Rows: 500, Cols: c.cols}
	c.mu.Unlock()

	ptmx, err := pty.StartWithSize(cmd, size)
	if err != nil {
		return "", err
	}
	defer ptmx.Close()

	var buf bytes.Buffer
	// Linux reports EIO on the pty once the child exits.
	if _, err := io.Copy(&buf, io.LimitReader(ptmx, maxBytes)); err != nil && !errors.Is(err, syscall.EIO) {
		logging.Debug("command %q output: %v", c.command, err)
	}
	return buf.String(), cmd.Wait()
}

// Reload re-runs the command now.
func (c *Command) Reload() error {
	select {
	case c.trigger <- struct{}{}:
	default:
	}
	return nil
}

// Close stops the command and waits for the runner to exit.
func (c *Command) Close() error {
	c.mu.Lock()
	cancel := c.cancel
	c.mu.Unlock()
	if cancel != nil {
		cancel()
	}
	c.wg.Wait()
	return nil
}

// stopGroup sends SIGTERM to the process group led by pid and escalates to
// SIGKILL if anything is still alive after grace.
func stopGroup(pid int, grace time.Duration) error {
	if err := syscall.Kill(-pid, syscall.SIGTERM); err != nil {
		if errors.Is(err, syscall.ESRCH) {
			return nil
		}
		return err
	}
	deadline := time.Now().Add(grace)
	for time.Now().Before(deadline) {
		if errors.Is(syscall.Kill(-pid, 0), syscall.ESRCH) {
			return nil
		}
		time.Sleep(10 * time.Millisecond)
	}
	// EPERM means the group emptied while we waited.
	err := syscall.Kill(-pid, syscall.SIGKILL)
	if err != nil && !errors.Is(err, syscall.ESRCH) && !errors.Is(err, syscall.EPERM) {
		return err
	}
	return nil
}
