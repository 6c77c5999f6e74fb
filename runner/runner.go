// Package runner spawns gada node processes.
//
// Run starts the configured binary with a node name and its arguments,
// optionally wiring an intercom channel: the child is told the port
// with a --intercom-port flag and dials back over the loopback
// interface.
package runner

import (
	"context"
	"io"
	"os"
	"os/exec"
	"strconv"

	"golang.org/x/exp/slog"

	"github.com/gadalang/gada-runtime/intercom"
)

type options struct {
	env      []string
	stdin    io.Reader
	stdout   io.Writer
	stderr   io.Writer
	bin      string
	intercom *intercom.Server
	useIC    bool
	log      *slog.Logger
}

// Option configures Run.
type Option func(*options)

// WithEnv appends variables ("KEY=value") to the child's environment.
func WithEnv(env ...string) Option {
	return func(o *options) { o.env = append(o.env, env...) }
}

// WithStdin sets the child's standard input.
func WithStdin(r io.Reader) Option {
	return func(o *options) { o.stdin = r }
}

// WithStdout sets the child's standard output.
func WithStdout(w io.Writer) Option {
	return func(o *options) { o.stdout = w }
}

// WithStderr sets the child's standard error.
func WithStderr(w io.Writer) Option {
	return func(o *options) { o.stderr = w }
}

// WithBin sets the binary used to run the node. Defaults to "gada".
func WithBin(bin string) Option {
	return func(o *options) { o.bin = bin }
}

// WithIntercom attaches an already-started intercom server.
func WithIntercom(s *intercom.Server) Option {
	return func(o *options) { o.intercom = s }
}

// WithNewIntercom starts a fresh intercom server for the child. The
// server is owned by the process and closed with it.
func WithNewIntercom() Option {
	return func(o *options) { o.useIC = true }
}

// WithLogger sets the logger. Defaults to slog.Default.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.log = l }
}

// Process is a running node process.
type Process struct {
	cmd     *exec.Cmd
	ic      *intercom.Server
	ownedIC bool
	log     *slog.Logger
}

// Run starts the node process for node with the given extra arguments.
// The caller must Wait on the returned process.
func Run(ctx context.Context, node string, argv []string, opts ...Option) (*Process, error) {
	o := options{
		stdout: os.Stdout,
		stderr: os.Stderr,
		bin:    "gada",
		log:    slog.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	ic := o.intercom
	ownedIC := false
	if ic == nil && o.useIC {
		var err error
		if ic, err = intercom.Start(o.log); err != nil {
			return nil, err
		}
		ownedIC = true
	}

	args := []string{node}
	if ic != nil {
		args = append(args, "--intercom-port", strconv.Itoa(ic.Port()))
	}
	args = append(args, argv...)

	cmd := exec.CommandContext(ctx, o.bin, args...)
	cmd.Stdin = o.stdin
	cmd.Stdout = o.stdout
	cmd.Stderr = o.stderr
	if len(o.env) > 0 {
		cmd.Env = append(os.Environ(), o.env...)
	}
	if err := cmd.Start(); err != nil {
		if ownedIC {
			ic.Close()
		}
		return nil, err
	}
	o.log.Debug("spawned node process", "node", node, "bin", o.bin, "pid", cmd.Process.Pid)
	return &Process{cmd: cmd, ic: ic, ownedIC: ownedIC, log: o.log}, nil
}

// Intercom returns the intercom server attached to the process, or nil.
func (p *Process) Intercom() *intercom.Server {
	return p.ic
}

// Wait blocks until the process exits.
func (p *Process) Wait() error {
	err := p.cmd.Wait()
	p.log.Debug("node process exited", "pid", p.cmd.Process.Pid, "code", p.cmd.ProcessState.ExitCode())
	if p.ownedIC {
		p.ic.Close()
	}
	return err
}

// ExitCode returns the exit code of the finished process, or -1 if it
// has not exited.
func (p *Process) ExitCode() int {
	if p.cmd.ProcessState == nil {
		return -1
	}
	return p.cmd.ProcessState.ExitCode()
}
