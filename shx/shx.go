// Package shx wraps os/exec with a small functional-option layer tuned for
// running toolchain commands: stdio passing or capture, env overlays, and
// working directory control.
package shx

import (
	"context"
	"errors"
	"maps"
	"os"
	"os/exec"
	"strings"

	"github.com/jig-dev/jig/internal/ctxlog"
)

type Cmd struct {
	cmdAndArgs        []string
	combineExecErrors bool
	env               map[string]string

	opts []Option
}

func New(name string, args ...string) *Cmd {
	return &Cmd{
		cmdAndArgs: append([]string{name}, args...),
		env:        make(map[string]string),
	}
}

func Run(
	ctx context.Context,
	cmdAndArgs []string,
	opts ...Option,
) (*Result, error) {
	return New(cmdAndArgs[0], cmdAndArgs[1:]...).With(opts...).Run(ctx)
}

// With applies options to the command.
func (c *Cmd) With(opts ...Option) *Cmd {
	c.opts = append(c.opts, opts...)
	for _, opt := range opts {
		opt.apply(c)
	}
	return c
}

// Run runs the command and waits for it to finish.
//
// If the command fails to start, it returns a nil Result and the error. If the
// command starts but exits with an error code, the error will be in the
// Result. WithCombinedError copies the Result error to the top level error,
// for callers that don't care about the distinction.
func (c *Cmd) Run(ctx context.Context) (*Result, error) {
	ctxlog.FromContext(ctx).Debug("exec", "argv", c.cmdAndArgs)
	cmd := exec.CommandContext(ctx, c.cmdAndArgs[0], c.cmdAndArgs[1:]...)
	c.applyEnv(cmd)
	var res Result
	for _, opt := range c.opts {
		opt.applyExec(cmd, &res)
	}
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	res.exitErr = cmd.Wait()
	res.processState = cmd.ProcessState
	if err := res.execDone(); err != nil {
		res.exitErr = errors.Join(res.exitErr, err)
	}
	if c.combineExecErrors {
		return &res, res.exitErr
	}
	return &res, nil
}

func (c *Cmd) applyEnv(cmd *exec.Cmd) {
	if len(c.env) == 0 {
		return
	}
	curEnv := os.Environ()
	fullEnv := make(map[string]string, len(curEnv)+len(c.env))
	for _, e := range curEnv {
		name, val, _ := strings.Cut(e, "=")
		fullEnv[name] = val
	}
	maps.Copy(fullEnv, c.env)
	cmd.Env = make([]string, 0, len(fullEnv))
	for k, v := range fullEnv {
		cmd.Env = append(cmd.Env, k+"="+v)
	}
}
