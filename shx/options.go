package shx

import (
	"io"
	"os"
	"os/exec"
)

type Option interface {
	apply(*Cmd)
	applyExec(*exec.Cmd, *Result)
}

type optionCmdFunc func(*Cmd)

func (f optionCmdFunc) apply(c *Cmd) {
	f(c)
}
func (f optionCmdFunc) applyExec(cmd *exec.Cmd, res *Result) {}

type optionExecFunc func(cmd *exec.Cmd, res *Result)

func (f optionExecFunc) apply(c *Cmd) {}
func (f optionExecFunc) applyExec(cmd *exec.Cmd, res *Result) {
	f(cmd, res)
}

// WithCombinedError changes the behavior of Run to return all errors in the
// error return, instead of only returning errors starting the process there,
// and errors from the process in the Result.
func WithCombinedError() Option {
	return optionCmdFunc(func(c *Cmd) {
		c.combineExecErrors = true
	})
}

func WithCwd(path string) Option {
	return optionExecFunc(func(c *exec.Cmd, r *Result) {
		c.Dir = path
	})
}

// WithEnv overlays a single variable onto the inherited environment.
func WithEnv(name, value string) Option {
	return optionCmdFunc(func(c *Cmd) {
		c.env[name] = value
	})
}

func CaptureOutput() Option {
	return optionExecFunc(func(cmd *exec.Cmd, res *Result) {
		if res.stdoutCapture != nil {
			_ = res.stdoutCapture.Close()
		}
		res.stdoutCapture = &outCapture{}
		cmd.Stdout = res.stdoutCapture
	})
}

func CaptureError() Option {
	return optionExecFunc(func(cmd *exec.Cmd, res *Result) {
		if res.stderrCapture != nil {
			_ = res.stderrCapture.Close()
		}
		res.stderrCapture = &outCapture{}
		cmd.Stderr = res.stderrCapture
	})
}

func CaptureCombined() Option {
	return optionExecFunc(func(cmd *exec.Cmd, res *Result) {
		if res.stdoutCapture != nil {
			_ = res.stdoutCapture.Close()
		}
		if res.stderrCapture != nil {
			_ = res.stderrCapture.Close()
		}
		res.stdoutCapture = &outCapture{}
		res.stderrCapture = res.stdoutCapture
		cmd.Stdout = res.stdoutCapture
		cmd.Stderr = res.stdoutCapture
	})
}

// PassStdout sets the command's Stdout to os.Stdout and clears any prior
// capture configuration.
func PassStdout() Option {
	return optionExecFunc(func(cmd *exec.Cmd, res *Result) {
		if res.stdoutCapture != nil {
			_ = res.stdoutCapture.Close()
			res.stdoutCapture = nil
		}
		cmd.Stdout = os.Stdout
	})
}

// PassStderr sets the command's Stderr to os.Stderr and clears any prior
// capture configuration.
func PassStderr() Option {
	return optionExecFunc(func(cmd *exec.Cmd, res *Result) {
		if res.stderrCapture != nil {
			_ = res.stderrCapture.Close()
			res.stderrCapture = nil
		}
		cmd.Stderr = os.Stderr
	})
}

// PassOutput sets the command's Stdout and Stderr to os.Stdout and os.Stderr
// respectively, and clears any prior capture configuration.
func PassOutput() Option {
	return optionExecFunc(func(cmd *exec.Cmd, res *Result) {
		if res.stdoutCapture != nil {
			_ = res.stdoutCapture.Close()
			res.stdoutCapture = nil
		}
		if res.stderrCapture != nil {
			_ = res.stderrCapture.Close()
			res.stderrCapture = nil
		}
		cmd.Stdout, cmd.Stderr = os.Stdout, os.Stderr
	})
}

func PassStdio() Option {
	return optionExecFunc(func(cmd *exec.Cmd, res *Result) {
		if res.stdoutCapture != nil {
			_ = res.stdoutCapture.Close()
			res.stdoutCapture = nil
		}
		if res.stderrCapture != nil {
			_ = res.stderrCapture.Close()
			res.stderrCapture = nil
		}
		cmd.Stdout, cmd.Stderr, cmd.Stdin = os.Stdout, os.Stderr, os.Stdin
	})
}

// FeedStdin sets the command's Stdin to the provided io.Reader.
//
// The caller is responsible for closing the reader if necessary after the
// command completes.
func FeedStdin(in io.Reader) Option {
	return optionExecFunc(func(cmd *exec.Cmd, res *Result) {
		cmd.Stdin = in
	})
}
