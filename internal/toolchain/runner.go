package toolchain

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Command describes one external process invocation.
type Command struct {
	Name string
	Args []string
	// Dir is the working directory; empty means the current directory.
	Dir string
	// Env entries are KEY=VALUE pairs layered over the current environment.
	Env []string
}

func (c Command) String() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// Output captures the result of a process execution.
type Output struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Runner executes a command and blocks until it exits. A non-zero exit is
// reported through Output.ExitCode, not as an error.
type Runner interface {
	Run(ctx context.Context, cmd Command) (*Output, error)
}

// ExitError is returned by collaborators when a process exits non-zero.
type ExitError struct {
	Command  string
	ExitCode int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Command, e.ExitCode)
}

// Check converts a non-zero exit into an *ExitError.
func Check(cmd Command, out *Output, err error) error {
	if err != nil {
		return err
	}
	if out != nil && out.ExitCode != 0 {
		return &ExitError{Command: cmd.String(), ExitCode: out.ExitCode}
	}
	return nil
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct {
	// Stdout and Stderr can be set for testing; defaults to os.Stdout/os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
	// Quiet captures output without streaming it.
	Quiet bool
}

// Run resolves the binary on PATH, streams its output to the configured
// writers while capturing it, and waits for it to exit.
func (r *ExecRunner) Run(ctx context.Context, c Command) (*Output, error) {
	bin, err := exec.LookPath(c.Name)
	if err != nil {
		return nil, fmt.Errorf("%s not found on PATH: %w", c.Name, err)
	}

	cmd := exec.CommandContext(ctx, bin, c.Args...)
	cmd.Dir = c.Dir
	cmd.Stdin = os.Stdin

	env := os.Environ()
	for _, kv := range c.Env {
		if k, v, ok := strings.Cut(kv, "="); ok {
			env = setEnv(env, k, v)
		}
	}
	cmd.Env = env

	stdout, stderr := r.writers()

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = io.MultiWriter(stdout, &stdoutBuf)
	cmd.Stderr = io.MultiWriter(stderr, &stderrBuf)

	err = cmd.Run()

	output := &Output{
		Stdout: stdoutBuf.String(),
		Stderr: stderrBuf.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			output.ExitCode = exitErr.ExitCode()
			return output, nil
		}
		return output, fmt.Errorf("executing %s: %w", c, err)
	}

	return output, nil
}

func (r *ExecRunner) writers() (io.Writer, io.Writer) {
	if r.Quiet {
		return io.Discard, io.Discard
	}
	stdout := r.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := r.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}
	return stdout, stderr
}

// setEnv sets or replaces an environment variable in the env slice.
func setEnv(env []string, key, value string) []string {
	prefix := key + "="
	for i, e := range env {
		if strings.HasPrefix(e, prefix) {
			env[i] = prefix + value
			return env
		}
	}
	return append(env, prefix+value)
}
