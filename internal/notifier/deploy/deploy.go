// Package deploy runs the hosting provider's CLI and reads the deployed URL
// from what it prints.
package deploy

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/dimasma0305/teams-notifier/internal/log"
	"github.com/dimasma0305/teams-notifier/internal/notifier/errors"
)

// DefaultService is the deploy command used when none is given
const DefaultService = "now"

// subcommands lists the services that need a verb between the command and
// the path being deployed.
var subcommands = map[string][]string{
	"netlify": {"deploy"},
}

// Result is what a finished deploy printed
type Result struct {
	Command []string
	Output  string
}

// Executor runs deploy commands
type Executor struct {
	// Dir is the working directory of the deploy command
	Dir string
	// Stdout and Stderr receive the live output of the command
	Stdout io.Writer
	Stderr io.Writer

	lookPath func(string) (string, error)
	command  func(ctx context.Context, name string, args ...string) *exec.Cmd
}

// NewExecutor creates an executor that echoes the deploy output to the console
func NewExecutor() *Executor {
	return &Executor{
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		lookPath: exec.LookPath,
		command:  exec.CommandContext,
	}
}

// Args returns the arguments passed to service to deploy path
func Args(service, path string) []string {
	if path == "" {
		path = "."
	}
	args := append([]string{}, subcommands[service]...)
	return append(args, path)
}

// CheckService verifies that service can be found on PATH
func (e *Executor) CheckService(service string) (string, error) {
	service = strings.TrimSpace(service)
	if service == "" {
		return "", errors.Wrap(errors.ErrServiceNotFound, "no service configured")
	}
	bin, err := e.lookPath(service)
	if err != nil {
		return "", errors.Kind(errors.ErrServiceNotFound, fmt.Errorf("binary %q not found", service))
	}
	return bin, nil
}

// Deploy runs `<service> [deploy] <path>` and blocks until it exits. The
// standard output is both captured and echoed.
func (e *Executor) Deploy(ctx context.Context, service, path string) (*Result, error) {
	bin, err := e.CheckService(service)
	if err != nil {
		return nil, err
	}

	args := Args(service, path)
	log.Info("Running %s %s", service, strings.Join(args, " "))
	log.Debug("Resolved %s to %s", service, bin)

	var captured bytes.Buffer
	//nolint:gosec // G204: deploy command is chosen by the user
	cmd := e.command(ctx, bin, args...)
	cmd.Dir = e.Dir
	cmd.Env = os.Environ()
	cmd.Stdout = writers(&captured, e.Stdout)
	cmd.Stderr = e.Stderr

	result := &Result{
		Command: append([]string{service}, args...),
	}
	runErr := cmd.Run()
	result.Output = captured.String()
	if runErr != nil {
		return result, errors.Kind(errors.ErrDeployFailed, fmt.Errorf("%s: %w", strings.Join(result.Command, " "), runErr))
	}
	return result, nil
}

func writers(captured io.Writer, echo io.Writer) io.Writer {
	if echo == nil {
		return captured
	}
	return io.MultiWriter(captured, echo)
}
