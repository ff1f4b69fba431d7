package ytdlp

import (
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"
)

// Runner executes external commands. The production implementation shells
// out; tests inject fakes so command construction stays verifiable without
// spawning processes.
type Runner interface {
	// Output runs argv and returns its standard output. When stderr is
	// non-nil the command's standard error is written to it.
	Output(ctx context.Context, argv []string, stderr io.Writer) (string, error)
	// Run runs argv to completion.
	Run(ctx context.Context, argv []string) error
	// RunPipeline runs producer and consumer with the producer's stdout
	// fed into the consumer's stdin, waiting for both.
	RunPipeline(ctx context.Context, producer, consumer []string) error
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

func (ExecRunner) Output(ctx context.Context, argv []string, stderr io.Writer) (string, error) {
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	if stderr != nil {
		cmd.Stderr = stderr
	}
	out, err := cmd.Output()
	return string(out), err
}

func (ExecRunner) Run(ctx context.Context, argv []string) error {
	return exec.CommandContext(ctx, argv[0], argv[1:]...).Run()
}

func (ExecRunner) RunPipeline(ctx context.Context, producer, consumer []string) error {
	p := exec.CommandContext(ctx, producer[0], producer[1:]...)
	c := exec.CommandContext(ctx, consumer[0], consumer[1:]...)
	pipe, err := p.StdoutPipe()
	if err != nil {
		return err
	}
	c.Stdin = pipe
	if err := p.Start(); err != nil {
		return err
	}
	if err := c.Start(); err != nil {
		_ = p.Process.Kill()
		_ = p.Wait()
		return err
	}
	perr := p.Wait()
	cerr := c.Wait()
	if cerr != nil {
		return cerr
	}
	return perr
}

// exitedNonZero reports whether err is a process that ran and exited with
// a non-zero status, as opposed to one that could not be started at all.
func exitedNonZero(err error) bool {
	var exitErr *exec.ExitError
	return errors.As(err, &exitErr)
}

// quoteArgv renders an argv for log lines.
func quoteArgv(argv []string) string {
	quoted := make([]string, len(argv))
	for i, a := range argv {
		if strings.ContainsAny(a, " \t\"") {
			quoted[i] = "'" + a + "'"
			continue
		}
		quoted[i] = a
	}
	return strings.Join(quoted, " ")
}
