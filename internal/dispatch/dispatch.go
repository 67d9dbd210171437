package dispatch

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/amaumene/envrun/internal/domain"
	log "github.com/sirupsen/logrus"
)

// Invocation describes one synchronous child process run. Environment
// and working directory are explicit parameters so nothing depends on
// ambient process state beyond what the caller already exported.
type Invocation struct {
	Command string
	Args    []string
	WorkDir string
	Env     []string
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
}

type Result struct {
	ExitCode int
	Duration time.Duration
}

// Run blocks until the child exits. A non-zero child exit is not an
// error here; the exit code is carried in the Result so the caller can
// propagate it. There is no timeout and no cancellation path.
func Run(inv Invocation) (Result, error) {
	info, err := os.Stat(inv.WorkDir)
	if err != nil || !info.IsDir() {
		return Result{}, fmt.Errorf("work dir %s: %w", inv.WorkDir, domain.ErrDirectoryNotFound)
	}

	cmd := exec.Command(inv.Command, inv.Args...)
	cmd.Dir = inv.WorkDir
	cmd.Env = inv.Env
	cmd.Stdin = inv.Stdin
	cmd.Stdout = inv.Stdout
	cmd.Stderr = inv.Stderr

	log.WithFields(log.Fields{
		"command": inv.Command,
		"args":    inv.Args,
		"workdir": inv.WorkDir,
	}).Info("dispatching command")

	start := time.Now()
	err = cmd.Run()
	duration := time.Since(start)

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ProcessState != nil {
			return Result{ExitCode: exitErr.ProcessState.ExitCode(), Duration: duration}, nil
		}
		if errors.Is(err, exec.ErrNotFound) {
			return Result{}, fmt.Errorf("starting %s: %w", inv.Command, domain.ErrCommandNotFound)
		}
		return Result{}, fmt.Errorf("running %s: %w", inv.Command, err)
	}

	return Result{ExitCode: 0, Duration: duration}, nil
}
