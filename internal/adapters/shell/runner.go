// Package shell runs the external host build tool.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/apparentlymart/go-shquot/shquot"
	"go.trai.ch/multiapi/internal/core/domain"
	"go.trai.ch/multiapi/internal/core/ports"
	"go.trai.ch/zerr"
)

// VersionPlaceholder in a command element is replaced with the target version,
// so one command template can address several installed distributions.
const VersionPlaceholder = "{version}"

// TargetVersionEnv exposes the target version to launcher scripts.
const TargetVersionEnv = "MULTIAPI_TARGET_VERSION"

// waitDelay bounds how long Run waits for the tool's output after cancellation.
const waitDelay = 5 * time.Second

var hostVersionPattern = regexp.MustCompile(`(?m)^Gradle\s+(\S+)`)

var _ ports.ToolRunner = (*Runner)(nil)

// Runner implements ports.ToolRunner using os/exec.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{logger: logger}
}

// Run executes the host tool in the invocation's project directory.
// The process is killed when ctx is cancelled.
func (r *Runner) Run(ctx context.Context, command []string, inv domain.Invocation) error {
	if len(command) == 0 {
		return zerr.Wrap(domain.ErrInvalidConfig, "host command is empty")
	}

	argv := BuildArgs(command, inv)
	r.logger.Info("running " + shquot.POSIXShell(argv))

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...) //nolint:gosec // user provided command
	cmd.Dir = inv.ProjectDir
	cmd.Env = resolveEnvironment(os.Environ(), map[string]string{
		TargetVersionEnv: inv.Version.String(),
	})
	cmd.Stdout = writerOrDiscard(inv.Stdout)
	cmd.Stderr = writerOrDiscard(inv.Stderr)
	cmd.WaitDelay = waitDelay

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return zerr.With(zerr.With(zerr.Wrap(err, "host tool failed"), "exit_code", exitCode), "command", shquot.POSIXShell(argv))
	}

	return nil
}

// HostVersion runs "<command> --version" and parses the reported host version.
func (r *Runner) HostVersion(ctx context.Context, command []string) (string, error) {
	if len(command) == 0 {
		return "", zerr.Wrap(domain.ErrInvalidConfig, "host command is empty")
	}

	argv := append(slices.Clone(command), "--version")
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...) //nolint:gosec // user provided command
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = waitDelay

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		err = zerr.Wrap(domain.ErrHostVersionUnknown, err.Error())
		return "", zerr.With(zerr.With(err, "command", shquot.POSIXShell(argv)), "stderr", strings.TrimSpace(stderr.String()))
	}

	match := hostVersionPattern.FindSubmatch(stdout.Bytes())
	if match == nil {
		err := zerr.Wrap(domain.ErrHostVersionUnknown, "no version in tool output")
		return "", zerr.With(err, "command", shquot.POSIXShell(argv))
	}
	return string(match[1]), nil
}

// BuildArgs renders the full argument vector for inv.
func BuildArgs(command []string, inv domain.Invocation) []string {
	argv := make([]string, 0, len(command)+len(inv.Args)+4)
	for _, c := range command {
		argv = append(argv, strings.ReplaceAll(c, VersionPlaceholder, inv.Version.String()))
	}
	argv = append(argv, "--project-dir", inv.ProjectDir)
	if inv.UserHome != "" {
		argv = append(argv, "--gradle-user-home", inv.UserHome)
	}
	return append(argv, inv.Args...)
}

func writerOrDiscard(w io.Writer) io.Writer {
	if w == nil {
		return io.Discard
	}
	return w
}

// resolveEnvironment overlays overrides on the system environment.
func resolveEnvironment(sysEnv []string, overrides map[string]string) []string {
	result := make([]string, 0, len(sysEnv)+len(overrides))
	for _, entry := range sysEnv {
		k, _, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if _, overridden := overrides[k]; overridden {
			continue
		}
		result = append(result, entry)
	}
	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		result = append(result, k+"="+overrides[k])
	}
	return result
}
