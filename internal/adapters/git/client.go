// Package git provides the version control adapter backed by the git binary.
package git

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"

	"go.trai.ch/pkghash/internal/core/domain"
	"go.trai.ch/pkghash/internal/core/ports"
	"go.trai.ch/zerr"
)

// Client implements ports.VersionControl by running git subprocesses.
type Client struct {
	logger ports.Logger
	binary string
}

// NewClient creates a Client that runs the git found on PATH.
func NewClient(logger ports.Logger) *Client {
	return &Client{
		logger: logger,
		binary: "git",
	}
}

// LsTree lists the committed tree of HEAD recursively.
func (c *Client) LsTree(ctx context.Context, root string) (string, error) {
	return c.run(ctx, root, nil, "ls-tree", "HEAD", "-r")
}

// Status lists working tree changes in short format, including every untracked file.
func (c *Client) Status(ctx context.Context, root string) (string, error) {
	return c.run(ctx, root, nil, "status", "-s", "-u", ".")
}

// HashObjects hashes the given files, one path per stdin line.
func (c *Client) HashObjects(ctx context.Context, cwd string, paths []string) (string, error) {
	stdin := strings.NewReader(strings.Join(paths, "\n"))
	return c.run(ctx, cwd, stdin, "hash-object", "--stdin-paths")
}

func (c *Client) run(ctx context.Context, dir string, stdin *strings.Reader, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, c.binary, args...) //nolint:gosec // fixed git subcommands
	cmd.Dir = dir
	// Status refreshes must not take the index lock.
	cmd.Env = append(os.Environ(), "GIT_OPTIONAL_LOCKS=0")
	if stdin != nil {
		cmd.Stdin = stdin
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	c.logger.Debug("git " + strings.Join(args, " "))

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}

		wrapped := zerr.With(zerr.Wrap(err, domain.ErrGitCommandFailed.Error()), "args", strings.Join(args, " "))
		wrapped = zerr.With(wrapped, "dir", dir)
		wrapped = zerr.With(wrapped, "exit_code", exitCode)
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			wrapped = zerr.With(wrapped, "stderr", msg)
		}
		return "", wrapped
	}

	return stdout.String(), nil
}
