package repository

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/go-git/go-git/v5"
	"go.uber.org/zap"
)

// gitClient is the implementation of the GitClient interface.
type gitClient struct {
	binary string
	remote string
	logger *zap.Logger
}

// NewGitClient creates a new GitClient shelling out to the given binary.
func NewGitClient(binary, remote string, logger *zap.Logger) GitClient {
	return &gitClient{binary: binary, remote: remote, logger: logger}
}

// Available checks that the git binary resolves on PATH.
func (g *gitClient) Available() error {
	if _, err := exec.LookPath(g.binary); err != nil {
		return fmt.Errorf("%s is not installed or not on PATH: %w", g.binary, err)
	}
	return nil
}

// LsRemote runs `git ls-remote <ref>` with output captured, so a failure
// carries git's own diagnostic instead of contaminating stdout.
func (g *gitClient) LsRemote(ctx context.Context, ref string) error {
	ctx, cancel := context.WithTimeout(ctx, DefaultRemoteTimeout)
	defer cancel()
	g.logger.Debug("exec", zap.String("binary", g.binary), zap.Strings("args", []string{"ls-remote", ref}))
	cmd := exec.CommandContext(ctx, g.binary, "ls-remote", ref)
	var stderr bytes.Buffer
	cmd.Stdout = nil
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return fmt.Errorf("ls-remote timed out after %v", DefaultRemoteTimeout)
		}
		if msg := stderr.String(); msg != "" {
			return fmt.Errorf("ls-remote failed: %w (stderr: %s)", err, msg)
		}
		return fmt.Errorf("ls-remote failed: %w", err)
	}
	return nil
}

// CloneInto runs `git clone <ref>` with the subprocess working directory
// set to dir. Progress goes to the user's terminal untouched.
func (g *gitClient) CloneInto(ctx context.Context, dir, ref string) error {
	g.logger.Debug("exec",
		zap.String("binary", g.binary),
		zap.Strings("args", []string{"clone", ref}),
		zap.String("dir", dir))
	cmd := exec.CommandContext(ctx, g.binary, "clone", ref)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("clone of %s failed: %w", ref, err)
	}
	return nil
}

// OriginURL resolves the configured remote URL of the enclosing repository.
func (g *gitClient) OriginURL() (string, error) {
	repo, err := git.PlainOpenWithOptions(".", &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", fmt.Errorf("not inside a git repository: %w", err)
	}
	remote, err := repo.Remote(g.remote)
	if err != nil {
		return "", fmt.Errorf("repository has no %q remote: %w", g.remote, err)
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", fmt.Errorf("remote %q has no URL configured", g.remote)
	}
	return urls[0], nil
}

// WorktreeRoot resolves the worktree path of the enclosing repository.
func (g *gitClient) WorktreeRoot() (string, error) {
	repo, err := git.PlainOpenWithOptions(".", &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", fmt.Errorf("not inside a git repository: %w", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("repository has no worktree: %w", err)
	}
	return wt.Filesystem.Root(), nil
}

// Passthrough forwards args to git with inherited stdio and reports the
// subprocess exit status verbatim.
func (g *gitClient) Passthrough(ctx context.Context, args []string) error {
	g.logger.Debug("passthrough", zap.String("binary", g.binary), zap.Strings("args", args))
	cmd := exec.CommandContext(ctx, g.binary, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	err := cmd.Run()
	if err == nil {
		return nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ExitError{Code: exitErr.ExitCode()}
	}
	return fmt.Errorf("failed to run %s: %w", g.binary, err)
}
