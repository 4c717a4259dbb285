// Package framework materializes a pinned revision of the presentation
// framework into a build directory.
package framework

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
)

// Defaults for the reveal.js framework snapshot.
const (
	DefaultRepository = "https://github.com/hakimel/reveal.js"
	DefaultRevision   = "bddeb70f4ef18aca1e0e7a3feed3f7f91de9682f"
	DefaultAttempts   = 3
)

// Runner runs a command in a directory and returns its combined output.
type Runner func(ctx context.Context, dir, name string, args ...string) ([]byte, error)

// Config configures a Fetcher.
type Config struct {
	// Repository is the git remote URL.
	Repository string
	// Revision is the commit to check out.
	Revision string
	// Attempts bounds the number of fetch attempts.
	Attempts uint
	// Delay is the initial delay between fetch attempts.
	Delay time.Duration
	// Runner executes git; defaults to os/exec.
	Runner Runner
	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// Fetcher checks out a fixed framework revision with git.
type Fetcher struct {
	cfg Config
}

// NewFetcher creates a Fetcher, filling unset fields with defaults.
func NewFetcher(cfg Config) *Fetcher {
	if cfg.Repository == "" {
		cfg.Repository = DefaultRepository
	}
	if cfg.Revision == "" {
		cfg.Revision = DefaultRevision
	}
	if cfg.Attempts == 0 {
		cfg.Attempts = DefaultAttempts
	}
	if cfg.Delay == 0 {
		cfg.Delay = 2 * time.Second
	}
	if cfg.Runner == nil {
		cfg.Runner = execRunner
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Fetcher{cfg: cfg}
}

// Fetch initializes dir as a git checkout of the configured revision.
// Files in dir that are not tracked by the framework are left in place.
func (f *Fetcher) Fetch(ctx context.Context, dir string) error {
	f.cfg.Logger.Info("fetching framework", "repository", f.cfg.Repository, "revision", f.cfg.Revision, "dir", dir)

	if _, err := f.git(ctx, dir, "init"); err != nil {
		return err
	}
	if err := f.ensureRemote(ctx, dir); err != nil {
		return err
	}

	err := retry.Do(
		func() error {
			_, err := f.git(ctx, dir, "fetch", "origin", f.cfg.Revision)
			return err
		},
		retry.Context(ctx),
		retry.Attempts(f.cfg.Attempts),
		retry.Delay(f.cfg.Delay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			f.cfg.Logger.Warn("framework fetch failed, retrying", "attempt", n+1, "error", err)
		}),
	)
	if err != nil {
		return err
	}

	_, err = f.git(ctx, dir, "reset", "--hard", "FETCH_HEAD")
	return err
}

// ensureRemote points origin at the configured repository.
func (f *Fetcher) ensureRemote(ctx context.Context, dir string) error {
	out, err := f.git(ctx, dir, "remote")
	if err != nil {
		return err
	}
	for _, name := range strings.Fields(string(out)) {
		if name == "origin" {
			_, err := f.git(ctx, dir, "remote", "set-url", "origin", f.cfg.Repository)
			return err
		}
	}
	_, err = f.git(ctx, dir, "remote", "add", "origin", f.cfg.Repository)
	return err
}

func (f *Fetcher) git(ctx context.Context, dir string, args ...string) ([]byte, error) {
	out, err := f.cfg.Runner(ctx, dir, "git", args...)
	if err != nil {
		return out, fmt.Errorf("git %s: %w: %s", strings.Join(args, " "), err, bytes.TrimSpace(out))
	}
	return out, nil
}

func execRunner(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	return cmd.CombinedOutput()
}
