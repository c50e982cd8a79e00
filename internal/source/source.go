package source

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/epieczko/agents/internal/catalog"
)

const (
	// freshnessFile holds the Unix time of the last successful fetch.
	freshnessFile = ".source-updated"

	// tmpSuffix is appended to the target dir while a clone is in flight.
	tmpSuffix = ".tmp"
)

// SparsePaths are the only paths a sparse checkout materializes.
var SparsePaths = []string{".claude-plugin", "plugins"}

// ErrUnsafeDir is returned when the checkout directory could not be safely
// replaced.
var ErrUnsafeDir = errors.New("refusing to use an empty, current, or root directory as source checkout")

// Repo is a local checkout of a remote git repository.
type Repo struct {
	URL string
	Dir string
}

// New returns a Repo cloning url into dir.
func New(url, dir string) *Repo {
	return &Repo{URL: url, Dir: dir}
}

// Clone replaces Dir with a fresh shallow clone of URL. A sparse checkout of
// SparsePaths is tried first, then a full shallow clone. The clone lands in a
// sibling .tmp directory and is renamed into place only on success.
func (r *Repo) Clone(ctx context.Context) error {
	if err := r.checkDir(); err != nil {
		return err
	}
	if err := ensureGit(); err != nil {
		return err
	}

	tmpDir := r.Dir + tmpSuffix
	_ = os.RemoveAll(tmpDir)

	if err := os.MkdirAll(filepath.Dir(tmpDir), catalog.DirPerm); err != nil {
		return fmt.Errorf("creating parent directory: %w", err)
	}

	if err := sparseClone(ctx, r.URL, tmpDir); err != nil {
		_ = os.RemoveAll(tmpDir)
		if err := git(ctx, "", "clone", "--depth=1", r.URL, tmpDir); err != nil {
			_ = os.RemoveAll(tmpDir)
			return fmt.Errorf("cloning %s: %w", r.URL, err)
		}
	}

	if err := os.RemoveAll(r.Dir); err != nil {
		_ = os.RemoveAll(tmpDir)
		return fmt.Errorf("removing existing checkout: %w", err)
	}
	if err := os.Rename(tmpDir, r.Dir); err != nil {
		_ = os.RemoveAll(tmpDir)
		return fmt.Errorf("finalizing clone: %w", err)
	}

	return WriteFreshnessMarker(r.Dir, time.Now())
}

// Update pulls the latest commit into an existing checkout, or clones one
// when Dir is not yet a git repository.
func (r *Repo) Update(ctx context.Context) error {
	if err := r.checkDir(); err != nil {
		return err
	}
	if !r.Exists() {
		return r.Clone(ctx)
	}
	if err := ensureGit(); err != nil {
		return err
	}

	if err := git(ctx, r.Dir, "pull", "--depth=1", "--rebase"); err != nil {
		return fmt.Errorf("pulling %s: %w", r.URL, err)
	}
	return WriteFreshnessMarker(r.Dir, time.Now())
}

// Exists reports whether Dir holds a git checkout.
func (r *Repo) Exists() bool {
	_, err := os.Stat(filepath.Join(r.Dir, ".git"))
	return err == nil
}

func (r *Repo) checkDir() error {
	clean := filepath.Clean(r.Dir)
	if r.Dir == "" || clean == "." || clean == string(filepath.Separator) {
		return ErrUnsafeDir
	}
	return nil
}

// WriteFreshnessMarker records t as the last update time of dir.
func WriteFreshnessMarker(dir string, t time.Time) error {
	path := filepath.Join(dir, freshnessFile)
	ts := strconv.FormatInt(t.Unix(), 10)
	if err := os.WriteFile(path, []byte(ts), catalog.FilePerm); err != nil {
		return fmt.Errorf("writing freshness marker: %w", err)
	}
	return nil
}

// ReadFreshnessMarker returns the last update time of dir, or the zero time
// if the marker is absent or unreadable.
func ReadFreshnessMarker(dir string) time.Time {
	data, err := os.ReadFile(filepath.Join(dir, freshnessFile))
	if err != nil {
		return time.Time{}
	}
	ts, err := strconv.ParseInt(strings.TrimSpace(string(data)), 10, 64)
	if err != nil {
		return time.Time{}
	}
	return time.Unix(ts, 0)
}

// IsStale reports whether dir was last updated more than maxAge ago.
// A checkout without a marker is always stale.
func IsStale(dir string, maxAge time.Duration) bool {
	last := ReadFreshnessMarker(dir)
	if last.IsZero() {
		return true
	}
	return time.Since(last) > maxAge
}

func sparseClone(ctx context.Context, url, dir string) error {
	if err := git(ctx, "", "clone", "--depth=1", "--sparse", "--no-checkout", url, dir); err != nil {
		return err
	}
	args := append([]string{"sparse-checkout", "set"}, SparsePaths...)
	if err := git(ctx, dir, args...); err != nil {
		return err
	}
	return git(ctx, dir, "checkout")
}

// git runs one git subcommand in dir, folding its output into the error.
func git(ctx context.Context, dir string, args ...string) error {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("git %s: %w\n%s", args[0], err, strings.TrimSpace(string(output)))
	}
	return nil
}

func ensureGit() error {
	if _, err := exec.LookPath("git"); err != nil {
		return fmt.Errorf("git is required but not found in PATH")
	}
	return nil
}
