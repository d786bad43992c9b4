package packwiz

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
)

// Runner executes the packwiz binary against a pack directory (the
// directory containing pack.toml).
type Runner struct {
	log *slog.Logger
	bin string
	dir string
}

// NewRunner ...
func NewRunner(log *slog.Logger, bin, dir string) *Runner {
	if bin == "" {
		bin = "packwiz"
	}
	return &Runner{
		log: log,
		bin: bin,
		dir: dir,
	}
}

// Dir ...
func (r *Runner) Dir() string {
	return r.dir
}

// ModsDir returns the directory holding the *.pw.toml metadata files.
func (r *Runner) ModsDir() string {
	return filepath.Join(r.dir, "mods")
}

// Refresh regenerates the pack index and hashes.
func (r *Runner) Refresh(ctx context.Context) error {
	return r.run(ctx, "refresh")
}

// Update moves a single mod to the latest acceptable version.
func (r *Runner) Update(ctx context.Context, slug string) error {
	return r.run(ctx, "update", slug)
}

// InstallModrinth adds a Modrinth project to the pack.
func (r *Runner) InstallModrinth(ctx context.Context, project string) error {
	return r.run(ctx, "modrinth", "install", project, "--yes")
}

// run ...
func (r *Runner) run(ctx context.Context, args ...string) error {
	r.log.Debug("running packwiz", "args", args, "dir", r.dir)

	cmd := exec.CommandContext(ctx, r.bin, args...)
	cmd.Dir = r.dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("packwiz %v: %w", args, err)
	}
	return nil
}
