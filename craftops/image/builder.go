// Package image wraps the docker CLI for building and pushing the
// server image. Layering, caching and registry auth are Docker's
// problem; this is deliberately thin glue.
package image

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
)

// Builder ...
type Builder struct {
	log *slog.Logger

	name       string
	tag        string
	registry   string
	contextDir string
	dockerfile string
}

// NewBuilder ...
func NewBuilder(log *slog.Logger, name, tag, registry, contextDir, dockerfile string) *Builder {
	if tag == "" {
		tag = "latest"
	}
	if contextDir == "" {
		contextDir = "."
	}
	return &Builder{
		log:        log,
		name:       name,
		tag:        tag,
		registry:   registry,
		contextDir: contextDir,
		dockerfile: dockerfile,
	}
}

// Ref returns the fully qualified image reference.
func (b *Builder) Ref() string {
	if b.registry == "" {
		return fmt.Sprintf("%s:%s", b.name, b.tag)
	}
	return fmt.Sprintf("%s/%s:%s", b.registry, b.name, b.tag)
}

// Build ...
func (b *Builder) Build(ctx context.Context) error {
	args := []string{"build", "-t", b.Ref()}
	if b.dockerfile != "" {
		args = append(args, "-f", b.dockerfile)
	}
	args = append(args, b.contextDir)

	b.log.Info("building image", "ref", b.Ref(), "context", b.contextDir)
	return b.docker(ctx, args...)
}

// Push ...
func (b *Builder) Push(ctx context.Context) error {
	b.log.Info("pushing image", "ref", b.Ref())
	return b.docker(ctx, "push", b.Ref())
}

// docker ...
func (b *Builder) docker(ctx context.Context, args ...string) error {
	cmd := exec.CommandContext(ctx, "docker", args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("docker %s: %w", args[0], err)
	}
	return nil
}
