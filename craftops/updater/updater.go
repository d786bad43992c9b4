// Package updater keeps the packwiz mod set current against Modrinth.
package updater

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/AlecAivazis/survey/v2"
	"github.com/schollz/progressbar/v3"

	"github.com/dj-forge/craftops/craftops/modrinth"
	"github.com/dj-forge/craftops/craftops/packwiz"
)

// Updater scans the pack's mod metadata, asks Modrinth for newer
// matching versions and applies them through packwiz.
type Updater struct {
	log  *slog.Logger
	pack *packwiz.Runner

	loader     string
	constraint string

	// Yes applies updates without prompting; DryRun only reports.
	Yes    bool
	DryRun bool
}

// New ...
func New(log *slog.Logger, pack *packwiz.Runner, loader, constraint string) *Updater {
	return &Updater{
		log:        log,
		pack:       pack,
		loader:     loader,
		constraint: constraint,
	}
}

// Candidate pairs a local mod with the Modrinth version it should
// move to.
type Candidate struct {
	Mod    packwiz.Mod
	Target modrinth.Version
}

// Run ...
func (u *Updater) Run(ctx context.Context) error {
	mods, err := packwiz.ReadAll(u.pack.ModsDir())
	if err != nil {
		return fmt.Errorf("failed to read mod metadata: %w", err)
	}
	if len(mods) == 0 {
		u.log.Info("no mods found", "dir", u.pack.ModsDir())
		return nil
	}

	candidates, err := u.collect(ctx, mods)
	if err != nil {
		return err
	}
	if len(candidates) == 0 {
		u.log.Info("all mods are up to date", "mods", len(mods))
		return nil
	}

	for _, c := range candidates {
		u.log.Info("update available", "mod", c.Mod.Name, "version", c.Target.VersionNumber, "published", c.Target.DatePublished)
	}
	if u.DryRun {
		return nil
	}

	if !u.Yes {
		apply := false
		prompt := &survey.Confirm{
			Message: fmt.Sprintf("%d mod update(s) available. Apply now?", len(candidates)),
			Default: true,
		}
		if err = survey.AskOne(prompt, &apply); err != nil {
			return fmt.Errorf("prompt failed: %w", err)
		}
		if !apply {
			return nil
		}
	}

	return u.apply(ctx, candidates)
}

// collect ...
func (u *Updater) collect(ctx context.Context, mods []packwiz.Mod) ([]Candidate, error) {
	bar := progressbar.Default(int64(len(mods)), "Checking Modrinth")
	defer bar.Finish()

	var candidates []Candidate
	for _, mod := range mods {
		_ = bar.Add(1)

		if !mod.OnModrinth() {
			u.log.Debug("skipping mod not tracked on Modrinth", "mod", mod.Name)
			continue
		}

		versions, err := modrinth.GlobalService().Versions(ctx, mod.Update.Modrinth.ModID)
		if err != nil {
			if errors.Is(err, modrinth.ErrProjectNotFound) {
				u.log.Warn("project no longer on Modrinth", "mod", mod.Name)
				continue
			}
			return nil, fmt.Errorf("failed to fetch versions for %s: %w", mod.Name, err)
		}

		target, err := modrinth.Resolve(versions, u.loader, u.constraint)
		if err != nil {
			u.log.Debug("no version matches the pack", "mod", mod.Name)
			continue
		}
		if target.ID == mod.Update.Modrinth.Version {
			continue
		}

		candidates = append(candidates, Candidate{Mod: mod, Target: target})
	}
	return candidates, nil
}

// apply ...
func (u *Updater) apply(ctx context.Context, candidates []Candidate) error {
	bar := progressbar.Default(int64(len(candidates)), "Updating mods")
	defer bar.Finish()

	for _, c := range candidates {
		if err := u.pack.Update(ctx, c.Mod.Slug()); err != nil {
			return fmt.Errorf("failed to update %s: %w", c.Mod.Name, err)
		}
		_ = bar.Add(1)
	}

	if err := u.pack.Refresh(ctx); err != nil {
		return fmt.Errorf("failed to refresh pack: %w", err)
	}

	u.log.Info("updated mods", "count", len(candidates))
	return nil
}
