// Package packwiz reads packwiz mod metadata and drives the packwiz
// CLI against a pack directory.
package packwiz

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Mod mirrors a mods/*.pw.toml metadata file maintained by packwiz.
type Mod struct {
	Name     string `toml:"name"`
	Filename string `toml:"filename"`
	Side     string `toml:"side"`

	Download struct {
		URL        string `toml:"url"`
		HashFormat string `toml:"hash-format"`
		Hash       string `toml:"hash"`
	} `toml:"download"`

	Update struct {
		Modrinth struct {
			ModID   string `toml:"mod-id"`
			Version string `toml:"version"`
		} `toml:"modrinth"`
	} `toml:"update"`

	path string
}

// Slug is the packwiz-facing identifier of the mod, derived from the
// metadata file name.
func (m Mod) Slug() string {
	return strings.TrimSuffix(filepath.Base(m.path), ".pw.toml")
}

// Path ...
func (m Mod) Path() string {
	return m.path
}

// OnModrinth reports whether the mod is tracked against a Modrinth
// project. Mods installed from CurseForge or by hand are not.
func (m Mod) OnModrinth() bool {
	return m.Update.Modrinth.ModID != ""
}

// ReadAll ...
func ReadAll(dir string) ([]Mod, error) {
	var mods []Mod
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(p, ".pw.toml") {
			mod, err := parseMod(p)
			if err != nil {
				return fmt.Errorf("error: %w", err)
			}
			mods = append(mods, mod)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return mods, nil
}

// parseMod ...
func parseMod(file string) (Mod, error) {
	var mod Mod
	data, err := os.ReadFile(file)
	if err != nil {
		return mod, fmt.Errorf("failed to read file %s: %w", file, err)
	}
	if err = toml.Unmarshal(data, &mod); err != nil {
		return mod, fmt.Errorf("failed to parse file %s: %w", file, err)
	}
	mod.path = file
	return mod, nil
}
