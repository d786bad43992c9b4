package craftops

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/restartfu/gophig"

	"github.com/dj-forge/craftops/craftops/srv"
	"github.com/dj-forge/craftops/craftops/util"
)

// Config holds the tool configuration: pack location, image naming,
// Modrinth access and the deployed server fleet.
type Config struct {
	CraftOps struct {
		SentryDsn string
		LogLevel  string // Can be "debug", "info", "warn", "error"
	}
	Modpack struct {
		PackwizBin        string
		Dir               string
		Loader            string
		MinecraftVersion  string
		VersionConstraint string
	}
	Image struct {
		Name       string
		Tag        string
		Registry   string
		Context    string
		Dockerfile string
	}
	Modrinth struct {
		URL            string
		UserAgent      string
		RequestTimeout util.Duration
	}
	Status struct {
		GinAddress  string
		AuthKey     string
		PingTimeout util.Duration
	}
	Servers []srv.Config
}

// DefaultConfig returns a config with prefilled default values.
func DefaultConfig() Config {
	c := Config{}

	c.CraftOps.SentryDsn = ""
	c.CraftOps.LogLevel = "info"

	c.Modpack.PackwizBin = "packwiz"
	c.Modpack.Dir = "pack"
	c.Modpack.Loader = "fabric"
	c.Modpack.MinecraftVersion = "1.21.1"
	c.Modpack.VersionConstraint = "1.21.*"

	c.Image.Name = "minecraft-server"
	c.Image.Tag = "latest"
	c.Image.Registry = ""
	c.Image.Context = "."
	c.Image.Dockerfile = "Dockerfile"

	c.Modrinth.URL = "https://api.modrinth.com/v2"
	c.Modrinth.UserAgent = "dj-forge/craftops"
	c.Modrinth.RequestTimeout = util.Duration(10 * time.Second)

	c.Status.GinAddress = ":8080"
	c.Status.AuthKey = "secret-key"
	c.Status.PingTimeout = util.Duration(5 * time.Second)

	c.Servers = []srv.Config{
		{Name: "D&J Server (gamingrig)", Address: "gamingrig:25565"},
	}

	return c
}

// GameVersionConstraint returns the wildcard constraint mod versions
// must satisfy, falling back to the exact Minecraft version when no
// constraint is configured.
func (c Config) GameVersionConstraint() string {
	if c.Modpack.VersionConstraint != "" {
		return c.Modpack.VersionConstraint
	}
	return c.Modpack.MinecraftVersion
}

// ParseLogLevel returns the appropriate slog.Level based on string configuration.
// Returns an error if the provided log level string is not recognized.
func ParseLogLevel(level string) (slog.Level, error) {
	switch level {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unrecognized log level: %q", level)
	}
}

// ReadConfig loads the tool configuration from craftops.toml.
// If the file doesn't exist, it creates a new one with default values.
// Returns the loaded configuration and any error encountered.
func ReadConfig() (Config, error) {
	g := gophig.NewGophig[Config]("./craftops.toml", gophig.TOMLMarshaler{}, os.ModePerm)
	_, err := g.LoadConf()
	if os.IsNotExist(err) {
		err = g.SaveConf(DefaultConfig())
		if err != nil {
			return Config{}, err
		}
	}
	c, err := g.LoadConf()
	return c, err
}
