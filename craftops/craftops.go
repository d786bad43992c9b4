// Package craftops ties together the deployment workflow of a
// packwiz-managed modded Minecraft server: client server-list
// encoding, mod updates from Modrinth, container image build/push and
// fleet status.
package craftops

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dj-forge/craftops/craftops/image"
	"github.com/dj-forge/craftops/craftops/modrinth"
	"github.com/dj-forge/craftops/craftops/packwiz"
	"github.com/dj-forge/craftops/craftops/serverlist"
	"github.com/dj-forge/craftops/craftops/srv"
	"github.com/dj-forge/craftops/craftops/updater"
)

// CraftOps represents a single invocation of the tool. It holds the
// configuration, the logger and the wired services.
type CraftOps struct {
	log  *slog.Logger
	conf Config

	pack    *packwiz.Runner
	builder *image.Builder

	c chan struct{}
}

// NewCraftOps creates a new instance of CraftOps and wires its
// services from the configuration.
func NewCraftOps(log *slog.Logger, conf Config) *CraftOps {
	ops := &CraftOps{
		log:  log,
		conf: conf,

		c: make(chan struct{}),
	}

	ops.pack = packwiz.NewRunner(log, conf.Modpack.PackwizBin, conf.Modpack.Dir)
	ops.builder = image.NewBuilder(log, conf.Image.Name, conf.Image.Tag, conf.Image.Registry, conf.Image.Context, conf.Image.Dockerfile)

	ops.loadServices()
	ops.loadServers()

	return ops
}

// loadServices loads all the services.
func (ops *CraftOps) loadServices() {
	modrinth.NewService(ops.log, ops.conf.Modrinth.URL, ops.conf.Modrinth.UserAgent, ops.conf.Modrinth.RequestTimeout.Std())
}

// loadServers registers the configured fleet with the server manager.
func (ops *CraftOps) loadServers() {
	for _, cfg := range ops.conf.Servers {
		srv.Register(
			srv.NewServer(ops.log, cfg),
		)
	}
}

// Log ...
func (ops *CraftOps) Log() *slog.Logger {
	return ops.log
}

// Config ...
func (ops *CraftOps) Config() Config {
	return ops.conf
}

// ConfiguredServers returns the configured fleet as server-list
// entries, in config order.
func (ops *CraftOps) ConfiguredServers() serverlist.List {
	entries := make(serverlist.List, 0, len(ops.conf.Servers))
	for _, s := range ops.conf.Servers {
		entries = append(entries, serverlist.Entry{Name: s.Name, Address: s.Address})
	}
	return entries
}

// UpdateMods checks every Modrinth-tracked mod in the pack for a
// newer matching version and applies updates through packwiz.
func (ops *CraftOps) UpdateMods(ctx context.Context, yes, dryRun bool) error {
	u := updater.New(ops.log, ops.pack, ops.conf.Modpack.Loader, ops.conf.GameVersionConstraint())
	u.Yes = yes
	u.DryRun = dryRun
	return u.Run(ctx)
}

// BuildImage refreshes the pack manifest, then builds the server
// image.
func (ops *CraftOps) BuildImage(ctx context.Context) error {
	if err := ops.pack.Refresh(ctx); err != nil {
		return err
	}
	return ops.builder.Build(ctx)
}

// PushImage ...
func (ops *CraftOps) PushImage(ctx context.Context) error {
	return ops.builder.Push(ctx)
}

// CheckServers probes the whole fleet once and blocks until every
// check finished.
func (ops *CraftOps) CheckServers() {
	srv.CheckAll(ops.conf.Status.PingTimeout.Std())
}

// statusRouter builds the authenticated router serving the fleet
// status.
func (ops *CraftOps) statusRouter() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.Default()
	router.Use(func(c *gin.Context) {
		if c.GetHeader("authorization") != ops.conf.Status.AuthKey {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	})
	router.GET("/status", func(c *gin.Context) {
		result := make(map[string]srv.Status)
		for name, server := range srv.All() {
			result[name] = server.Status()
		}
		c.JSON(http.StatusOK, result)
	})
	router.GET("/status/:name", func(c *gin.Context) {
		server := srv.FromName(c.Param("name"))
		if server == nil {
			c.JSON(http.StatusNotFound, gin.H{"reason": "no server found"})
			return
		}
		c.JSON(http.StatusOK, server.Status())
	})
	return router
}

// ServeStatus exposes the fleet status as an authenticated JSON
// endpoint and re-checks the fleet periodically until ctx is done.
func (ops *CraftOps) ServeStatus(ctx context.Context) error {
	go ops.startTicking()
	defer close(ops.c)

	server := &http.Server{Addr: ops.conf.Status.GinAddress, Handler: ops.statusRouter()}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	ops.log.Info("serving fleet status", "address", ops.conf.Status.GinAddress)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// startTicking re-checks the fleet on an interval while the status
// endpoint is up.
func (ops *CraftOps) startTicking() {
	ops.CheckServers()

	t := time.NewTicker(time.Second * 30)
	defer t.Stop()

	for {
		select {
		case <-ops.c:
			return
		case <-t.C:
			ops.CheckServers()
		}
	}
}
