/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/cristianoliveira/tabstrip/internal/catalog"
	"github.com/cristianoliveira/tabstrip/internal/config"
	"github.com/cristianoliveira/tabstrip/internal/icon"
	"github.com/cristianoliveira/tabstrip/internal/logging"
	"github.com/cristianoliveira/tabstrip/internal/version"
)

// iconClient bundles the fetch cache and the bundled asset catalog
// behind the use-case interfaces. Construction is deferred to first use
// so command registration at init time never touches configuration.
type iconClient struct {
	once    sync.Once
	cache   *icon.Cache
	catalog *catalog.Catalog
}

func (c *iconClient) setup() {
	config.Load()
	iconsDir := ""
	if dir := config.Get("config_dir", ""); dir != "" {
		iconsDir = filepath.Join(dir, "icons")
	}
	c.cache = icon.NewCache(icon.CacheOptions{
		FetchTimeout: config.GetDuration("fetch_timeout", 30*time.Second),
		Logger:       logging.GetGlobal(),
	})
	c.catalog = catalog.New(iconsDir)
}

func (c *iconClient) Resolve(ctx context.Context, key string) ([]byte, error) {
	c.once.Do(c.setup)
	return c.cache.Resolve(ctx, key)
}

func (c *iconClient) Asset(ref string) ([]byte, error) {
	c.once.Do(c.setup)
	return c.catalog.Asset(ref)
}

// appVersion exposes the build version to commands that display it.
type appVersion struct{}

func (appVersion) Version() string { return version.Detailed() }
