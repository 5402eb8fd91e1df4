// Package app assembles the service graph: catalog store, cache, GitHub
// gateway, page renderer, and HTTP server.
package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/persona-sh/personas-site-go/internal/catalog"
	"github.com/persona-sh/personas-site-go/internal/config"
	"github.com/persona-sh/personas-site-go/internal/render"
	"github.com/persona-sh/personas-site-go/internal/server"
	"github.com/persona-sh/personas-site-go/internal/service/cache"
	"github.com/persona-sh/personas-site-go/internal/service/github"
)

// Container bundles assembled services for constructing the runtime server.
type Container struct {
	Config *config.Config
	Logger *zap.Logger

	cacheSvc cache.Cache
	handler  *server.Handler
}

// NewServer builds the HTTP server over the pre-assembled handler.
func (c *Container) NewServer() (*server.Server, error) {
	if c == nil || c.handler == nil {
		return nil, fmt.Errorf("server dependencies not initialized")
	}
	return server.New(c.Config.Server.Addr, c.handler, c.Logger, server.Timeouts{
		Read:  c.Config.Server.ReadTimeout,
		Write: c.Config.Server.WriteTimeout,
	}), nil
}

// Close releases infrastructure held by the container.
func (c *Container) Close() {
	if c.cacheSvc != nil {
		_ = c.cacheSvc.Close()
	}
}

// Build assembles all infrastructure services. Heavy-weight initialization
// happens here so the server package stays focused on request handling.
func Build(ctx context.Context, cfg *config.Config, logger *zap.Logger) (container *Container, err error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger must not be nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	var closers []func()
	defer func() {
		if err != nil {
			for i := len(closers) - 1; i >= 0; i-- {
				closers[i]()
			}
		}
	}()

	// Catalog data is compiled in; a bad registry edit fails here, at
	// startup, not on a request.
	store, err := catalog.NewStore(catalog.Personas, catalog.Categories)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog registry: %w", err)
	}
	logger.Info("Catalog registry loaded",
		zap.Int("personas", store.Len()),
		zap.Int("categories", len(store.Categories())),
	)

	// Metadata cache: Redis when configured, in-process otherwise.
	var cacheSvc cache.Cache
	if cfg.Redis.Host != "" {
		redisCache, err := cache.NewRedisCache(cache.RedisConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create cache service: %w", err)
		}
		cacheSvc = redisCache
	} else {
		logger.Info("REDIS_HOST not set, using in-process metadata cache")
		cacheSvc = cache.NewMemoryCache(time.Hour)
	}
	closers = append(closers, func() {
		_ = cacheSvc.Close()
	})

	// GitHub gateway
	ghOpts := []github.Option{}
	if cfg.GitHub.Token != "" {
		ghOpts = append(ghOpts, github.WithToken(cfg.GitHub.Token))
	}
	ghClient := github.NewClient(
		&http.Client{Timeout: cfg.GitHub.Timeout},
		cacheSvc,
		logger,
		ghOpts...,
	)

	// Page renderer and route handler
	pages, err := render.NewPages(store, cfg.Site.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to build page renderer: %w", err)
	}
	handler := server.NewHandler(store, pages, ghClient, logger,
		cfg.Site.BaseURL, cfg.Site.IssueTrackerURL)

	return &Container{
		Config:   cfg,
		Logger:   logger,
		cacheSvc: cacheSvc,
		handler:  handler,
	}, nil
}
