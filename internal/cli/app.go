// Package cli wires configuration, stores and sources into a trade-in
// service and implements the command behaviors of cmd/tradein.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/aretw0/tradein"
	"github.com/aretw0/tradein/internal/config"
	"github.com/aretw0/tradein/internal/logging"
	"github.com/aretw0/tradein/internal/metrics"
	loamadapter "github.com/aretw0/tradein/pkg/adapters/loam"
	"github.com/aretw0/tradein/pkg/adapters/memory"
	redisadapter "github.com/aretw0/tradein/pkg/adapters/redis"
	"github.com/aretw0/tradein/pkg/adapters/rest"
	"github.com/aretw0/tradein/pkg/catalog"
	"github.com/aretw0/tradein/pkg/domain"
	"github.com/aretw0/tradein/pkg/persistence/middleware"
	"github.com/aretw0/tradein/pkg/ports"
	backend "github.com/redis/go-redis/v9"
)

// Options are the persistent command line settings. Non-empty values
// override the loaded configuration.
type Options struct {
	ConfigPath string
	EnvFile    string
	Debug      bool
	LogFormat  string
	APIURL     string
	CatalogDir string
	RedisAddr  string
}

// App is a fully wired trade-in service plus the pieces commands need.
type App struct {
	Config   config.Config
	Logger   *slog.Logger
	Service  *tradein.Service
	Metrics  *metrics.Collector
	Catalogs *loamadapter.Source

	closers []func() error
}

// NewApp loads the configuration and builds the service.
func NewApp(opts Options) (*App, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, err
	}

	level := cfg.Level()
	if opts.Debug {
		level = slog.LevelDebug
	}
	logger, err := logging.NewWithFormat(os.Stderr, level, cfg.Log.Format)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config:  cfg,
		Logger:  logger,
		Metrics: metrics.New(),
	}

	svcOpts := []tradein.Option{
		tradein.WithLogger(logger),
		tradein.WithFloor(cfg.Floor),
		tradein.WithShipping(domain.FromFloat(cfg.Shipping)),
		tradein.WithLifecycleHooks(app.Metrics.Hooks()),
	}
	if opts.Debug {
		svcOpts = append(svcOpts, tradein.WithLifecycleHooks(createDebugHooks(logger)))
	}

	sources, err := app.sources()
	if err != nil {
		return nil, err
	}
	svcOpts = append(svcOpts, sources...)

	stores, err := app.stores()
	if err != nil {
		app.Close()
		return nil, err
	}
	svcOpts = append(svcOpts, stores...)

	svc, err := tradein.New(svcOpts...)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("error initializing tradein: %w", err)
	}
	app.Service = svc
	return app, nil
}

func loadConfig(opts Options) (config.Config, error) {
	loadOpts := []config.Option{}
	if opts.ConfigPath != "" {
		loadOpts = append(loadOpts, config.WithFile(opts.ConfigPath))
	}
	if opts.EnvFile != "" {
		loadOpts = append(loadOpts, config.WithEnvFile(opts.EnvFile))
	}
	cfg, err := config.Load(loadOpts...)
	if err != nil {
		return config.Config{}, err
	}
	if opts.LogFormat != "" {
		cfg.Log.Format = opts.LogFormat
	}
	if opts.APIURL != "" {
		cfg.APIURL = opts.APIURL
	}
	if opts.CatalogDir != "" {
		cfg.CatalogDir = opts.CatalogDir
	}
	if opts.RedisAddr != "" {
		cfg.Redis.Addr = opts.RedisAddr
	}
	return cfg, nil
}

// sources picks the console, product and catalog sources: the storefront API
// when configured, the demo catalog otherwise. Per-console catalog documents
// from the catalog directory take precedence over the API catalogs.
func (a *App) sources() ([]tradein.Option, error) {
	var (
		consoles ports.ConsoleSource
		products ports.ProductSource
		catalogs ports.CatalogSource
	)
	if a.Config.APIURL != "" {
		client := rest.New(a.Config.APIURL,
			rest.WithImageBase(a.Config.ImageBase),
			rest.WithLogger(a.Logger),
		)
		consoles, products, catalogs = client, client, client
		a.Logger.Info("Using storefront API", "url", a.Config.APIURL)
	} else {
		demo := memory.NewSource(DemoProducts(), nil)
		consoles, products, catalogs = demo, demo, demo
	}

	var opts []tradein.Option
	if a.Config.FallbackCatalog != "" {
		fb, err := catalog.LoadFile(a.Config.FallbackCatalog)
		if err != nil {
			return nil, fmt.Errorf("failed to load fallback catalog: %w", err)
		}
		opts = append(opts, tradein.WithFallbackCatalog(fb))
	}

	if a.Config.CatalogDir != "" {
		src, err := loamadapter.Open(a.Config.CatalogDir)
		if err != nil {
			return nil, fmt.Errorf("failed to open catalog directory: %w", err)
		}
		a.Catalogs = src
		catalogs = src
	}

	return append(opts,
		tradein.WithConsoleSource(consoles),
		tradein.WithProductSource(products),
		tradein.WithCatalogSource(catalogs),
	), nil
}

// stores selects Redis or in-memory persistence and wraps the session store
// with encryption when a key is configured.
func (a *App) stores() ([]tradein.Option, error) {
	var (
		sessions ports.SessionStore
		opts     []tradein.Option
	)

	if a.Config.UseRedis() {
		rc := a.Config.Redis
		client := backend.NewClient(&backend.Options{
			Addr:     rc.Addr,
			Password: rc.Password,
			DB:       rc.DB,
		})
		a.closers = append(a.closers, client.Close)

		sessions = redisadapter.NewFromClient(client,
			redisadapter.WithPrefix(rc.Prefix+"session:"),
			redisadapter.WithTTL(rc.TTL),
		)
		opts = append(opts,
			tradein.WithResultStore(redisadapter.NewResultStore(client, rc.Prefix)),
			tradein.WithBlobStore(redisadapter.NewBlobStore(client, rc.Prefix)),
			tradein.WithLocker(redisadapter.NewLocker(client, rc.Prefix)),
		)
		a.Logger.Info("Using Redis persistence", "addr", rc.Addr, "prefix", rc.Prefix)
	} else {
		sessions = memory.NewStore()
	}

	if a.Config.EncryptionKey != "" {
		mw, err := encryptionMiddleware(a.Config.EncryptionKey, a.Config.FallbackKeys)
		if err != nil {
			return nil, err
		}
		sessions = middleware.Chain(sessions, mw)
		a.Logger.Debug("Session encryption enabled", "fallback_keys", len(a.Config.FallbackKeys))
	}

	return append(opts, tradein.WithSessionStore(sessions)), nil
}

func encryptionMiddleware(active string, fallback []string) (middleware.Middleware, error) {
	key, err := middleware.ParseKey(active)
	if err != nil {
		return nil, fmt.Errorf("encryption_key: %w", err)
	}
	cfg := middleware.EncryptionConfig{ActiveKey: key}
	for i, raw := range fallback {
		k, err := middleware.ParseKey(raw)
		if err != nil {
			return nil, fmt.Errorf("fallback_keys[%d]: %w", i, err)
		}
		cfg.FallbackKeys = append(cfg.FallbackKeys, k)
	}
	return middleware.NewEncryptionMiddleware(cfg), nil
}

// Close releases connections opened by NewApp.
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c())
	}
	a.closers = nil
	return errors.Join(errs...)
}

// WatchCatalogs invalidates cached catalog documents as they change on disk.
// It does nothing without a catalog directory.
func (a *App) WatchCatalogs(ctx context.Context) error {
	if a.Catalogs == nil {
		return nil
	}
	changes, err := a.Catalogs.Watch(ctx)
	if err != nil {
		return fmt.Errorf("failed to watch catalogs: %w", err)
	}
	go func() {
		for id := range changes {
			a.Logger.Info("Catalog reloaded", "console", id)
		}
	}()
	return nil
}

// Version returns the trimmed release version.
func Version() string {
	return strings.TrimSpace(tradein.Version)
}
