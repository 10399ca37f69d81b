package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"veteranmentors.org/mentors-web/internal/config"
	"veteranmentors.org/mentors-web/internal/content"
	"veteranmentors.org/mentors-web/internal/i18n"
	"veteranmentors.org/mentors-web/internal/live"
	"veteranmentors.org/mentors-web/internal/logging"
	mw "veteranmentors.org/mentors-web/internal/middleware"
	"veteranmentors.org/mentors-web/locales"
)

// app holds the process-wide dependencies shared by every command.
type app struct {
	cfg    *config.Config
	log    *zap.Logger
	store  *content.Store
	bundle *i18n.Bundle
	views  *views
	pages  *live.Registry
	live   *live.Handler
}

// loadConfig reads the config file and environment.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func newApp(cfg *config.Config) (*app, error) {
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return newAppWithLogger(cfg, logger)
}

func newAppWithLogger(cfg *config.Config, logger *zap.Logger) (*app, error) {
	var lib *content.Library
	var err error
	if cfg.ContentDir != "" {
		lib, err = content.LoadDir(cfg.ContentDir, cfg.DefaultSite)
	} else {
		lib, err = content.Embedded(cfg.DefaultSite)
	}
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}
	for _, name := range lib.Names() {
		site, _ := lib.Site(name)
		for _, w := range site.Warnings() {
			logger.Warn("content warning", zap.String("site", name), zap.String("warning", w))
		}
	}

	var bundle *i18n.Bundle
	if cfg.LocalesDir != "" {
		bundle, err = i18n.Load(cfg.LocalesDir, cfg.FallbackLocale, nil)
	} else {
		bundle, err = i18n.LoadFS(locales.FS, cfg.FallbackLocale, nil)
	}
	if err != nil {
		return nil, fmt.Errorf("load locales: %w", err)
	}

	v, err := newViews(bundle, cfg.Dev, templatesDirFor(cfg))
	if err != nil {
		return nil, err
	}

	if ephemeral := mw.ConfigureSessions(cfg.SessionKey, cfg.Env != "dev"); ephemeral {
		logger.Warn("session key not configured; using an ephemeral key")
	}

	pages := live.NewRegistry(cfg.PageTTL, logger.Named("live"))
	return &app{
		cfg:    cfg,
		log:    logger,
		store:  content.NewStore(lib),
		bundle: bundle,
		views:  v,
		pages:  pages,
		live:   live.NewHandler(pages, logger.Named("live"), originChecker(cfg.CORSOrigins)),
	}, nil
}

// templatesDirFor returns the on-disk templates directory used for reparsing
// in dev mode, or "" to use the embedded copy.
func templatesDirFor(cfg *config.Config) string {
	if !cfg.Dev {
		return ""
	}
	if fi, err := os.Stat(templatesDir); err == nil && fi.IsDir() {
		return templatesDir
	}
	return ""
}

// originChecker allows websocket origins listed in the CORS config. A
// wildcard or empty list falls back to same-host checks.
func originChecker(origins []string) func(string) bool {
	allowed := map[string]struct{}{}
	for _, o := range origins {
		if o == "*" {
			return nil
		}
		allowed[o] = struct{}{}
	}
	if len(allowed) == 0 {
		return nil
	}
	return func(origin string) bool {
		_, ok := allowed[origin]
		return ok
	}
}
