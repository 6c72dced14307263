package main

import (
	"context"
	"strings"

	"alcyxob/clipclass/internal/app"
	"alcyxob/clipclass/internal/config"
	"alcyxob/clipclass/internal/logger"
)

type commandContext struct {
	configFlag *string
	jsonFlag   *bool
}

func newCommandContext(configFlag *string, jsonFlag *bool) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		jsonFlag:   jsonFlag,
	}
}

func (c *commandContext) jsonOutput() bool {
	return c.jsonFlag != nil && *c.jsonFlag
}

// withCatalog loads config, opens the catalog, runs fn and closes the
// snapshot store again.
func (c *commandContext) withCatalog(ctx context.Context, fn func(*app.Catalog) error) error {
	path := "."
	if c.configFlag != nil && strings.TrimSpace(*c.configFlag) != "" {
		path = strings.TrimSpace(*c.configFlag)
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return err
	}
	// Plan pacing is a UI affordance; the CLI answers immediately.
	cfg.Planner.Delay = 0

	level := cfg.Logging.Level
	if level == "" || strings.EqualFold(level, "info") || strings.EqualFold(level, "debug") {
		level = "warn"
	}
	log, err := logger.New(cfg.Logging.Mode, level)
	if err != nil {
		return err
	}
	defer log.Sync()

	catalog, err := app.Open(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer catalog.Close()
	return fn(catalog)
}
