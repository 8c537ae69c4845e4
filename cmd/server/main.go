// Package main - Entry point for the ROAS calculator HTTP server
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"roas-calculator/api"
	"roas-calculator/core/catalog"
	"roas-calculator/core/engine"
	"roas-calculator/core/output"
	"roas-calculator/internal/config"
	"roas-calculator/internal/logging"
)

const version = "0.1.0"

func main() {
	cfgPath := flag.String("config", config.DefaultPath(), "Config file")
	addr := flag.String("addr", "", "Server address (overrides config)")
	catalogPath := flag.String("catalog", "", "Tier catalog file (overrides config)")
	flag.Parse()

	if err := run(*cfgPath, *addr, *catalogPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfgPath, addr, catalogPath string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		return err
	}
	defer logging.Sync()

	if addr != "" {
		cfg.Server.Addr = addr
	}
	if catalogPath != "" {
		cfg.Catalog.Path = catalogPath
	}

	cat := catalog.Default()
	if cfg.Catalog.Path != "" {
		if cat, err = catalog.Load(cfg.Catalog.Path); err != nil {
			return err
		}
	}

	eng := engine.New(cat,
		engine.WithLogger(logging.Named("engine")),
		engine.WithCurrency(cfg.Output.Currency),
	)
	srv := api.NewServer(version, eng,
		api.WithLogger(logging.Named("api")),
		api.WithLanguage(output.ParseLocale(cfg.Output.Locale)),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := logging.With(zap.String("version", version), zap.String("addr", cfg.Server.Addr))
	log.Info("starting server", zap.Int("tiers", cat.Len()))

	if err := srv.ListenAndServe(ctx, cfg.Server.Addr, cfg.Server.ReadTimeout(), cfg.Server.WriteTimeout()); err != nil {
		logging.Error("server stopped", zap.Error(err))
		return err
	}
	log.Info("server stopped")
	return nil
}
