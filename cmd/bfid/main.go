// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	zlog "github.com/rs/zerolog/log"

	"github.com/ezrec/bfi/config"
	"github.com/ezrec/bfi/server"
)

func main() {
	var path string
	var addr string
	var verbose bool

	flag.StringVar(&path, "config", "", "TOML configuration file")
	flag.StringVar(&addr, "addr", "", "listen address, overrides the configuration")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	cfg := config.Default()
	if len(path) != 0 {
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			log.Fatal(err)
		}
	}

	config.ApplyEnv(&cfg)
	if len(addr) != 0 {
		cfg.Addr = addr
	}
	if verbose {
		cfg.LogLevel = "debug"
	}

	if err := config.Validate(cfg); err != nil {
		log.Fatal(err)
	}

	logger, err := server.InitLogger(os.Stdout, cfg.Name, cfg.LogLevel)
	if err != nil {
		log.Fatalf("log_level: %v", err)
	}

	gin.SetMode(gin.ReleaseMode)

	srv := server.New(cfg, logger)
	srv.Verbose = verbose

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	served := make(chan error, 1)
	go func() {
		served <- srv.Serve()
	}()

	select {
	case err := <-served:
		if err != nil {
			zlog.Fatal().Err(err).Msg("server stopped")
		}
		return
	case <-ctx.Done():
	}

	zlog.Info().Msg("shutting down")

	shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdown); err != nil {
		zlog.Error().Err(err).Msg("shutdown")
	}
}
