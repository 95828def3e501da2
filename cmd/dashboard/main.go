// Command dashboard serves the SmartLogistics translation API.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/smartlogistics/i18n/internal/config"
	"github.com/smartlogistics/i18n/internal/server"
)

func main() {
	cfg, err := server.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("dashboard: %v", err)
	}
	log.SetPrefix("[DASHBOARD] ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx, cfg); err != nil {
		log.Fatalf("dashboard: %v", err)
	}
}
