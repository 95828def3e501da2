// Command catalog-import loads locale files into a SQL catalog store.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/smartlogistics/i18n/internal/catalogimport"
	"github.com/smartlogistics/i18n/internal/config"
)

func main() {
	cfg, err := catalogimport.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("catalog-import: %v", err)
	}
	if err := catalogimport.Run(context.Background(), cfg, os.Stdout); err != nil {
		config.Exitf("catalog-import: %v", err)
	}
}
