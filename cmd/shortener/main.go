package main

import (
	"context"
	"log"
	"os"

	"github.com/aseptimu/link-shortener/internal/app/config"
	"github.com/aseptimu/link-shortener/internal/app/logger"
	"github.com/aseptimu/link-shortener/internal/app/shell"
)

func main() {
	cfg, err := config.NewConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}

	sugar, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("cannot init logger: %v", err)
	}
	defer sugar.Sync()

	sugar.Debugw("Starting shortener", "config", cfg)
	if err := shell.Run(context.Background(), config.StoragePath, os.Stdin, os.Stdout, sugar); err != nil {
		sugar.Fatalw("Shortener stopped", "error", err)
	}
}
