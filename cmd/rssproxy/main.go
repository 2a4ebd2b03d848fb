package main

import (
	"log"

	"github.com/mhmdxsadk/iraqinews-rss-proxy/internal/app"
	"github.com/mhmdxsadk/iraqinews-rss-proxy/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("FATAL: could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("FATAL: invalid config: %v", err)
	}
	application := app.New(cfg)
	if err := application.Run(); err != nil {
		log.Fatalf("FATAL: %v", err)
	}
}
