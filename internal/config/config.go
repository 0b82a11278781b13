package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config is the small set of process-level knobs, loaded from the
// environment with an optional .env file on top.
type Config struct {
	Addr           string
	Dev            bool
	OriginPatterns []string
}

func Load() Config {
	_ = godotenv.Load() // missing .env is fine

	cfg := Config{
		Addr: ":8080",
		Dev:  os.Getenv("DEV") == "true",
	}
	if addr := os.Getenv("ADDR"); addr != "" {
		cfg.Addr = addr
	} else if port := os.Getenv("PORT"); port != "" {
		cfg.Addr = ":" + port
	}
	if origins := os.Getenv("WS_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.OriginPatterns = append(cfg.OriginPatterns, o)
			}
		}
	} else if cfg.Dev {
		cfg.OriginPatterns = []string{"localhost:*", "127.0.0.1:*"}
	}
	return cfg
}
