package main

import (
	"log"
	"os"
	"time"

	"github.com/preshdigital/agencykit"
	"github.com/preshdigital/agencykit/views"
)

func main() {
	cfg := agencykit.SiteConfig{
		Name:          agencykit.EnvOr("SITE_NAME", "Presh Digital"),
		URL:           agencykit.EnvOr("SITE_URL", "http://localhost:3000"),
		Description:   agencykit.EnvOr("SITE_DESCRIPTION", "A digital agency for teams that ship."),
		Author:        agencykit.EnvOr("SITE_AUTHOR", "Presh Digital"),
		Addr:          agencykit.EnvOr("ADDR", ":3000"),
		DatabasePath:  agencykit.EnvOr("DATABASE_PATH", "data/site.db"),
		SessionSecret: agencykit.MustEnv("SESSION_SECRET"),
		CookieSecure:  os.Getenv("COOKIE_SECURE") == "true",
		APIBaseURL:    os.Getenv("API_BASE_URL"),
		APIKey:        os.Getenv("OPENAI_API_KEY"),
		Model:         agencykit.EnvOr("MODEL", "gpt-4o-mini"),
	}
	if d := os.Getenv("SIMULATED_DELAY"); d != "" {
		dur, err := time.ParseDuration(d)
		if err != nil {
			log.Fatalf("invalid SIMULATED_DELAY: %v", err)
		}
		cfg.SimulatedDelay = dur
	}

	app := agencykit.New(cfg, views.New(cfg).Funcs(),
		agencykit.WithStaticDir(agencykit.EnvOr("STATIC_DIR", "public")),
	)
	defer app.Close()

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
