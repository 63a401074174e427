package agencykit

import "time"

// SiteConfig holds all configuration for an agencykit site.
type SiteConfig struct {
	Name        string // Site name (default "Agency")
	URL         string // Canonical URL (default "http://localhost:3000")
	Description string // Site description for RSS and meta tags
	Author      string // Default post author

	Addr         string // Listen address (default ":3000")
	DatabasePath string // SQLite path for the key-value store (default "data/site.db")

	SessionSecret string // Required: session encryption secret
	CookieSecure  bool   // Set true for HTTPS

	// Generative provider. An empty APIKey is not an error: the workflow and
	// agent generators fall back to canned simulated output instead.
	APIBaseURL     string        // OpenAI-compatible endpoint (default https://api.openai.com/v1)
	APIKey         string        // Provider credential; empty enables simulated mode
	Model          string        // Fixed model id (default "gpt-4o-mini")
	SimulatedDelay time.Duration // Artificial latency in simulated mode (default 2s)

	PostCacheTTL time.Duration // Post cache TTL (default 5min)
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Agency"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "data/site.db"
	}
	if c.APIBaseURL == "" {
		c.APIBaseURL = "https://api.openai.com/v1"
	}
	if c.Model == "" {
		c.Model = "gpt-4o-mini"
	}
	if c.SimulatedDelay == 0 {
		c.SimulatedDelay = 2 * time.Second
	}
	if c.PostCacheTTL == 0 {
		c.PostCacheTTL = 5 * time.Minute
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir sets the directory for user-owned static assets (default "public").
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.staticDir = dir
	}
}

// WithKV substitutes the backing key-value store. The default is the
// SQLite store at SiteConfig.DatabasePath; tests use the in-memory store.
func WithKV(kv KV) Option {
	return func(a *App) {
		a.kv = kv
	}
}
