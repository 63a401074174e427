// Package agencykit is a marketing/agency site engine built with Go, Echo,
// and templ: landing pages with industry verticals, a blog with an admin
// editor, a contact form, and JSON endpoints that turn free-text prompts
// into workflow and agent-config payloads via a generative-language
// provider, with a canned offline fallback.
//
// Users provide their own templ components via the ViewFuncs struct;
// agencykit owns the handler logic, middleware, and storage.
package agencykit

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/preshdigital/agencykit/genai"
)

// ViewFuncs holds user-provided templ components that the engine calls when
// rendering pages. This is the inversion-of-control mechanism that lets
// users own and customize all templates.
type ViewFuncs struct {
	Home     func(posts []BlogPost) templ.Component
	About    func() templ.Component
	Services func() templ.Component
	// Vertical returns the page for one industry vertical, or nil for an
	// unknown slug.
	Vertical func(slug string) templ.Component
	Workflow func() templ.Component
	Agent    func() templ.Component
	Blog     func(posts []BlogPost, activeTag string, tags []string) templ.Component
	Post     func(post BlogPost, related []BlogPost) templ.Component
	Contact  func(csrfToken string) templ.Component

	AdminLogin     func(showError bool, csrfToken string) templ.Component
	AdminDashboard func(posts []BlogPost, messages []ContactMessage, message string, csrfToken string) templ.Component
	AdminImages    func(images []Image, csrfToken string) templ.Component

	NotFound    func() templ.Component
	ServerError func() templ.Component
}

// App is the central agencykit application. It wires together the stores,
// cache, generator, handlers, middleware, and user-provided templates.
type App struct {
	Config    SiteConfig
	Echo      *echo.Echo
	Posts     *PostStore
	Contact   *ContactStore
	Images    *ImageStore
	Gate      *Gate
	Cache     *PostCache
	Generator *genai.Client
	Views     ViewFuncs

	kv           KV
	loginLimiter *LoginLimiter
	customRoutes []func(*App)
	staticDir    string
}

// New creates a new agencykit App with the given configuration and view
// functions.
func New(cfg SiteConfig, views ViewFuncs, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config:    cfg,
		Echo:      echo.New(),
		Views:     views,
		staticDir: "public",
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Start initializes the stores, cache, generator, middleware, and routes,
// then starts the server.
func (a *App) Start() error {
	if a.Config.SessionSecret == "" {
		return fmt.Errorf("agencykit: SessionSecret is required")
	}

	if a.kv == nil {
		kv, err := NewSQLiteKV(a.Config.DatabasePath)
		if err != nil {
			return fmt.Errorf("agencykit: init store: %w", err)
		}
		a.kv = kv
	}
	a.initComponents()

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}

	if err := a.Echo.Start(a.Config.Addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// initComponents builds the stores, cache, gate, limiter, and generator on
// top of the configured KV.
func (a *App) initComponents() {
	a.Posts = NewPostStore(a.kv)
	a.Contact = NewContactStore(a.kv)
	a.Images = NewImageStore(a.kv)
	a.Gate = NewGate(a.kv)
	a.Cache = NewPostCache(a.Posts, a.Config.PostCacheTTL)
	a.loginLimiter = NewLoginLimiter(5, time.Minute)
	a.Generator = genai.New(genai.Config{
		BaseURL: a.Config.APIBaseURL,
		APIKey:  a.Config.APIKey,
		Model:   a.Config.Model,
		Delay:   a.Config.SimulatedDelay,
	})
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.Static("/public", a.staticDir)
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)

	// Public pages
	e.GET("/", a.handleHome)
	e.GET("/about/", a.handleAbout)
	e.GET("/services/", a.handleServices)
	e.GET("/services/:vertical/", a.handleVertical)
	e.GET("/workflow/", a.handleWorkflowPage)
	e.GET("/agent/", a.handleAgentPage)
	e.GET("/blog/", a.handleBlog)
	e.GET("/blog/:id/", a.handlePost)
	e.GET("/contact/", a.handleContactPage)

	// JSON endpoints
	e.POST("/api/generate-workflow", a.handleGenerateWorkflow)
	e.POST("/api/generate-agent", a.handleGenerateAgent)
	e.GET("/api/debug-env", a.handleDebugEnv)
	e.POST("/api/contact", a.handleContact)

	// Admin routes
	e.GET("/admin/", a.handleAdmin)
	e.POST("/admin/login/", a.handleAdminLogin)
	e.POST("/admin/logout/", a.handleAdminLogout)
	e.POST("/admin/posts/", a.handleAdminCreatePost)
	e.POST("/admin/draft/", a.handleAdminDraft)
	e.GET("/admin/images/", a.handleImageList)
	e.POST("/admin/images/upload/", a.handleImageUpload)
	e.DELETE("/admin/images/:filename/", a.handleImageDelete)
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if s, ok := a.kv.(*SQLiteKV); ok {
		return s.Close()
	}
	return nil
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// MustEnv returns the value of the environment variable key, or fatally exits if empty.
func MustEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("agencykit: required environment variable %s is not set", key)
	}
	return v
}
