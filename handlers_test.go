package agencykit

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/a-h/templ"
)

func marker(s string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	})
}

// stubViews marks each page so handler tests can assert which one rendered.
func stubViews() ViewFuncs {
	return ViewFuncs{
		Home:     func([]BlogPost) templ.Component { return marker("home") },
		About:    func() templ.Component { return marker("about") },
		Services: func() templ.Component { return marker("services") },
		Vertical: func(slug string) templ.Component {
			for _, v := range Verticals {
				if v == slug {
					return marker("vertical:" + slug)
				}
			}
			return nil
		},
		Workflow: func() templ.Component { return marker("workflow") },
		Agent:    func() templ.Component { return marker("agent") },
		Blog: func(posts []BlogPost, activeTag string, tags []string) templ.Component {
			return marker("blog")
		},
		Post: func(post BlogPost, related []BlogPost) templ.Component {
			return marker("post:" + post.ID)
		},
		Contact:     func(string) templ.Component { return marker("contact") },
		NotFound:    func() templ.Component { return marker("not-found") },
		ServerError: func() templ.Component { return marker("server-error") },
	}
}

func newPageTestApp(t *testing.T) *App {
	t.Helper()
	a := New(SiteConfig{
		Name:           "Test Agency",
		URL:            "https://example.com",
		Description:    "A test site",
		SessionSecret:  "test-secret",
		SimulatedDelay: time.Millisecond,
	}, stubViews(), WithKV(NewMemoryKV()))
	a.initComponents()
	return a
}

func TestVerticalRouting(t *testing.T) {
	a := newPageTestApp(t)

	for _, slug := range Verticals {
		req := httptest.NewRequest(http.MethodGet, "/services/"+slug+"/", nil)
		rec := httptest.NewRecorder()
		c := a.Echo.NewContext(req, rec)
		c.SetParamNames("vertical")
		c.SetParamValues(slug)

		if err := a.handleVertical(c); err != nil {
			t.Fatalf("handleVertical(%q) failed: %v", slug, err)
		}
		if rec.Code != http.StatusOK {
			t.Errorf("%q: status = %d, want 200", slug, rec.Code)
		}
		if rec.Body.String() != "vertical:"+slug {
			t.Errorf("%q: body = %q, want vertical marker", slug, rec.Body.String())
		}
	}
}

func TestVerticalUnknownSlugIs404(t *testing.T) {
	a := newPageTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/services/nope/", nil)
	rec := httptest.NewRecorder()
	c := a.Echo.NewContext(req, rec)
	c.SetParamNames("vertical")
	c.SetParamValues("nope")

	if err := a.handleVertical(c); err != nil {
		t.Fatalf("handleVertical failed: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
	if rec.Body.String() != "not-found" {
		t.Errorf("body = %q, want not-found marker", rec.Body.String())
	}
}

func TestPostHandler(t *testing.T) {
	a := newPageTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/blog/1718534400000/", nil)
	rec := httptest.NewRecorder()
	c := a.Echo.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("1718534400000")

	if err := a.handlePost(c); err != nil {
		t.Fatalf("handlePost failed: %v", err)
	}
	if rec.Body.String() != "post:1718534400000" {
		t.Errorf("body = %q, want post marker", rec.Body.String())
	}

	rec = httptest.NewRecorder()
	c = a.Echo.NewContext(httptest.NewRequest(http.MethodGet, "/blog/missing/", nil), rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")
	if err := a.handlePost(c); err != nil {
		t.Fatalf("handlePost failed: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestRobots(t *testing.T) {
	a := newPageTestApp(t)

	rec := httptest.NewRecorder()
	c := a.Echo.NewContext(httptest.NewRequest(http.MethodGet, "/robots.txt", nil), rec)
	if err := a.handleRobots(c); err != nil {
		t.Fatalf("handleRobots failed: %v", err)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Disallow: /admin/") {
		t.Error("robots.txt missing admin disallow")
	}
	if !strings.Contains(body, "Sitemap: https://example.com/sitemap.xml") {
		t.Error("robots.txt missing sitemap reference")
	}
}

func TestSitemapCoversPagesVerticalsAndPosts(t *testing.T) {
	a := newPageTestApp(t)

	rec := httptest.NewRecorder()
	c := a.Echo.NewContext(httptest.NewRequest(http.MethodGet, "/sitemap.xml", nil), rec)
	if err := a.handleSitemap(c); err != nil {
		t.Fatalf("handleSitemap failed: %v", err)
	}

	body := rec.Body.String()
	if !strings.Contains(body, "<urlset") {
		t.Fatal("not a sitemap urlset")
	}
	for _, loc := range []string{
		"https://example.com/about/",
		"https://example.com/workflow/",
		"https://example.com/contact/",
		"https://example.com/services/b2b/",
		"https://example.com/services/automation/",
		"https://example.com/blog/1718534400000/",
	} {
		if !strings.Contains(body, "<loc>"+loc+"</loc>") {
			t.Errorf("sitemap missing %s", loc)
		}
	}
}

func TestFeedRendersSeedPost(t *testing.T) {
	a := newPageTestApp(t)

	rec := httptest.NewRecorder()
	c := a.Echo.NewContext(httptest.NewRequest(http.MethodGet, "/feed.xml", nil), rec)
	if err := a.handleFeed(c); err != nil {
		t.Fatalf("handleFeed failed: %v", err)
	}

	body := rec.Body.String()
	if !strings.Contains(body, `<rss version="2.0">`) {
		t.Fatal("not an RSS 2.0 document")
	}
	if !strings.Contains(body, "The Future of Digital Storytelling") {
		t.Error("feed missing seed post title")
	}
	if !strings.Contains(body, "https://example.com/blog/1718534400000/") {
		t.Error("feed missing seed post link")
	}
	if !strings.Contains(body, "Sun, 16 Jun 2024 12:00:00 +0000") {
		t.Error("feed missing RFC 1123 pubDate")
	}
	if ct := rec.Header().Get("Content-Type"); !strings.Contains(ct, "application/rss+xml") {
		t.Errorf("Content-Type = %q, want rss", ct)
	}
}

func TestHomeHandlerCapsAtThreePosts(t *testing.T) {
	a := newPageTestApp(t)
	for i := 0; i < 5; i++ {
		if _, err := a.Posts.Create(BlogPost{Title: "p", ID: string(rune('a' + i))}); err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}
	a.Cache.Invalidate()

	var got []BlogPost
	a.Views.Home = func(posts []BlogPost) templ.Component {
		got = posts
		return marker("home")
	}

	rec := httptest.NewRecorder()
	c := a.Echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	if err := a.handleHome(c); err != nil {
		t.Fatalf("handleHome failed: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("home received %d posts, want 3", len(got))
	}
}
