package views

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"

	"github.com/preshdigital/agencykit"
)

func testViews() *Views {
	return New(agencykit.SiteConfig{
		Name:        "Test Agency",
		URL:         "https://example.com",
		Description: "A test site",
	})
}

func render(t *testing.T, cmp templ.Component) string {
	t.Helper()
	var b bytes.Buffer
	if err := cmp.Render(context.Background(), &b); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	return b.String()
}

func TestVerticalPageUnknownSlug(t *testing.T) {
	if cmp := testViews().VerticalPage("nope"); cmp != nil {
		t.Error("unknown slug returned a component, want nil")
	}
}

func TestVerticalPageRendersEachVertical(t *testing.T) {
	v := testViews()
	for _, slug := range agencykit.Verticals {
		cmp := v.VerticalPage(slug)
		if cmp == nil {
			t.Fatalf("VerticalPage(%q) = nil", slug)
		}
		html := render(t, cmp)
		vc, _ := Vertical(slug)
		if !strings.Contains(html, vc.Tagline) {
			t.Errorf("%s page missing tagline %q", slug, vc.Tagline)
		}
		if !strings.Contains(html, `class="testimonial"`) {
			t.Errorf("%s page missing testimonial section", slug)
		}
	}
}

func TestHomeListsPosts(t *testing.T) {
	html := render(t, testViews().Home([]agencykit.BlogPost{
		{ID: "1", Title: "First & Foremost", Summary: "s", Author: "a", CreatedAt: "2024-06-16T12:00:00Z"},
	}))
	if !strings.Contains(html, "First &amp; Foremost") {
		t.Error("post title missing or not escaped")
	}
	if !strings.Contains(html, `href="/blog/1/"`) {
		t.Error("post link missing")
	}
	for _, slug := range agencykit.Verticals {
		if !strings.Contains(html, `href="/services/`+slug+`/"`) {
			t.Errorf("vertical link for %q missing", slug)
		}
	}
}

func TestPostRendersMarkdown(t *testing.T) {
	post := agencykit.BlogPost{
		ID:         "42",
		Title:      "Hello",
		Content:    "# Heading\n\nBody with **bold** text.",
		Author:     "Tester",
		CreatedAt:  "2024-06-16T12:00:00Z",
		CoverImage: "https://example.com/cover.jpg",
		Tags:       []string{"go"},
	}
	html := render(t, testViews().Post(post, []agencykit.BlogPost{{ID: "43", Title: "Other", CreatedAt: "2024-06-17T12:00:00Z"}}))

	if !strings.Contains(html, "<h1>Heading</h1>") {
		t.Error("markdown heading not rendered")
	}
	if !strings.Contains(html, "<strong>bold</strong>") {
		t.Error("markdown bold not rendered")
	}
	if !strings.Contains(html, `src="https://example.com/cover.jpg"`) {
		t.Error("cover image missing")
	}
	if !strings.Contains(html, "Related") {
		t.Error("related section missing")
	}
	if !strings.Contains(html, `2024-06-16`) {
		t.Error("publish date missing")
	}
}

func TestPostDropsUnsafeCover(t *testing.T) {
	post := agencykit.BlogPost{
		ID:         "42",
		Title:      "Hello",
		Content:    "Body",
		CreatedAt:  "2024-06-16T12:00:00Z",
		CoverImage: "javascript:alert(1)",
	}
	html := render(t, testViews().Post(post, nil))
	if strings.Contains(html, "javascript:alert") {
		t.Error("unsafe cover URL rendered")
	}
}

func TestBlogTagFilterNav(t *testing.T) {
	html := render(t, testViews().Blog(nil, "go", []string{"ai", "go"}))
	if !strings.Contains(html, `href="/blog/?tag=go"`) {
		t.Error("tag link missing")
	}
	if !strings.Contains(html, `href="/blog/?tag=go" class="active"`) {
		t.Error("active tag not highlighted")
	}
}

func TestAdminLoginShowsError(t *testing.T) {
	html := render(t, testViews().AdminLogin(true, "token123"))
	if !strings.Contains(html, "Wrong password.") {
		t.Error("error message missing")
	}
	if !strings.Contains(html, `name="_csrf" value="token123"`) {
		t.Error("csrf token missing")
	}
}

func TestAdminDashboardListsInbox(t *testing.T) {
	html := render(t, testViews().AdminDashboard(
		[]agencykit.BlogPost{{ID: "1", Title: "A Post", Author: "a", CreatedAt: "2024-06-16T12:00:00Z"}},
		[]agencykit.ContactMessage{{Name: "Ann", Email: "ann@example.com", Message: "Hi", ReceivedAt: "2024-06-17T12:00:00Z"}},
		"published", "tok"))
	if !strings.Contains(html, "A Post") {
		t.Error("post row missing")
	}
	if !strings.Contains(html, "ann@example.com") {
		t.Error("inbox row missing")
	}
	if !strings.Contains(html, "published") {
		t.Error("status message missing")
	}
}
