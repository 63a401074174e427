// Package views provides the templ components for the agency site: the
// marketing pages, blog, contact form, and admin screens. Components are
// built with templ.ComponentFunc so the whole site renders server-side with
// no template codegen step.
package views

import (
	"bytes"
	"context"
	"html"
	"io"

	"github.com/a-h/templ"

	"github.com/preshdigital/agencykit"
)

// Views renders all site pages for one SiteConfig.
type Views struct {
	cfg agencykit.SiteConfig
}

// New creates the view set for the given site configuration.
func New(cfg agencykit.SiteConfig) *Views {
	return &Views{cfg: cfg}
}

// Funcs returns the ViewFuncs wiring for agencykit.New.
func (v *Views) Funcs() agencykit.ViewFuncs {
	return agencykit.ViewFuncs{
		Home:           v.Home,
		About:          v.About,
		Services:       v.Services,
		Vertical:       v.VerticalPage,
		Workflow:       v.Workflow,
		Agent:          v.Agent,
		Blog:           v.Blog,
		Post:           v.Post,
		Contact:        v.Contact,
		AdminLogin:     v.AdminLogin,
		AdminDashboard: v.AdminDashboard,
		AdminImages:    v.AdminImages,
		NotFound:       v.NotFound,
		ServerError:    v.ServerError,
	}
}

func esc(s string) string {
	return html.EscapeString(s)
}

// page wraps body in the shared layout: head, nav, footer.
func (v *Views) page(meta agencykit.PageMeta, body func(b *bytes.Buffer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b bytes.Buffer
		title := meta.Title
		if title == "" {
			title = v.cfg.Name
		} else {
			title += " — " + v.cfg.Name
		}
		desc := meta.Description
		if desc == "" {
			desc = v.cfg.Description
		}
		ogType := meta.OGType
		if ogType == "" {
			ogType = "website"
		}
		b.WriteString("<!DOCTYPE html><html lang=\"en\"><head>")
		b.WriteString(`<meta charset="utf-8"/><meta name="viewport" content="width=device-width, initial-scale=1"/>`)
		b.WriteString("<title>" + esc(title) + "</title>")
		b.WriteString(`<meta name="description" content="` + esc(desc) + `"/>`)
		b.WriteString(`<meta property="og:title" content="` + esc(title) + `"/>`)
		b.WriteString(`<meta property="og:type" content="` + esc(ogType) + `"/>`)
		if meta.URL != "" {
			b.WriteString(`<link rel="canonical" href="` + esc(meta.URL) + `"/>`)
			b.WriteString(`<meta property="og:url" content="` + esc(meta.URL) + `"/>`)
		}
		b.WriteString(`<link rel="icon" href="/favicon.svg" type="image/svg+xml"/>`)
		b.WriteString(`<link rel="alternate" type="application/rss+xml" title="` + esc(v.cfg.Name) + `" href="/feed.xml"/>`)
		b.WriteString(`<link rel="stylesheet" href="/public/site.css"/>`)
		b.WriteString("</head><body>")
		v.nav(&b)
		b.WriteString(`<main>`)
		body(&b)
		b.WriteString(`</main>`)
		v.footer(&b)
		b.WriteString("</body></html>")
		_, err := w.Write(b.Bytes())
		return err
	})
}

func (v *Views) nav(b *bytes.Buffer) {
	b.WriteString(`<header class="nav"><a class="brand" href="/">` + esc(v.cfg.Name) + `</a><nav>`)
	links := []struct{ href, label string }{
		{"/services/", "Services"},
		{"/workflow/", "Workflow AI"},
		{"/agent/", "Agent Builder"},
		{"/blog/", "Blog"},
		{"/about/", "About"},
		{"/contact/", "Contact"},
	}
	for _, l := range links {
		b.WriteString(`<a href="` + l.href + `">` + esc(l.label) + `</a>`)
	}
	b.WriteString(`</nav></header>`)
}

func (v *Views) footer(b *bytes.Buffer) {
	b.WriteString(`<footer class="footer"><div class="footer-links">`)
	for _, vc := range verticalOrder() {
		b.WriteString(`<a href="/services/` + vc.Slug + `/">` + esc(vc.Name) + `</a>`)
	}
	b.WriteString(`</div><p>` + esc(v.cfg.Name) + ` · <a href="/feed.xml">RSS</a> · <a href="/admin/">Admin</a></p></footer>`)
}

// verticalOrder returns the verticals in display order.
func verticalOrder() []VerticalContent {
	out := make([]VerticalContent, 0, len(agencykit.Verticals))
	for _, slug := range agencykit.Verticals {
		if vc, ok := verticals[slug]; ok {
			out = append(out, vc)
		}
	}
	return out
}

// Shared section renderers.

func writeFeatures(b *bytes.Buffer, features []Feature) {
	b.WriteString(`<section class="features">`)
	for _, f := range features {
		b.WriteString(`<div class="feature"><span class="feature-icon">` + f.Icon + `</span><h3>` + esc(f.Title) + `</h3><p>` + esc(f.Description) + `</p></div>`)
	}
	b.WriteString(`</section>`)
}

func writeStats(b *bytes.Buffer, stats []Stat) {
	b.WriteString(`<section class="stats">`)
	for _, s := range stats {
		b.WriteString(`<div class="stat"><span class="stat-value">` + esc(s.Value) + `</span><span class="stat-label">` + esc(s.Label) + `</span></div>`)
	}
	b.WriteString(`</section>`)
}

func writeTestimonial(b *bytes.Buffer, t Testimonial) {
	b.WriteString(`<section class="testimonial"><blockquote>` + esc(t.Quote) + `</blockquote><cite>` + esc(t.Author) + `, ` + esc(t.Role) + ` · ` + esc(t.Company) + `</cite></section>`)
}

func writeFAQs(b *bytes.Buffer, faqs []FAQ) {
	b.WriteString(`<section class="faqs">`)
	for _, f := range faqs {
		b.WriteString(`<details><summary>` + esc(f.Question) + `</summary><p>` + esc(f.Answer) + `</p></details>`)
	}
	b.WriteString(`</section>`)
}
