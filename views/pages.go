package views

import (
	"bytes"
	"strings"

	"github.com/a-h/templ"

	"github.com/preshdigital/agencykit"
	"github.com/preshdigital/agencykit/markdown"
)

// Home is the main landing page: hero, service verticals, stats,
// testimonials, and the latest posts.
func (v *Views) Home(posts []agencykit.BlogPost) templ.Component {
	meta := agencykit.PageMeta{URL: agencykit.BuildURL(v.cfg.URL)}
	return v.page(meta, func(b *bytes.Buffer) {
		b.WriteString(`<section class="hero"><h1>` + esc(v.cfg.Name) + `</h1><p class="tagline">` + esc(v.cfg.Description) + `</p>`)
		b.WriteString(`<div class="hero-actions"><a class="btn" href="/workflow/">Try the workflow generator</a><a class="btn btn-ghost" href="/contact/">Talk to us</a></div></section>`)

		b.WriteString(`<section class="verticals"><h2>What we do</h2><div class="vertical-grid">`)
		for _, vc := range verticalOrder() {
			b.WriteString(`<a class="vertical-card" href="/services/` + vc.Slug + `/"><h3>` + esc(vc.Name) + `</h3><p>` + esc(vc.Tagline) + `</p></a>`)
		}
		b.WriteString(`</div></section>`)

		writeStats(b, homeStats)
		for _, t := range homeTestimonials {
			writeTestimonial(b, t)
		}

		if len(posts) > 0 {
			b.WriteString(`<section class="recent-posts"><h2>From the blog</h2><div class="post-grid">`)
			for _, p := range posts {
				writePostCard(b, p)
			}
			b.WriteString(`</div></section>`)
		}
	})
}

func (v *Views) About() templ.Component {
	meta := agencykit.PageMeta{Title: "About", URL: agencykit.BuildURL(v.cfg.URL, "about")}
	return v.page(meta, func(b *bytes.Buffer) {
		b.WriteString(`<section class="prose"><h1>About ` + esc(v.cfg.Name) + `</h1>`)
		b.WriteString(`<p>We are a digital agency for teams that would rather ship than meet. Strategy, brand, content, and the automation that holds it together — one crew, one backlog.</p>`)
		b.WriteString(`<p>The AI demos on this site are the same workflows we put into production for clients: a model where it helps, a human where it matters.</p>`)
		if v.cfg.Author != "" {
			b.WriteString(`<p>Run by ` + esc(v.cfg.Author) + `.</p>`)
		}
		b.WriteString(`</section>`)
	})
}

func (v *Views) Services() templ.Component {
	meta := agencykit.PageMeta{Title: "Services", URL: agencykit.BuildURL(v.cfg.URL, "services")}
	return v.page(meta, func(b *bytes.Buffer) {
		b.WriteString(`<section class="prose"><h1>Services</h1><p>Four practices, one team.</p></section>`)
		for _, vc := range verticalOrder() {
			b.WriteString(`<section class="service-row"><h2><a href="/services/` + vc.Slug + `/">` + esc(vc.Name) + `</a></h2><p>` + esc(vc.Description) + `</p></section>`)
		}
	})
}

// VerticalPage renders one industry vertical, or nil for unknown slugs.
func (v *Views) VerticalPage(slug string) templ.Component {
	vc, ok := Vertical(slug)
	if !ok {
		return nil
	}
	meta := agencykit.PageMeta{
		Title:       vc.Name,
		Description: vc.Description,
		URL:         agencykit.BuildURL(v.cfg.URL, "services", vc.Slug),
	}
	return v.page(meta, func(b *bytes.Buffer) {
		b.WriteString(`<section class="hero"><h1>` + esc(vc.Name) + `</h1><p class="tagline">` + esc(vc.Tagline) + `</p><p>` + esc(vc.Description) + `</p></section>`)
		writeFeatures(b, vc.Features)
		writeStats(b, vc.Stats)
		writeTestimonial(b, vc.Testimonial)
		writeFAQs(b, vc.FAQs)
		b.WriteString(`<section class="cta"><a class="btn" href="/contact/">Start a project</a></section>`)
	})
}

// Workflow hosts the workflow generator demo: a task form posting to
// /api/generate-workflow, with the returned steps revealed one by one.
func (v *Views) Workflow() templ.Component {
	meta := agencykit.PageMeta{Title: "Workflow Generator", URL: agencykit.BuildURL(v.cfg.URL, "workflow")}
	return v.page(meta, func(b *bytes.Buffer) {
		b.WriteString(`<section class="prose"><h1>Workflow Generator</h1><p>Describe a task and get a four-step automation plan.</p></section>`)
		b.WriteString(`<form id="wf-form" class="gen-form">` +
			`<textarea name="task" id="wf-task" rows="3" placeholder="e.g. Automate invoice reconciliation" required></textarea>` +
			`<input type="email" name="email" id="wf-email" placeholder="you@company.com"/>` +
			`<button class="btn" type="submit">Generate workflow</button>` +
			`<p class="form-error" id="wf-error" hidden></p></form>`)
		b.WriteString(`<ol id="wf-steps" class="wf-steps"></ol>`)
		b.WriteString(`<script>
(function () {
	var form = document.getElementById("wf-form");
	var errEl = document.getElementById("wf-error");
	var list = document.getElementById("wf-steps");
	form.addEventListener("submit", function (ev) {
		ev.preventDefault();
		errEl.hidden = true;
		list.innerHTML = "";
		var task = document.getElementById("wf-task").value;
		if (!task.trim()) {
			errEl.textContent = "Task description is required";
			errEl.hidden = false;
			return;
		}
		form.classList.add("loading");
		fetch("/api/generate-workflow", {
			method: "POST",
			headers: { "Content-Type": "application/json" },
			body: JSON.stringify({ task: task })
		}).then(function (r) { return r.json().then(function (d) { return r.ok ? d : Promise.reject(d.error); }); })
		.then(function (d) {
			d.workflow.forEach(function (s, i) {
				setTimeout(function () {
					var li = document.createElement("li");
					li.className = "wf-step";
					li.innerHTML = "<strong>" + s.title + "</strong> <em>" + s.tool + "</em><p></p>";
					li.querySelector("p").textContent = s.description;
					list.appendChild(li);
				}, i * 350);
			});
		})
		.catch(function (e) { errEl.textContent = e || "Failed to generate content"; errEl.hidden = false; })
		.finally(function () { form.classList.remove("loading"); });
	});
})();
</script>`)
	})
}

// Agent hosts the agent-config generator demo rendered as terminal output.
func (v *Views) Agent() templ.Component {
	meta := agencykit.PageMeta{Title: "Agent Builder", URL: agencykit.BuildURL(v.cfg.URL, "agent")}
	return v.page(meta, func(b *bytes.Buffer) {
		b.WriteString(`<section class="prose"><h1>Agent Builder</h1><p>Describe an idea and get an agent configuration.</p></section>`)
		b.WriteString(`<form id="ag-form" class="gen-form">` +
			`<textarea name="idea" id="ag-idea" rows="3" placeholder="e.g. An assistant that triages our support inbox" required></textarea>` +
			`<button class="btn" type="submit">Build agent</button>` +
			`<p class="form-error" id="ag-error" hidden></p></form>`)
		b.WriteString(`<pre id="ag-out" class="terminal" hidden></pre>`)
		b.WriteString(`<script>
(function () {
	var form = document.getElementById("ag-form");
	var errEl = document.getElementById("ag-error");
	var out = document.getElementById("ag-out");
	form.addEventListener("submit", function (ev) {
		ev.preventDefault();
		errEl.hidden = true;
		out.hidden = true;
		var idea = document.getElementById("ag-idea").value;
		if (!idea.trim()) {
			errEl.textContent = "Idea required";
			errEl.hidden = false;
			return;
		}
		fetch("/api/generate-agent", {
			method: "POST",
			headers: { "Content-Type": "application/json" },
			body: JSON.stringify({ idea: idea })
		}).then(function (r) { return r.json().then(function (d) { return r.ok ? d : Promise.reject(d.error); }); })
		.then(function (d) {
			var text = JSON.stringify(d.config, null, 2);
			out.hidden = false;
			out.textContent = "";
			var i = 0;
			var timer = setInterval(function () {
				out.textContent = text.slice(0, i += 8);
				if (i >= text.length) { clearInterval(timer); }
			}, 16);
		})
		.catch(function (e) { errEl.textContent = e || "Failed to generate content"; errEl.hidden = false; });
	});
})();
</script>`)
	})
}

func (v *Views) Blog(posts []agencykit.BlogPost, activeTag string, tags []string) templ.Component {
	meta := agencykit.PageMeta{Title: "Blog", URL: agencykit.BuildURL(v.cfg.URL, "blog")}
	return v.page(meta, func(b *bytes.Buffer) {
		b.WriteString(`<section class="prose"><h1>Blog</h1></section>`)
		if len(tags) > 0 {
			b.WriteString(`<nav class="tags"><a href="/blog/"` + activeAttr(activeTag == "") + `>all</a>`)
			for _, t := range tags {
				b.WriteString(`<a href="/blog/?tag=` + templ.EscapeString(t) + `"` + activeAttr(strings.EqualFold(t, activeTag)) + `>` + esc(t) + `</a>`)
			}
			b.WriteString(`</nav>`)
		}
		b.WriteString(`<div class="post-grid">`)
		for _, p := range posts {
			writePostCard(b, p)
		}
		b.WriteString(`</div>`)
	})
}

func (v *Views) Post(post agencykit.BlogPost, related []agencykit.BlogPost) templ.Component {
	meta := agencykit.PageMeta{
		Title:       post.Title,
		Description: post.Summary,
		URL:         agencykit.BuildURL(v.cfg.URL, "blog", post.ID),
		OGType:      "article",
	}
	return v.page(meta, func(b *bytes.Buffer) {
		b.WriteString(`<article class="post">`)
		if post.CoverImage != "" {
			if src := markdown.SafeURL(post.CoverImage); src != "" {
				b.WriteString(`<img class="cover" fetchpriority="high" src="` + src + `" alt="` + esc(post.Title) + `"/>`)
			}
		}
		b.WriteString(`<p class="byline">` + esc(post.Author) + ` · <time datetime="` + esc(post.CreatedAt) + `">` + esc(displayDate(post.CreatedAt)) + `</time></p>`)
		markdown.RenderMarkdown(b, post.Content)
		if len(post.Tags) > 0 {
			b.WriteString(`<nav class="tags">`)
			for _, t := range post.Tags {
				b.WriteString(`<a href="/blog/?tag=` + templ.EscapeString(t) + `">` + esc(t) + `</a>`)
			}
			b.WriteString(`</nav>`)
		}
		b.WriteString(`</article>`)
		if len(related) > 0 {
			b.WriteString(`<section class="related"><h2>Related</h2><div class="post-grid">`)
			for _, p := range related {
				writePostCard(b, p)
			}
			b.WriteString(`</div></section>`)
		}
	})
}

func (v *Views) Contact(csrfToken string) templ.Component {
	meta := agencykit.PageMeta{Title: "Contact", URL: agencykit.BuildURL(v.cfg.URL, "contact")}
	return v.page(meta, func(b *bytes.Buffer) {
		b.WriteString(`<section class="prose"><h1>Contact</h1><p>Tell us what you are building.</p></section>`)
		b.WriteString(`<form id="ct-form" class="gen-form">` +
			`<input type="text" name="name" id="ct-name" placeholder="Your name" required/>` +
			`<input type="email" name="email" id="ct-email" placeholder="you@company.com" required/>` +
			`<textarea name="message" id="ct-message" rows="5" placeholder="What do you need?" required></textarea>` +
			`<button class="btn" type="submit">Send</button>` +
			`<p class="form-error" id="ct-error" hidden></p>` +
			`<p class="form-ok" id="ct-ok" hidden>Thanks — we will get back to you within a day.</p></form>`)
		b.WriteString(`<script>
(function () {
	var form = document.getElementById("ct-form");
	var errEl = document.getElementById("ct-error");
	var okEl = document.getElementById("ct-ok");
	form.addEventListener("submit", function (ev) {
		ev.preventDefault();
		errEl.hidden = true;
		okEl.hidden = true;
		fetch("/api/contact", {
			method: "POST",
			headers: { "Content-Type": "application/json" },
			body: JSON.stringify({
				name: document.getElementById("ct-name").value,
				email: document.getElementById("ct-email").value,
				message: document.getElementById("ct-message").value
			})
		}).then(function (r) { return r.json().then(function (d) { return r.ok ? d : Promise.reject(d.error); }); })
		.then(function () { okEl.hidden = false; form.reset(); })
		.catch(function (e) { errEl.textContent = e || "Something went wrong"; errEl.hidden = false; });
	});
})();
</script>`)
	})
}

func (v *Views) NotFound() templ.Component {
	return v.page(agencykit.PageMeta{Title: "Not Found"}, func(b *bytes.Buffer) {
		b.WriteString(`<section class="prose"><h1>404</h1><p>That page does not exist. <a href="/">Back home</a>.</p></section>`)
	})
}

func (v *Views) ServerError() templ.Component {
	return v.page(agencykit.PageMeta{Title: "Server Error"}, func(b *bytes.Buffer) {
		b.WriteString(`<section class="prose"><h1>500</h1><p>Something broke on our side. <a href="/">Back home</a>.</p></section>`)
	})
}

func writePostCard(b *bytes.Buffer, p agencykit.BlogPost) {
	b.WriteString(`<a class="post-card" href="/blog/` + templ.EscapeString(p.ID) + `/">`)
	if p.CoverImage != "" {
		if src := markdown.SafeURL(p.CoverImage); src != "" {
			b.WriteString(`<img loading="lazy" src="` + src + `" alt=""/>`)
		}
	}
	b.WriteString(`<h3>` + esc(p.Title) + `</h3><p>` + esc(p.Summary) + `</p>`)
	b.WriteString(`<span class="byline">` + esc(p.Author) + ` · ` + esc(displayDate(p.CreatedAt)) + `</span></a>`)
}

func activeAttr(active bool) string {
	if active {
		return ` class="active"`
	}
	return ""
}

// displayDate shortens an RFC 3339 timestamp to its date part.
func displayDate(createdAt string) string {
	if len(createdAt) >= 10 {
		return createdAt[:10]
	}
	return createdAt
}
