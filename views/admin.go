package views

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/preshdigital/agencykit"
)

func (v *Views) AdminLogin(showError bool, csrfToken string) templ.Component {
	return v.page(agencykit.PageMeta{Title: "Admin"}, func(b *bytes.Buffer) {
		b.WriteString(`<section class="admin-login"><h1>Admin</h1>`)
		if showError {
			b.WriteString(`<p class="form-error">Wrong password.</p>`)
		}
		b.WriteString(`<form method="post" action="/admin/login/">` +
			`<input type="hidden" name="_csrf" value="` + esc(csrfToken) + `"/>` +
			`<input type="password" name="password" placeholder="Password" autofocus required/>` +
			`<button class="btn" type="submit">Sign in</button></form></section>`)
	})
}

func (v *Views) AdminDashboard(posts []agencykit.BlogPost, messages []agencykit.ContactMessage, message string, csrfToken string) templ.Component {
	return v.page(agencykit.PageMeta{Title: "Dashboard"}, func(b *bytes.Buffer) {
		b.WriteString(`<section class="admin"><header class="admin-header"><h1>Dashboard</h1>` +
			`<nav><a href="/admin/images/">Images</a> ` +
			`<form method="post" action="/admin/logout/" class="inline">` +
			`<input type="hidden" name="_csrf" value="` + esc(csrfToken) + `"/>` +
			`<button class="btn btn-ghost" type="submit">Sign out</button></form></nav></header>`)
		if message != "" {
			b.WriteString(`<p class="admin-msg">` + esc(message) + `</p>`)
		}

		writePostEditor(b, csrfToken)

		b.WriteString(`<h2>Posts (` + strconv.Itoa(len(posts)) + `)</h2><table class="admin-table"><thead><tr><th>Title</th><th>Author</th><th>Date</th><th>Tags</th></tr></thead><tbody>`)
		for _, p := range posts {
			b.WriteString(`<tr><td><a href="/blog/` + templ.EscapeString(p.ID) + `/">` + esc(p.Title) + `</a></td>` +
				`<td>` + esc(p.Author) + `</td>` +
				`<td>` + esc(displayDate(p.CreatedAt)) + `</td>` +
				`<td>` + esc(strings.Join(p.Tags, ", ")) + `</td></tr>`)
		}
		b.WriteString(`</tbody></table>`)

		b.WriteString(`<h2>Inbox (` + strconv.Itoa(len(messages)) + `)</h2>`)
		if len(messages) == 0 {
			b.WriteString(`<p>No messages yet.</p>`)
		} else {
			b.WriteString(`<table class="admin-table"><thead><tr><th>From</th><th>Email</th><th>Message</th><th>Received</th></tr></thead><tbody>`)
			for _, m := range messages {
				b.WriteString(`<tr><td>` + esc(m.Name) + `</td>` +
					`<td><a href="mailto:` + templ.EscapeString(m.Email) + `">` + esc(m.Email) + `</a></td>` +
					`<td>` + esc(m.Message) + `</td>` +
					`<td>` + esc(displayDate(m.ReceivedAt)) + `</td></tr>`)
			}
			b.WriteString(`</tbody></table>`)
		}
		b.WriteString(`</section>`)
	})
}

// writePostEditor emits the new-post form plus the draft button that asks
// /admin/draft/ to prefill it.
func writePostEditor(b *bytes.Buffer, csrfToken string) {
	b.WriteString(`<h2>New post</h2>` +
		`<form id="post-form" method="post" action="/admin/posts/" class="admin-form">` +
		`<input type="hidden" name="_csrf" value="` + esc(csrfToken) + `"/>` +
		`<div class="draft-row">` +
		`<input type="text" id="draft-topic" placeholder="Topic for a draft, e.g. marketing automation"/>` +
		`<button class="btn btn-ghost" type="button" id="draft-btn">Draft with AI</button>` +
		`<span class="form-error" id="draft-error" hidden></span></div>` +
		`<input type="text" name="title" id="post-title" placeholder="Title" required/>` +
		`<input type="text" name="summary" id="post-summary" placeholder="Summary"/>` +
		`<input type="text" name="coverImage" id="post-cover" placeholder="Cover image URL (blank = generated)"/>` +
		`<input type="text" name="author" id="post-author" placeholder="Author"/>` +
		`<input type="text" name="tags" id="post-tags" placeholder="Tags, comma separated"/>` +
		`<textarea name="content" id="post-content" rows="14" placeholder="Markdown content"></textarea>` +
		`<button class="btn" type="submit">Publish</button></form>`)
	b.WriteString(`<script>
(function () {
	var btn = document.getElementById("draft-btn");
	var errEl = document.getElementById("draft-error");
	btn.addEventListener("click", function () {
		var topic = document.getElementById("draft-topic").value;
		if (!topic.trim()) { return; }
		errEl.hidden = true;
		btn.disabled = true;
		btn.textContent = "Drafting…";
		fetch("/admin/draft/", {
			method: "POST",
			headers: {
				"Content-Type": "application/x-www-form-urlencoded",
				"X-CSRF-Token": document.querySelector("input[name=_csrf]").value
			},
			body: "topic=" + encodeURIComponent(topic)
		}).then(function (r) { return r.json().then(function (d) { return r.ok ? d : Promise.reject(d.error); }); })
		.then(function (d) {
			document.getElementById("post-title").value = d.draft.title;
			document.getElementById("post-summary").value = d.draft.summary;
			document.getElementById("post-content").value = d.draft.content;
			document.getElementById("post-tags").value = (d.draft.tags || []).join(", ");
			document.getElementById("post-cover").value = d.coverImage || "";
		})
		.catch(function (e) { errEl.textContent = e || "Failed to generate content"; errEl.hidden = false; })
		.finally(function () { btn.disabled = false; btn.textContent = "Draft with AI"; });
	});
})();
</script>`)
}

func (v *Views) AdminImages(images []agencykit.Image, csrfToken string) templ.Component {
	return v.page(agencykit.PageMeta{Title: "Images"}, func(b *bytes.Buffer) {
		b.WriteString(`<section class="admin"><header class="admin-header"><h1>Images</h1>` +
			`<nav><a href="/admin/">Dashboard</a></nav></header>`)
		b.WriteString(`<form method="post" action="/admin/images/upload/" enctype="multipart/form-data" class="admin-form">` +
			`<input type="hidden" name="_csrf" value="` + esc(csrfToken) + `"/>` +
			`<input type="file" name="image" accept="image/*" required/>` +
			`<button class="btn" type="submit">Upload</button></form>`)
		if len(images) == 0 {
			b.WriteString(`<p>No images uploaded yet.</p>`)
		} else {
			b.WriteString(`<div class="image-grid">`)
			for _, img := range images {
				src := "/public/uploads/" + templ.EscapeString(img.Filename)
				b.WriteString(`<figure class="image-card"><img loading="lazy" src="` + src + `" alt="` + esc(img.OriginalName) + `"/>` +
					`<figcaption><code>` + esc(img.Filename) + `</code> ` + strconv.Itoa(img.Width) + `×` + strconv.Itoa(img.Height) + `</figcaption>` +
					`<button class="btn btn-ghost" data-filename="` + esc(img.Filename) + `">Delete</button></figure>`)
			}
			b.WriteString(`</div>`)
			b.WriteString(`<script>
(function () {
	var token = document.querySelector("input[name=_csrf]").value;
	document.querySelectorAll("[data-filename]").forEach(function (btn) {
		btn.addEventListener("click", function () {
			if (!confirm("Delete " + btn.dataset.filename + "?")) { return; }
			fetch("/admin/images/" + encodeURIComponent(btn.dataset.filename) + "/", {
				method: "DELETE",
				headers: { "X-CSRF-Token": token }
			}).then(function () { location.reload(); });
		});
	});
})();
</script>`)
		}
		b.WriteString(`</section>`)
	})
}
