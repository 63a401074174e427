package markdown

import (
	"bytes"
	"strings"
	"testing"
)

func TestFormatInlineBold(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"**bold**", "<strong>bold</strong>"},
		{"__bold__", "<strong>bold</strong>"},
		{"text **bold** more", "text <strong>bold</strong> more"},
	}
	for _, tt := range tests {
		got := FormatInline(tt.input, new(int))
		if got != tt.expected {
			t.Errorf("FormatInline(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestFormatInlineItalic(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"*italic*", "<em>italic</em>"},
		{"_italic_", "<em>italic</em>"},
		{"text *italic* more", "text <em>italic</em> more"},
	}
	for _, tt := range tests {
		got := FormatInline(tt.input, new(int))
		if got != tt.expected {
			t.Errorf("FormatInline(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestFormatInlineNested(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"**bold *italic* text**", "<strong>bold <em>italic</em> text</strong>"},
		{"__bold _italic_ text__", "<strong>bold <em>italic</em> text</strong>"},
	}
	for _, tt := range tests {
		got := FormatInline(tt.input, new(int))
		if got != tt.expected {
			t.Errorf("FormatInline(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestFormatInlineExternalLinkOpensNewTab(t *testing.T) {
	got := FormatInline("[Example](https://example.com/my_page)", new(int))
	want := `<a href="https://example.com/my_page" class="underline decoration-2 underline-offset-4" target="_blank" rel="noopener noreferrer">Example</a>`
	if got != want {
		t.Errorf("FormatInline link\n  got:  %q\n  want: %q", got, want)
	}
}

func TestFormatInlineInternalLinkStaysInTab(t *testing.T) {
	got := FormatInline("[Blog](/blog/)", new(int))
	if strings.Contains(got, "target=") {
		t.Errorf("internal link should not open a new tab: %q", got)
	}
	if !strings.Contains(got, `href="/blog/"`) {
		t.Errorf("internal link href missing: %q", got)
	}
}

func TestFormatInlineImageLoading(t *testing.T) {
	count := new(int)
	first := FormatInline("![cover](https://picsum.photos/seed/a/1200/630)", count)
	if !strings.Contains(first, `fetchpriority="high"`) {
		t.Errorf("first image should be high priority: %q", first)
	}
	second := FormatInline("![inline](https://picsum.photos/seed/b/1200/630)", count)
	if !strings.Contains(second, `loading="lazy"`) {
		t.Errorf("subsequent images should lazy-load: %q", second)
	}
}

func TestFormatInlineImageBadSchemeDropsToAlt(t *testing.T) {
	got := FormatInline("![alt text](javascript:alert(1))", new(int))
	if strings.Contains(got, "<img") {
		t.Errorf("unsafe image URL should not produce an img tag: %q", got)
	}
	if !strings.Contains(got, "alt text") {
		t.Errorf("alt text should survive: %q", got)
	}
}

func TestFormatInlineCode(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"`code`", "<code>code</code>"},
		{"use `fmt.Println` here", "use <code>fmt.Println</code> here"},
		{"`a` and `b`", "<code>a</code> and <code>b</code>"},
		// bold inside backticks should not be formatted
		{"`**not bold**`", "<code>**not bold**</code>"},
	}
	for _, tt := range tests {
		got := FormatInline(tt.input, new(int))
		if got != tt.expected {
			t.Errorf("FormatInline(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestRenderMarkdownHeadings(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"# Heading 1", "<h1>Heading 1</h1>"},
		{"## Heading 2", "<h2>Heading 2</h2>"},
		{"### Heading 3", "<h3>Heading 3</h3>"},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		RenderMarkdown(&buf, tt.input)
		got := buf.String()
		if got != tt.expected {
			t.Errorf("RenderMarkdown(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestRenderMarkdownCodeBlock(t *testing.T) {
	input := "```\ncode here\n```"
	var buf bytes.Buffer
	RenderMarkdown(&buf, input)
	got := buf.String()
	if !strings.Contains(got, "<pre") || !strings.Contains(got, "<code>") {
		t.Errorf("RenderMarkdown code block failed: %q", got)
	}
	if !strings.Contains(got, "code here") {
		t.Errorf("RenderMarkdown code block missing content: %q", got)
	}
}

func TestRenderMarkdownCodeBlockWithLanguage(t *testing.T) {
	input := "```go\nfmt.Println(\"hello\")\n```"
	var buf bytes.Buffer
	RenderMarkdown(&buf, input)
	got := buf.String()
	if !strings.Contains(got, `class="language-go"`) {
		t.Errorf("code block should have language-go class: %q", got)
	}
	if !strings.Contains(got, `<span class="code-lang code-lang-go">go</span>`) {
		t.Errorf("code block should have language badge: %q", got)
	}
}

func TestRenderMarkdownList(t *testing.T) {
	input := "- item 1\n- item 2"
	var buf bytes.Buffer
	RenderMarkdown(&buf, input)
	got := buf.String()
	expected := "<ul><li>item 1</li><li>item 2</li></ul>"
	if got != expected {
		t.Errorf("RenderMarkdown(%q) = %q, want %q", input, got, expected)
	}
}

func TestRenderMarkdownOrderedList(t *testing.T) {
	input := "1. first\n2. second\n3. third"
	var buf bytes.Buffer
	RenderMarkdown(&buf, input)
	got := buf.String()
	expected := "<ol><li>first</li><li>second</li><li>third</li></ol>"
	if got != expected {
		t.Errorf("RenderMarkdown(%q) = %q, want %q", input, got, expected)
	}
}

func TestRenderMarkdownQuote(t *testing.T) {
	input := "> wise words"
	var buf bytes.Buffer
	RenderMarkdown(&buf, input)
	got := buf.String()
	if !strings.Contains(got, "<blockquote>wise words</blockquote>") {
		t.Errorf("RenderMarkdown(%q) = %q, want blockquote", input, got)
	}
}

func TestRenderMarkdownTable(t *testing.T) {
	input := "| a | b |\n|---|---|\n| 1 | 2 |"
	var buf bytes.Buffer
	RenderMarkdown(&buf, input)
	got := buf.String()
	for _, want := range []string{"<table>", "<thead>", "<th>a</th>", "<tbody>", "<td>1</td>", "</table>"} {
		if !strings.Contains(got, want) {
			t.Errorf("RenderMarkdown table missing %q: %q", want, got)
		}
	}
}

func TestRenderMarkdownSeedPostShape(t *testing.T) {
	// The shape generated drafts use: h1, paragraphs, h2 sections.
	input := "# Title\n\nIntro paragraph\nspanning two lines.\n\n## Section\n\nBody."
	var buf bytes.Buffer
	RenderMarkdown(&buf, input)
	got := buf.String()
	if !strings.Contains(got, "<h1>Title</h1>") || !strings.Contains(got, "<h2>Section</h2>") {
		t.Errorf("headings missing: %q", got)
	}
	if !strings.Contains(got, "Intro paragraph\n spanning two lines.") {
		t.Errorf("paragraph continuation missing: %q", got)
	}
}
