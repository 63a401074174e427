package agencykit

import (
	"reflect"
	"testing"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello-world"},
		{"  Spaces  everywhere  ", "spaces-everywhere"},
		{"CamelCase123", "camelcase123"},
		{"symbols!@#here", "symbols-here"},
		{"trailing---", "trailing"},
	}

	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestBuildURL(t *testing.T) {
	tests := []struct {
		base     string
		segments []string
		want     string
	}{
		{"https://example.com", nil, "https://example.com"},
		{"https://example.com", []string{"blog"}, "https://example.com/blog/"},
		{"https://example.com", []string{"blog", "123"}, "https://example.com/blog/123/"},
		{"https://example.com/sub", []string{"about"}, "https://example.com/sub/about/"},
	}

	for _, tt := range tests {
		if got := BuildURL(tt.base, tt.segments...); got != tt.want {
			t.Errorf("BuildURL(%q, %v) = %q, want %q", tt.base, tt.segments, got, tt.want)
		}
	}
}

func TestFilterEmpty(t *testing.T) {
	got := FilterEmpty([]string{" go ", "", "  ", "web"})
	want := []string{"go", "web"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FilterEmpty = %v, want %v", got, want)
	}
}

func TestFilterRelatedPosts(t *testing.T) {
	current := BlogPost{ID: "1", Tags: []string{"Go", "web"}}
	posts := []BlogPost{
		{ID: "1", Tags: []string{"go"}},          // same post, excluded
		{ID: "2", Tags: []string{"go", "infra"}}, // shares go
		{ID: "3", Tags: []string{"design"}},      // no overlap
		{ID: "4", Tags: []string{"WEB"}},         // shares web, case-insensitive
	}

	related := FilterRelatedPosts(current, posts)
	if len(related) != 2 {
		t.Fatalf("len(related) = %d, want 2", len(related))
	}
	if related[0].ID != "2" || related[1].ID != "4" {
		t.Errorf("related IDs = %s, %s, want 2, 4", related[0].ID, related[1].ID)
	}
}
