package agencykit

import (
	"bytes"
	"image"
	"image/png"
	"testing"
)

func TestCoverImageURL(t *testing.T) {
	tests := []struct {
		prompt string
		want   string
	}{
		{"Modern Architecture", "https://picsum.photos/seed/modern-architecture/1200/630"},
		{"modern   architecture", "https://picsum.photos/seed/modern-architecture/1200/630"},
		{"  Modern Architecture  ", "https://picsum.photos/seed/modern-architecture/1200/630"},
		{"AI", "https://picsum.photos/seed/ai/1200/630"},
		{"multi\nline\ttext", "https://picsum.photos/seed/multi-line-text/1200/630"},
	}

	for _, tt := range tests {
		if got := CoverImageURL(tt.prompt); got != tt.want {
			t.Errorf("CoverImageURL(%q) = %q, want %q", tt.prompt, got, tt.want)
		}
	}
}

func TestCoverImageURLIsDeterministic(t *testing.T) {
	a := CoverImageURL("Digital Storytelling")
	b := CoverImageURL("digital  STORYTELLING")
	if a != b {
		t.Errorf("equivalent prompts produced different URLs: %q vs %q", a, b)
	}
}

func encodeTestPNG(t *testing.T, w, h int) *bytes.Reader {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return bytes.NewReader(buf.Bytes())
}

func TestProcessImageResizesWideImages(t *testing.T) {
	img, data, err := processImage(encodeTestPNG(t, 1600, 800), "Hero Shot.png")
	if err != nil {
		t.Fatalf("processImage failed: %v", err)
	}
	if img.Width != 800 || img.Height != 400 {
		t.Errorf("dimensions = %dx%d, want 800x400", img.Width, img.Height)
	}
	if img.Filename != "hero-shot.jpg" {
		t.Errorf("Filename = %q, want %q", img.Filename, "hero-shot.jpg")
	}
	if img.OriginalName != "Hero Shot.png" {
		t.Errorf("OriginalName = %q, want original kept", img.OriginalName)
	}
	if len(data) == 0 || img.Size != len(data) {
		t.Errorf("Size = %d, data = %d bytes", img.Size, len(data))
	}
}

func TestProcessImageKeepsSmallImages(t *testing.T) {
	img, _, err := processImage(encodeTestPNG(t, 400, 300), "small.png")
	if err != nil {
		t.Fatalf("processImage failed: %v", err)
	}
	if img.Width != 400 || img.Height != 300 {
		t.Errorf("dimensions = %dx%d, want unchanged 400x300", img.Width, img.Height)
	}
}

func TestProcessImageRejectsGarbage(t *testing.T) {
	if _, _, err := processImage(bytes.NewReader([]byte("not an image")), "x.png"); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestEnsureUniqueFilename(t *testing.T) {
	a := New(SiteConfig{SessionSecret: "s"}, ViewFuncs{}, WithKV(NewMemoryKV()), WithStaticDir(t.TempDir()))
	a.initComponents()

	if err := a.Images.Save(Image{Filename: "photo.jpg"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	img := Image{Filename: "photo.jpg"}
	a.ensureUniqueFilename(&img)
	if img.Filename != "photo-2.jpg" {
		t.Errorf("Filename = %q, want %q", img.Filename, "photo-2.jpg")
	}

	fresh := Image{Filename: "other.jpg"}
	a.ensureUniqueFilename(&fresh)
	if fresh.Filename != "other.jpg" {
		t.Errorf("Filename = %q, want unchanged", fresh.Filename)
	}
}

func TestSlugifyFilename(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"My Photo.PNG", "my-photo"},
		{"hero image (final).jpeg", "hero-image-final"},
		{"already-clean.jpg", "already-clean"},
	}

	for _, tt := range tests {
		if got := slugifyFilename(tt.name); got != tt.want {
			t.Errorf("slugifyFilename(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
