package agencykit

// BlogPost is the core content record. Posts are created through the admin
// editor, serialized as one JSON list under a single store key, and listed
// newest-first. The id is derived from the creation timestamp in milliseconds;
// two posts created in the same millisecond would collide, which the system
// this replaces never guarded against either.
type BlogPost struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Summary    string   `json:"summary"`
	Content    string   `json:"content"`
	CoverImage string   `json:"coverImage,omitempty"`
	Author     string   `json:"author"`
	CreatedAt  string   `json:"createdAt"`
	Tags       []string `json:"tags"`
}

// ContactMessage is a submission from the public contact form.
type ContactMessage struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Message    string `json:"message"`
	ReceivedAt string `json:"receivedAt"`
}

// Image is metadata for an uploaded cover image. The file itself lives under
// the static uploads directory; this record is what the admin image list shows.
type Image struct {
	Filename     string `json:"filename"`
	OriginalName string `json:"originalName"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	Size         int    `json:"size"`
	UploadedAt   string `json:"uploadedAt"`
}

// Verticals lists the industry vertical slugs the site serves pages for.
var Verticals = []string{"b2b", "seo", "branding", "automation"}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
}
