package agencykit

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Storage keys. One key per concern, mirroring the legacy local-storage layout.
const (
	postsKey    = "agency_posts"
	authFlagKey = "agency_admin_auth"
	contactKey  = "agency_contact_messages"
	imagesKey   = "agency_images"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// seedPost is the built-in example post shown when the store has never been
// written. It is not persisted on load; only mutations write the list back.
func seedPost() BlogPost {
	return BlogPost{
		ID:      "1718534400000",
		Title:   "The Future of Digital Storytelling",
		Summary: "Why the next generation of brand narratives will be co-written with machines, and what that means for the teams behind them.",
		Content: "# The Future of Digital Storytelling\n\nBrands no longer publish into a void. Every story now lands in a feed shaped by models that decide who sees it and when.\n\n## Co-writing with machines\n\nThe teams that win are not the ones that automate writing away. They are the ones that treat generation as a drafting partner and keep editorial judgment human.\n\n## What to do about it\n\nStart small: let a model propose three angles on your next campaign, then argue with it. The argument is the strategy.",
		Author:  "Presh Digital",
		CreatedAt: time.Date(2024, 6, 16, 12, 0, 0, 0, time.UTC).
			Format(time.RFC3339),
		Tags: []string{"storytelling", "ai", "branding"},
	}
}

// PostStore persists blog posts as one JSON-serialized list under a single
// KV key. There is no update or delete path; posts are created and listed.
type PostStore struct {
	kv KV
}

// NewPostStore creates a PostStore on top of the given KV.
func NewPostStore(kv KV) *PostStore {
	return &PostStore{kv: kv}
}

// List returns all posts, newest first. An unset key yields the single seed
// post without writing anything back.
func (s *PostStore) List() ([]BlogPost, error) {
	raw, ok, err := s.kv.Get(postsKey)
	if err != nil {
		return nil, fmt.Errorf("load posts: %w", err)
	}
	if !ok {
		return []BlogPost{seedPost()}, nil
	}
	var posts []BlogPost
	if err := json.Unmarshal([]byte(raw), &posts); err != nil {
		return nil, fmt.Errorf("decode posts: %w", err)
	}
	return posts, nil
}

// Get returns a single post by id.
func (s *PostStore) Get(id string) (BlogPost, error) {
	posts, err := s.List()
	if err != nil {
		return BlogPost{}, err
	}
	for _, p := range posts {
		if p.ID == id {
			return p, nil
		}
	}
	return BlogPost{}, ErrNotFound
}

// Create assigns an id and creation timestamp to the draft, prepends it to
// the list, and persists. New posts are always most-recent-first; no other
// ordering is applied.
func (s *PostStore) Create(draft BlogPost) (BlogPost, error) {
	now := time.Now()
	if draft.ID == "" {
		draft.ID = strconv.FormatInt(now.UnixMilli(), 10)
	}
	if draft.CreatedAt == "" {
		draft.CreatedAt = now.UTC().Format(time.RFC3339)
	}
	posts, err := s.List()
	if err != nil {
		return BlogPost{}, err
	}
	posts = append([]BlogPost{draft}, posts...)
	if err := s.save(posts); err != nil {
		return BlogPost{}, err
	}
	return draft, nil
}

// save writes the full list back under the posts key. An empty list is never
// persisted — a quirk inherited from the system this replaces, kept so its
// observable behavior (a fully emptied store comes back seeded) is unchanged.
func (s *PostStore) save(posts []BlogPost) error {
	if len(posts) == 0 {
		return nil
	}
	raw, err := json.Marshal(posts)
	if err != nil {
		return fmt.Errorf("encode posts: %w", err)
	}
	return s.kv.Set(postsKey, string(raw))
}

// ListTags returns a sorted, deduplicated slice of all tags across posts.
func (s *PostStore) ListTags() ([]string, error) {
	posts, err := s.List()
	if err != nil {
		return nil, err
	}
	set := make(map[string]struct{})
	for _, p := range posts {
		for _, t := range p.Tags {
			tag := strings.ToLower(strings.TrimSpace(t))
			if tag != "" {
				set[tag] = struct{}{}
			}
		}
	}
	var result []string
	for t := range set {
		result = append(result, t)
	}
	sort.Strings(result)
	return result, nil
}

// ContactStore persists contact-form submissions under one KV key.
type ContactStore struct {
	kv KV
}

func NewContactStore(kv KV) *ContactStore {
	return &ContactStore{kv: kv}
}

// Add records a submission with a generated id and receipt timestamp,
// newest first.
func (s *ContactStore) Add(msg ContactMessage) (ContactMessage, error) {
	msg.ID = uuid.NewString()
	msg.ReceivedAt = time.Now().UTC().Format(time.RFC3339)
	msgs, err := s.List()
	if err != nil {
		return ContactMessage{}, err
	}
	msgs = append([]ContactMessage{msg}, msgs...)
	raw, err := json.Marshal(msgs)
	if err != nil {
		return ContactMessage{}, fmt.Errorf("encode messages: %w", err)
	}
	if err := s.kv.Set(contactKey, string(raw)); err != nil {
		return ContactMessage{}, err
	}
	return msg, nil
}

// List returns all submissions, newest first.
func (s *ContactStore) List() ([]ContactMessage, error) {
	raw, ok, err := s.kv.Get(contactKey)
	if err != nil {
		return nil, fmt.Errorf("load messages: %w", err)
	}
	if !ok {
		return nil, nil
	}
	var msgs []ContactMessage
	if err := json.Unmarshal([]byte(raw), &msgs); err != nil {
		return nil, fmt.Errorf("decode messages: %w", err)
	}
	return msgs, nil
}

// ImageStore persists uploaded-image metadata under one KV key.
type ImageStore struct {
	kv KV
}

func NewImageStore(kv KV) *ImageStore {
	return &ImageStore{kv: kv}
}

func (s *ImageStore) List() ([]Image, error) {
	raw, ok, err := s.kv.Get(imagesKey)
	if err != nil {
		return nil, fmt.Errorf("load images: %w", err)
	}
	if !ok {
		return nil, nil
	}
	var images []Image
	if err := json.Unmarshal([]byte(raw), &images); err != nil {
		return nil, fmt.Errorf("decode images: %w", err)
	}
	return images, nil
}

func (s *ImageStore) Save(img Image) error {
	images, err := s.List()
	if err != nil {
		return err
	}
	images = append([]Image{img}, images...)
	raw, err := json.Marshal(images)
	if err != nil {
		return fmt.Errorf("encode images: %w", err)
	}
	return s.kv.Set(imagesKey, string(raw))
}

func (s *ImageStore) Delete(filename string) error {
	images, err := s.List()
	if err != nil {
		return err
	}
	kept := images[:0]
	for _, img := range images {
		if img.Filename != filename {
			kept = append(kept, img)
		}
	}
	raw, err := json.Marshal(kept)
	if err != nil {
		return fmt.Errorf("encode images: %w", err)
	}
	return s.kv.Set(imagesKey, string(raw))
}
