package model

import (
	"net/url"
	"time"

	domainauth "github.com/target/stylist-web/internal/domain/auth"
)

// Hairstyle is a gallery entry.
type Hairstyle struct {
	ID              string     `json:"id"`
	Image           string     `json:"image"`
	Category        string     `json:"category"`
	Title           string     `json:"title,omitempty"`
	Difficulty      SkillLevel `json:"difficulty,omitempty"`
	DurationMinutes int        `json:"duration,omitempty"`
	Instructions    []string   `json:"instructions,omitempty"`
	Favorited       bool       `json:"favorited,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// WithFavorite returns a copy with the favorite flag set.
func (h Hairstyle) WithFavorite(favorited bool) Hairstyle {
	h.Favorited = favorited
	return h
}

// GalleryFilters narrows the hairstyle gallery.
type GalleryFilters struct {
	Category   string
	Difficulty SkillLevel
	PageRequest
}

// Values encodes the filters as query parameters.
func (f GalleryFilters) Values() url.Values {
	v := f.PageRequest.Values()
	setIf(v, "category", f.Category)
	setIf(v, "difficulty", string(f.Difficulty))
	return v
}

// Tutorial is an on-demand video lesson.
type Tutorial struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	VideoURL        string     `json:"videoUrl"`
	Thumbnail       string     `json:"thumbnail"`
	DurationSeconds int        `json:"duration"`
	Difficulty      SkillLevel `json:"difficulty"`
	Category        string     `json:"category"`
	Instructor      string     `json:"instructor"`
	InstructorID    string     `json:"instructorId"`
	Progress        int        `json:"progress,omitempty"` // 0-100
	Favorited       bool       `json:"favorited,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// WithProgress returns a copy with the completion percentage set, clamped to 0-100.
func (t Tutorial) WithProgress(p int) Tutorial {
	t.Progress = ClampProgress(p)
	return t
}

// WithFavorite returns a copy with the favorite flag set.
func (t Tutorial) WithFavorite(favorited bool) Tutorial {
	t.Favorited = favorited
	return t
}

// ClampProgress bounds a progress percentage to 0-100.
func ClampProgress(p int) int {
	return min(100, max(0, p))
}

// TutorialFilters narrows the tutorial list.
type TutorialFilters struct {
	Category   string
	Difficulty SkillLevel
	Search     string
	PageRequest
}

// Values encodes the filters as query parameters.
func (f TutorialFilters) Values() url.Values {
	v := f.PageRequest.Values()
	setIf(v, "category", f.Category)
	setIf(v, "difficulty", string(f.Difficulty))
	setIf(v, "search", f.Search)
	return v
}

// Post is a community feed entry.
type Post struct {
	ID        string           `json:"id"`
	Author    *domainauth.User `json:"author"`
	Content   string           `json:"content"`
	Images    []string         `json:"images,omitempty"`
	Likes     int              `json:"likes"`
	Comments  int              `json:"comments"`
	Liked     bool             `json:"liked,omitempty"`
	Category  string           `json:"category,omitempty"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

// WithLike returns a copy with the caller's like applied: liking adds one, unliking removes
// one without going below zero.
func (p Post) WithLike(liked bool) Post {
	p.Liked = liked
	if liked {
		p.Likes++
	} else {
		p.Likes = max(0, p.Likes-1)
	}
	return p
}

// WithCommentAdded returns a copy counting one more comment.
func (p Post) WithCommentAdded() Post {
	p.Comments++
	return p
}

// PostInput creates or edits a post.
type PostInput struct {
	Content  string   `json:"content"`
	Images   []string `json:"images,omitempty"`
	Category string   `json:"category,omitempty"`
}

// Comment is a reply on a post; ParentID is set for nested replies.
type Comment struct {
	ID        string           `json:"id"`
	PostID    string           `json:"postId"`
	Author    *domainauth.User `json:"author"`
	Content   string           `json:"content"`
	ParentID  string           `json:"parentId,omitempty"`
	Likes     int              `json:"likes"`
	Liked     bool             `json:"liked,omitempty"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

// CommentInput creates or edits a comment.
type CommentInput struct {
	Content  string `json:"content"`
	ParentID string `json:"parentId,omitempty"`
}

// MessageType distinguishes the two sides of an assistant conversation.
type MessageType string

const (
	MessageUser MessageType = "user"
	MessageAI   MessageType = "ai"
)

// Message is one turn of an assistant chat.
type Message struct {
	ID          string      `json:"id"`
	Type        MessageType `json:"type"`
	Content     string      `json:"content"`
	Timestamp   time.Time   `json:"timestamp"`
	Suggestions []string    `json:"suggestions,omitempty"`
	ImageURL    string      `json:"imageUrl,omitempty"`
}

// ChatRequest sends one user message, optionally continuing a session.
type ChatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"sessionId,omitempty"`
}

// ChatReply is the assistant answer plus the session it belongs to.
type ChatReply struct {
	SessionID string  `json:"sessionId"`
	Message   Message `json:"message"`
}
