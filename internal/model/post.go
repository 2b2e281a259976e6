package model

import "time"

// Post type constants
const (
	PostTypeHealthTip = "health_tip"
	PostTypeComboPlan = "combo_plan"
	PostTypeGeneral   = "general"
)

// Post is a social feed entry. The like counter is the only field mutated
// after creation.
type Post struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	PostType  string    `json:"post_type" db:"post_type"`
	ImageURL  *string   `json:"image_url" db:"image_url"`
	Likes     int       `json:"likes" db:"likes"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// PostAuthor is the display identity resolved from the author's role profile.
type PostAuthor struct {
	UserType string `json:"user_type"`
	Name     string `json:"name"`
}

// PostWithAuthor is the enriched feed shape.
type PostWithAuthor struct {
	Post
	Author PostAuthor `json:"author"`
}

// CreatePostRequest creates a feed post authored by the authenticated user.
type CreatePostRequest struct {
	Title    string  `json:"title" binding:"required"`
	Content  string  `json:"content" binding:"required"`
	PostType string  `json:"post_type" binding:"required,oneof=health_tip combo_plan general"`
	ImageURL *string `json:"image_url"`
}

// PostFilters narrows the feed listing.
type PostFilters struct {
	PostType string `form:"post_type"`
	Limit    int    `form:"limit"`
}
