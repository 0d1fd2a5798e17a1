package model

import (
	"time"

	"github.com/google/uuid"
)

type Post struct {
	ID        uuid.UUID `json:"id"`
	AuthorID  uuid.UUID `json:"author_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Excerpt   string    `json:"excerpt"`
	Tags      []string  `json:"tags"`
	Published bool      `json:"published"`
	Likes     int64     `json:"likes"`
	Views     int64     `json:"views"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Post) IsOwnedBy(userID uuid.UUID) bool {
	return p.AuthorID == userID
}

// SetContent replaces title and body and re-derives excerpt and tags.
func (p *Post) SetContent(title, content, category string) {
	p.Title = title
	p.Content = content
	p.Excerpt = BuildExcerpt(content)
	p.Tags = TagsFromCategory(category)
}
