package model

import "github.com/google/uuid"

type CreatePostDTO struct {
	AuthorID uuid.UUID `json:"author_id"`
	Title    string    `json:"title"`
	Content  string    `json:"content"`
	Category string    `json:"category,omitempty"`
}
