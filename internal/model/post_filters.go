package model

import "github.com/google/uuid"

type PostFilters struct {
	AuthorID      *uuid.UUID
	PublishedOnly bool
}
