package model

// PostDetailed is a post with its author's public projection joined in.
type PostDetailed struct {
	Post
	Author Author `json:"author"`
}

func NewPostDetailed(post *Post, author *User) *PostDetailed {
	detailed := &PostDetailed{Post: *post}
	if author != nil {
		detailed.Author = *author.Author()
	} else {
		detailed.Author = Author{ID: post.AuthorID}
	}
	return detailed
}
