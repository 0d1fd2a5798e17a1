package model

const (
	ExcerptLength   = 150
	excerptEllipsis = "..."
)

// BuildExcerpt returns the first ExcerptLength characters of content,
// followed by "..." when content is longer than that.
func BuildExcerpt(content string) string {
	runes := []rune(content)
	if len(runes) <= ExcerptLength {
		return content
	}
	return string(runes[:ExcerptLength]) + excerptEllipsis
}

// TagsFromCategory maps the single free-text category to the tag list.
func TagsFromCategory(category string) []string {
	if category == "" {
		return []string{}
	}
	return []string{category}
}
