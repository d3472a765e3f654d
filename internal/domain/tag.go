package domain

// Tag represents a uniquely named label attachable to news articles.
// Slug is derived from the name by transliteration and is the stable
// public identifier; lookups by raw name are not supported.
type Tag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}
