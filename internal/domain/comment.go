package domain

import "time"

// Comment represents a comment left on a news article. Likes are part
// of the comment and vanish with it.
type Comment struct {
	ID        string    `json:"id"`
	NewsID    string    `json:"news_id"`
	AuthorID  string    `json:"author_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	LikeCount int       `json:"like_count"`
}
