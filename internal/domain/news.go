package domain

import "time"

// News represents a news article in the system.
type News struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Brief     string     `json:"brief"`
	Content   string     `json:"content"`
	PubDate   time.Time  `json:"pub_date"`
	Views     int        `json:"views"`
	Tags      []Tag      `json:"tags,omitempty"`
	Status    string     `json:"status"`
	ImagePath *string    `json:"image_path,omitempty"`
	AuthorID  string     `json:"author_id"`
	Notified  bool       `json:"notified"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Article statuses. Transitions are free-form: moderators may move an
// article between any two statuses, including archived back to draft.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchived  = "archived"
)

// ValidStatuses contains all valid news statuses.
var ValidStatuses = []string{StatusDraft, StatusPublished, StatusArchived}

// IsValidStatus checks if a status is valid.
func IsValidStatus(status string) bool {
	for _, s := range ValidStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// SortableFields contains the news fields a listing may be ordered by.
var SortableFields = []string{"pub_date", "views", "title"}

// IsSortableField checks if a field name may be used for ordering.
func IsSortableField(field string) bool {
	for _, f := range SortableFields {
		if f == field {
			return true
		}
	}
	return false
}

// NewsFilter describes a news listing request. Filtering, sorting and
// pagination compose in that order.
type NewsFilter struct {
	Status   string
	TagSlug  string
	AuthorID string
	Query    string // case-insensitive substring over title OR content
	SortBy   string // defaults to pub_date
	Order    string // "asc" or "desc", defaults to desc
	Page     int
	PerPage  int
}
