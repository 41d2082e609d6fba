package entity

import "time"

type AdStatus string

const (
	StatusPending  AdStatus = "pending"
	StatusApproved AdStatus = "approved"
	StatusRejected AdStatus = "rejected"
)

type Ad struct {
	ID          string    `json:"id"`
	AuthorID    string    `json:"author_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	TargetURL   string    `json:"target_url"`
	CreativeURL string    `json:"creative_url,omitempty"`
	Status      AdStatus  `json:"status"`
	VoteCount   int64     `json:"vote_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Vote struct {
	ID        string    `json:"id"`
	AdID      string    `json:"ad_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
