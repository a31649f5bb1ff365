package models

import "time"

type Comment struct {
	ID        int       `json:"id"`
	Text      string    `json:"text"`
	AuthorID  int       `json:"author_id"`
	Author    *User     `json:"author,omitempty"`
	AdID      int       `json:"ad_id"`
	CreatedAt time.Time `json:"created_at"`
}
