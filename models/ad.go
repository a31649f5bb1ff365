package models

import "time"

// Ad is a classified listing. Author is populated by repository reads that
// join the users table and may be nil on freshly constructed values.
type Ad struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       int       `json:"price"`
	AuthorID    int       `json:"author_id"`
	Author      *User     `json:"author,omitempty"`
	Image       *string   `json:"image,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
