package model

import (
	"time"
)

type Movie struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	// Rate is derived: 0 with no reviews, otherwise the arithmetic mean of
	// all review rates. Maintained by the store on every review append.
	Rate      float64   `json:"rate"`
	Reviews   []Review  `json:"review,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Review struct {
	UserID  int64   `json:"user"`
	Comment string  `json:"comment"`
	Rate    float64 `json:"rate"`
}

// ReviewEntry is the outward form of a review, with the reviewer resolved to
// id and name.
type ReviewEntry struct {
	User    ReviewAuthor `json:"user"`
	Comment string       `json:"comment"`
	Rate    float64      `json:"rate"`
}

type ReviewAuthor struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type MovieSummary struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}
