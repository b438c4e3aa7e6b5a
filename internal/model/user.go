package model

import (
	"time"
)

type User struct {
	ID           int64       `json:"id"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	PasswordHash string      `json:"-"`
	IsAdmin      bool        `json:"isAdmin"`
	WatchList    []WatchItem `json:"watchList"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// WatchItem is a single raw watchlist entry as stored: the movie key and the
// watched flag. A user's watchlist holds at most one item per movie.
type WatchItem struct {
	MovieID int64 `json:"movie"`
	Watched bool  `json:"watched"`
}

// WatchListEntry is the outward form of a watchlist item, with the movie
// reference resolved and internal identifiers stripped.
type WatchListEntry struct {
	Movie   MovieSummary `json:"movie"`
	Watched bool         `json:"watched"`
}
