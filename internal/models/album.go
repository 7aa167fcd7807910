package models

import "time"

// Album is a named collection of photos owned by one photographer.
type Album struct {
	AlbumID        int32     `json:"album_id"`
	PhotographerID int32     `json:"photographer_id"`
	Name           string    `json:"name"`
	CreatedAt      time.Time `json:"created_at"`
}
