package models

import "time"

// PhotoSelection records a client choosing a specific photo. This is the
// canonical row shape of the photo_selections table.
type PhotoSelection struct {
	SelectionID int32     `json:"selection_id"`
	PhotoID     int32     `json:"photo_id"`
	ClientID    int32     `json:"client_id"`
	ConfirmedAt time.Time `json:"confirmed_at"`
}

// AlbumSelection is the projection returned by album-scoped selection
// queries: a selection row joined to its photo, with the photo's album id
// carried alongside.
type AlbumSelection struct {
	SelectionID int32     `json:"selection_id"`
	PhotoID     int32     `json:"photo_id"`
	AlbumID     int32     `json:"album_id"`
	ClientID    int32     `json:"client_id"`
	ConfirmedAt time.Time `json:"confirmed_at"`
}
