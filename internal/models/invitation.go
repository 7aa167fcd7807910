package models

import "time"

// Invitation grants a client access to view and select photos in a specific
// album. The photographer id is recorded redundantly so the workflow can
// verify album ownership at creation time.
type Invitation struct {
	InvitationID   int32     `json:"invitation_id"`
	AlbumID        int32     `json:"album_id"`
	ClientID       int32     `json:"client_id"`
	PhotographerID int32     `json:"photographer_id"`
	InviteToken    string    `json:"invite_token"`
	CreatedAt      time.Time `json:"created_at"`
}
