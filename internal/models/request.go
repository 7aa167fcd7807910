package models

type SignUpRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type CreateAlbumRequest struct {
	PhotographerID int32  `json:"photographer_id"`
	Name           string `json:"name" binding:"required"`
}

type InvitationRequest struct {
	ClientID       int32 `json:"client_id"`
	AlbumID        int32 `json:"album_id"`
	PhotographerID int32 `json:"photographer_id"`
}

// SelectionsRequest is both the POST /selections body and, on success, the
// response echoed back to the caller.
type SelectionsRequest struct {
	ClientID int32   `json:"client_id"`
	AlbumID  int32   `json:"album_id"`
	PhotoIDs []int32 `json:"photo_ids"`
}
