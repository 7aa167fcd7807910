package models

import "time"

// Photo is metadata for one uploaded image. S3Path is the object-store key
// under the photos bucket and is opaque to callers.
type Photo struct {
	PhotoID    int32     `json:"photo_id"`
	AlbumID    int32     `json:"album_id"`
	S3Path     string    `json:"s3_path"`
	UploadedAt time.Time `json:"uploaded_at"`
}
