package database

import (
	"context"
	"database/sql"
	"fmt"

	"photoproof-backend/internal/models"
)

func (c *Client) CreatePhoto(ctx context.Context, albumID int32, s3Path string) (*models.Photo, error) {
	var photo models.Photo
	err := c.db.QueryRowContext(ctx, `
		INSERT INTO photos (album_id, s3_path)
		VALUES ($1, $2)
		RETURNING photo_id, album_id, s3_path, uploaded_at
	`, albumID, s3Path).Scan(
		&photo.PhotoID, &photo.AlbumID, &photo.S3Path, &photo.UploadedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create photo: %w", err)
	}

	return &photo, nil
}

func (c *Client) GetPhotoByID(ctx context.Context, photoID int32) (*models.Photo, error) {
	var photo models.Photo
	err := c.db.QueryRowContext(ctx, `
		SELECT photo_id, album_id, s3_path, uploaded_at
		FROM photos
		WHERE photo_id = $1
	`, photoID).Scan(
		&photo.PhotoID, &photo.AlbumID, &photo.S3Path, &photo.UploadedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get photo: %w", err)
	}

	return &photo, nil
}

func (c *Client) ListPhotosByAlbumID(ctx context.Context, albumID int32) ([]models.Photo, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT photo_id, album_id, s3_path, uploaded_at
		FROM photos
		WHERE album_id = $1
	`, albumID)
	if err != nil {
		return nil, fmt.Errorf("failed to list photos: %w", err)
	}
	defer rows.Close()

	return scanPhotos(rows)
}

func scanPhotos(rows *sql.Rows) ([]models.Photo, error) {
	photos := []models.Photo{}
	for rows.Next() {
		var photo models.Photo
		if err := rows.Scan(&photo.PhotoID, &photo.AlbumID, &photo.S3Path, &photo.UploadedAt); err != nil {
			return nil, fmt.Errorf("failed to scan photo: %w", err)
		}
		photos = append(photos, photo)
	}

	return photos, rows.Err()
}
