package database

import (
	"context"
	"database/sql"
	"fmt"

	"photoproof-backend/internal/models"
)

func (c *Client) CreateAlbum(ctx context.Context, photographerID int32, name string) (*models.Album, error) {
	var album models.Album
	err := c.db.QueryRowContext(ctx, `
		INSERT INTO albums (photographer_id, name)
		VALUES ($1, $2)
		RETURNING album_id, photographer_id, name, created_at
	`, photographerID, name).Scan(
		&album.AlbumID, &album.PhotographerID, &album.Name, &album.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create album: %w", err)
	}

	return &album, nil
}

func (c *Client) GetAlbumByID(ctx context.Context, albumID int32) (*models.Album, error) {
	var album models.Album
	err := c.db.QueryRowContext(ctx, `
		SELECT album_id, photographer_id, name, created_at
		FROM albums
		WHERE album_id = $1
	`, albumID).Scan(
		&album.AlbumID, &album.PhotographerID, &album.Name, &album.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get album: %w", err)
	}

	return &album, nil
}

func (c *Client) ListAlbumsByPhotographerID(ctx context.Context, photographerID int32) ([]models.Album, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT album_id, photographer_id, name, created_at
		FROM albums
		WHERE photographer_id = $1
	`, photographerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list albums: %w", err)
	}
	defer rows.Close()

	return scanAlbums(rows)
}

func scanAlbums(rows *sql.Rows) ([]models.Album, error) {
	albums := []models.Album{}
	for rows.Next() {
		var album models.Album
		if err := rows.Scan(&album.AlbumID, &album.PhotographerID, &album.Name, &album.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan album: %w", err)
		}
		albums = append(albums, album)
	}

	return albums, rows.Err()
}
