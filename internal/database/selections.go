package database

import (
	"context"
	"fmt"

	"photoproof-backend/internal/models"
)

// CreateSelections records one selection row per photo for the client. The
// album check and every insert run inside a single transaction, so a batch
// is applied all-or-nothing: any failure rolls back the rows already
// inserted. A missing album surfaces as sql.ErrNoRows.
func (c *Client) CreateSelections(ctx context.Context, clientID, albumID int32, photoIDs []int32) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var id int32
	if err := tx.QueryRowContext(ctx, `
		SELECT album_id FROM albums
		WHERE album_id = $1
	`, albumID).Scan(&id); err != nil {
		return fmt.Errorf("failed to check album: %w", err)
	}

	for _, photoID := range photoIDs {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO photo_selections (photo_id, client_id)
			VALUES ($1, $2)
		`, photoID, clientID); err != nil {
			return fmt.Errorf("failed to create selection: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit selections: %w", err)
	}
	return nil
}

func (c *Client) ListSelectionsByClientAndAlbum(ctx context.Context, clientID, albumID int32) ([]models.AlbumSelection, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT ps.selection_id, ps.photo_id, p.album_id, ps.client_id, ps.confirmed_at
		FROM photo_selections ps
		JOIN photos p ON ps.photo_id = p.photo_id
		WHERE ps.client_id = $1 AND p.album_id = $2
	`, clientID, albumID)
	if err != nil {
		return nil, fmt.Errorf("failed to list selections: %w", err)
	}
	defer rows.Close()

	selections := []models.AlbumSelection{}
	for rows.Next() {
		var selection models.AlbumSelection
		if err := rows.Scan(
			&selection.SelectionID, &selection.PhotoID, &selection.AlbumID,
			&selection.ClientID, &selection.ConfirmedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan selection: %w", err)
		}
		selections = append(selections, selection)
	}

	return selections, rows.Err()
}

func (c *Client) ListSelectedPhotosByClientAndAlbum(ctx context.Context, clientID, albumID int32) ([]models.Photo, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT photo_id, album_id, s3_path, uploaded_at
		FROM photos
		WHERE photo_id IN (
			SELECT photo_id FROM photo_selections
			WHERE client_id = $1
		)
		AND album_id = $2
	`, clientID, albumID)
	if err != nil {
		return nil, fmt.Errorf("failed to list selected photos: %w", err)
	}
	defer rows.Close()

	return scanPhotos(rows)
}
