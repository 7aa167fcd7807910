package database

import (
	"context"
	"fmt"

	"photoproof-backend/internal/models"
)

func (c *Client) CreateInvitation(ctx context.Context, clientID, albumID, photographerID int32, inviteToken string) (*models.Invitation, error) {
	var invitation models.Invitation
	err := c.db.QueryRowContext(ctx, `
		INSERT INTO invitations (client_id, album_id, photographer_id, invite_token)
		VALUES ($1, $2, $3, $4)
		RETURNING invitation_id, album_id, client_id, photographer_id, invite_token, created_at
	`, clientID, albumID, photographerID, inviteToken).Scan(
		&invitation.InvitationID, &invitation.AlbumID, &invitation.ClientID,
		&invitation.PhotographerID, &invitation.InviteToken, &invitation.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create invitation: %w", err)
	}

	return &invitation, nil
}

func (c *Client) ListInvitationsByClientID(ctx context.Context, clientID int32) ([]models.Invitation, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT invitation_id, album_id, client_id, photographer_id, invite_token, created_at
		FROM invitations
		WHERE client_id = $1
	`, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list invitations: %w", err)
	}
	defer rows.Close()

	invitations := []models.Invitation{}
	for rows.Next() {
		var invitation models.Invitation
		if err := rows.Scan(
			&invitation.InvitationID, &invitation.AlbumID, &invitation.ClientID,
			&invitation.PhotographerID, &invitation.InviteToken, &invitation.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan invitation: %w", err)
		}
		invitations = append(invitations, invitation)
	}

	return invitations, rows.Err()
}

// ListAlbumsInvitedTo returns the albums a client has been invited to. The
// semi-join keeps duplicate invitations to the same album from producing
// duplicate rows.
func (c *Client) ListAlbumsInvitedTo(ctx context.Context, clientID int32) ([]models.Album, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT album_id, photographer_id, name, created_at
		FROM albums
		WHERE album_id IN (
			SELECT album_id FROM invitations
			WHERE client_id = $1
		)
	`, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to list invited albums: %w", err)
	}
	defer rows.Close()

	return scanAlbums(rows)
}
