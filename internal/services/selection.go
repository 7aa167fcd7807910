package services

import (
	"context"
	"database/sql"
	"errors"

	"photoproof-backend/internal/models"
)

// SelectionStore is the slice of the entity repository the selection
// workflow needs. CreateSelections must apply the whole batch atomically
// and surface a missing album as sql.ErrNoRows.
type SelectionStore interface {
	CreateSelections(ctx context.Context, clientID, albumID int32, photoIDs []int32) error
	ListSelectionsByClientAndAlbum(ctx context.Context, clientID, albumID int32) ([]models.AlbumSelection, error)
	ListSelectedPhotosByClientAndAlbum(ctx context.Context, clientID, albumID int32) ([]models.Photo, error)
}

type SelectionService struct {
	store SelectionStore
}

func NewSelectionService(store SelectionStore) *SelectionService {
	return &SelectionService{store: store}
}

// SelectPhotos records one selection per photo id for the client. The album
// check and all inserts commit together or not at all.
func (s *SelectionService) SelectPhotos(ctx context.Context, req models.SelectionsRequest) error {
	if err := s.store.CreateSelections(ctx, req.ClientID, req.AlbumID, req.PhotoIDs); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &ValidationError{Message: "album does not exist"}
		}
		return err
	}
	return nil
}

func (s *SelectionService) GetSelectionsByClientAndAlbum(ctx context.Context, clientID, albumID int32) ([]models.AlbumSelection, error) {
	return s.store.ListSelectionsByClientAndAlbum(ctx, clientID, albumID)
}

func (s *SelectionService) GetSelectedPhotosByClientAndAlbum(ctx context.Context, clientID, albumID int32) ([]models.Photo, error) {
	return s.store.ListSelectedPhotosByClientAndAlbum(ctx, clientID, albumID)
}
