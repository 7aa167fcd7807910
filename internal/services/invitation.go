package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"photoproof-backend/internal/models"
)

// InvitationStore is the slice of the entity repository the invitation
// workflow needs.
type InvitationStore interface {
	GetUserByID(ctx context.Context, userID int32) (*models.User, error)
	GetAlbumByID(ctx context.Context, albumID int32) (*models.Album, error)
	CreateInvitation(ctx context.Context, clientID, albumID, photographerID int32, inviteToken string) (*models.Invitation, error)
	ListInvitationsByClientID(ctx context.Context, clientID int32) ([]models.Invitation, error)
	ListAlbumsInvitedTo(ctx context.Context, clientID int32) ([]models.Album, error)
}

type InvitationService struct {
	store       InvitationStore
	tokenSecret []byte
}

func NewInvitationService(store InvitationStore, tokenSecret string) *InvitationService {
	return &InvitationService{
		store:       store,
		tokenSecret: []byte(tokenSecret),
	}
}

// CreateInvitation links a client to an album. Preconditions are checked in
// order and the first failure wins: no self-invitation, the client must
// exist, the album must exist, and the album must belong to the inviting
// photographer.
func (s *InvitationService) CreateInvitation(ctx context.Context, req models.InvitationRequest) (*models.Invitation, error) {
	if req.ClientID == req.PhotographerID {
		return nil, &ValidationError{Message: "photographer cannot invite themselves"}
	}

	if _, err := s.store.GetUserByID(ctx, req.ClientID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &ValidationError{Message: "user does not exist"}
		}
		return nil, err
	}

	album, err := s.store.GetAlbumByID(ctx, req.AlbumID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &ValidationError{Message: "album does not exist"}
		}
		return nil, err
	}

	if album.PhotographerID != req.PhotographerID {
		return nil, &ValidationError{Message: "album does not belong to this photographer"}
	}

	token, err := s.newInviteToken(req)
	if err != nil {
		return nil, fmt.Errorf("failed to sign invite token: %w", err)
	}

	return s.store.CreateInvitation(ctx, req.ClientID, req.AlbumID, req.PhotographerID, token)
}

// newInviteToken issues the invitation's token as a signed JWT so it can
// be verified offline against the configured secret.
func (s *InvitationService) newInviteToken(req models.InvitationRequest) (string, error) {
	claims := jwt.MapClaims{
		"album_id":        req.AlbumID,
		"client_id":       req.ClientID,
		"photographer_id": req.PhotographerID,
		"jti":             uuid.NewString(),
		"iat":             time.Now().Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.tokenSecret)
}

func (s *InvitationService) GetInvitationsByUserID(ctx context.Context, clientID int32) ([]models.Invitation, error) {
	return s.store.ListInvitationsByClientID(ctx, clientID)
}

func (s *InvitationService) GetAlbumsInvitedTo(ctx context.Context, clientID int32) ([]models.Album, error) {
	return s.store.ListAlbumsInvitedTo(ctx, clientID)
}
