package services_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"photoproof-backend/internal/models"
	"photoproof-backend/internal/services"
)

const testTokenSecret = "test-invite-token-secret"

type fakeInvitationStore struct {
	users   map[int32]*models.User
	albums  map[int32]*models.Album
	created []models.Invitation
}

func newFakeInvitationStore() *fakeInvitationStore {
	return &fakeInvitationStore{
		users:  make(map[int32]*models.User),
		albums: make(map[int32]*models.Album),
	}
}

func (f *fakeInvitationStore) GetUserByID(_ context.Context, userID int32) (*models.User, error) {
	user, ok := f.users[userID]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return user, nil
}

func (f *fakeInvitationStore) GetAlbumByID(_ context.Context, albumID int32) (*models.Album, error) {
	album, ok := f.albums[albumID]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return album, nil
}

func (f *fakeInvitationStore) CreateInvitation(_ context.Context, clientID, albumID, photographerID int32, inviteToken string) (*models.Invitation, error) {
	invitation := models.Invitation{
		InvitationID:   int32(len(f.created) + 1),
		AlbumID:        albumID,
		ClientID:       clientID,
		PhotographerID: photographerID,
		InviteToken:    inviteToken,
		CreatedAt:      time.Now(),
	}
	f.created = append(f.created, invitation)
	return &invitation, nil
}

func (f *fakeInvitationStore) ListInvitationsByClientID(_ context.Context, clientID int32) ([]models.Invitation, error) {
	invitations := []models.Invitation{}
	for _, invitation := range f.created {
		if invitation.ClientID == clientID {
			invitations = append(invitations, invitation)
		}
	}
	return invitations, nil
}

func (f *fakeInvitationStore) ListAlbumsInvitedTo(_ context.Context, clientID int32) ([]models.Album, error) {
	albums := []models.Album{}
	seen := make(map[int32]bool)
	for _, invitation := range f.created {
		if invitation.ClientID != clientID || seen[invitation.AlbumID] {
			continue
		}
		seen[invitation.AlbumID] = true
		albums = append(albums, *f.albums[invitation.AlbumID])
	}
	return albums, nil
}

func (f *fakeInvitationStore) addUser(id int32) {
	f.users[id] = &models.User{UserID: id, Username: "u", Email: "u@example.com"}
}

func (f *fakeInvitationStore) addAlbum(id, photographerID int32) {
	f.albums[id] = &models.Album{AlbumID: id, PhotographerID: photographerID, Name: "wedding"}
}

func TestCreateInvitation_SelfInvite(t *testing.T) {
	store := newFakeInvitationStore()
	svc := services.NewInvitationService(store, testTokenSecret)

	_, err := svc.CreateInvitation(context.Background(), models.InvitationRequest{
		ClientID: 9, AlbumID: 3, PhotographerID: 9,
	})

	var validationErr *services.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "photographer cannot invite themselves", validationErr.Error())
	assert.Empty(t, store.created)
}

func TestCreateInvitation_UnknownClient(t *testing.T) {
	store := newFakeInvitationStore()
	store.addUser(9)
	store.addAlbum(3, 9)
	svc := services.NewInvitationService(store, testTokenSecret)

	_, err := svc.CreateInvitation(context.Background(), models.InvitationRequest{
		ClientID: 5, AlbumID: 3, PhotographerID: 9,
	})

	var validationErr *services.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "user does not exist", validationErr.Error())
}

func TestCreateInvitation_UnknownAlbum(t *testing.T) {
	store := newFakeInvitationStore()
	store.addUser(5)
	store.addUser(9)
	svc := services.NewInvitationService(store, testTokenSecret)

	_, err := svc.CreateInvitation(context.Background(), models.InvitationRequest{
		ClientID: 5, AlbumID: 999, PhotographerID: 9,
	})

	var validationErr *services.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "album does not exist", validationErr.Error())
}

func TestCreateInvitation_OwnerMismatch(t *testing.T) {
	store := newFakeInvitationStore()
	store.addUser(5)
	store.addUser(9)
	store.addUser(10)
	store.addAlbum(3, 9)
	svc := services.NewInvitationService(store, testTokenSecret)

	_, err := svc.CreateInvitation(context.Background(), models.InvitationRequest{
		ClientID: 5, AlbumID: 3, PhotographerID: 10,
	})

	var validationErr *services.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "album does not belong to this photographer", validationErr.Error())
	assert.Empty(t, store.created)
}

func TestCreateInvitation_Success(t *testing.T) {
	store := newFakeInvitationStore()
	store.addUser(5)
	store.addUser(9)
	store.addAlbum(3, 9)
	svc := services.NewInvitationService(store, testTokenSecret)

	invitation, err := svc.CreateInvitation(context.Background(), models.InvitationRequest{
		ClientID: 5, AlbumID: 3, PhotographerID: 9,
	})
	require.NoError(t, err)

	assert.Equal(t, int32(5), invitation.ClientID)
	assert.Equal(t, int32(3), invitation.AlbumID)
	assert.Equal(t, int32(9), invitation.PhotographerID)
	assert.NotZero(t, invitation.InvitationID)
	assert.NotEmpty(t, invitation.InviteToken)

	// Invited albums now include the album, exactly once
	albums, err := svc.GetAlbumsInvitedTo(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, albums, 1)
	assert.Equal(t, int32(3), albums[0].AlbumID)
}

func TestCreateInvitation_TokenIsVerifiable(t *testing.T) {
	store := newFakeInvitationStore()
	store.addUser(5)
	store.addUser(9)
	store.addAlbum(3, 9)
	svc := services.NewInvitationService(store, testTokenSecret)

	invitation, err := svc.CreateInvitation(context.Background(), models.InvitationRequest{
		ClientID: 5, AlbumID: 3, PhotographerID: 9,
	})
	require.NoError(t, err)

	token, err := jwt.Parse(invitation.InviteToken, func(t *jwt.Token) (interface{}, error) {
		return []byte(testTokenSecret), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, float64(3), claims["album_id"])
	assert.Equal(t, float64(5), claims["client_id"])
	assert.Equal(t, float64(9), claims["photographer_id"])
	assert.NotEmpty(t, claims["jti"])
}

func TestGetInvitationsByUserID_Empty(t *testing.T) {
	store := newFakeInvitationStore()
	svc := services.NewInvitationService(store, testTokenSecret)

	invitations, err := svc.GetInvitationsByUserID(context.Background(), 42)
	require.NoError(t, err)
	assert.Empty(t, invitations)
}

func TestGetAlbumsInvitedTo_NoDuplicates(t *testing.T) {
	store := newFakeInvitationStore()
	store.addUser(5)
	store.addUser(9)
	store.addAlbum(3, 9)
	svc := services.NewInvitationService(store, testTokenSecret)

	for i := 0; i < 2; i++ {
		_, err := svc.CreateInvitation(context.Background(), models.InvitationRequest{
			ClientID: 5, AlbumID: 3, PhotographerID: 9,
		})
		require.NoError(t, err)
	}

	albums, err := svc.GetAlbumsInvitedTo(context.Background(), 5)
	require.NoError(t, err)
	assert.Len(t, albums, 1)
}
