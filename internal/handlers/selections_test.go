package handlers_test

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"photoproof-backend/internal/handlers"
	"photoproof-backend/internal/models"
	"photoproof-backend/internal/services"
)

type stubSelectionStore struct {
	albums     map[int32]bool
	photos     map[int32]models.Photo
	selections []models.PhotoSelection
}

func (f *stubSelectionStore) CreateSelections(_ context.Context, clientID, albumID int32, photoIDs []int32) error {
	if !f.albums[albumID] {
		return sql.ErrNoRows
	}
	for _, photoID := range photoIDs {
		f.selections = append(f.selections, models.PhotoSelection{
			SelectionID: int32(len(f.selections) + 1),
			PhotoID:     photoID,
			ClientID:    clientID,
			ConfirmedAt: time.Now(),
		})
	}
	return nil
}

func (f *stubSelectionStore) ListSelectionsByClientAndAlbum(_ context.Context, clientID, albumID int32) ([]models.AlbumSelection, error) {
	result := []models.AlbumSelection{}
	for _, selection := range f.selections {
		photo, ok := f.photos[selection.PhotoID]
		if !ok || selection.ClientID != clientID || photo.AlbumID != albumID {
			continue
		}
		result = append(result, models.AlbumSelection{
			SelectionID: selection.SelectionID,
			PhotoID:     selection.PhotoID,
			AlbumID:     photo.AlbumID,
			ClientID:    selection.ClientID,
			ConfirmedAt: selection.ConfirmedAt,
		})
	}
	return result, nil
}

func (f *stubSelectionStore) ListSelectedPhotosByClientAndAlbum(_ context.Context, clientID, albumID int32) ([]models.Photo, error) {
	result := []models.Photo{}
	for _, selection := range f.selections {
		photo, ok := f.photos[selection.PhotoID]
		if !ok || selection.ClientID != clientID || photo.AlbumID != albumID {
			continue
		}
		result = append(result, photo)
	}
	return result, nil
}

func selectionsRouter(store *stubSelectionStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handlers.NewSelectionsHandler(services.NewSelectionService(store))
	router := gin.New()
	router.POST("/selections", h.SelectPhotos)
	router.GET("/selections", h.GetSelections)
	router.GET("/selected_photo", h.GetSelectedPhotos)
	return router
}

func TestSelectPhotos_HTTP_EchoesRequest(t *testing.T) {
	store := &stubSelectionStore{
		albums: map[int32]bool{3: true},
		photos: map[int32]models.Photo{7: {PhotoID: 7, AlbumID: 3}},
	}
	router := selectionsRouter(store)

	body := `{"client_id": 1, "album_id": 3, "photo_ids": [7]}`
	req, _ := http.NewRequest("POST", "/selections", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, body, w.Body.String())
	assert.Len(t, store.selections, 1)
}

func TestSelectPhotos_HTTP_UnknownAlbum(t *testing.T) {
	store := &stubSelectionStore{albums: map[int32]bool{}, photos: map[int32]models.Photo{}}
	router := selectionsRouter(store)

	body := `{"client_id": 1, "album_id": 999, "photo_ids": [1, 2]}`
	req, _ := http.NewRequest("POST", "/selections", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "album does not exist")
	assert.Empty(t, store.selections)
}

func TestGetSelectedPhotos_HTTP(t *testing.T) {
	store := &stubSelectionStore{
		albums: map[int32]bool{3: true},
		photos: map[int32]models.Photo{7: {PhotoID: 7, AlbumID: 3, S3Path: "beach.png"}},
	}
	router := selectionsRouter(store)

	body := `{"client_id": 1, "album_id": 3, "photo_ids": [7]}`
	req, _ := http.NewRequest("POST", "/selections", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req, _ = http.NewRequest("GET", "/selected_photo?client_id=1&album_id=3", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"photo_id":7`)
}

func TestGetSelections_HTTP_MissingParams(t *testing.T) {
	store := &stubSelectionStore{albums: map[int32]bool{}, photos: map[int32]models.Photo{}}
	router := selectionsRouter(store)

	req, _ := http.NewRequest("GET", "/selections?client_id=1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
