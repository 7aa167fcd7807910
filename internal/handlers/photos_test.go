package handlers_test

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"photoproof-backend/internal/handlers"
	"photoproof-backend/internal/models"
	"photoproof-backend/internal/services"
)

type stubPhotoStore struct {
	photos map[int32]*models.Photo
	nextID int32
}

func (f *stubPhotoStore) CreatePhoto(_ context.Context, albumID int32, s3Path string) (*models.Photo, error) {
	f.nextID++
	photo := &models.Photo{PhotoID: f.nextID, AlbumID: albumID, S3Path: s3Path, UploadedAt: time.Now()}
	f.photos[photo.PhotoID] = photo
	return photo, nil
}

func (f *stubPhotoStore) GetPhotoByID(_ context.Context, photoID int32) (*models.Photo, error) {
	photo, ok := f.photos[photoID]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return photo, nil
}

func (f *stubPhotoStore) ListPhotosByAlbumID(_ context.Context, albumID int32) ([]models.Photo, error) {
	result := []models.Photo{}
	for _, photo := range f.photos {
		if photo.AlbumID == albumID {
			result = append(result, *photo)
		}
	}
	return result, nil
}

type stubBlobStore struct {
	objects map[string][]byte
}

func (f *stubBlobStore) Upload(objectName string, data []byte) (string, error) {
	f.objects[objectName] = data
	return objectName, nil
}

func (f *stubBlobStore) Download(objectPath string) ([]byte, error) {
	data, ok := f.objects[objectPath]
	if !ok {
		return nil, errors.New("object not found")
	}
	return data, nil
}

func photosRouter() (*gin.Engine, *stubPhotoStore, *stubBlobStore) {
	gin.SetMode(gin.TestMode)
	store := &stubPhotoStore{photos: make(map[int32]*models.Photo)}
	blobs := &stubBlobStore{objects: make(map[string][]byte)}
	h := handlers.NewPhotosHandler(services.NewPhotoService(store, blobs))
	router := gin.New()
	router.POST("/upload", h.Upload)
	router.GET("/photo", h.GetPhoto)
	router.GET("/photos", h.GetPhotos)
	return router, store, blobs
}

func TestUpload_HTTP(t *testing.T) {
	router, _, blobs := photosRouter()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", "beach.png")
	require.NoError(t, err)
	_, err = fw.Write([]byte("png-bytes"))
	require.NoError(t, err)
	require.NoError(t, w.WriteField("album_id", "3"))
	require.NoError(t, w.Close())

	req, _ := http.NewRequest("POST", "/upload", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"album_id":3`)
	assert.Contains(t, rec.Body.String(), `"s3_path":"beach.png"`)
	assert.Equal(t, []byte("png-bytes"), blobs.objects["beach.png"])
}

func TestUpload_HTTP_NotMultipart(t *testing.T) {
	router, _, _ := photosRouter()

	req, _ := http.NewRequest("POST", "/upload", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetPhoto_HTTP(t *testing.T) {
	router, store, blobs := photosRouter()
	blobs.objects["beach.png"] = []byte("png-bytes")
	_, err := store.CreatePhoto(context.Background(), 3, "beach.png")
	require.NoError(t, err)

	req, _ := http.NewRequest("GET", "/photo?photo_id=1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, []byte("png-bytes"), rec.Body.Bytes())
}

func TestGetPhoto_HTTP_NotFound(t *testing.T) {
	router, _, _ := photosRouter()

	req, _ := http.NewRequest("GET", "/photo?photo_id=-1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetPhoto_HTTP_InvalidID(t *testing.T) {
	router, _, _ := photosRouter()

	req, _ := http.NewRequest("GET", "/photo?photo_id=abc", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetPhotos_HTTP(t *testing.T) {
	router, store, _ := photosRouter()
	_, err := store.CreatePhoto(context.Background(), 3, "a.png")
	require.NoError(t, err)

	req, _ := http.NewRequest("GET", "/photos?album_id=3", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"a.png"`)
}
