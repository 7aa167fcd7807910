package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"photoproof-backend/internal/models"
	"photoproof-backend/internal/services"
)

type PhotosHandler struct {
	photos *services.PhotoService
}

func NewPhotosHandler(photos *services.PhotoService) *PhotosHandler {
	return &PhotosHandler{photos: photos}
}

// Upload godoc
// @Summary     Upload a photo to an album
// @Description Streams the multipart form: the file part is stored in the
// @Description photos bucket under its filename, album_id associates the
// @Description photo with an album
// @Tags        photos
// @Accept      multipart/form-data
// @Produce     json
// @Param       file formData file true "Photo bytes"
// @Param       album_id formData int true "Album ID"
// @Success     200 {object} models.Photo
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /upload [post]
func (h *PhotosHandler) Upload(c *gin.Context) {
	form, err := c.Request.MultipartReader()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "expected a multipart form",
			Message: err.Error(),
		})
		return
	}

	photo, err := h.photos.UploadPhoto(c.Request.Context(), form)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, photo)
}

// GetPhoto godoc
// @Summary     Download a photo
// @Description Returns the stored photo bytes
// @Tags        photos
// @Produce     png
// @Param       photo_id query int true "Photo ID"
// @Success     200 {file} file
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /photo [get]
func (h *PhotosHandler) GetPhoto(c *gin.Context) {
	photoID, ok := queryID(c, "photo_id")
	if !ok {
		return
	}

	data, contentType, err := h.photos.GetPhotoByID(c.Request.Context(), photoID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Data(http.StatusOK, contentType, data)
}

// GetPhotos godoc
// @Summary     List photos in an album
// @Tags        photos
// @Accept      json
// @Produce     json
// @Param       album_id query int true "Album ID"
// @Success     200 {array} models.Photo
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /photos [get]
func (h *PhotosHandler) GetPhotos(c *gin.Context) {
	albumID, ok := queryID(c, "album_id")
	if !ok {
		return
	}

	photos, err := h.photos.GetPhotosByAlbumID(c.Request.Context(), albumID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, photos)
}
