package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"photoproof-backend/internal/models"
)

// AlbumStore is the slice of the entity repository the album endpoints
// need. Album operations are single-table and go straight to the store.
type AlbumStore interface {
	CreateAlbum(ctx context.Context, photographerID int32, name string) (*models.Album, error)
	ListAlbumsByPhotographerID(ctx context.Context, photographerID int32) ([]models.Album, error)
}

type AlbumsHandler struct {
	store AlbumStore
}

func NewAlbumsHandler(store AlbumStore) *AlbumsHandler {
	return &AlbumsHandler{store: store}
}

// CreateAlbum godoc
// @Summary     Create an album
// @Description Creates a new album owned by the given photographer
// @Tags        albums
// @Accept      json
// @Produce     json
// @Param       album body models.CreateAlbumRequest true "Album to create"
// @Success     200 {object} models.Album
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /album [post]
func (h *AlbumsHandler) CreateAlbum(c *gin.Context) {
	var req models.CreateAlbumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}

	album, err := h.store.CreateAlbum(c.Request.Context(), req.PhotographerID, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, album)
}

// GetAlbumsCreated godoc
// @Summary     List albums created by a photographer
// @Tags        albums
// @Accept      json
// @Produce     json
// @Param       photographer_id query int true "Photographer ID"
// @Success     200 {array} models.Album
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /albums/created [get]
func (h *AlbumsHandler) GetAlbumsCreated(c *gin.Context) {
	photographerID, ok := queryID(c, "photographer_id")
	if !ok {
		return
	}

	albums, err := h.store.ListAlbumsByPhotographerID(c.Request.Context(), photographerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, albums)
}
