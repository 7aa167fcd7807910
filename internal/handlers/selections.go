package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"photoproof-backend/internal/models"
	"photoproof-backend/internal/services"
)

type SelectionsHandler struct {
	selections *services.SelectionService
}

func NewSelectionsHandler(selections *services.SelectionService) *SelectionsHandler {
	return &SelectionsHandler{selections: selections}
}

// SelectPhotos godoc
// @Summary     Select photos in an album
// @Description Records the client's photo selections atomically; either the
// @Description whole batch is persisted or none of it
// @Tags        selections
// @Accept      json
// @Produce     json
// @Param       selections body models.SelectionsRequest true "Photos to select"
// @Success     200 {object} models.SelectionsRequest
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /selections [post]
func (h *SelectionsHandler) SelectPhotos(c *gin.Context) {
	var req models.SelectionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}

	if err := h.selections.SelectPhotos(c.Request.Context(), req); err != nil {
		respondError(c, err)
		return
	}

	// The request is echoed back on full success.
	c.JSON(http.StatusOK, req)
}

// GetSelections godoc
// @Summary     List selections for a client and album
// @Tags        selections
// @Accept      json
// @Produce     json
// @Param       client_id query int true "Client ID"
// @Param       album_id query int true "Album ID"
// @Success     200 {array} models.AlbumSelection
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /selections [get]
func (h *SelectionsHandler) GetSelections(c *gin.Context) {
	clientID, ok := queryID(c, "client_id")
	if !ok {
		return
	}
	albumID, ok := queryID(c, "album_id")
	if !ok {
		return
	}

	selections, err := h.selections.GetSelectionsByClientAndAlbum(c.Request.Context(), clientID, albumID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, selections)
}

// GetSelectedPhotos godoc
// @Summary     List the photos a client selected in an album
// @Tags        selections
// @Accept      json
// @Produce     json
// @Param       client_id query int true "Client ID"
// @Param       album_id query int true "Album ID"
// @Success     200 {array} models.Photo
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /selected_photo [get]
func (h *SelectionsHandler) GetSelectedPhotos(c *gin.Context) {
	clientID, ok := queryID(c, "client_id")
	if !ok {
		return
	}
	albumID, ok := queryID(c, "album_id")
	if !ok {
		return
	}

	photos, err := h.selections.GetSelectedPhotosByClientAndAlbum(c.Request.Context(), clientID, albumID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, photos)
}
