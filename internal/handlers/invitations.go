package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"photoproof-backend/internal/models"
	"photoproof-backend/internal/services"
)

type InvitationsHandler struct {
	invitations *services.InvitationService
}

func NewInvitationsHandler(invitations *services.InvitationService) *InvitationsHandler {
	return &InvitationsHandler{invitations: invitations}
}

// CreateInvitation godoc
// @Summary     Invite a client to an album
// @Description Links a client to an album after validating that the client
// @Description exists, the album exists, the album belongs to the inviting
// @Description photographer, and the photographer is not inviting themselves
// @Tags        invitations
// @Accept      json
// @Produce     json
// @Param       invitation body models.InvitationRequest true "Invitation to create"
// @Success     200 {object} models.Invitation
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /invitation [post]
func (h *InvitationsHandler) CreateInvitation(c *gin.Context) {
	var req models.InvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}

	invitation, err := h.invitations.CreateInvitation(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, invitation)
}

// GetInvitations godoc
// @Summary     List invitations for a client
// @Tags        invitations
// @Accept      json
// @Produce     json
// @Param       client_id query int true "Client ID"
// @Success     200 {array} models.Invitation
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /invitations [get]
func (h *InvitationsHandler) GetInvitations(c *gin.Context) {
	clientID, ok := queryID(c, "client_id")
	if !ok {
		return
	}

	invitations, err := h.invitations.GetInvitationsByUserID(c.Request.Context(), clientID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, invitations)
}

// GetAlbumsInvited godoc
// @Summary     List albums a client has been invited to
// @Tags        invitations
// @Accept      json
// @Produce     json
// @Param       client_id query int true "Client ID"
// @Success     200 {array} models.Album
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /albums/invited [get]
func (h *InvitationsHandler) GetAlbumsInvited(c *gin.Context) {
	clientID, ok := queryID(c, "client_id")
	if !ok {
		return
	}

	albums, err := h.invitations.GetAlbumsInvitedTo(c.Request.Context(), clientID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, albums)
}
