package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"photoproof-backend/internal/models"
	"photoproof-backend/internal/services"
)

type UsersHandler struct {
	users *services.UserService
}

func NewUsersHandler(users *services.UserService) *UsersHandler {
	return &UsersHandler{users: users}
}

// SignUp godoc
// @Summary     Register a new user
// @Description Creates a user account with a bcrypt-hashed password
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       user body models.SignUpRequest true "Account to create"
// @Success     200
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /sign_up [post]
func (h *UsersHandler) SignUp(c *gin.Context) {
	var req models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}

	if err := h.users.SignUp(c.Request.Context(), req); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

// Login godoc
// @Summary     Log in
// @Description Verifies credentials and returns the user
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       credentials body models.LoginRequest true "Credentials"
// @Success     200 {object} models.User
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /login [post]
func (h *UsersHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request body",
			Message: err.Error(),
		})
		return
	}

	user, err := h.users.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// GetUser godoc
// @Summary     Get a user by email
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       email query string true "Email address"
// @Success     200 {object} models.User
// @Failure     500 {object} models.ErrorResponse
// @Router      /user [get]
func (h *UsersHandler) GetUser(c *gin.Context) {
	user, err := h.users.GetUserByEmail(c.Request.Context(), c.Query("email"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}
