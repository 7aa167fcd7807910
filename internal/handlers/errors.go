package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"photoproof-backend/internal/models"
	"photoproof-backend/internal/services"
)

// respondError translates the service error taxonomy into HTTP status
// codes. Unclassified errors are internal failures; their text is surfaced
// in the response body.
func respondError(c *gin.Context, err error) {
	var validationErr *services.ValidationError
	var notFoundErr *services.NotFoundError
	var authErr *services.AuthError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: validationErr.Error()})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: notFoundErr.Error()})
	case errors.As(err, &authErr):
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: authErr.Error()})
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "internal error",
			Message: err.Error(),
		})
	}
}

// queryID parses a required int32 query parameter. On failure it writes the
// 400 response and returns false.
func queryID(c *gin.Context, name string) (int32, bool) {
	value, err := strconv.ParseInt(c.Query(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "missing or invalid " + name})
		return 0, false
	}
	return int32(value), true
}
