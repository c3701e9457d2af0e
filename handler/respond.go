package handler

import (
	"errors"
	"net/http"

	"github.com/YourGothDaddy/fitness-tracker-sub000/engine"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// respondError maps the engine's error taxonomy onto HTTP statuses:
// InvalidInput is client-correctable (400), NotFound is a lookup miss (404),
// anything else is a server fault.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, engine.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, engine.ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
