package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-boatwatch/config"
)

// GetGeofence returns the static geofence configuration.
func GetGeofence(c *gin.Context, cfg *config.Geofence) {
	c.JSON(http.StatusOK, cfg)
}
