package routes

import (
	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"

	"go-boatwatch/alert"
	"go-boatwatch/config"
	"go-boatwatch/detection"
	"go-boatwatch/handlers"
)

func SetupRouter(cfg *config.Geofence, detector *detection.Detector, sender alert.Sender, firestoreClient *firestore.Client) *gin.Engine {
	r := gin.Default()
	r.LoadHTMLGlob("templates/*")

	// telemetry form page
	r.GET("/", func(c *gin.Context) {
		handlers.ShowForm(c, cfg)
	})
	r.POST("/", func(c *gin.Context) {
		handlers.PredictBoatStatus(c, cfg, detector, sender, firestoreClient)
	})

	r.GET("/geofence", func(c *gin.Context) {
		handlers.GetGeofence(c, cfg)
	})

	r.POST("/check-point", func(c *gin.Context) {
		handlers.CheckPoint(c, detector, sender, firestoreClient)
	})

	r.GET("/alerts", func(c *gin.Context) {
		handlers.GetRecentAlerts(c, firestoreClient)
	})

	return r
}
