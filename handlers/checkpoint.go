package handlers

import (
	"context"
	"net/http"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"

	"go-boatwatch/alert"
	"go-boatwatch/detection"
	"go-boatwatch/types"
)

type checkPointRequest struct {
	Latitude  *float64 `json:"latitude" binding:"required"`
	Longitude *float64 `json:"longitude" binding:"required"`
	Speed     float64  `json:"speed"`
	Direction float64  `json:"direction"`
}

// CheckPoint evaluates coordinates from a JSON body. Speed and direction are
// optional and default to 0. Suspicious verdicts fire the phone alert in the
// background; the response never waits on it.
func CheckPoint(c *gin.Context, detector *detection.Detector, sender alert.Sender, firestoreClient *firestore.Client) {
	var req checkPointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": err.Error()})
		return
	}

	obs := types.BoatObservation{
		Lat:       *req.Latitude,
		Lng:       *req.Longitude,
		Speed:     req.Speed,
		Direction: req.Direction,
	}

	verdict := detector.Evaluate(c.Request.Context(), obs)

	go recordObservation(firestoreClient, obs, verdict)
	if verdict.IsSuspicious {
		// fire and forget, the verdict is already final
		go dispatchAlert(context.Background(), sender, firestoreClient, obs, verdict)
	}

	c.JSON(http.StatusOK, gin.H{
		"inside_safe_zone":     verdict.ZoneStatus == types.ZoneSafe,
		"is_suspicious":        verdict.IsSuspicious,
		"status_code":          int(verdict.ZoneStatus),
		"distance_to_boundary": verdict.DistanceKM,
		"message":              verdict.Message,
		"model_prediction":     verdict.ModelPrediction,
	})
}
