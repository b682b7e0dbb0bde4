package handlers

import (
	"log"
	"net/http"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"

	"go-boatwatch/db"
)

const recentAlertsWindow = 24 * time.Hour

// GetRecentAlerts returns persisted alert events from the last 24 hours.
func GetRecentAlerts(c *gin.Context, firestoreClient *firestore.Client) {
	if firestoreClient == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "message": "alert history is not configured"})
		return
	}

	since := time.Now().UTC().Add(-recentAlertsWindow).Format(time.RFC3339)
	events, err := db.GetAlertsSince(firestoreClient, since)
	if err != nil {
		log.Printf("Error fetching alert events: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "failed to fetch alert events"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"since": since, "count": len(events), "alerts": events})
}
