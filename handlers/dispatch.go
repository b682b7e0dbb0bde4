package handlers

import (
	"context"
	"fmt"
	"log"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"

	"go-boatwatch/alert"
	"go-boatwatch/db"
	"go-boatwatch/geocode"
	"go-boatwatch/types"
)

// dispatchAlert places the phone call for a suspicious verdict and records
// the alert event. Runs after the verdict is already computed; its outcome
// never changes the verdict, only whether the caller can report "alert sent".
func dispatchAlert(ctx context.Context, sender alert.Sender, firestoreClient *firestore.Client, obs types.BoatObservation, verdict types.Verdict) bool {
	alertMessage := fmt.Sprintf("Suspicious boat detected at coordinates: %v, %v. Speed: %v, Direction: %v. %s",
		obs.Lat, obs.Lng, obs.Speed, obs.Direction, verdict.Message)

	area, err := geocode.ReverseGeocode(obs.Lat, obs.Lng)
	if err != nil {
		log.Printf("Reverse geocoding unavailable for alert: %v", err)
	} else if area != "" {
		alertMessage += " Near " + area + "."
	}

	callPlaced := true
	if err := sender.Send(ctx, alertMessage); err != nil {
		log.Printf("Failed to send phone alert: %v", err)
		callPlaced = false
	}

	if firestoreClient != nil {
		event := types.AlertEvent{
			ID:         uuid.NewString(),
			Lat:        obs.Lat,
			Lng:        obs.Lng,
			Speed:      obs.Speed,
			Direction:  obs.Direction,
			DistanceKM: verdict.DistanceKM,
			Message:    verdict.Message,
			Area:       area,
			CallPlaced: callPlaced,
			Timestamp:  time.Now().UTC().Format(time.RFC3339),
		}
		if err := db.SaveAlertEvents(firestoreClient, []types.AlertEvent{event}); err != nil {
			log.Printf("Failed to save alert event: %v", err)
		}
	}

	return callPlaced
}

// recordObservation persists an evaluated reading when history is enabled.
func recordObservation(firestoreClient *firestore.Client, obs types.BoatObservation, verdict types.Verdict) {
	if firestoreClient == nil {
		return
	}
	record := types.ObservationRecord{
		ID:           uuid.NewString(),
		Lat:          obs.Lat,
		Lng:          obs.Lng,
		Speed:        obs.Speed,
		Direction:    obs.Direction,
		ZoneStatus:   int(verdict.ZoneStatus),
		DistanceKM:   verdict.DistanceKM,
		IsSuspicious: verdict.IsSuspicious,
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
	}
	if err := db.SaveObservation(firestoreClient, record); err != nil {
		log.Printf("Failed to save observation: %v", err)
	}
}
