package db

import (
	"context"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"go-boatwatch/types"
)

const (
	observationsCollection = "observations"
	alertsCollection       = "alerts"
)

// SaveObservation stores one evaluated telemetry reading.
func SaveObservation(client *firestore.Client, obs types.ObservationRecord) error {
	if obs.ID == "" {
		return fmt.Errorf("observation has no ID")
	}
	ctx := context.Background()
	_, err := client.Collection(observationsCollection).Doc(obs.ID).Set(ctx, obs)
	if err != nil {
		return fmt.Errorf("failed to save observation %s: %w", obs.ID, err)
	}
	return nil
}

// SaveAlertEvents saves alert events using BulkWriter for efficient
// non-transactional writes. Uses AlertEvent.ID as the document ID.
func SaveAlertEvents(client *firestore.Client, events []types.AlertEvent) error {
	if len(events) == 0 {
		return nil
	}

	ctx := context.Background()
	bw := client.BulkWriter(ctx)
	alertsRef := client.Collection(alertsCollection)

	savedCount := 0
	for i := range events {
		event := events[i]
		if event.ID == "" {
			log.Printf("Warning: Skipping alert event with empty ID: %+v", event)
			continue
		}
		docRef := alertsRef.Doc(event.ID)
		if _, err := bw.Set(docRef, event); err != nil {
			log.Printf("Error enqueueing alert event %s for save: %v", event.ID, err)
		} else {
			savedCount++
		}
	}

	if savedCount == 0 {
		return nil
	}

	// Flush sends any remaining writes and waits for them to complete.
	bw.Flush()
	return nil
}

// GetAlertsSince retrieves alert events with a timestamp at or after the
// given RFC3339 instant, most recent first.
func GetAlertsSince(client *firestore.Client, since string) ([]types.AlertEvent, error) {
	ctx := context.Background()
	var events []types.AlertEvent

	iter := client.Collection(alertsCollection).
		Where("timestamp", ">=", since).
		OrderBy("timestamp", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error iterating alerts collection: %w", err)
		}

		var event types.AlertEvent
		if err := doc.DataTo(&event); err != nil {
			log.Printf("Warning: Error converting document %s to AlertEvent: %v. Skipping.", doc.Ref.ID, err)
			continue
		}
		event.ID = doc.Ref.ID
		events = append(events, event)
	}

	return events, nil
}
