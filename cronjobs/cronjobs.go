package cronjobs

import (
	"context"
	"log"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/robfig/cron/v3"
	"github.com/sashabaranov/go-openai"

	"go-boatwatch/db"
	"go-boatwatch/summarization"
)

const digestWindow = 24 * time.Hour

// InitCronJobs schedules the recurring alert digest. Either client may be
// nil, in which case the digest is skipped.
func InitCronJobs(firestoreClient *firestore.Client, openaiClient *openai.Client) {
	log.Println("\nStarting Cron Jobs -------------------------------------------------------")
	c := cron.New()

	// Alert digest: run at the top of every hour
	_, err := c.AddFunc("0 * * * *", func() {
		log.Println("\nCronJob: Alert Digest Running")
		runAlertDigest(firestoreClient, openaiClient)
	})
	if err != nil {
		log.Println("Error scheduling Alert Digest:", err)
	}

	c.Start()
}

func runAlertDigest(firestoreClient *firestore.Client, openaiClient *openai.Client) {
	if firestoreClient == nil {
		log.Println("Alert digest skipped: Firestore not configured")
		return
	}
	if openaiClient == nil {
		log.Println("Alert digest skipped: OpenAI not configured")
		return
	}

	since := time.Now().UTC().Add(-digestWindow).Format(time.RFC3339)
	events, err := db.GetAlertsSince(firestoreClient, since)
	if err != nil {
		log.Printf("Alert digest: error fetching alert events: %v", err)
		return
	}
	if len(events) == 0 {
		log.Println("Alert digest: no alert events in the last 24h")
		return
	}

	digest, err := summarization.GenerateAlertDigest(context.Background(), events, openaiClient)
	if err != nil {
		log.Printf("Alert digest: summarization failed: %v", err)
		return
	}

	log.Printf("Alert digest (%d events since %s): %s", len(events), since, digest)
}
