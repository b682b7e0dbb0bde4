package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/sashabaranov/go-openai"

	"go-boatwatch/alert"
	"go-boatwatch/config"
	"go-boatwatch/cronjobs"
	"go-boatwatch/db"
	"go-boatwatch/detection"
	"go-boatwatch/mlmodel"
	"go-boatwatch/routes"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	// Static geofence configuration; an empty boundary line makes every
	// classification meaningless, so that is fatal here.
	geofenceCfg := config.DefaultGeofence()
	if err := geofenceCfg.Validate(); err != nil {
		log.Fatalf("Invalid geofence configuration: %v", err)
	}

	// Behavior model is optional; without it geofence checks stand alone.
	var classifier detection.Classifier
	modelURL := os.Getenv("MODEL_URL")
	if modelURL != "" {
		fmt.Println("Behavior model configured:", modelURL)
		classifier = mlmodel.NewClient(modelURL)
	} else {
		log.Println("Warning: MODEL_URL not set, secondary behavior check disabled")
	}

	detector := detection.NewDetector(geofenceCfg.BoundaryLine, geofenceCfg.SafeDistanceKM, classifier)

	// Phone alerts degrade to a logged warning when Twilio is not configured.
	sender := alert.NewTwilioSenderFromEnv()

	// Init firestore; history endpoints and the digest need it, nothing else does.
	firestoreClient, err := db.InitFirestore()
	if err != nil {
		log.Printf("Firestore disabled: %v", err)
		firestoreClient = nil
	} else {
		defer db.CloseFirestore() // Firestore client is closed on exit
	}

	var openaiClient *openai.Client
	if apiKey := os.Getenv("OPENAI_API_KEY"); apiKey != "" {
		fmt.Println("OPENAI_API_KEY loaded")
		openaiClient = openai.NewClient(apiKey)
	}

	// Initialize cron jobs
	cronjobs.InitCronJobs(firestoreClient, openaiClient)

	r := routes.SetupRouter(geofenceCfg, detector, sender, firestoreClient)
	port := config.GetEnv("HTTP_PORT", "8080")
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
