package handlers

import (
	"encoding/json"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strconv"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"

	"go-boatwatch/alert"
	"go-boatwatch/config"
	"go-boatwatch/detection"
	"go-boatwatch/types"
)

type formPageData struct {
	Evaluated    bool
	Prediction   int
	Suspicious   bool
	ZoneMessage  string
	Distance     float64
	Flash        string
	GeofenceJSON template.JS
}

func geofenceJSON(cfg *config.Geofence) template.JS {
	data, err := json.Marshal(cfg)
	if err != nil {
		log.Printf("Error marshaling geofence config for page: %v", err)
		return template.JS("{}")
	}
	return template.JS(data)
}

// ShowForm renders the empty telemetry form with the geofence map.
func ShowForm(c *gin.Context, cfg *config.Geofence) {
	c.HTML(http.StatusOK, "index.html", formPageData{GeofenceJSON: geofenceJSON(cfg)})
}

// PredictBoatStatus handles the form submission: parses the telemetry fields,
// evaluates them and renders the result. A suspicious verdict places the
// phone alert before rendering so the page can report whether it went out.
func PredictBoatStatus(c *gin.Context, cfg *config.Geofence, detector *detection.Detector, sender alert.Sender, firestoreClient *firestore.Client) {
	page := formPageData{GeofenceJSON: geofenceJSON(cfg)}

	obs, err := parseObservationForm(c)
	if err != nil {
		page.Flash = fmt.Sprintf("Error processing request: %v", err)
		c.HTML(http.StatusOK, "index.html", page)
		return
	}

	verdict := detector.Evaluate(c.Request.Context(), obs)

	go recordObservation(firestoreClient, obs, verdict)

	page.Evaluated = true
	page.Suspicious = verdict.IsSuspicious
	if verdict.IsSuspicious {
		page.Prediction = 1
	}
	page.ZoneMessage = verdict.Message
	page.Distance = verdict.DistanceKM

	if verdict.IsSuspicious {
		if dispatchAlert(c.Request.Context(), sender, firestoreClient, obs, verdict) {
			page.Flash = verdict.Message + " Phone alert has been sent."
		} else {
			page.Flash = verdict.Message + " Failed to send phone alert."
		}
	} else {
		page.Flash = verdict.Message
	}

	c.HTML(http.StatusOK, "index.html", page)
}

func parseObservationForm(c *gin.Context) (types.BoatObservation, error) {
	var obs types.BoatObservation

	fields := []struct {
		name string
		dst  *float64
	}{
		{"latitude", &obs.Lat},
		{"longitude", &obs.Lng},
		{"speed", &obs.Speed},
		{"direction", &obs.Direction},
	}

	for _, field := range fields {
		raw := c.PostForm(field.name)
		if raw == "" {
			return obs, fmt.Errorf("missing field %q", field.name)
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return obs, fmt.Errorf("invalid value for %q", field.name)
		}
		*field.dst = value
	}

	return obs, nil
}
