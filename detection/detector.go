package detection

import (
	"context"
	"fmt"
	"log"

	"go-boatwatch/geofence"
	"go-boatwatch/types"
)

// Classifier is the secondary behavior check consulted for safe-zone boats.
// It is backed by a pre-trained model served elsewhere; the feature layout is
// fixed by that model's training data (see Features).
type Classifier interface {
	Predict(ctx context.Context, features [6]float64) (types.ModelPrediction, error)
}

// behaviorLabel is a constant input the model expects; live telemetry has no
// labeled behavior, so it is always "normal".
const behaviorLabel = 0

// Detector evaluates boat observations against the maritime boundary and,
// optionally, the behavior model.
type Detector struct {
	boundary       types.BoundaryLine
	safeDistanceKM float64
	classifier     Classifier
}

// NewDetector builds a detector. classifier may be nil, in which case
// safe-zone boats get no secondary check.
func NewDetector(boundary types.BoundaryLine, safeDistanceKM float64, classifier Classifier) *Detector {
	return &Detector{
		boundary:       boundary,
		safeDistanceKM: safeDistanceKM,
		classifier:     classifier,
	}
}

// Features builds the model input vector for an observation:
// [lat, lng, speed, direction, zone status, behavior label].
func Features(obs types.BoatObservation, zone types.ZoneStatus) [6]float64 {
	return [6]float64{obs.Lat, obs.Lng, obs.Speed, obs.Direction, float64(zone), behaviorLabel}
}

// Evaluate decides whether an observation is suspicious.
//
// A boat inside the alert zone is suspicious unconditionally and the model is
// never consulted. A safe-zone boat is cross-checked with the model when one
// is configured; a model failure is logged and the evaluation proceeds
// without it. Evaluate has no side effects beyond logging — placing the
// actual alert is the caller's job, gated on Verdict.IsSuspicious.
func (d *Detector) Evaluate(ctx context.Context, obs types.BoatObservation) types.Verdict {
	zone, distance := geofence.Classify(
		types.GeoPoint{Lat: obs.Lat, Lng: obs.Lng},
		d.boundary,
		d.safeDistanceKM,
	)

	if zone == types.ZoneAlert {
		return types.Verdict{
			IsSuspicious: true,
			ZoneStatus:   zone,
			DistanceKM:   distance,
			Message:      fmt.Sprintf("ALERT: Boat is in restricted zone! %.2f km from boundary", distance),
		}
	}

	verdict := types.Verdict{
		ZoneStatus: zone,
		DistanceKM: distance,
		Message:    fmt.Sprintf("Safe: Boat is in safe zone. %.2f km from boundary", distance),
	}

	if d.classifier == nil {
		return verdict
	}

	prediction, err := d.classifier.Predict(ctx, Features(obs, zone))
	if err != nil {
		log.Printf("Behavior model unavailable, continuing without secondary check: %v", err)
		return verdict
	}

	verdict.ModelPrediction = &prediction
	if prediction == types.PredictionSuspicious {
		verdict.IsSuspicious = true
		verdict.Message += " WARNING: Behavior appears suspicious!"
	}
	return verdict
}
