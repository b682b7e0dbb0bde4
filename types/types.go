package types

// GeoPoint is a latitude/longitude pair in decimal degrees.
type GeoPoint struct {
	Lat float64 `json:"lat" firestore:"lat"`
	Lng float64 `json:"lng" firestore:"lng"`
}

// BoundaryLine is an ordered polyline of reference points.
type BoundaryLine []GeoPoint

// BoatObservation is a single telemetry reading for one boat.
type BoatObservation struct {
	Lat       float64 `json:"latitude"`
	Lng       float64 `json:"longitude"`
	Speed     float64 `json:"speed"`
	Direction float64 `json:"direction"`
}

// ZoneStatus classifies a point relative to the maritime boundary.
// The numeric values match what the behavior model was trained on:
// 0 means the boat is in the alert zone, 1 means it is in the safe zone.
type ZoneStatus int

const (
	ZoneAlert ZoneStatus = 0
	ZoneSafe  ZoneStatus = 1
)

func (z ZoneStatus) String() string {
	if z == ZoneSafe {
		return "safe"
	}
	return "alert"
}

// ModelPrediction is the behavior model's verdict for a safe-zone boat.
type ModelPrediction int

const (
	PredictionNormal     ModelPrediction = 0
	PredictionSuspicious ModelPrediction = 1
)

// Verdict is the result of evaluating one boat observation.
// ModelPrediction is nil when no model was consulted, either because the
// boat was already in the alert zone, no model is configured, or the model
// call failed.
type Verdict struct {
	IsSuspicious    bool
	ZoneStatus      ZoneStatus
	DistanceKM      float64
	Message         string
	ModelPrediction *ModelPrediction
}
