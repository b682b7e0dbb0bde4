package types

// ObservationRecord is one evaluated telemetry reading stored in Firestore.
type ObservationRecord struct {
	ID           string  `firestore:"-"`
	Lat          float64 `firestore:"lat"`
	Lng          float64 `firestore:"lng"`
	Speed        float64 `firestore:"speed"`
	Direction    float64 `firestore:"direction"`
	ZoneStatus   int     `firestore:"zoneStatus"`
	DistanceKM   float64 `firestore:"distanceKm"`
	IsSuspicious bool    `firestore:"isSuspicious"`
	Timestamp    string  `firestore:"timestamp"`
}

// AlertEvent records a suspicious verdict and the outcome of the phone alert.
type AlertEvent struct {
	ID         string  `firestore:"-"`
	Lat        float64 `firestore:"lat"`
	Lng        float64 `firestore:"lng"`
	Speed      float64 `firestore:"speed"`
	Direction  float64 `firestore:"direction"`
	DistanceKM float64 `firestore:"distanceKm"`
	Message    string  `firestore:"message"`
	Area       string  `firestore:"area,omitempty"`
	CallPlaced bool    `firestore:"callPlaced"`
	Timestamp  string  `firestore:"timestamp"`
}
