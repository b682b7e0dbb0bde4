package config

import (
	"errors"
	"os"

	"go-boatwatch/types"
)

// Geofence is the fixed geofence configuration for the Tamil Nadu - Sri Lanka
// maritime region. The coastline point sets are for map display only; the
// distance check runs against BoundaryLine.
type Geofence struct {
	TamilNaduPoints []types.GeoPoint   `json:"tamil_nadu_points"`
	SriLankaPoints  []types.GeoPoint   `json:"sri_lanka_points"`
	BoundaryLine    types.BoundaryLine `json:"boundary_line"`
	SafeDistanceKM  float64            `json:"safe_distance_km"`
	Center          types.GeoPoint     `json:"center"`
	ZoomLevel       int                `json:"zoom_level"`
}

// DefaultGeofence returns the static configuration. Loaded once at startup,
// treated as read-only afterwards.
func DefaultGeofence() *Geofence {
	return &Geofence{
		// Tamil Nadu coastline, north to south
		TamilNaduPoints: []types.GeoPoint{
			{Lat: 13.6288, Lng: 80.1931}, // Chennai North
			{Lat: 13.0827, Lng: 80.2707}, // Chennai
			{Lat: 12.6195, Lng: 80.1952}, // Mahabalipuram
			{Lat: 11.9314, Lng: 79.8333}, // Pondicherry
			{Lat: 11.4273, Lng: 79.7662}, // Cuddalore
			{Lat: 10.7870, Lng: 79.8380}, // Karaikal
			{Lat: 10.3833, Lng: 79.8500}, // Nagapattinam
			{Lat: 9.2800, Lng: 79.3100},  // Rameswaram
			{Lat: 8.7642, Lng: 78.1348},  // Tuticorin
		},
		// Sri Lanka northern coastline
		SriLankaPoints: []types.GeoPoint{
			{Lat: 9.8152, Lng: 80.0299}, // Point Pedro
			{Lat: 9.6700, Lng: 80.2500}, // Mullaitivu
			{Lat: 8.9500, Lng: 81.0000}, // Trincomalee
			{Lat: 8.3400, Lng: 81.3300}, // Batticaloa
			{Lat: 7.2800, Lng: 81.6700}, // Pottuvil
		},
		// International maritime boundary line (simplified)
		BoundaryLine: types.BoundaryLine{
			{Lat: 10.0500, Lng: 80.0300},
			{Lat: 9.5000, Lng: 79.9000},
			{Lat: 9.2200, Lng: 79.8000},
			{Lat: 8.9000, Lng: 79.7000},
			{Lat: 8.2000, Lng: 79.3500},
		},
		SafeDistanceKM: 12, // international waters typically start at 12 nautical miles
		Center:         types.GeoPoint{Lat: 9.0000, Lng: 79.8000},
		ZoomLevel:      7,
	}
}

// Validate checks the invariants the rest of the system relies on.
// An empty boundary line means nothing can ever be classified, so it is
// rejected here once at startup rather than on every request.
func (g *Geofence) Validate() error {
	if len(g.BoundaryLine) == 0 {
		return errors.New("geofence config: boundary line has no reference points")
	}
	if g.SafeDistanceKM <= 0 {
		return errors.New("geofence config: safe distance must be positive")
	}
	return nil
}

// GetEnv returns the value of an environment variable or a fallback.
func GetEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
