package config

import "testing"

func TestDefaultGeofence_IsValid(t *testing.T) {
	cfg := DefaultGeofence()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate, got: %v", err)
	}
	if len(cfg.BoundaryLine) != 5 {
		t.Errorf("expected 5 boundary vertices, got %d", len(cfg.BoundaryLine))
	}
	if len(cfg.TamilNaduPoints) != 9 {
		t.Errorf("expected 9 Tamil Nadu coastline points, got %d", len(cfg.TamilNaduPoints))
	}
	if cfg.SafeDistanceKM != 12 {
		t.Errorf("expected 12 km safe distance, got %f", cfg.SafeDistanceKM)
	}
}

func TestValidate_EmptyBoundary(t *testing.T) {
	cfg := DefaultGeofence()
	cfg.BoundaryLine = nil
	if err := cfg.Validate(); err == nil {
		t.Error("expected empty boundary line to be rejected")
	}
}

func TestValidate_NonPositiveThreshold(t *testing.T) {
	cfg := DefaultGeofence()
	cfg.SafeDistanceKM = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected zero safe distance to be rejected")
	}
}

func TestGetEnv_Fallback(t *testing.T) {
	t.Setenv("BOATWATCH_TEST_KEY", "")
	if got := GetEnv("BOATWATCH_TEST_KEY", "default"); got != "default" {
		t.Errorf("expected fallback, got %q", got)
	}
	t.Setenv("BOATWATCH_TEST_KEY", "set")
	if got := GetEnv("BOATWATCH_TEST_KEY", "default"); got != "set" {
		t.Errorf("expected env value, got %q", got)
	}
}
