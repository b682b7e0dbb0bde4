package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"go-boatwatch/config"
	"go-boatwatch/detection"
)

func newFormRouter(sender *mockSender) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := config.DefaultGeofence()
	detector := detection.NewDetector(cfg.BoundaryLine, cfg.SafeDistanceKM, nil)

	r := gin.New()
	r.LoadHTMLGlob("../templates/*")
	r.GET("/", func(c *gin.Context) {
		ShowForm(c, cfg)
	})
	r.POST("/", func(c *gin.Context) {
		PredictBoatStatus(c, cfg, detector, sender, nil)
	})
	return r
}

func postForm(t *testing.T, r *gin.Engine, values url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestShowForm(t *testing.T) {
	r := newFormRouter(newMockSender())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Boat Border Monitoring") {
		t.Error("expected the form page title")
	}
	if !strings.Contains(w.Body.String(), "boundary_line") {
		t.Error("expected the geofence config embedded in the page")
	}
}

func TestPredictBoatStatus_SafeSubmission(t *testing.T) {
	sender := newMockSender()
	r := newFormRouter(sender)

	w := postForm(t, r, url.Values{
		"latitude":  {"13.0827"},
		"longitude": {"80.2707"},
		"speed":     {"10"},
		"direction": {"180"},
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Safe: Boat is in safe zone.") {
		t.Errorf("expected safe zone message in page, got: %s", body)
	}
	if strings.Contains(body, "Phone alert") {
		t.Error("expected no phone alert mention for a safe boat")
	}
}

func TestPredictBoatStatus_SuspiciousSubmissionSendsAlert(t *testing.T) {
	t.Setenv("MAPS_CREDENTIALS", "")
	sender := newMockSender()
	r := newFormRouter(sender)

	w := postForm(t, r, url.Values{
		"latitude":  {"9.5"},
		"longitude": {"79.9"},
		"speed":     {"15"},
		"direction": {"200"},
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "ALERT: Boat is in restricted zone!") {
		t.Errorf("expected alert zone message, got: %s", body)
	}
	if !strings.Contains(body, "Phone alert has been sent.") {
		t.Errorf("expected alert confirmation, got: %s", body)
	}

	select {
	case msg := <-sender.sent:
		if !strings.Contains(msg, "Suspicious boat detected at coordinates") {
			t.Errorf("unexpected alert message: %q", msg)
		}
	default:
		t.Error("expected the alert to have been sent before rendering")
	}
}

func TestPredictBoatStatus_InvalidField(t *testing.T) {
	r := newFormRouter(newMockSender())

	w := postForm(t, r, url.Values{
		"latitude":  {"not-a-number"},
		"longitude": {"80.2707"},
		"speed":     {"10"},
		"direction": {"180"},
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 with flash message, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Error processing request") {
		t.Error("expected error flash message")
	}
}

func TestPredictBoatStatus_MissingField(t *testing.T) {
	r := newFormRouter(newMockSender())

	w := postForm(t, r, url.Values{
		"latitude": {"13.0827"},
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 with flash message, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Error processing request") {
		t.Error("expected error flash message")
	}
}
