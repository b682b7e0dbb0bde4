package mlmodel

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go-boatwatch/types"
)

// Client calls the externally hosted boat behavior model. The model and its
// feature scaler are trained and served elsewhere; this client only ships
// feature vectors and reads back a 0/1 prediction.
type Client struct {
	url        string
	httpClient *http.Client
}

type predictRequest struct {
	Features []float64 `json:"features"`
}

type predictResponse struct {
	Prediction int `json:"prediction"`
}

func NewClient(url string) *Client {
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Predict sends a feature vector to the model and returns its verdict.
func (c *Client) Predict(ctx context.Context, features [6]float64) (types.ModelPrediction, error) {
	payload := predictRequest{Features: features[:]}
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return types.PredictionNormal, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewBuffer(payloadBytes))
	if err != nil {
		return types.PredictionNormal, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return types.PredictionNormal, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return types.PredictionNormal, errors.New("behavior model returned status: " + resp.Status)
	}

	var out predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return types.PredictionNormal, err
	}

	if out.Prediction == 1 {
		return types.PredictionSuspicious, nil
	}
	return types.PredictionNormal, nil
}
