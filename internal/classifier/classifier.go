// Package classifier provides an HTTP client for a text-classification
// inference server hosting the emotion model.
package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"cinemood/internal/emotion"
)

const defaultModel = "bert-base-uncased-emotion"

// Client calls a text-classification inference server.
type Client struct {
	host       string
	model      string
	httpClient *http.Client
}

// Config holds configuration for the classifier client.
type Config struct {
	Host  string
	Model string
}

// New creates a new classifier client.
func New(cfg Config) *Client {
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}

	return &Client{
		host:  cfg.Host,
		model: model,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Name returns the served model name.
func (c *Client) Name() string {
	return c.model
}

// classifyRequest is the request body for the classification API.
type classifyRequest struct {
	Model string `json:"model"`
	Input string `json:"input"`
}

// classifyResponse is the response from the classification API.
// Predictions are ordered by descending score.
type classifyResponse struct {
	Predictions []struct {
		Label string  `json:"label"`
		Score float64 `json:"score"`
	} `json:"predictions"`
}

// Classify returns the top prediction for the given text.
func (c *Client) Classify(ctx context.Context, text string) (emotion.Prediction, error) {
	req := classifyRequest{
		Model: c.model,
		Input: text,
	}

	body, err := json.Marshal(req)
	if err != nil {
		return emotion.Prediction{}, fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1/classify", c.host)
	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(body))
	if err != nil {
		return emotion.Prediction{}, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return emotion.Prediction{}, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return emotion.Prediction{}, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return emotion.Prediction{}, fmt.Errorf("inference error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var clResp classifyResponse
	if err := json.Unmarshal(respBody, &clResp); err != nil {
		return emotion.Prediction{}, fmt.Errorf("unmarshal response: %w", err)
	}

	if len(clResp.Predictions) == 0 {
		return emotion.Prediction{}, fmt.Errorf("empty prediction returned")
	}

	top := clResp.Predictions[0]
	return emotion.Prediction{
		Label: top.Label,
		Score: top.Score,
	}, nil
}

// Ping checks that the inference server is reachable and serves the
// configured model.
func (c *Client) Ping(ctx context.Context) error {
	url := fmt.Sprintf("%s/v1/models", c.host)
	httpReq, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("connect to inference server: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("inference server returned status %d", resp.StatusCode)
	}

	var modelsResp struct {
		Models []struct {
			Name string `json:"name"`
		} `json:"models"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&modelsResp); err != nil {
		return fmt.Errorf("decode models response: %w", err)
	}

	for _, model := range modelsResp.Models {
		if model.Name == c.model {
			slog.Debug("found emotion model", "model", model.Name)
			return nil
		}
	}

	return fmt.Errorf("model %s not served by inference server", c.model)
}
