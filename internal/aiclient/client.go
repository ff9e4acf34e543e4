// Package aiclient talks to the external style analysis and recommendation service.
package aiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
)

// ErrNotConfigured is returned by every call when no service URL is set.
var ErrNotConfigured = errors.New("ai service url not configured")

// Observer receives the latency of each outbound call.
type Observer interface {
	ObserveAI(operation, outcome string, d time.Duration)
}

// AnalyzeRequest is the body posted to /analyze-quiz.
type AnalyzeRequest struct {
	Gender  string          `json:"gender"`
	Answers json.RawMessage `json:"answers"`
	UserID  string          `json:"userId"`
}

// AnalyzeResponse is the analysis returned by the service.
type AnalyzeResponse struct {
	AestheticProfile json.RawMessage `json:"aestheticProfile"`
	Score            *float64        `json:"score"`
}

// RecommendRequest is the body posted to /api/recommend/by-quiz.
type RecommendRequest struct {
	Answers []string `json:"answers"`
	Gender  string   `json:"gender,omitempty"`
	TopK    int      `json:"top_k"`
}

// Recommendation is one ranked catalogue item.
type Recommendation struct {
	ID        string          `json:"id"`
	ImagePath string          `json:"image_path"`
	Score     float64         `json:"score"`
	Metadata  json.RawMessage `json:"metadata,omitempty"`
}

// RecommendResponse is returned by the by-quiz endpoint.
type RecommendResponse struct {
	Results              []Recommendation `json:"results"`
	UsedTextCandidates   int              `json:"used_text_candidates"`
	UsedVisualCandidates int              `json:"used_visual_candidates"`
}

// SimilarResponse is returned by the similar-items endpoint.
type SimilarResponse struct {
	QueryID string           `json:"query_id"`
	Results []Recommendation `json:"results"`
}

// Client calls the AI service over HTTP.
type Client struct {
	baseURL  string
	client   *http.Client
	log      *logrus.Logger
	observer Observer
}

// New creates a Client. An empty baseURL yields a client whose calls fail
// with ErrNotConfigured.
func New(baseURL string, timeout time.Duration, logger *logrus.Logger, observer Observer) *Client {
	return &Client{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: timeout,
		},
		log:      logger,
		observer: observer,
	}
}

// AnalyzeQuiz asks the service for an aesthetic profile.
func (c *Client) AnalyzeQuiz(ctx context.Context, req AnalyzeRequest) (*AnalyzeResponse, error) {
	var resp AnalyzeResponse
	if err := c.do(ctx, "analyze", http.MethodPost, "/analyze-quiz", req, &resp); err != nil {
		return nil, err
	}
	if len(resp.AestheticProfile) == 0 || string(resp.AestheticProfile) == "null" {
		return nil, errors.New("ai service returned no aesthetic profile")
	}
	return &resp, nil
}

// RecommendByQuiz ranks catalogue items for the given answer texts.
func (c *Client) RecommendByQuiz(ctx context.Context, req RecommendRequest) (*RecommendResponse, error) {
	var resp RecommendResponse
	if err := c.do(ctx, "recommend", http.MethodPost, "/api/recommend/by-quiz", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Similar returns up to topK catalogue items similar to itemID.
func (c *Client) Similar(ctx context.Context, itemID string, topK int) (*SimilarResponse, error) {
	path := fmt.Sprintf("/api/recommend/similar/%s?top_k=%d", url.PathEscape(itemID), topK)
	var resp SimilarResponse
	if err := c.do(ctx, "similar", http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) do(ctx context.Context, operation, method, path string, body, out any) (err error) {
	if c.baseURL == "" {
		return ErrNotConfigured
	}

	start := time.Now()
	defer func() {
		if c.observer == nil {
			return
		}
		outcome := "ok"
		if err != nil {
			outcome = "error"
		}
		c.observer.ObserveAI(operation, outcome, time.Since(start))
	}()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode %s request: %w", operation, err)
		}
		reader = bytes.NewReader(payload)
	}

	endpoint := c.baseURL + path
	c.log.Debugf("AIClient: %s %s", method, endpoint)
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to create %s request: %w", operation, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Warnf("AIClient: %s request failed: %v", operation, err)
		return fmt.Errorf("failed to communicate with ai service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.log.Warnf("AIClient: %s returned status %d: %s", operation, resp.StatusCode, snippet)
		return fmt.Errorf("ai service returned status %d for %s", resp.StatusCode, operation)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.log.Errorf("AIClient: failed to decode %s response: %v", operation, err)
		return fmt.Errorf("failed to decode %s response: %w", operation, err)
	}
	return nil
}
