package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"dealdesk/internal/usecase/interfaces"

	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"
)

const (
	ProviderReplicate = "replicate"

	defaultReplicateBaseURL = "https://api.replicate.com/v1"
	replicateMaxTokens      = 2048
	replicatePollInterval   = time.Second
)

// ReplicateClient runs a hosted model through the Replicate predictions API.
//
// The create call asks Replicate to hold the connection until the
// prediction finishes; predictions that outlive that window are polled.
type ReplicateClient struct {
	http    *retryablehttp.Client
	baseURL string
	token   string
	model   string
	poll    time.Duration
	log     *zap.Logger
}

var _ interfaces.ILLMClient = (*ReplicateClient)(nil)

func NewReplicateClient(httpClient *retryablehttp.Client, baseURL, token, model string, log *zap.Logger) *ReplicateClient {
	if baseURL == "" {
		baseURL = defaultReplicateBaseURL
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &ReplicateClient{
		http:    httpClient,
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		model:   model,
		poll:    replicatePollInterval,
		log:     log,
	}
}

func (c *ReplicateClient) Provider() string { return ProviderReplicate }

type replicateInput struct {
	Prompt            string `json:"prompt"`
	SystemInstruction string `json:"system_instruction,omitempty"`
	MaxOutputTokens   int    `json:"max_output_tokens"`
}

type replicatePrediction struct {
	ID     string          `json:"id"`
	Status string          `json:"status"`
	Output json.RawMessage `json:"output"`
	Error  json.RawMessage `json:"error"`
	URLs   struct {
		Get string `json:"get"`
	} `json:"urls"`
}

func (p replicatePrediction) done() bool {
	switch p.Status {
	case "succeeded", "failed", "canceled":
		return true
	}
	return false
}

func (c *ReplicateClient) Complete(ctx context.Context, systemPrompt, prompt string) (string, error) {
	body, err := json.Marshal(map[string]any{
		"input": replicateInput{
			Prompt:            prompt,
			SystemInstruction: systemPrompt,
			MaxOutputTokens:   replicateMaxTokens,
		},
	})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/models/%s/predictions", c.baseURL, c.model)
	pred, err := c.do(ctx, http.MethodPost, url, body)
	if err != nil {
		return "", err
	}
	c.log.Debug("[llm][replicate] prediction created", zap.String("id", pred.ID), zap.String("status", pred.Status))

	for !pred.done() {
		if pred.URLs.Get == "" {
			return "", fmt.Errorf("replicate: prediction %s is %s with no poll url", pred.ID, pred.Status)
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(c.poll):
		}
		if pred, err = c.do(ctx, http.MethodGet, pred.URLs.Get, nil); err != nil {
			return "", err
		}
	}

	if pred.Status != "succeeded" {
		return "", fmt.Errorf("replicate: prediction %s %s: %s", pred.ID, pred.Status, errorText(pred.Error))
	}
	return joinOutput(pred.Output)
}

func (c *ReplicateClient) do(ctx context.Context, method, url string, body []byte) (replicatePrediction, error) {
	var rdr io.Reader
	if body != nil {
		rdr = bytes.NewReader(body)
	}
	req, err := retryablehttp.NewRequestWithContext(ctx, method, url, rdr)
	if err != nil {
		return replicatePrediction{}, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
	if method == http.MethodPost {
		req.Header.Set("Prefer", "wait")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return replicatePrediction{}, fmt.Errorf("replicate: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return replicatePrediction{}, fmt.Errorf("replicate: read body: %w", err)
	}
	if resp.StatusCode >= 300 {
		return replicatePrediction{}, fmt.Errorf("replicate: status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var pred replicatePrediction
	if err := json.Unmarshal(raw, &pred); err != nil {
		return replicatePrediction{}, fmt.Errorf("replicate: decode prediction: %w", err)
	}
	return pred, nil
}

// joinOutput accepts the two output shapes language models return on
// Replicate: a list of streamed tokens or a single string.
func joinOutput(raw json.RawMessage) (string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", nil
	}
	var parts []string
	if err := json.Unmarshal(raw, &parts); err == nil {
		return strings.Join(parts, ""), nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}
	return string(raw), nil
}

func errorText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	if len(raw) == 0 {
		return "unknown error"
	}
	return string(raw)
}
