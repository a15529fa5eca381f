package aiwriter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"cvision-backend/cv/model"
	"cvision-backend/internal/shared/telemetry"
)

const (
	chatCompletionsPath = "/v1/chat/completions"
	defaultTimeout      = 60 * time.Second
	temperature         = 0.4
	maxTokens           = 400
)

// Writer rewrites experience descriptions via an OpenAI-compatible chat
// completions API, falling back to a local transformation when the key is
// missing or any step of the remote call fails. Optimize never errors.
type Writer struct {
	cfg        Config
	httpClient *http.Client
}

// NewWriter constructs a Writer from explicit configuration.
func NewWriter(cfg Config) *Writer {
	return &Writer{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// Optimize rewrites the experience description for the requested role and
// language. The remote path is attempted only when an API key is configured;
// every failure degrades to the local fallback.
func (w *Writer) Optimize(ctx context.Context, profile model.Profile, exp model.Experience, req Request) Result {
	if strings.TrimSpace(w.cfg.APIKey) == "" {
		telemetry.Warn("aiwriter.fallback", map[string]any{"reason": "api_key_missing"})
		return w.localFallback(exp, req)
	}

	result, err := w.optimizeRemote(ctx, profile, exp, req)
	if err != nil {
		telemetry.Warn("aiwriter.fallback", map[string]any{
			"reason": "remote_error",
			"error":  err.Error(),
		})
		return w.localFallback(exp, req)
	}
	return result
}

func (w *Writer) optimizeRemote(ctx context.Context, profile model.Profile, exp model.Experience, req Request) (Result, error) {
	body := chatRequest{
		Model: w.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: buildUserPrompt(profile, exp, req)},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return Result{}, err
	}

	url := strings.TrimRight(w.cfg.BaseURL, "/") + chatCompletionsPath
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return Result{}, err
	}
	httpReq.Header.Set("Authorization", "Bearer "+w.cfg.APIKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := w.httpClient.Do(httpReq)
	if err != nil {
		return Result{}, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Result{}, fmt.Errorf("chat completions status %d", resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return Result{}, fmt.Errorf("chat completions parse: %w", err)
	}
	if parsed.Error != nil {
		return Result{}, fmt.Errorf("chat completions error: %s (%s)", parsed.Error.Message, parsed.Error.Type)
	}
	if len(parsed.Choices) == 0 {
		return Result{}, fmt.Errorf("chat completions response missing choices")
	}

	content := strings.TrimSpace(parsed.Choices[0].Message.Content)
	if content == "" {
		return Result{}, fmt.Errorf("chat completions response empty content")
	}

	var result Result
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		return Result{}, fmt.Errorf("chat completions content parse: %w", err)
	}
	if result.SuggestedBullets == nil {
		result.SuggestedBullets = []string{}
	}
	result.Source = SourceOpenAI
	return result, nil
}

// localFallback tags the original description and splits it into line-level
// bullets so the endpoint stays useful without the external capability.
func (w *Writer) localFallback(exp model.Experience, req Request) Result {
	original := exp.Description
	optimized := fmt.Sprintf("[%s | %s] %s", req.TargetRole, req.Language, original)

	bullets := []string{}
	for _, line := range strings.FieldsFunc(original, func(r rune) bool {
		return r == '\n' || r == '\r'
	}) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		bullets = append(bullets, line)
	}
	if len(bullets) == 0 && strings.TrimSpace(original) != "" {
		bullets = append(bullets, original)
	}

	return Result{
		OptimizedDescription: optimized,
		SuggestedBullets:     bullets,
		Source:               SourceFallback,
	}
}
