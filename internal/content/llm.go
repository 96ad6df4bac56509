package content

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/origenlab/backend/internal/domain/material"
	"github.com/origenlab/backend/internal/domain/topic"
)

// LLMProvider generates material by calling an OpenAI-compatible chat
// endpoint (Ollama, LM Studio, vLLM, hosted APIs, etc.).
type LLMProvider struct {
	url    string // e.g. "http://localhost:1234"
	model  string // e.g. "qwen3-8b"
	apiKey string // optional bearer token
	client *http.Client
}

// Compile-time check: *LLMProvider satisfies the Provider interface.
var _ Provider = (*LLMProvider)(nil)

// GenerationError is returned when the model could not produce usable
// material, so callers can tell "bad output" from "unreachable".
type GenerationError struct {
	Reason  string
	Wrapped error
}

func (e *GenerationError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("generation failed: %s: %v", e.Reason, e.Wrapped)
	}
	return fmt.Sprintf("generation failed: %s", e.Reason)
}

func (e *GenerationError) Unwrap() error {
	return e.Wrapped
}

// NewLLMProvider creates a provider for the given endpoint. apiKey may be empty.
func NewLLMProvider(url, model, apiKey string) *LLMProvider {
	return &LLMProvider{
		url:    url,
		model:  model,
		apiKey: apiKey,
		client: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

// ============================================================================
// Provider interface
// ============================================================================

func (p *LLMProvider) Definitions(ctx context.Context, t topic.ID) ([]material.Item, error) {
	var items []material.Item
	if err := p.generate(ctx, buildDefinitionsPrompt(t), &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (p *LLMProvider) Quiz(ctx context.Context, t topic.ID, count int) ([]material.Question, error) {
	var qs []material.Question
	if err := p.generate(ctx, buildQuizPrompt(t, count), &qs); err != nil {
		return nil, err
	}
	return qs, nil
}

func (p *LLMProvider) ShowQuestion(ctx context.Context, topicText string) (material.ShowQuestion, error) {
	var q material.ShowQuestion
	if err := p.generate(ctx, buildShowPrompt(topicText), &q); err != nil {
		return material.ShowQuestion{}, err
	}
	return q, nil
}

func (p *LLMProvider) HangmanWord(ctx context.Context, t topic.ID) (material.Word, error) {
	var w material.Word
	if err := p.generate(ctx, buildHangmanPrompt(t), &w); err != nil {
		return material.Word{}, err
	}
	return w, nil
}

const maxRetries = 2

// generate sends the prompt and decodes the first JSON value of the reply
// into out. It retries once on a bad reply (small models sometimes need a
// second try).
func (p *LLMProvider) generate(ctx context.Context, prompt string, out any) error {
	var lastErr error

	for attempt := 0; attempt < maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		result, err := p.callLLM(ctx, prompt)
		if err != nil {
			lastErr = err
			continue
		}

		jsonStr := extractJSON(result)
		if jsonStr == "" {
			lastErr = &GenerationError{Reason: "no JSON value found in LLM response"}
			continue
		}

		if err := json.Unmarshal([]byte(jsonStr), out); err != nil {
			lastErr = &GenerationError{Reason: "invalid JSON from LLM", Wrapped: err}
			continue
		}
		return nil
	}

	return &GenerationError{
		Reason:  fmt.Sprintf("failed after %d attempts", maxRetries),
		Wrapped: lastErr,
	}
}

// ============================================================================
// LLM communication
// ============================================================================

type llmRequest struct {
	Model       string       `json:"model"`
	Messages    []llmMessage `json:"messages"`
	Temperature float64      `json:"temperature"`
}

type llmMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type llmResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// callLLM sends a single request to the LLM and returns the raw text response.
func (p *LLMProvider) callLLM(ctx context.Context, prompt string) (string, error) {
	reqBody := llmRequest{
		Model: p.model,
		Messages: []llmMessage{
			{Role: "user", Content: prompt},
		},
		// Some variety is wanted: every visit regenerates its material.
		Temperature: 0.7,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url+"/v1/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if p.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+p.apiKey)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("LLM request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("LLM returned status %d", resp.StatusCode)
	}

	var llmResp llmResponse
	if err := json.NewDecoder(resp.Body).Decode(&llmResp); err != nil {
		return "", fmt.Errorf("failed to decode LLM response: %w", err)
	}

	if len(llmResp.Choices) == 0 {
		return "", fmt.Errorf("LLM returned no choices")
	}

	content := llmResp.Choices[0].Message.Content
	if content == "" {
		return "", fmt.Errorf("LLM returned empty content")
	}

	return content, nil
}

// ============================================================================
// JSON extraction
// ============================================================================

// extractJSON finds the first complete JSON object or array in a string.
// It tracks nesting of both bracket kinds and skips brackets inside
// quoted strings, so markdown fences and chatter around the value are ignored.
func extractJSON(s string) string {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i, ch := range s {
		if escaped {
			escaped = false
			continue
		}
		if ch == '\\' && inString {
			escaped = true
			continue
		}
		if ch == '"' {
			if start != -1 {
				inString = !inString
			}
			continue
		}
		if inString {
			continue
		}

		switch ch {
		case '{', '[':
			if depth == 0 {
				start = i
			}
			depth++
		case '}', ']':
			if depth == 0 {
				continue
			}
			depth--
			if depth == 0 && start != -1 {
				return s[start : i+1]
			}
		}
	}
	return ""
}
