// Package gemini provides a querysum.Summarizer backed by Google Gemini.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/fwojciec/querysum"
	"google.golang.org/genai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

// Ensure Summarizer implements querysum.Summarizer at compile time.
var _ querysum.Summarizer = (*Summarizer)(nil)

// Summarizer implements querysum.Summarizer using Google Gemini.
type Summarizer struct {
	client *genai.Client
	model  string
}

// NewSummarizer creates a new Summarizer. An empty model selects DefaultModel.
func NewSummarizer(client *genai.Client, model string) *Summarizer {
	if model == "" {
		model = DefaultModel
	}
	return &Summarizer{client: client, model: model}
}

// Summarize sends the prompt as a single user turn and returns the trimmed answer.
func (s *Summarizer) Summarize(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", querysum.Errorf(querysum.EINVALID, "prompt required")
	}

	result, err := s.client.Models.GenerateContent(ctx, s.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		BuildConfig(),
	)
	if err != nil && errors.Is(ctx.Err(), context.Canceled) {
		return "", fmt.Errorf("gemini request: %w", ctx.Err())
	} else if isTimeout(err) {
		return "", querysum.Errorf(querysum.ETIMEOUT, "gemini request timed out: %v", err)
	} else if err != nil {
		return "", querysum.Errorf(querysum.EUPSTREAM, "gemini request failed: %v", err)
	}
	if result == nil {
		return "", querysum.Errorf(querysum.EUPSTREAM, "gemini returned nil result")
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return "", querysum.Errorf(querysum.EUPSTREAM, "gemini returned empty response")
	}
	return text, nil
}

func isTimeout(err error) bool {
	var netErr net.Error
	return errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout())
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		Temperature: &temp,
	}
}
