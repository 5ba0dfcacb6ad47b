// Package ollama provides a querysum.Summarizer backed by the generate
// endpoint of a local Ollama server.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/querysum"
)

// Defaults for a local Ollama install.
const (
	DefaultBaseURL = "http://localhost:11434"
	DefaultModel   = "gemma3:4b"
	DefaultTimeout = 60 * time.Second
)

// Ensure Summarizer implements querysum.Summarizer at compile time.
var _ querysum.Summarizer = (*Summarizer)(nil)

// Summarizer sends prompts to POST {baseURL}/api/generate and asks for a
// single non-streamed response.
type Summarizer struct {
	client  *http.Client
	baseURL string
	model   string
	timeout time.Duration
}

// Option configures a Summarizer.
type Option func(*Summarizer)

// WithBaseURL sets the server address. Defaults to DefaultBaseURL.
func WithBaseURL(url string) Option {
	return func(s *Summarizer) {
		s.baseURL = strings.TrimSuffix(url, "/")
	}
}

// WithModel sets the model name. Defaults to DefaultModel.
func WithModel(model string) Option {
	return func(s *Summarizer) {
		s.model = model
	}
}

// WithTimeout bounds each request, including reading the body. Zero
// disables the bound. Defaults to DefaultTimeout (60s).
func WithTimeout(d time.Duration) Option {
	return func(s *Summarizer) {
		s.timeout = d
	}
}

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(c *http.Client) Option {
	return func(s *Summarizer) {
		s.client = c
	}
}

// NewSummarizer creates a new Summarizer.
func NewSummarizer(opts ...Option) *Summarizer {
	s := &Summarizer{
		client:  http.DefaultClient,
		baseURL: DefaultBaseURL,
		model:   DefaultModel,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type generateResponse struct {
	Response *string `json:"response"`
}

// Summarize sends prompt and returns the trimmed response text.
// There is no retry: any failure is returned to the caller.
func (s *Summarizer) Summarize(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(generateRequest{
		Model:  s.model,
		Prompt: prompt,
		Stream: false,
	})
	if err != nil {
		return "", querysum.Errorf(querysum.EINTERNAL, "marshal request: %v", err)
	}

	reqCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		reqCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, s.baseURL+"/api/generate", bytes.NewReader(payload))
	if err != nil {
		return "", querysum.Errorf(querysum.EINVALID, "create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", s.requestError(ctx, reqCtx, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", s.requestError(ctx, reqCtx, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", querysum.Errorf(querysum.EUPSTREAM, "generate failed: status %d, body: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var out generateResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", querysum.Errorf(querysum.EUPSTREAM, "malformed generate response: %v", err)
	}
	if out.Response == nil {
		return "", querysum.Errorf(querysum.EUPSTREAM, "malformed generate response: missing response field")
	}

	return strings.TrimSpace(*out.Response), nil
}

// requestError classifies a transport failure. Cancellation by the caller
// is returned as is, not as an upstream failure.
func (s *Summarizer) requestError(parent, reqCtx context.Context, err error) error {
	switch {
	case errors.Is(parent.Err(), context.Canceled):
		return fmt.Errorf("generate request: %w", parent.Err())
	case parent.Err() != nil:
		return querysum.Errorf(querysum.ETIMEOUT, "generate request exceeded the caller's deadline")
	case reqCtx.Err() != nil:
		return querysum.Errorf(querysum.ETIMEOUT, "generate request timed out after %s", s.timeout)
	case isTimeout(err):
		return querysum.Errorf(querysum.ETIMEOUT, "generate request timed out: %v", err)
	}
	return querysum.Errorf(querysum.EUPSTREAM, "generate request failed: %v", err)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
