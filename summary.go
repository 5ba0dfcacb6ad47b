package querysum

import "context"

// Summarizer sends a prompt to a text generation service.
type Summarizer interface {
	// Summarize returns the generated text with surrounding whitespace trimmed.
	// Returns EUPSTREAM if the service fails or answers with a malformed
	// body, and ETIMEOUT if it does not answer in time.
	Summarize(ctx context.Context, prompt string) (string, error)
}

// Pacer spaces out requests to the generation service.
type Pacer interface {
	// Pause blocks until the next request may be sent.
	// The first call returns immediately.
	// Returns an error if the context is canceled.
	Pause(ctx context.Context) error
}
