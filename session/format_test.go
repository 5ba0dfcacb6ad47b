package session_test

import (
	"testing"

	"github.com/fwojciec/querysum/session"
	"github.com/stretchr/testify/assert"
)

func TestFormatSummary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		summary string
		full    bool
		want    string
	}{
		{"drops the first line", "Here is a summary:\nOne. Two.", false, "One. Two.\n\n"},
		{"keeps later lines", "Intro\nA\nB", false, "A\nB\n\n"},
		{"single line leaves only the blank line", "Just one line.", false, "\n\n"},
		{"full keeps everything", "Intro\nA", true, "Intro\nA\n\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, session.FormatSummary(tt.summary, tt.full))
		})
	}
}
