// Package session drives the interactive query loop: read a query, run it
// against the engine, then summarize each result in turn.
package session

import (
	"fmt"

	"github.com/fwojciec/querysum"
)

// State is a step of the interactive loop.
type State int

// Session states. StateClosed is terminal.
const (
	StateAwaitingQuery State = iota
	StateQuerySent
	StateReadingResults
	StateSummarizing
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateAwaitingQuery:
		return "AwaitingQuery"
	case StateQuerySent:
		return "QuerySent"
	case StateReadingResults:
		return "ReadingResults"
	case StateSummarizing:
		return "Summarizing"
	case StateClosed:
		return "Closed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Session holds the mutable state of one interactive session.
type Session struct {
	State State

	// Query is the query being processed, empty while awaiting input.
	Query string

	// Results of Query, in engine order. Next indexes the result to
	// summarize next.
	Results []querysum.SearchResult
	Next    int
}

// Current returns the result being summarized. It must only be called in
// StateSummarizing.
func (s *Session) Current() querysum.SearchResult {
	return s.Results[s.Next]
}
