package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/fwojciec/querysum"
)

// Driver runs the interactive loop. Fields must be set before calling Run.
type Driver struct {
	Searcher   querysum.Searcher
	Documents  querysum.DocumentStore
	Outliner   querysum.Outliner
	Summarizer querysum.Summarizer

	// Pacer is called before every summary request. Nil disables pacing.
	Pacer querysum.Pacer

	// Prompt renders summary requests. Defaults to querysum.SummaryPrompt.
	Prompt *querysum.PromptTemplate

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	// KeepGoing reports document and generation failures and moves on to
	// the next result instead of ending the session.
	KeepGoing bool

	// FullSummary prints generated text without dropping its first line.
	FullSummary bool

	lines   chan string
	scanErr error
}

// Run steps a new session until it closes or fails. On failure the
// searcher is closed before the error is returned.
func (d *Driver) Run(ctx context.Context) error {
	s := &Session{}
	for s.State != StateClosed {
		if err := d.Step(ctx, s); err != nil {
			if s.State != StateClosed {
				if cerr := d.Searcher.Close(); cerr != nil {
					d.logger().Warn("close searcher", "err", cerr)
				}
				s.State = StateClosed
			}
			return err
		}
	}
	return nil
}

// Step performs one transition of s. It fails with the context's error
// once ctx is done.
func (d *Driver) Step(ctx context.Context, s *Session) error {
	if s.State == StateClosed {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	switch s.State {
	case StateAwaitingQuery:
		return d.awaitQuery(ctx, s)
	case StateQuerySent:
		return d.sendQuery(ctx, s)
	case StateReadingResults:
		d.nextResult(s)
		return nil
	case StateSummarizing:
		return d.summarize(ctx, s)
	}
	return querysum.Errorf(querysum.EINTERNAL, "unknown session state %s", s.State)
}

func (d *Driver) awaitQuery(ctx context.Context, s *Session) error {
	fmt.Fprint(d.Stdout, "Query? ")

	line, ok, err := d.readLine(ctx)
	if err != nil {
		return err
	}
	if !ok {
		s.State = StateClosed
		return d.Searcher.Close()
	}

	query := strings.TrimSpace(line)
	if query == "" {
		return nil
	}
	if err := querysum.ValidateQuery(query); err != nil {
		fmt.Fprintf(d.Stderr, "Error: %s\n\n", querysum.ErrorMessage(err))
		return nil
	}

	s.Query = query
	s.State = StateQuerySent
	return nil
}

func (d *Driver) sendQuery(ctx context.Context, s *Session) error {
	results, err := d.Searcher.Search(ctx, s.Query)
	if err != nil {
		return err
	}

	fmt.Fprint(d.Stdout, "Search results: \n\n")
	s.Results = results
	s.Next = 0
	s.State = StateReadingResults
	return nil
}

func (d *Driver) nextResult(s *Session) {
	if s.Next >= len(s.Results) {
		s.Query = ""
		s.Results = nil
		s.Next = 0
		s.State = StateAwaitingQuery
		return
	}

	fmt.Fprintf(d.Stdout, "AI summary of %s:\n", s.Current().URL)
	s.State = StateSummarizing
}

func (d *Driver) summarize(ctx context.Context, s *Session) error {
	result := s.Current()
	s.Next++
	s.State = StateReadingResults

	if d.Pacer != nil {
		if err := d.Pacer.Pause(ctx); err != nil {
			return err
		}
	}

	summary, err := d.summary(ctx, result.DocumentID)
	if err != nil {
		if !d.KeepGoing || !skippable(ctx, err) {
			return err
		}
		d.logger().Error("summary skipped",
			"doc", result.DocumentID,
			"url", result.URL,
			"err", err,
		)
		fmt.Fprintf(d.Stderr, "error: %s\n\n", querysum.ErrorMessage(err))
		return nil
	}

	fmt.Fprint(d.Stdout, FormatSummary(summary, d.FullSummary))
	return nil
}

// summary reads, outlines and summarizes one document.
func (d *Driver) summary(ctx context.Context, id string) (string, error) {
	page, err := d.Documents.ReadDocument(ctx, id)
	if err != nil {
		return "", err
	}

	structure, err := d.Outliner.Outline(page)
	if err != nil {
		return "", err
	}

	return d.Summarizer.Summarize(ctx, d.prompt().Render(structure))
}

// skippable reports whether err only affects the current result.
func skippable(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return false
	}
	switch querysum.ErrorCode(err) {
	case querysum.ENOTFOUND, querysum.EINVALID, querysum.EUPSTREAM, querysum.ETIMEOUT:
		return true
	}
	return false
}

// readLine waits for the next line of input or for ctx to be done. It
// reports false at end of input. Stdin is read by a background goroutine
// so that a blocked read does not hold up cancellation.
func (d *Driver) readLine(ctx context.Context) (string, bool, error) {
	if d.lines == nil {
		d.lines = make(chan string)
		go d.scan()
	}

	select {
	case <-ctx.Done():
		return "", false, ctx.Err()
	case line, ok := <-d.lines:
		if ok {
			return line, true, nil
		}
		if d.scanErr != nil {
			return "", false, querysum.Errorf(querysum.EINTERNAL, "failed to read query: %v", d.scanErr)
		}
		return "", false, nil
	}
}

func (d *Driver) scan() {
	defer close(d.lines)
	scanner := bufio.NewScanner(d.Stdin)
	for scanner.Scan() {
		d.lines <- scanner.Text()
	}
	d.scanErr = scanner.Err()
}

func (d *Driver) prompt() *querysum.PromptTemplate {
	if d.Prompt == nil {
		return &querysum.SummaryPrompt
	}
	return d.Prompt
}

func (d *Driver) logger() *slog.Logger {
	if d.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return d.Logger
}
