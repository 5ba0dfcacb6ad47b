// Package exec provides a querysum.Searcher that talks to the search engine
// running as a subprocess, over its standard input and output.
package exec

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os/exec"
	"regexp"
	"strconv"
	"strings"

	"github.com/fwojciec/querysum"
	"golang.org/x/sync/errgroup"
)

var (
	resultLine = regexp.MustCompile(`Score\s+(\d+)\s+\|\s+Doc\s+(\d+):\s+(\S+)`)
	matchCount = regexp.MustCompile(`^\s*(\d+)\s+match`)
	noMatches  = regexp.MustCompile(`^\s*No matches`)
)

// ParseResultLine parses one "Score <n> | Doc <id>: <url>" line.
// It reports false for any line that does not have that shape.
func ParseResultLine(line string) (querysum.SearchResult, bool) {
	m := resultLine.FindStringSubmatch(line)
	if m == nil {
		return querysum.SearchResult{}, false
	}
	score, err := strconv.Atoi(m[1])
	if err != nil {
		return querysum.SearchResult{}, false
	}
	return querysum.SearchResult{
		Score:      score,
		DocumentID: m[2],
		URL:        m[3],
	}, true
}

// Ensure Searcher implements querysum.Searcher at compile time.
var _ querysum.Searcher = (*Searcher)(nil)

// Searcher speaks the engine's line protocol. It is not safe for
// concurrent use: one query is in flight at a time.
type Searcher struct {
	w io.WriteCloser
	r *bufio.Reader

	cmd    *exec.Cmd
	group  *errgroup.Group
	logger *slog.Logger
}

// Option configures a Searcher started with Start.
type Option func(*Searcher)

// WithLogger sets the logger that receives the engine's stderr output.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) {
		s.logger = logger
	}
}

// NewSearcher creates a Searcher over an already connected pair of streams.
// Queries are written to w and responses read from r.
func NewSearcher(w io.WriteCloser, r io.Reader) *Searcher {
	return &Searcher{
		w:      w,
		r:      bufio.NewReader(r),
		logger: slog.New(slog.DiscardHandler),
	}
}

// Start launches the engine at path with args and returns a Searcher
// connected to it. The engine's stderr is forwarded to the logger.
// Close must be called to shut the engine down.
func Start(path string, args []string, opts ...Option) (*Searcher, error) {
	cmd := exec.Command(path, args...)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, querysum.Errorf(querysum.EUNAVAILABLE, "querier stdin: %v", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, querysum.Errorf(querysum.EUNAVAILABLE, "querier stdout: %v", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, querysum.Errorf(querysum.EUNAVAILABLE, "querier stderr: %v", err)
	}

	if err := cmd.Start(); err != nil {
		return nil, querysum.Errorf(querysum.EUNAVAILABLE, "failed to start querier %s: %v", path, err)
	}

	s := NewSearcher(stdin, stdout)
	for _, opt := range opts {
		opt(s)
	}
	s.cmd = cmd
	s.group = new(errgroup.Group)
	s.group.Go(func() error {
		return s.forward(stderr)
	})

	return s, nil
}

// forward logs each line the engine writes to stderr until it closes.
func (s *Searcher) forward(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			s.logger.Warn("querier", "stderr", line)
		}
	}
	return scanner.Err()
}

// Search writes the query, reads the two header lines and parses up to
// querysum.MaxResults result lines. The first line that is not a result
// ends the list. Any stream failure before the results are read returns
// EUNAVAILABLE.
func (s *Searcher) Search(ctx context.Context, query string) ([]querysum.SearchResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Pipe writes are unbuffered, so the engine sees the line immediately.
	if _, err := io.WriteString(s.w, query+"\n"); err != nil {
		return nil, querysum.Errorf(querysum.EUNAVAILABLE, "failed to send query: %v", err)
	}

	if _, err := s.readHeader(); err != nil {
		return nil, err
	}
	status, err := s.readLine()
	if err != nil {
		return nil, err
	}
	matches, known := ParseMatchCount(status)

	limit := querysum.MaxResults
	if known {
		limit = min(matches, querysum.MaxResults)
	}

	results := make([]querysum.SearchResult, 0, limit)
	for range limit {
		line, err := s.readLine()
		if err != nil {
			return nil, err
		}
		result, ok := ParseResultLine(line)
		if !ok {
			return results, nil
		}
		results = append(results, result)
	}

	// The engine ranks every match. Consume the ones past the limit so the
	// next query starts at its own header.
	if known && matches > limit {
		s.skip(matches - limit)
	}
	return results, nil
}

// ParseMatchCount reads the number of matches from the engine's status
// line. It reports false when the line has no recognizable count.
func ParseMatchCount(line string) (int, bool) {
	if noMatches.MatchString(line) {
		return 0, true
	}
	m := matchCount.FindStringSubmatch(line)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// readHeader returns the first header line. Blank lines before it are the
// terminator the engine prints after each response and are skipped.
func (s *Searcher) readHeader() (string, error) {
	for {
		line, err := s.readLine()
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(line) != "" {
			return line, nil
		}
	}
}

// skip discards up to n lines. Output ending early is not an error since
// the results are already in hand; the next read reports it.
func (s *Searcher) skip(n int) {
	for range n {
		if _, err := s.readLine(); err != nil {
			return
		}
	}
}

func (s *Searcher) readLine() (string, error) {
	line, err := s.r.ReadString('\n')
	if err != nil {
		return "", querysum.Errorf(querysum.EUNAVAILABLE, "querier output closed: %v", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Close closes the engine's input, which tells it to exit, and waits for
// the process to finish. No signal is sent.
func (s *Searcher) Close() error {
	err := s.w.Close()
	if s.cmd == nil {
		return err
	}

	if gerr := s.group.Wait(); gerr != nil {
		s.logger.Warn("querier", "err", gerr)
	}
	if werr := s.cmd.Wait(); werr != nil {
		return querysum.Errorf(querysum.EUNAVAILABLE, "querier exited: %v", werr)
	}
	return err
}
