package main

import (
	"time"

	"github.com/alecthomas/kong"
)

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	PageDirectory string `arg:"" help:"Directory of crawled pages, as given to the querier. Document IDs are appended to it verbatim."`
	IndexFile     string `arg:"" help:"Index file built by the indexer"`

	Config kong.ConfigFlag `help:"YAML file with flag defaults" placeholder:"FILE"`

	Querier string `default:"../C/querier/querier" env:"QUERYSUM_QUERIER" help:"Path to the querier executable"`

	Backend  string        `default:"ollama" enum:"ollama,gemini" env:"QUERYSUM_BACKEND" help:"Text generation service (${enum})"`
	Endpoint string        `env:"QUERYSUM_ENDPOINT" help:"Ollama base URL (default http://localhost:11434)"`
	Model    string        `env:"QUERYSUM_MODEL" help:"Model name (default depends on backend)"`
	Timeout  time.Duration `default:"60s" env:"QUERYSUM_TIMEOUT" help:"Timeout for one summary request"`
	APIKey   string        `name:"gemini-api-key" env:"GEMINI_API_KEY" help:"API key for the gemini backend"`

	Pace  string        `default:"fixed" enum:"fixed,interval" help:"Pacing between summary requests (${enum})"`
	Pause time.Duration `default:"2s" env:"QUERYSUM_PAUSE" help:"Delay between summary requests"`

	MainContent string `default:"none" enum:"none,trafilatura,readability" help:"Outline only the main content found by this extractor (${enum})"`

	KeepGoing   bool `help:"Report failed summaries and continue with the next result"`
	FullSummary bool `help:"Print the whole summary, including its first line"`
	Verbose     bool `short:"v" help:"Log every operation to stderr"`
}
