package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/textract"
	"github.com/fwojciec/textract/batch"
)

// Extraction backends selectable with --backend.
const (
	BackendBody        = "body"
	BackendTrafilatura = "trafilatura"
	BackendReadability = "readability"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Runner  *batch.Runner
	Records textract.RecordService
	Store   textract.TextStore

	Sitemaps textract.SitemapService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB string `name:"db" help:"Database path" env:"TEXTRACT_DB" placeholder:"PATH"`

	Extract ExtractCmd `cmd:"" help:"Extract plain text from HTML files or URLs"`
	List    ListCmd    `cmd:"" help:"List stored extractions"`
	Show    ShowCmd    `cmd:"" help:"Print the text of a stored extraction"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a stored extraction"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Sources []string `arg:"" help:"HTML files, http(s) URLs, or - for stdin"`

	Backend     string        `short:"b" default:"body" enum:"body,trafilatura,readability" help:"Extraction backend (${enum})"`
	Format      string        `default:"txt" enum:"txt,markdown,html,xml,xmltei,json,csv" help:"Requested output format (${enum})"`
	Tables      bool          `help:"Include tables"`
	Images      bool          `help:"Include images"`
	Formatting  bool          `help:"Include formatting"`
	Links       bool          `help:"Include links"`
	Sanitize    bool          `short:"s" help:"Normalize whitespace and drop control characters"`
	Browser     bool          `help:"Render URLs in headless Chrome"`
	Timeout     time.Duration `short:"t" default:"10s" help:"Fetch timeout per URL"`
	Concurrency int           `short:"c" default:"3" help:"Concurrent source limit"`
	RPS         float64       `name:"rps" default:"1" help:"Requests per second per host (0 for no limit)"`
	OutputDir   string        `short:"o" name:"output-dir" help:"Write one .txt file per source into this directory; other files in it are kept, same-named ones are replaced"`
	Save        bool          `help:"Store extractions in the database"`
	Unique      bool          `short:"u" help:"Skip texts already seen in this run or stored"`
	Verbose     bool          `short:"v" help:"Log fetches and extractions to stderr"`

	Sitemap bool     `help:"Expand URL sources into the pages listed by their sitemaps"`
	Include []string `short:"I" sep:"none" help:"With --sitemap, keep only URLs matching a regex (repeatable)"`
	Exclude []string `short:"X" sep:"none" help:"With --sitemap, drop URLs matching a regex (repeatable)"`
}

func (c *ExtractCmd) config() textract.ExtractionConfig {
	return textract.ExtractionConfig{
		OutputFormat:      textract.OutputFormat(c.Format),
		IncludeFormatting: c.Formatting,
		IncludeLinks:      c.Links,
		IncludeImages:     c.Images,
		IncludeTables:     c.Tables,
	}
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Source string `help:"Only list extractions of this source"`
	Limit  int    `short:"n" default:"0" help:"Maximum number of extractions to list (0 for all)"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID   string `arg:"" help:"Extraction ID"`
	Body bool   `help:"Print the original markup instead of the text"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Extraction ID"`
	Force bool   `help:"Confirm deletion"`
}
