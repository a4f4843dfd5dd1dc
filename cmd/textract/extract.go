package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/textract"
	"github.com/fwojciec/textract/batch"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	var progress batch.ProgressFunc
	if c.Verbose {
		progress = func(e batch.ProgressEvent) {
			if e.Type == batch.ProgressStarted || e.Type == batch.ProgressFinished {
				return
			}
			fmt.Fprintf(deps.Stderr, "[%d/%d] %s (%s)\n", e.Completed, e.Total,
				batch.TruncateSource(e.Source, 60), batch.FormatBytes(e.Bytes))
		}
	}

	sources := c.Sources
	if c.Sitemap {
		var err error
		if sources, err = c.expand(deps); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", textract.ErrorMessage(err))
			return err
		}
	}

	results, err := deps.Runner.Run(deps.Ctx, sources, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", textract.ErrorMessage(err))
		return err
	}

	seen := make(map[string]bool)
	var failed, written int
	for _, res := range results {
		if res.Err != nil {
			failed++
			fmt.Fprintf(deps.Stderr, "skip %s: %v\n", res.Source, res.Err)
			continue
		}

		doc := res.Document
		if doc != nil && c.Sanitize {
			doc = textract.NewDocument(doc.Body, textract.Sanitize(doc.Text))
		}
		if doc == nil {
			fmt.Fprintf(deps.Stderr, "no content: %s\n", res.Source)
			continue
		}

		if c.Unique {
			dup, err := c.isDuplicate(deps, seen, doc)
			if err != nil {
				c.abort(deps)
				fmt.Fprintf(deps.Stderr, "error: %s\n", textract.ErrorMessage(err))
				return err
			}
			if dup {
				fmt.Fprintf(deps.Stderr, "duplicate: %s\n", res.Source)
				continue
			}
		}

		if c.Save {
			rec := textract.NewRecord(res.Source, c.Backend, doc)
			if err := deps.Records.CreateRecord(deps.Ctx, rec); err != nil {
				c.abort(deps)
				fmt.Fprintf(deps.Stderr, "error saving %s: %s\n", res.Source, textract.ErrorMessage(err))
				return err
			}
			fmt.Fprintf(deps.Stderr, "saved %s as %s\n", res.Source, rec.ID)
		}

		if deps.Store != nil {
			if err := deps.Store.Save(deps.Ctx, res.Source, doc); err != nil {
				c.abort(deps)
				fmt.Fprintf(deps.Stderr, "error writing %s: %s\n", res.Source, textract.ErrorMessage(err))
				return err
			}
		} else {
			c.print(deps, res.Source, doc.Text, len(sources) > 1)
		}
		written++
	}

	if deps.Store != nil {
		if written > 0 {
			if err := deps.Store.Commit(); err != nil {
				fmt.Fprintf(deps.Stderr, "error committing: %v\n", err)
				return err
			}
			fmt.Fprintf(deps.Stdout, "Wrote %d texts to %s\n", written, c.OutputDir)
		} else {
			_ = deps.Store.Abort()
			fmt.Fprintln(deps.Stdout, "No texts written")
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d sources failed", failed, len(results))
	}
	return nil
}

// isDuplicate reports whether doc's text was already produced earlier in
// this run or, when a record service is wired, already stored.
func (c *ExtractCmd) isDuplicate(deps *Dependencies, seen map[string]bool, doc *textract.Document) (bool, error) {
	hash := doc.ContentHash()
	if seen[hash] {
		return true, nil
	}
	seen[hash] = true

	if deps.Records == nil {
		return false, nil
	}
	recs, err := deps.Records.FindRecords(deps.Ctx, textract.RecordFilter{ContentHash: &hash, Limit: 1})
	if err != nil {
		return false, err
	}
	return len(recs) > 0, nil
}

// expand replaces each URL source with the pages its sitemaps list. A URL
// whose site has no sitemap is kept as is.
func (c *ExtractCmd) expand(deps *Dependencies) ([]string, error) {
	filter, err := textract.NewURLFilter(c.Include, c.Exclude)
	if err != nil {
		return nil, err
	}

	var sources []string
	for _, source := range c.Sources {
		if !batch.IsRemote(source) {
			sources = append(sources, source)
			continue
		}
		urls, err := deps.Sitemaps.DiscoverURLs(deps.Ctx, source, filter)
		if err != nil {
			return nil, err
		}
		if len(urls) == 0 {
			fmt.Fprintf(deps.Stderr, "no sitemap: %s\n", source)
			sources = append(sources, source)
			continue
		}
		fmt.Fprintf(deps.Stderr, "found %d URLs in sitemap of %s\n", len(urls), source)
		sources = append(sources, urls...)
	}
	return sources, nil
}

// print writes text to stdout, headed by the source name when there are
// several sources.
func (c *ExtractCmd) print(deps *Dependencies, source, text string, headed bool) {
	if headed {
		fmt.Fprintf(deps.Stdout, "==> %s <==\n", source)
	}
	fmt.Fprint(deps.Stdout, text)
	if !strings.HasSuffix(text, "\n") {
		fmt.Fprintln(deps.Stdout)
	}
}

func (c *ExtractCmd) abort(deps *Dependencies) {
	if deps.Store != nil {
		_ = deps.Store.Abort()
	}
}
