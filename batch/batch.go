// Package batch runs extractions over many sources concurrently.
// Sources are URLs, acquired through a Fetcher with per-host rate limiting,
// or local paths, read through a Loader.
package batch

import (
	"context"
	"net/url"
	"time"

	"github.com/fwojciec/textract"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of sources processed at once when
// Runner.Concurrency is not set.
const DefaultConcurrency = 10

// Runner extracts text from a list of sources.
type Runner struct {
	Extractor   textract.Extractor
	Fetcher     textract.Fetcher
	Loader      textract.Loader
	RateLimiter textract.DomainLimiter
	Config      textract.ExtractionConfig
	Concurrency int

	// RetryDelays are the waits between fetch attempts for URL sources.
	// Nil means DefaultRetryDelays. Local sources are never retried.
	RetryDelays []time.Duration
}

// Result holds the outcome for one source. Document is nil both when the
// source failed (Err is set) and when it had no extractable content.
type Result struct {
	Source   string
	Document *textract.Document
	Err      error
}

// ProgressEvent reports progress during a run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Source    string
	Bytes     int
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressEmpty
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting progress.
type ProgressFunc func(event ProgressEvent)

type sourceResult struct {
	position int
	result   *Result
	bytes    int
}

// Run processes every source and returns one Result per source in input
// order. A failure to acquire or extract a single source is recorded on
// its Result; only invalid input or cancellation of ctx fail the run.
func (r *Runner) Run(ctx context.Context, sources []string, progress ProgressFunc) ([]*Result, error) {
	if len(sources) == 0 {
		return nil, textract.Errorf(textract.EINVALID, "at least one source required")
	}
	if err := r.Config.Validate(); err != nil {
		return nil, err
	}

	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	total := len(sources)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	resultCh := make(chan sourceResult, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, source := range sources {
			g.Go(func() error {
				resultCh <- r.process(gctx, i, source)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	results := make([]*Result, total)
	completed := 0
	for sr := range resultCh {
		completed++
		results[sr.position] = sr.result

		if progress == nil {
			continue
		}
		event := ProgressEvent{
			Type:      ProgressCompleted,
			Completed: completed,
			Total:     total,
			Source:    sr.result.Source,
			Bytes:     sr.bytes,
		}
		switch {
		case sr.result.Err != nil:
			event.Type = ProgressFailed
			event.Error = sr.result.Err
		case sr.result.Document == nil:
			event.Type = ProgressEmpty
		}
		progress(event)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return results, nil
}

// process acquires and extracts a single source.
func (r *Runner) process(ctx context.Context, position int, source string) sourceResult {
	sr := sourceResult{position: position, result: &Result{Source: source}}

	markup, err := r.acquire(ctx, source)
	if err != nil {
		sr.result.Err = err
		return sr
	}
	sr.bytes = len(markup)

	doc, err := r.Extractor.Extract(markup, r.Config)
	if err != nil {
		sr.result.Err = err
		return sr
	}
	sr.result.Document = doc

	return sr
}

func (r *Runner) acquire(ctx context.Context, source string) (string, error) {
	host, ok := remoteHost(source)
	if !ok {
		if r.Loader == nil {
			return "", textract.Errorf(textract.EINVALID, "cannot read %s: no loader configured", source)
		}
		return r.Loader.Load(ctx, source)
	}

	if r.Fetcher == nil {
		return "", textract.Errorf(textract.EINVALID, "cannot fetch %s: no fetcher configured", source)
	}

	delays := r.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	fetch := func(ctx context.Context, source string) (string, error) {
		if r.RateLimiter != nil {
			if err := r.RateLimiter.Wait(ctx, host); err != nil {
				return "", err
			}
		}
		return r.Fetcher.Fetch(ctx, source)
	}
	return AcquireWithRetry(ctx, source, fetch, delays)
}

// IsRemote reports whether source is an http or https URL.
func IsRemote(source string) bool {
	_, ok := remoteHost(source)
	return ok
}

func remoteHost(source string) (string, bool) {
	u, err := url.Parse(source)
	if err != nil {
		return "", false
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", false
	}
	return u.Host, true
}
