package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/textract"
)

// Ensure LoggingExtractor implements textract.Extractor.
var _ textract.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor and logs every extraction.
// Markup that does not look like HTML is flagged as dubious but still
// passed through unchanged.
type LoggingExtractor struct {
	next    textract.Extractor
	backend string
	logger  *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor. The backend name is
// included in every log entry.
func NewLoggingExtractor(next textract.Extractor, backend string, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, backend: backend, logger: logger}
}

// Extract delegates to the wrapped extractor.
func (e *LoggingExtractor) Extract(markup string, cfg textract.ExtractionConfig) (doc *textract.Document, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"backend", e.backend,
			"bytes", len(markup),
			"found", doc != nil,
			"dubious", textract.IsDubiousHTML(markup),
			"duration", time.Since(begin),
		}
		if err != nil {
			attrs = append(attrs, "err", err)
			e.logger.Error("extraction", attrs...)
			return
		}
		e.logger.Info("extraction", attrs...)
	}(time.Now())
	return e.next.Extract(markup, cfg)
}
