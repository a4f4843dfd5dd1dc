package mock

import (
	"context"

	"github.com/fwojciec/textract"
)

var _ textract.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of textract.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, siteURL string, filter *textract.URLFilter) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, siteURL string, filter *textract.URLFilter) ([]string, error) {
	return s.DiscoverURLsFn(ctx, siteURL, filter)
}
