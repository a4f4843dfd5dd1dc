package textract

import (
	"context"
	"regexp"
	"slices"
)

// SitemapService expands a site URL into the page URLs its sitemaps list.
type SitemapService interface {
	// DiscoverURLs returns the page URLs declared by the sitemaps of the
	// site at siteURL. Sitemaps are located through robots.txt, falling
	// back to /sitemap.xml; sitemap indexes are followed. When siteURL has
	// a path, only pages below that path are returned.
	//
	// A site without a sitemap yields an empty slice and no error.
	DiscoverURLs(ctx context.Context, siteURL string, filter *URLFilter) ([]string, error)
}

// URLFilter selects URLs by pattern.
type URLFilter struct {
	// Include, when non-empty, keeps only URLs matching one of its patterns.
	Include []*regexp.Regexp

	// Exclude drops URLs matching any of its patterns, after Include.
	Exclude []*regexp.Regexp
}

// Match reports whether url passes the filter. A nil filter passes everything.
func (f *URLFilter) Match(url string) bool {
	if f == nil {
		return true
	}
	matches := func(re *regexp.Regexp) bool { return re.MatchString(url) }
	if len(f.Include) > 0 && !slices.ContainsFunc(f.Include, matches) {
		return false
	}
	return !slices.ContainsFunc(f.Exclude, matches)
}

// NewURLFilter compiles include and exclude patterns into a URLFilter.
// It returns nil when both lists are empty.
func NewURLFilter(include, exclude []string) (*URLFilter, error) {
	if len(include) == 0 && len(exclude) == 0 {
		return nil, nil
	}
	var f URLFilter
	for _, p := range include {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, Errorf(EINVALID, "invalid include pattern %q: %v", p, err)
		}
		f.Include = append(f.Include, re)
	}
	for _, p := range exclude {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, Errorf(EINVALID, "invalid exclude pattern %q: %v", p, err)
		}
		f.Exclude = append(f.Exclude, re)
	}
	return &f, nil
}
