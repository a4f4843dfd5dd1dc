package http

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/textract"
)

// maxSitemaps bounds how many sitemap documents one discovery may fetch.
const maxSitemaps = 100

// Ensure SitemapService implements textract.SitemapService.
var _ textract.SitemapService = (*SitemapService)(nil)

// SitemapService discovers page URLs from sitemaps over HTTP.
type SitemapService struct {
	client *http.Client
}

// NewSitemapService creates a new SitemapService with the given HTTP client.
// If client is nil, http.DefaultClient is used.
func NewSitemapService(client *http.Client) *SitemapService {
	if client == nil {
		client = http.DefaultClient
	}
	return &SitemapService{client: client}
}

// DiscoverURLs returns the deduplicated page URLs listed by the sitemaps of
// siteURL, in sitemap order.
func (s *SitemapService) DiscoverURLs(ctx context.Context, siteURL string, filter *textract.URLFilter) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	site, err := url.Parse(siteURL)
	if err != nil || site.Host == "" {
		return nil, textract.Errorf(textract.EINVALID, "invalid site URL %q", siteURL)
	}
	prefix := strings.TrimSuffix(site.Path, "/") + "/"
	root := &url.URL{Scheme: site.Scheme, Host: site.Host}

	sitemaps, err := s.locateSitemaps(ctx, root)
	if err != nil {
		return nil, err
	}

	w := &sitemapWalk{svc: s, visited: make(map[string]bool)}
	for _, sm := range sitemaps {
		if err := w.visit(ctx, sm); err != nil {
			return nil, err
		}
	}

	urls := []string{}
	seen := make(map[string]bool)
	for _, u := range w.pages {
		if seen[u] || !withinSite(u, site.Host, prefix) || !filter.Match(u) {
			continue
		}
		seen[u] = true
		urls = append(urls, u)
	}
	return urls, nil
}

// withinSite reports whether rawURL is on host and its cleaned path lies
// below prefix, which ends in a slash. "/docs/" admits "/docs" and
// "/docs/intro" but not "/documentation" or "/docs/../blog".
func withinSite(rawURL, host, prefix string) bool {
	u, err := url.Parse(rawURL)
	if err != nil || !strings.EqualFold(u.Host, host) {
		return false
	}
	clean := path.Clean("/" + u.Path)
	return strings.HasPrefix(strings.TrimSuffix(clean, "/")+"/", prefix)
}

// locateSitemaps reads Sitemap directives from robots.txt and falls back to
// /sitemap.xml. A site without either has no sitemaps.
func (s *SitemapService) locateSitemaps(ctx context.Context, root *url.URL) ([]string, error) {
	robots := root.ResolveReference(&url.URL{Path: "/robots.txt"}).String()
	if sitemaps, err := s.robotsSitemaps(ctx, robots); err == nil && len(sitemaps) > 0 {
		return sitemaps, nil
	}

	fallback := root.ResolveReference(&url.URL{Path: "/sitemap.xml"}).String()
	ok, err := s.exists(ctx, fallback)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, nil
	}
	if !ok {
		return nil, nil
	}
	return []string{fallback}, nil
}

func (s *SitemapService) robotsSitemaps(ctx context.Context, robotsURL string) ([]string, error) {
	body, err := s.get(ctx, robotsURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	var sitemaps []string
	scanner := bufio.NewScanner(body)
	for scanner.Scan() {
		key, value, ok := strings.Cut(strings.TrimSpace(scanner.Text()), ":")
		if !ok || !strings.EqualFold(strings.TrimSpace(key), "sitemap") {
			continue
		}
		if loc := strings.TrimSpace(value); loc != "" {
			sitemaps = append(sitemaps, loc)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading robots.txt: %w", err)
	}
	return sitemaps, nil
}

// sitemapWalk collects page URLs across a sitemap tree.
type sitemapWalk struct {
	svc     *SitemapService
	visited map[string]bool
	pages   []string
}

// visit parses one sitemap document, descending into sitemap indexes.
func (w *sitemapWalk) visit(ctx context.Context, sitemapURL string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if w.visited[sitemapURL] || len(w.visited) >= maxSitemaps {
		return nil
	}
	w.visited[sitemapURL] = true

	body, err := w.svc.get(ctx, sitemapURL)
	if err != nil {
		return err
	}
	defer body.Close()

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(body); err != nil {
		return fmt.Errorf("parsing sitemap %s: %w", sitemapURL, err)
	}
	root := doc.Root()
	if root == nil {
		return fmt.Errorf("parsing sitemap %s: empty document", sitemapURL)
	}

	if root.Tag == "sitemapindex" {
		for _, loc := range locs(root, "sitemap") {
			if err := w.visit(ctx, loc); err != nil {
				return err
			}
		}
		return nil
	}

	w.pages = append(w.pages, locs(root, "url")...)
	return nil
}

// locs returns the non-empty <loc> values of the tag children of root.
func locs(root *etree.Element, tag string) []string {
	var out []string
	for _, el := range root.SelectElements(tag) {
		loc := el.SelectElement("loc")
		if loc == nil {
			continue
		}
		if v := strings.TrimSpace(loc.Text()); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func (s *SitemapService) get(ctx context.Context, target string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, target)
	}
	return resp.Body, nil
}

func (s *SitemapService) exists(ctx context.Context, target string) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, target, nil)
	if err != nil {
		return false, fmt.Errorf("creating request: %w", err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return false, err
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK, nil
}
