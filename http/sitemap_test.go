package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fwojciec/textract"
	texthttp "github.com/fwojciec/textract/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func urlset(locs ...string) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">` + "\n")
	for _, loc := range locs {
		b.WriteString("  <url><loc>" + loc + "</loc></url>\n")
	}
	b.WriteString("</urlset>")
	return b.String()
}

func TestSitemapService_DiscoverURLs(t *testing.T) {
	t.Parallel()

	t.Run("reads sitemaps declared in robots.txt", func(t *testing.T) {
		t.Parallel()

		srv := newSiteServer(t, map[string]string{
			"/robots.txt":  "User-agent: *\nDisallow: /private/\nSitemap: {{BASE}}/pages.xml\n",
			"/pages.xml":   urlset("{{BASE}}/intro", "{{BASE}}/guide"),
			"/sitemap.xml": urlset("{{BASE}}/ignored"),
		})

		urls, err := texthttp.NewSitemapService(srv.Client()).DiscoverURLs(context.Background(), srv.URL, nil)

		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/intro", srv.URL + "/guide"}, urls)
	})

	t.Run("falls back to sitemap.xml", func(t *testing.T) {
		t.Parallel()

		srv := newSiteServer(t, map[string]string{
			"/sitemap.xml": urlset("{{BASE}}/page1"),
		})

		urls, err := texthttp.NewSitemapService(srv.Client()).DiscoverURLs(context.Background(), srv.URL, nil)

		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/page1"}, urls)
	})

	t.Run("follows sitemap indexes", func(t *testing.T) {
		t.Parallel()

		srv := newSiteServer(t, map[string]string{
			"/sitemap.xml": `<?xml version="1.0" encoding="UTF-8"?>
<sitemapindex xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <sitemap><loc>{{BASE}}/sitemap-docs.xml</loc></sitemap>
  <sitemap><loc>{{BASE}}/sitemap-api.xml</loc></sitemap>
  <sitemap><loc>{{BASE}}/sitemap-docs.xml</loc></sitemap>
</sitemapindex>`,
			"/sitemap-docs.xml": urlset("{{BASE}}/docs/intro"),
			"/sitemap-api.xml":  urlset("{{BASE}}/api/reference"),
		})

		urls, err := texthttp.NewSitemapService(srv.Client()).DiscoverURLs(context.Background(), srv.URL, nil)

		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/docs/intro", srv.URL + "/api/reference"}, urls)
	})

	t.Run("merges multiple sitemaps without duplicates", func(t *testing.T) {
		t.Parallel()

		srv := newSiteServer(t, map[string]string{
			"/robots.txt": "sitemap: {{BASE}}/a.xml\nSITEMAP: {{BASE}}/b.xml\n",
			"/a.xml":      urlset("{{BASE}}/page1", "{{BASE}}/page2"),
			"/b.xml":      urlset("{{BASE}}/page2", "{{BASE}}/page3"),
		})

		urls, err := texthttp.NewSitemapService(srv.Client()).DiscoverURLs(context.Background(), srv.URL, nil)

		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/page1", srv.URL + "/page2", srv.URL + "/page3"}, urls)
	})

	t.Run("keeps only pages below the site path", func(t *testing.T) {
		t.Parallel()

		srv := newSiteServer(t, map[string]string{
			"/sitemap.xml": urlset("{{BASE}}/docs", "{{BASE}}/docs/intro", "{{BASE}}/documentation", "{{BASE}}/blog"),
		})

		urls, err := texthttp.NewSitemapService(srv.Client()).DiscoverURLs(context.Background(), srv.URL+"/docs/", nil)

		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/docs", srv.URL + "/docs/intro"}, urls)
	})

	t.Run("drops pages that climb out of the site path", func(t *testing.T) {
		t.Parallel()

		srv := newSiteServer(t, map[string]string{
			"/sitemap.xml": urlset("{{BASE}}/docs/intro", "{{BASE}}/docs/../../../escaped", "{{BASE}}/docs/%2e%2e/blog"),
		})

		urls, err := texthttp.NewSitemapService(srv.Client()).DiscoverURLs(context.Background(), srv.URL+"/docs/", nil)

		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/docs/intro"}, urls)
	})

	t.Run("drops pages on other hosts", func(t *testing.T) {
		t.Parallel()

		srv := newSiteServer(t, map[string]string{
			"/sitemap.xml": urlset("{{BASE}}/intro", "https://elsewhere.example/intro", "https://elsewhere.example/../x"),
		})

		urls, err := texthttp.NewSitemapService(srv.Client()).DiscoverURLs(context.Background(), srv.URL, nil)

		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/intro"}, urls)
	})

	t.Run("applies the URL filter", func(t *testing.T) {
		t.Parallel()

		srv := newSiteServer(t, map[string]string{
			"/sitemap.xml": urlset("{{BASE}}/docs/intro", "{{BASE}}/docs/internal/debug", "{{BASE}}/blog/post"),
		})
		filter, err := textract.NewURLFilter([]string{`/docs/`}, []string{`/internal/`})
		require.NoError(t, err)

		urls, err := texthttp.NewSitemapService(srv.Client()).DiscoverURLs(context.Background(), srv.URL, filter)

		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/docs/intro"}, urls)
	})

	t.Run("returns empty slice when the site has no sitemap", func(t *testing.T) {
		t.Parallel()

		srv := newSiteServer(t, map[string]string{})

		urls, err := texthttp.NewSitemapService(srv.Client()).DiscoverURLs(context.Background(), srv.URL, nil)

		require.NoError(t, err)
		assert.NotNil(t, urls)
		assert.Empty(t, urls)
	})

	t.Run("returns error for malformed sitemap XML", func(t *testing.T) {
		t.Parallel()

		srv := newSiteServer(t, map[string]string{
			"/sitemap.xml": "<urlset><<</urlset>",
		})

		_, err := texthttp.NewSitemapService(srv.Client()).DiscoverURLs(context.Background(), srv.URL, nil)

		require.Error(t, err)
	})

	t.Run("returns EINVALID for a URL without host", func(t *testing.T) {
		t.Parallel()

		_, err := texthttp.NewSitemapService(nil).DiscoverURLs(context.Background(), "/docs", nil)

		assert.Equal(t, textract.EINVALID, textract.ErrorCode(err))
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		srv := newSiteServer(t, map[string]string{
			"/sitemap.xml": urlset("{{BASE}}/page1"),
		})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := texthttp.NewSitemapService(srv.Client()).DiscoverURLs(ctx, srv.URL, nil)

		require.ErrorIs(t, err, context.Canceled)
	})
}

// newSiteServer serves content by path. {{BASE}} in content is replaced
// with the server URL.
func newSiteServer(t *testing.T, content map[string]string) *httptest.Server {
	t.Helper()

	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := content[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		if r.URL.Path == "/robots.txt" {
			w.Header().Set("Content-Type", "text/plain")
		} else {
			w.Header().Set("Content-Type", "application/xml")
		}
		_, _ = w.Write([]byte(strings.ReplaceAll(body, "{{BASE}}", srv.URL)))
	}))
	t.Cleanup(srv.Close)

	return srv
}
