package crawl

import (
	"fmt"
	"net"
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// skipExtensions lists path suffixes of downloadable files that are never
// crawled as pages.
var skipExtensions = []string{".pdf", ".doc", ".docx", ".xls", ".xlsx", ".zip", ".jpg", ".png", ".gif"}

// URLNormalizer resolves hrefs against a site's base URL and decides which
// URLs belong to the crawl.
type URLNormalizer struct {
	base   string
	domain string
}

// NewURLNormalizer returns a normalizer for the site rooted at baseURL.
// The crawl domain is the registrable domain of baseURL's host, so
// "https://www.example.gov" admits every subdomain of example.gov.
func NewURLNormalizer(baseURL string) (*URLNormalizer, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("base URL %q must use http or https", baseURL)
	}
	host := strings.ToLower(u.Hostname())
	if host == "" {
		return nil, fmt.Errorf("base URL %q has no host", baseURL)
	}
	domain := host
	if net.ParseIP(host) == nil {
		// Bare hosts such as "localhost" have no registrable domain.
		if d, err := publicsuffix.EffectiveTLDPlusOne(host); err == nil {
			domain = d
		}
	}
	return &URLNormalizer{
		base:   strings.TrimRight(baseURL, "/"),
		domain: domain,
	}, nil
}

// BaseURL returns the base URL without a trailing slash.
func (n *URLNormalizer) BaseURL() string {
	return n.base
}

// Domain returns the registrable domain URLs must belong to.
func (n *URLNormalizer) Domain() string {
	return n.domain
}

// Normalize turns an href into an absolute URL. Root-relative hrefs are
// joined to the base URL, absolute http(s) URLs are returned unchanged, and
// anything else is joined to the base URL with a slash. The bool result is
// false for empty hrefs.
func (n *URLNormalizer) Normalize(href string) (string, bool) {
	href = strings.TrimSpace(href)
	switch {
	case href == "":
		return "", false
	case strings.HasPrefix(href, "/"):
		return n.base + href, true
	case strings.HasPrefix(href, "http"):
		return href, true
	default:
		return n.base + "/" + href, true
	}
}

// Validate reports whether rawURL should be crawled: an http(s) URL on the
// crawl domain or one of its subdomains, not a file download, and not a
// mail or phone link.
func (n *URLNormalizer) Validate(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}

	host := strings.ToLower(u.Hostname())
	if host != n.domain && !strings.HasSuffix(host, "."+n.domain) {
		return false
	}

	path := strings.ToLower(u.Path)
	for _, ext := range skipExtensions {
		if strings.HasSuffix(path, ext) {
			return false
		}
	}
	if strings.Contains(path, "mailto:") || strings.Contains(path, "tel:") {
		return false
	}
	return true
}
