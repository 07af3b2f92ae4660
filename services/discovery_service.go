package services

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/Sami-Mannila/webscraper/domain"
)

// Renderer is the rendering-client boundary: it navigates to a URL, executes
// the page's scripts, waits for the listing cards to load and returns the
// fully rendered markup.
type Renderer interface {
	RenderListingsPage(ctx context.Context, pageURL string) (string, error)
}

const defaultPageSize = 25

// DiscoveryService enumerates listing URLs from the paginated search results
// page. Pages are visited in order starting at 1; the crawl ends after the
// first page that yields fewer card links than the nominal page size.
//
// Discovered URLs are not deduplicated: if the site reorders results between
// adjacent pages the output can contain the same listing twice. Downstream
// consumers see the duplication rather than a silently trimmed result.
type DiscoveryService struct {
	renderer Renderer
	baseURL  string
	pageSize int
}

// Functional Options Pattern
type DiscoveryOption func(*DiscoveryService)

func WithRenderer(r Renderer) DiscoveryOption {
	return func(s *DiscoveryService) { s.renderer = r }
}

func WithBaseURL(u string) DiscoveryOption {
	return func(s *DiscoveryService) { s.baseURL = u }
}

func WithPageSize(n int) DiscoveryOption {
	return func(s *DiscoveryService) { s.pageSize = n }
}

func NewDiscoveryService(opts ...DiscoveryOption) *DiscoveryService {
	s := &DiscoveryService{pageSize: defaultPageSize}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DiscoverListingURLs walks the result pages and returns every listing URL
// in page order, then in-page order. A render failure is fatal for the run.
func (s *DiscoveryService) DiscoverListingURLs(ctx context.Context) ([]string, error) {
	var urls []string

	for page := 1; ; page++ {
		pageURL, err := s.pageURL(page)
		if err != nil {
			return nil, fmt.Errorf("invalid base URL %q: %w", s.baseURL, err)
		}

		markup, err := s.renderer.RenderListingsPage(ctx, pageURL)
		if err != nil {
			return nil, fmt.Errorf("rendering results page %d: %w", page, err)
		}

		pageURLs, err := s.collectCardLinks(markup)
		if err != nil {
			return nil, fmt.Errorf("parsing results page %d: %w", page, err)
		}

		log.Printf("results page %d yielded %d listing URLs", page, len(pageURLs))
		urls = append(urls, pageURLs...)

		if len(pageURLs) < s.pageSize {
			break
		}
	}

	log.Printf("Found %d listing URLs", len(urls))
	return urls, nil
}

// pageURL sets the pagination parameter on the base search URL.
func (s *DiscoveryService) pageURL(page int) (string, error) {
	u, err := url.Parse(s.baseURL)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set(domain.PaginationParam, strconv.Itoa(page))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// collectCardLinks extracts the card anchors from one rendered results page,
// in document order, resolving relative hrefs against the base URL.
func (s *DiscoveryService) collectCardLinks(markup string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, err
	}

	var urls []string
	doc.Find(domain.SelectorCardLink).Each(func(_ int, card *goquery.Selection) {
		href, ok := card.Attr("href")
		if !ok || href == "" {
			return
		}
		urls = append(urls, s.resolve(href))
	})
	return urls, nil
}

func (s *DiscoveryService) resolve(href string) string {
	base, err := url.Parse(s.baseURL)
	if err != nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}
