package services

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/PuerkitoBio/goquery"

	"github.com/Sami-Mannila/webscraper/domain"
)

// Consumer-side interfaces
type ListingDiscoverer interface {
	DiscoverListingURLs(ctx context.Context) ([]string, error)
}

type PageFetcher interface {
	Fetch(url string) (*http.Response, error)
}

type PropertyExtractor interface {
	Extract(doc *goquery.Document) domain.Property
}

type PropertySink interface {
	Write(properties []domain.Property) error
}

// PipelineService sequences one crawl run: discovery completes first, then
// every listing URL is fetched and extracted exactly once, in order, and the
// aggregated records go to the configured sinks. Strictly sequential, no
// retries, no deduplication.
type PipelineService struct {
	discoverer ListingDiscoverer
	fetcher    PageFetcher
	extractor  PropertyExtractor
	sinks      []PropertySink
}

// Functional Options Pattern
type PipelineOption func(*PipelineService)

func WithDiscoverer(d ListingDiscoverer) PipelineOption {
	return func(s *PipelineService) { s.discoverer = d }
}

func WithPageFetcher(f PageFetcher) PipelineOption {
	return func(s *PipelineService) { s.fetcher = f }
}

func WithExtractor(e PropertyExtractor) PipelineOption {
	return func(s *PipelineService) { s.extractor = e }
}

func WithSinks(sinks ...PropertySink) PipelineOption {
	return func(s *PipelineService) { s.sinks = sinks }
}

func NewPipelineService(opts ...PipelineOption) *PipelineService {
	s := &PipelineService{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run executes one crawl. A discovery failure aborts the run; a failure on a
// single listing page only skips that listing. An empty aggregate skips the
// sinks and is not an error.
func (s *PipelineService) Run(ctx context.Context) ([]domain.Property, error) {
	urls, err := s.discoverer.DiscoverListingURLs(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing discovery failed: %w", err)
	}

	var properties []domain.Property
	for _, u := range urls {
		prop, ok := s.scrapeListing(u)
		if !ok {
			continue
		}
		properties = append(properties, prop)
	}

	if len(properties) == 0 {
		log.Println("No properties found.")
		return properties, nil
	}

	for _, sink := range s.sinks {
		if err := sink.Write(properties); err != nil {
			return properties, fmt.Errorf("writing output: %w", err)
		}
	}

	return properties, nil
}

func (s *PipelineService) scrapeListing(url string) (domain.Property, bool) {
	log.Printf("Scraping URL: %s", url)

	resp, err := s.fetcher.Fetch(url)
	if err != nil {
		log.Printf("failed to fetch URL %s: %v", url, err)
		return domain.Property{}, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("non-200 status code for URL %s: %d", url, resp.StatusCode)
		return domain.Property{}, false
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		log.Printf("failed to parse document for URL %s: %v", url, err)
		return domain.Property{}, false
	}

	return s.extractor.Extract(doc), true
}
