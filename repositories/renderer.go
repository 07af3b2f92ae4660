package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"

	"github.com/Sami-Mannila/webscraper/domain"
)

const rendererUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

const (
	defaultRenderTimeout = 20 * time.Second
	defaultSettleTimeout = 10 * time.Second
	defaultPollInterval  = 250 * time.Millisecond
)

// ChromeRenderer drives a headless browser to render search results pages.
// The results list loads through client-side scripts and infinite scroll, so
// the raw HTTP response never contains the full card list. One browser
// process serves the whole run; each page gets its own tab, released before
// the method returns.
type ChromeRenderer struct {
	allocCtx     context.Context
	cancelAlloc  context.CancelFunc
	browserCtx   context.Context
	cancelBrowse context.CancelFunc

	cardSelector  string
	renderTimeout time.Duration
	settleTimeout time.Duration
	pollInterval  time.Duration
}

type RendererOption func(*ChromeRenderer)

func WithCardSelector(sel string) RendererOption {
	return func(r *ChromeRenderer) { r.cardSelector = sel }
}

func WithRenderTimeout(d time.Duration) RendererOption {
	return func(r *ChromeRenderer) { r.renderTimeout = d }
}

func WithSettleTimeout(d time.Duration) RendererOption {
	return func(r *ChromeRenderer) { r.settleTimeout = d }
}

func WithPollInterval(d time.Duration) RendererOption {
	return func(r *ChromeRenderer) { r.pollInterval = d }
}

func NewChromeRenderer(ctx context.Context, headless bool, opts ...RendererOption) *ChromeRenderer {
	r := &ChromeRenderer{
		cardSelector:  domain.SelectorCardMarker,
		renderTimeout: defaultRenderTimeout,
		settleTimeout: defaultSettleTimeout,
		pollInterval:  defaultPollInterval,
	}
	for _, opt := range opts {
		opt(r)
	}

	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", headless),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.UserAgent(rendererUserAgent),
	)
	r.allocCtx, r.cancelAlloc = chromedp.NewExecAllocator(ctx, allocOpts...)
	r.browserCtx, r.cancelBrowse = chromedp.NewContext(r.allocCtx)

	return r
}

// Close releases the browser and its allocator.
func (r *ChromeRenderer) Close() {
	r.cancelBrowse()
	r.cancelAlloc()
}

// RenderListingsPage navigates to pageURL in a fresh tab, waits for the
// first listing card to appear, scrolls until the document height stops
// growing and returns the rendered markup.
func (r *ChromeRenderer) RenderListingsPage(ctx context.Context, pageURL string) (string, error) {
	tabCtx, cancelTab := chromedp.NewContext(r.browserCtx)
	defer cancelTab()

	if err := chromedp.Run(tabCtx, chromedp.Navigate(pageURL)); err != nil {
		return "", fmt.Errorf("navigating to %s: %w", pageURL, err)
	}

	err := PollUntil(ctx, r.pollInterval, r.renderTimeout, func() (bool, error) {
		var present bool
		script := fmt.Sprintf("document.querySelector(%q) !== null", r.cardSelector)
		if err := chromedp.Run(tabCtx, chromedp.Evaluate(script, &present)); err != nil {
			return false, err
		}
		return present, nil
	})
	if err != nil {
		return "", fmt.Errorf("waiting for listing cards on %s: %w", pageURL, err)
	}

	if err := r.scrollToEnd(ctx, tabCtx); err != nil {
		return "", fmt.Errorf("scrolling %s: %w", pageURL, err)
	}

	var markup string
	if err := chromedp.Run(tabCtx, chromedp.OuterHTML("html", &markup)); err != nil {
		return "", fmt.Errorf("reading rendered markup of %s: %w", pageURL, err)
	}
	return markup, nil
}

// scrollToEnd repeatedly scrolls to the bottom of the document, waits for
// the render to settle, and stops once the document height no longer grows.
// This forces the lazy-loaded tail of the card list to materialise.
func (r *ChromeRenderer) scrollToEnd(ctx, tabCtx context.Context) error {
	var lastHeight int64
	if err := chromedp.Run(tabCtx, chromedp.Evaluate("document.body.scrollHeight", &lastHeight)); err != nil {
		return err
	}

	for {
		if err := chromedp.Run(tabCtx, chromedp.Evaluate("window.scrollTo(0, document.body.scrollHeight)", nil)); err != nil {
			return err
		}

		err := PollUntil(ctx, r.pollInterval, r.settleTimeout, func() (bool, error) {
			var state string
			if err := chromedp.Run(tabCtx, chromedp.Evaluate("document.readyState", &state)); err != nil {
				return false, err
			}
			return state == "complete", nil
		})
		if err != nil {
			return err
		}

		var height int64
		if err := chromedp.Run(tabCtx, chromedp.Evaluate("document.body.scrollHeight", &height)); err != nil {
			return err
		}
		if height == lastHeight {
			return nil
		}
		lastHeight = height
	}
}
