package fetcher

import (
	"github.com/gocolly/colly/v2"
	"go.uber.org/zap"

	"investing-scraper/browser"
)

// CollyNavigator fetches pages over plain HTTP. It is enough for pages that
// render without JavaScript and avoids the cost of a Chrome process.
type CollyNavigator struct {
	collector *colly.Collector
	log       *zap.SugaredLogger
}

// NewCollyNavigator creates a CollyNavigator with the given user agent.
func NewCollyNavigator(userAgent string, log *zap.SugaredLogger) *CollyNavigator {
	c := colly.NewCollector(
		colly.UserAgent(userAgent),
		colly.AllowURLRevisit(),
	)

	return &CollyNavigator{collector: c, log: log}
}

// Navigate fetches url and returns the response body. Failures are reported
// as *browser.NavigationError so callers treat both engines the same way.
func (cn *CollyNavigator) Navigate(url string) (string, error) {
	var html string
	var fetchErr error

	c := cn.collector.Clone()
	c.OnResponse(func(r *colly.Response) {
		html = string(r.Body)
	})
	c.OnError(func(r *colly.Response, err error) {
		cn.log.Debugw("fetch failed", "url", url, "error", err)
		fetchErr = err
	})

	if err := c.Visit(url); err != nil {
		return "", &browser.NavigationError{URL: url, Err: err}
	}
	c.Wait()

	if fetchErr != nil {
		return "", &browser.NavigationError{URL: url, Err: fetchErr}
	}
	return html, nil
}
