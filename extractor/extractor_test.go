package extractor

import (
	"errors"
	"testing"

	"go.uber.org/zap"

	"investing-scraper/browser"
	"investing-scraper/config"
)

// fakeNavigator serves canned HTML by URL and fails URLs listed in fail.
type fakeNavigator struct {
	pages map[string]string
	fail  map[string]bool
	calls []string
}

func (f *fakeNavigator) Navigate(url string) (string, error) {
	f.calls = append(f.calls, url)
	if f.fail[url] {
		return "", &browser.NavigationError{URL: url, Err: errors.New("load failed")}
	}
	html, ok := f.pages[url]
	if !ok {
		return "", &browser.NavigationError{URL: url, Err: errors.New("unknown url")}
	}
	return html, nil
}

func listingHTML(hrefs ...string) string {
	html := "<body>"
	for _, href := range hrefs {
		html += `<article data-test="article-item">
			<a data-test="article-title-link" href="` + href + `">t</a>
			<time data-test="article-publish-date" datetime="2024-05-01 10:00:00">today</time>
		</article>`
	}
	return html + "</body>"
}

func articleHTML(title, body, datetime string) string {
	html := "<body>"
	if title != "" {
		html += `<h1 id="articleTitle">` + title + `</h1>`
	}
	if datetime != "" {
		html += `<time data-test="article-publish-date" datetime="` + datetime + `">x</time>`
	}
	html += `<div id="article"><p>` + body + `</p></div></body>`
	return html
}

func newTestExtractor(nav *fakeNavigator) *Extractor {
	return New(nav, config.Default(), zap.NewNop().Sugar())
}

func TestGetNewsLinksThreeCardsInOrder(t *testing.T) {
	cfg := config.Default()
	nav := &fakeNavigator{pages: map[string]string{
		cfg.ListingURL("eur-usd", 1): listingHTML("/news/a", "/news/b", "/news/c"),
	}}

	links := newTestExtractor(nav).GetNewsLinks("eur-usd", 1)

	if len(links) != 3 {
		t.Fatalf("got %d links, want 3", len(links))
	}
	want := []string{
		"https://www.investing.com/news/a",
		"https://www.investing.com/news/b",
		"https://www.investing.com/news/c",
	}
	for i := range want {
		if links[i].URL != want[i] {
			t.Errorf("links[%d].URL = %q, want %q", i, links[i].URL, want[i])
		}
	}
}

func TestGetNewsLinksSkipsFailedPage(t *testing.T) {
	cfg := config.Default()
	nav := &fakeNavigator{
		pages: map[string]string{
			cfg.ListingURL("eur-usd", 1): listingHTML("/news/a"),
			cfg.ListingURL("eur-usd", 3): listingHTML("/news/c"),
		},
		fail: map[string]bool{cfg.ListingURL("eur-usd", 2): true},
	}

	links := newTestExtractor(nav).GetNewsLinks("eur-usd", 3)

	if len(links) != 2 {
		t.Fatalf("got %d links, want 2 (failed page skipped, run continues)", len(links))
	}
	if len(nav.calls) != 3 {
		t.Errorf("navigated %d pages, want all 3 attempted", len(nav.calls))
	}
}

func TestGetNewsLinksEmptyPageContinues(t *testing.T) {
	cfg := config.Default()
	nav := &fakeNavigator{pages: map[string]string{
		cfg.ListingURL("eur-usd", 1): "<body>no cards today</body>",
		cfg.ListingURL("eur-usd", 2): listingHTML("/news/b"),
	}}

	links := newTestExtractor(nav).GetNewsLinks("eur-usd", 2)

	if len(links) != 1 {
		t.Fatalf("got %d links, want 1", len(links))
	}
	if links[0].URL != "https://www.investing.com/news/b" {
		t.Errorf("links[0].URL = %q", links[0].URL)
	}
}

func TestExtractContentPropagatesNavigationError(t *testing.T) {
	nav := &fakeNavigator{fail: map[string]bool{"https://www.investing.com/news/a": true}}

	_, err := newTestExtractor(nav).ExtractContent("https://www.investing.com/news/a")

	var navErr *browser.NavigationError
	if !errors.As(err, &navErr) {
		t.Fatalf("error %v is not a *browser.NavigationError", err)
	}
}

func TestExtractContentPartialRecord(t *testing.T) {
	nav := &fakeNavigator{pages: map[string]string{
		"https://www.investing.com/news/a": articleHTML("", "only the body", ""),
	}}

	art, err := newTestExtractor(nav).ExtractContent("https://www.investing.com/news/a")
	if err != nil {
		t.Fatalf("ExtractContent() error = %v", err)
	}
	if art.Title != "" {
		t.Errorf("Title = %q, want empty", art.Title)
	}
	if art.Content != "only the body" {
		t.Errorf("Content = %q", art.Content)
	}
	if art.Timestamp != 0 {
		t.Errorf("Timestamp = %d, want 0", art.Timestamp)
	}
}

func TestRunSkipsUnnavigableArticle(t *testing.T) {
	cfg := config.Default()
	nav := &fakeNavigator{
		pages: map[string]string{
			cfg.ListingURL("eur-usd", 1):       listingHTML("/news/a", "/news/b"),
			"https://www.investing.com/news/b": articleHTML("Title B", "body b", "2024-05-01T12:00:00Z"),
		},
		fail: map[string]bool{"https://www.investing.com/news/a": true},
	}

	items := newTestExtractor(nav).Run("eur-usd", 1)

	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	item := items[0]
	if item.URL != "https://www.investing.com/news/b" {
		t.Errorf("URL = %q", item.URL)
	}
	if item.Symbol != "eur-usd" {
		t.Errorf("Symbol = %q", item.Symbol)
	}
	if item.Title != "Title B" {
		t.Errorf("Title = %q", item.Title)
	}
	if item.Content != "body b" {
		t.Errorf("Content = %q", item.Content)
	}
	if item.Timestamp != 1714564800000 {
		t.Errorf("Timestamp = %d, want article page value", item.Timestamp)
	}
}

func TestRunFallsBackToListingTimestamp(t *testing.T) {
	cfg := config.Default()
	nav := &fakeNavigator{pages: map[string]string{
		cfg.ListingURL("eur-usd", 1):       listingHTML("/news/a"),
		"https://www.investing.com/news/a": articleHTML("Title A", "body a", ""),
	}}

	items := newTestExtractor(nav).Run("eur-usd", 1)

	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	// Listing card carries "2024-05-01 10:00:00"; normalized at join time.
	if items[0].Timestamp != 1714557600000 {
		t.Errorf("Timestamp = %d, want normalized listing value", items[0].Timestamp)
	}
}

func TestRunItemCountBounded(t *testing.T) {
	cfg := config.Default()
	nav := &fakeNavigator{pages: map[string]string{
		cfg.ListingURL("eur-usd", 1):       listingHTML("/news/a"),
		cfg.ListingURL("eur-usd", 2):       listingHTML("/news/a"),
		"https://www.investing.com/news/a": articleHTML("T", "b", "2024-05-01T12:00:00Z"),
	}}

	items := newTestExtractor(nav).Run("eur-usd", 2)

	// One card per page, no dedup across pages.
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	for _, item := range items {
		if item.Timestamp < 0 {
			t.Errorf("Timestamp = %d, want non-negative", item.Timestamp)
		}
	}
}

func TestCloseWithoutOwnedEngine(t *testing.T) {
	e := newTestExtractor(&fakeNavigator{})
	if err := e.Close(); err != nil {
		t.Errorf("Close() = %v, want nil", err)
	}
	if err := e.Close(); err != nil {
		t.Errorf("second Close() = %v, want nil", err)
	}
}
