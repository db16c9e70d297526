package extractor

import (
	"go.uber.org/zap"

	"investing-scraper/browser"
	"investing-scraper/config"
	"investing-scraper/fetcher"
	"investing-scraper/models"
	"investing-scraper/parser"
)

// Extractor walks listing pages and article pages through a single Navigator.
type Extractor struct {
	nav fetcher.Navigator
	cfg *config.Config
	log *zap.SugaredLogger

	// session is set when Open created the engine, so Close can release it.
	session *browser.Session
}

// New builds an Extractor on an existing Navigator. The caller keeps
// ownership of the engine.
func New(nav fetcher.Navigator, cfg *config.Config, log *zap.SugaredLogger) *Extractor {
	return &Extractor{nav: nav, cfg: cfg, log: log}
}

// Open builds an Extractor that owns its fetch engine, chosen by cfg.Engine.
// Close must be called to release it.
func Open(cfg *config.Config, log *zap.SugaredLogger) (*Extractor, error) {
	if cfg.Engine == "colly" {
		return New(fetcher.NewCollyNavigator(cfg.Site.UserAgent, log), cfg, log), nil
	}

	session, err := browser.Open(cfg.StabilizeTimeout(), log)
	if err != nil {
		return nil, err
	}

	e := New(session, cfg, log)
	e.session = session
	return e, nil
}

// Close releases the fetch engine if this Extractor owns one. Safe to call
// more than once.
func (e *Extractor) Close() error {
	return e.session.Quit()
}

// GetNewsLinks collects article links for symbol from listing pages
// 1..pageCount. A page that fails to load or parse is logged and skipped; the
// result is the concatenation of the surviving pages in page order, each in
// DOM order.
func (e *Extractor) GetNewsLinks(symbol string, pageCount int) []models.NewsLink {
	var links []models.NewsLink

	for page := 1; page <= pageCount; page++ {
		url := e.cfg.ListingURL(symbol, page)

		html, err := e.nav.Navigate(url)
		if err != nil {
			e.log.Warnw("listing page skipped", "symbol", symbol, "page", page, "error", err)
			continue
		}

		pageLinks, err := parser.ParseNewsLinks(html, e.cfg.Site.BaseURL)
		if err != nil {
			e.log.Warnw("listing page unparseable", "symbol", symbol, "page", page, "error", err)
			continue
		}
		if len(pageLinks) == 0 {
			e.log.Debugw("no articles on listing page", "symbol", symbol, "page", page)
		}

		links = append(links, pageLinks...)
	}

	return links
}

// ExtractContent loads one article page and extracts its fields. The only
// error it returns is a failure to navigate to the URL at all; a missing
// title, body or timestamp just degrades the record.
func (e *Extractor) ExtractContent(url string) (models.ArticleContent, error) {
	html, err := e.nav.Navigate(url)
	if err != nil {
		return models.ArticleContent{}, err
	}
	return parser.ParseArticle(html), nil
}

// Run collects links for symbol across pageCount listing pages and extracts
// every article. Articles that cannot be navigated to are skipped; everything
// else yields a NewsItem in link order. The article page's normalized
// timestamp wins over the listing page's when both exist.
func (e *Extractor) Run(symbol string, pageCount int) []models.NewsItem {
	links := e.GetNewsLinks(symbol, pageCount)
	items := make([]models.NewsItem, 0, len(links))

	for _, link := range links {
		art, err := e.ExtractContent(link.URL)
		if err != nil {
			e.log.Warnw("article skipped", "url", link.URL, "error", err)
			continue
		}

		ts := art.Timestamp
		if ts == 0 {
			ts = parser.ParseTimestamp(link.Timestamp)
		}

		items = append(items, models.NewsItem{
			Symbol:    symbol,
			Content:   art.Content,
			URL:       link.URL,
			Title:     art.Title,
			Timestamp: ts,
		})
	}

	e.log.Infow("run finished", "symbol", symbol, "pages", pageCount,
		"links", len(links), "items", len(items))

	return items
}

// Collect opens a fetch engine, runs the full extraction for symbol, and
// guarantees the engine is released on every exit path.
func Collect(symbol string, pageCount int, cfg *config.Config, log *zap.SugaredLogger) ([]models.NewsItem, error) {
	e, err := Open(cfg, log)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := e.Close(); err != nil {
			log.Warnw("engine close failed", "error", err)
		}
	}()

	return e.Run(symbol, pageCount), nil
}
