package models

// NewsLink points at a single article discovered on a listing page
type NewsLink struct {
	URL       string // absolute article URL
	Timestamp string // raw publication time text from the listing page
}

// ArticleContent is the best-effort extraction result for one article page.
// Fields the page did not expose are left at their zero value.
type ArticleContent struct {
	Title     string
	Content   string
	Timestamp int64 // publication time in epoch milliseconds, 0 when unavailable
}

// NewsItem joins a discovered link with the content extracted from it
type NewsItem struct {
	Symbol    string // currency pair the link was collected for, e.g. "eur-usd"
	Content   string
	URL       string
	Title     string
	Timestamp int64 // epoch milliseconds
}
