package parser

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"investing-scraper/models"
)

// bodyContainers are tried in order when looking for the article text.
var bodyContainers = []string{"div#article", "div.articlePage", "article"}

// ParseArticle extracts title, body text and publication time from an article
// page. Extraction is best-effort: an element the page does not expose leaves
// the corresponding field at its zero value.
func ParseArticle(html string) models.ArticleContent {
	var art models.ArticleContent

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return art
	}

	art.Title = extractTitle(doc)
	art.Content = extractBody(doc)
	art.Timestamp = extractTimestamp(doc)

	return art
}

func extractTitle(doc *goquery.Document) string {
	if t := strings.TrimSpace(doc.Find("h1#articleTitle").First().Text()); t != "" {
		return t
	}
	if t := strings.TrimSpace(doc.Find("h1").First().Text()); t != "" {
		return t
	}
	return strings.TrimSpace(doc.Find("meta[property='og:title']").First().AttrOr("content", ""))
}

// extractBody concatenates the paragraph text of the first matching body
// container, in document order.
func extractBody(doc *goquery.Document) string {
	for _, sel := range bodyContainers {
		container := doc.Find(sel).First()
		if container.Length() == 0 {
			continue
		}

		var paragraphs []string
		container.Find("p").Each(func(i int, p *goquery.Selection) {
			if text := strings.TrimSpace(p.Text()); text != "" {
				paragraphs = append(paragraphs, text)
			}
		})
		if len(paragraphs) > 0 {
			return strings.Join(paragraphs, "\n")
		}
	}
	return ""
}

// extractTimestamp prefers machine-readable attributes over display text.
func extractTimestamp(doc *goquery.Document) int64 {
	attrSelectors := []string{
		"time[data-test='article-publish-date']",
		"time[datetime]",
		"meta[property='article:published_time']",
	}
	for _, sel := range attrSelectors {
		el := doc.Find(sel).First()
		if el.Length() == 0 {
			continue
		}
		raw := el.AttrOr("datetime", "")
		if raw == "" {
			raw = el.AttrOr("content", "")
		}
		if ts := ParseTimestamp(raw); ts > 0 {
			return ts
		}
	}

	for _, sel := range []string{"time", "div.contentSectionDetails span", "span.date"} {
		if raw := strings.TrimSpace(doc.Find(sel).First().Text()); raw != "" {
			if ts := ParseTimestamp(raw); ts > 0 {
				return ts
			}
		}
	}

	return 0
}
