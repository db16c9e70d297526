package parser

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"investing-scraper/models"
)

// ParseNewsLinks extracts article links from a listing page. A card missing
// its link or publish time is skipped rather than failing the page. DOM order
// is preserved and nothing is deduplicated.
func ParseNewsLinks(html, baseURL string) ([]models.NewsLink, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse listing html: %w", err)
	}

	var links []models.NewsLink

	doc.Find("article[data-test='article-item']").Each(func(i int, s *goquery.Selection) {
		href := s.Find("a[data-test='article-title-link']").First().AttrOr("href", "")
		if href == "" {
			return
		}

		timeEl := s.Find("time[data-test='article-publish-date']").First()
		timestamp := timeEl.AttrOr("datetime", "")
		if timestamp == "" {
			timestamp = strings.TrimSpace(timeEl.Text())
		}
		if timestamp == "" {
			return
		}

		links = append(links, models.NewsLink{
			URL:       resolveURL(href, baseURL),
			Timestamp: timestamp,
		})
	})

	return links, nil
}

// resolveURL resolves a possibly relative href against the site base.
func resolveURL(raw, base string) string {
	parsed, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	if parsed.IsAbs() {
		return parsed.String()
	}

	baseURL, err := url.Parse(base)
	if err != nil {
		return raw
	}
	return baseURL.ResolveReference(parsed).String()
}
