package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"investing-scraper/config"
	"investing-scraper/extractor"
	"investing-scraper/models"
)

func main() {
	symbol := flag.String("symbol", "", "currency pair symbol, e.g. eur-usd")
	pages := flag.Int("pages", 0, "number of listing pages to scan (default from config)")
	configPath := flag.String("config", "config.yaml", "path to configuration file")
	articleURL := flag.String("url", "", "extract a single article URL instead of running a collection")
	linksOnly := flag.Bool("links-only", false, "collect article links without extracting content")
	flag.Parse()

	cfg := loadConfig(*configPath)
	log := newLogger(cfg.LogFile)
	defer log.Sync()

	if *pages <= 0 {
		*pages = cfg.DefaultPages
	}

	switch {
	case *articleURL != "":
		runExtractURL(*articleURL, cfg, log)
	case *symbol == "":
		fmt.Fprintln(os.Stderr, "either -symbol or -url is required")
		flag.Usage()
		os.Exit(2)
	case *linksOnly:
		runLinksOnly(*symbol, *pages, cfg, log)
	default:
		items, err := extractor.Collect(*symbol, *pages, cfg, log)
		if err != nil {
			log.Fatalw("collection failed", "symbol", *symbol, "error", err)
		}
		printItems(items)
	}
}

// runExtractURL fetches and prints a single article.
func runExtractURL(url string, cfg *config.Config, log *zap.SugaredLogger) {
	e, err := extractor.Open(cfg, log)
	if err != nil {
		log.Fatalw("engine start failed", "error", err)
	}
	defer closeExtractor(e, log)

	art, err := e.ExtractContent(url)
	if err != nil {
		log.Fatalw("article extraction failed", "url", url, "error", err)
	}

	fmt.Printf("Title: %s\n", orNA(art.Title))
	fmt.Printf("Published: %s\n", formatTimestamp(art.Timestamp))
	fmt.Println("---")
	fmt.Println(art.Content)
}

// runLinksOnly prints discovered links without visiting the articles.
func runLinksOnly(symbol string, pages int, cfg *config.Config, log *zap.SugaredLogger) {
	e, err := extractor.Open(cfg, log)
	if err != nil {
		log.Fatalw("engine start failed", "error", err)
	}
	defer closeExtractor(e, log)

	links := e.GetNewsLinks(symbol, pages)
	fmt.Printf("Found %d links for %s\n", len(links), symbol)
	for i, link := range links {
		fmt.Printf("%d. %s (%s)\n", i+1, link.URL, link.Timestamp)
	}
}

func printItems(items []models.NewsItem) {
	fmt.Printf("Collected %d articles\n", len(items))
	for i, item := range items {
		fmt.Printf("\n%d. %s\n", i+1, orNA(item.Title))
		fmt.Printf("   Link: %s\n", item.URL)
		fmt.Printf("   Published: %s\n", formatTimestamp(item.Timestamp))
		if item.Content != "" {
			fmt.Printf("   %s\n", snippet(item.Content, 200))
		}
	}
}

func closeExtractor(e *extractor.Extractor, log *zap.SugaredLogger) {
	if err := e.Close(); err != nil {
		log.Warnw("engine close failed", "error", err)
	}
}

// loadConfig loads configuration from file or returns defaults.
func loadConfig(path string) *config.Config {
	if _, err := os.Stat(path); err != nil {
		return config.Default()
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config %s: %v, using defaults\n", path, err)
		return config.Default()
	}
	return cfg
}

// newLogger builds the process logger, teeing to logFile when configured.
func newLogger(logFile string) *zap.SugaredLogger {
	zapCfg := zap.NewProductionConfig()
	zapCfg.OutputPaths = []string{"stderr"}
	if logFile != "" {
		zapCfg.OutputPaths = append(zapCfg.OutputPaths, logFile)
	}

	logger, err := zapCfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	return logger.Sugar()
}

func orNA(s string) string {
	if s == "" {
		return "(not available)"
	}
	return s
}

func formatTimestamp(ms int64) string {
	if ms == 0 {
		return "(not available)"
	}
	return time.UnixMilli(ms).UTC().Format(time.RFC3339)
}

func snippet(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
