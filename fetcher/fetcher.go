package fetcher

// Navigator is the contract both fetch engines satisfy: load one page and
// return its HTML. The headless browser session in the browser package and
// the plain-HTTP CollyNavigator both implement it.
type Navigator interface {
	Navigate(url string) (string, error)
}
