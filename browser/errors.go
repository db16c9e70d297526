package browser

import "fmt"

// SessionError means the browser process could not be started or reached.
// It is fatal to a whole run.
type SessionError struct {
	Err error
}

func (e *SessionError) Error() string { return fmt.Sprintf("browser session: %v", e.Err) }

func (e *SessionError) Unwrap() error { return e.Err }

// NavigationError means one specific page failed to load. The caller decides
// whether to skip that page or abort.
type NavigationError struct {
	URL string
	Err error
}

func (e *NavigationError) Error() string { return fmt.Sprintf("navigate %s: %v", e.URL, e.Err) }

func (e *NavigationError) Unwrap() error { return e.Err }
