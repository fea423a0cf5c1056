package scraper

import "fmt"

// The error taxonomy surfaced to callers. Each failure is classified at the
// point where it happens, never by re-parsing message text afterwards.

// ConnectivityError means the target site could not be reached before any
// browser automation started. Timeout distinguishes "timed out" from
// "connection refused/unreachable" in the operator-facing message.
type ConnectivityError struct {
	URL     string
	Timeout bool
	Err     error
}

func (e *ConnectivityError) Error() string {
	if e.Timeout {
		return fmt.Sprintf("connection to %s timed out; the site may be slow or unavailable", e.URL)
	}
	return fmt.Sprintf("cannot connect to %s; check your internet connection", e.URL)
}

func (e *ConnectivityError) Unwrap() error { return e.Err }

// BrowserLaunchError means the browser (or its binary) could not be started.
// ArchMismatch marks the executable-format variant so the caller can show a
// remediation hint instead of a generic launch failure.
type BrowserLaunchError struct {
	ArchMismatch bool
	Err          error
}

func (e *BrowserLaunchError) Error() string {
	if e.ArchMismatch {
		return "browser binary architecture mismatch; reinstall a build matching the host architecture"
	}
	return "failed to launch browser; ensure the browser is installed and the configured binary path is correct"
}

func (e *BrowserLaunchError) Unwrap() error { return e.Err }

// PageTimeoutError means the calendar page did not finish loading within the
// configured scrape timeout.
type PageTimeoutError struct {
	URL string
	Err error
}

func (e *PageTimeoutError) Error() string {
	return fmt.Sprintf("website timeout: %s is not responding, try again later", e.URL)
}

func (e *PageTimeoutError) Unwrap() error { return e.Err }

// ExtractionError wraps an unexpected failure during the extraction pass.
// It always carries the underlying cause.
type ExtractionError struct {
	Err error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction failed: %v", e.Err)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

// PipelineError is the catch-all wrapper for failures that fit none of the
// specific kinds. Nothing is swallowed: Stage names where it happened.
type PipelineError struct {
	Stage string
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("scrape pipeline failed at %s: %v", e.Stage, e.Err)
}

func (e *PipelineError) Unwrap() error { return e.Err }
