package fundchat

import "fmt"

// LoadError reports that a source table was missing or could not be parsed.
// It is fatal: without both tables there is nothing to answer questions
// about.
type LoadError struct {
	Source string // path of the offending table
	Err    error
}

func (e *LoadError) Error() string { return fmt.Sprintf("loading table %q: %v", e.Source, e.Err) }

func (e *LoadError) Unwrap() error { return e.Err }

// ConfigError reports that the completion backend is not usable as
// configured, typically because no API credential was supplied. The absence
// of a credential is a valid configuration; this error only surfaces when an
// answer is actually requested.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string { return e.Reason }

// UpstreamError reports a failed completion-backend call. The original
// failure is preserved verbatim so the caller can diagnose without
// re-running.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string { return fmt.Sprintf("completion backend: %v", e.Err) }

func (e *UpstreamError) Unwrap() error { return e.Err }

// QueryError reports malformed question text, such as a blank question.
type QueryError struct {
	Reason string
}

func (e *QueryError) Error() string { return e.Reason }
