package geo

import "sync"

// Trace collects the upstream request URLs issued while serving a query,
// surfaced to callers through the debug flag. A nil *Trace is valid and
// records nothing. Safe for concurrent use; summary endpoints share one
// trace across their per-layer goroutines.
type Trace struct {
	mu       sync.Mutex
	requests []string
}

// Record appends a request URL to the trace.
func (t *Trace) Record(url string) {
	if t == nil {
		return
	}
	t.mu.Lock()
	t.requests = append(t.requests, url)
	t.mu.Unlock()
}

// Requests returns a copy of the recorded URLs in issue order.
func (t *Trace) Requests() []string {
	if t == nil {
		return nil
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string(nil), t.requests...)
}

// DebugInfo is the wire form of a trace, attached to responses when the
// caller asked for debug output.
type DebugInfo struct {
	Queries []string `json:"queries"`
}

// Debug renders the trace for a response body, or nil when no trace was
// collected.
func (t *Trace) Debug() *DebugInfo {
	if t == nil {
		return nil
	}
	return &DebugInfo{Queries: t.Requests()}
}
