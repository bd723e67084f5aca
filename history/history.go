// Package history keeps the session-scoped log of advisory interactions.
// The log is append-only and lives only for the lifetime of the process;
// persistence is an external concern.
package history

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/greencure/greencure-cli/advisory"
)

// Entry is one logged interaction: the request, the model's output, and
// when it happened. Immutable once appended.
type Entry struct {
	ID        string
	Kind      advisory.Kind
	Request   advisory.Request
	Response  string
	Timestamp time.Time
}

// Query selects entries by kind and inclusive time range. Zero values
// leave the corresponding filter open.
type Query struct {
	Kind advisory.Kind
	From time.Time
	To   time.Time
}

// Matches reports whether e passes every set filter.
func (q Query) Matches(e Entry) bool {
	if q.Kind != "" && e.Kind != q.Kind {
		return false
	}
	if !q.From.IsZero() && e.Timestamp.Before(q.From) {
		return false
	}
	if !q.To.IsZero() && e.Timestamp.After(q.To) {
		return false
	}
	return true
}

// Log is an in-memory, append-only record of advisory interactions.
// Safe for concurrent use; queries see a consistent snapshot.
type Log struct {
	mu      sync.RWMutex
	entries []Entry
}

// NewLog creates an empty session log.
func NewLog() *Log {
	return &Log{}
}

// NewEntry stamps an entry with a fresh ID and the current time,
// cloning the request so later caller mutations cannot reach the log.
func NewEntry(kind advisory.Kind, req advisory.Request, response string) Entry {
	return Entry{
		ID:        uuid.NewString(),
		Kind:      kind,
		Request:   req.Clone(),
		Response:  response,
		Timestamp: time.Now(),
	}
}

// Append adds an entry to the log. O(1) amortized.
func (l *Log) Append(e Entry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, e)
}

// Query returns the matching entries sorted by timestamp ascending.
// The result is a copy: appends racing with the query never corrupt it.
func (l *Log) Query(q Query) []Entry {
	l.mu.RLock()
	matched := make([]Entry, 0, len(l.entries))
	for _, e := range l.entries {
		if q.Matches(e) {
			matched = append(matched, e)
		}
	}
	l.mu.RUnlock()

	// Appends arrive in time order, but entries built with explicit
	// timestamps may not; stable sort keeps insertion order for ties.
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Timestamp.Before(matched[j].Timestamp)
	})
	return matched
}

// Len returns the number of logged entries.
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}
