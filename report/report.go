// Package report aggregates logged advisories into a single document.
package report

import (
	"fmt"
	"time"

	"github.com/greencure/greencure-cli/common"
	"github.com/greencure/greencure-cli/history"
)

// EmptyReportError signals that no logged entries matched the query.
// Non-fatal: the caller decides whether to show an empty report or a note.
type EmptyReportError struct {
	Query history.Query
}

func (e *EmptyReportError) Error() string {
	return "no advisory entries match the report query"
}

// Section is one advisory rendered into the report.
type Section struct {
	Title     string            `json:"title"`
	Kind      string            `json:"kind"`
	Timestamp time.Time         `json:"timestamp"`
	Fields    map[string]string `json:"fields"`
	Body      string            `json:"body"`
}

// Document is the aggregated report: a fixed header followed by one
// section per matching entry in chronological order.
type Document struct {
	Title       string    `json:"title"`
	GeneratedAt time.Time `json:"generated_at"`
	Kind        string    `json:"kind_filter,omitempty"`
	From        string    `json:"from,omitempty"`
	To          string    `json:"to,omitempty"`
	Sections    []Section `json:"sections"`
}

// Generate queries the log and assembles the report document.
// Returns *EmptyReportError when nothing matches.
func Generate(log *history.Log, q history.Query, settings common.Settings) (Document, error) {
	entries := log.Query(q)
	if len(entries) == 0 {
		return Document{}, &EmptyReportError{Query: q}
	}

	doc := Document{
		Title:       settings.Report.Title,
		GeneratedAt: time.Now(),
		Kind:        string(q.Kind),
	}
	if !q.From.IsZero() {
		doc.From = q.From.Format(time.RFC3339)
	}
	if !q.To.IsZero() {
		doc.To = q.To.Format(time.RFC3339)
	}

	for _, e := range entries {
		doc.Sections = append(doc.Sections, Section{
			Title:     fmt.Sprintf("%s (%s)", e.Kind.Title(), e.Timestamp.Format("2006-01-02 15:04:05")),
			Kind:      string(e.Kind),
			Timestamp: e.Timestamp,
			Fields:    e.Request,
			Body:      e.Response,
		})
	}

	return doc, nil
}
