// Package advisor ties the prompt builder, inference client, and session
// log into the operations the presentation layer calls.
package advisor

import (
	"context"

	"github.com/greencure/greencure-cli/advisory"
	"github.com/greencure/greencure-cli/common"
	"github.com/greencure/greencure-cli/history"
	"github.com/greencure/greencure-cli/llm"
	"github.com/greencure/greencure-cli/logger"
	"github.com/greencure/greencure-cli/prompt"
	"github.com/greencure/greencure-cli/report"
)

// Advisor owns one session: an injected inference client and the log of
// completed advisories. Each user session gets its own instance.
type Advisor struct {
	client   llm.LLM
	log      *history.Log
	settings common.Settings
}

// New creates an advisor over the given client and session log.
func New(client llm.LLM, log *history.Log, settings common.Settings) *Advisor {
	return &Advisor{
		client:   client,
		log:      log,
		settings: settings,
	}
}

// Advise validates the request, builds the prompt, calls the model, and on
// success appends the interaction to the session log. Nothing is appended
// when the call fails or times out, so the log never holds partial entries.
func (a *Advisor) Advise(ctx context.Context, kind advisory.Kind, req advisory.Request) (string, error) {
	userPrompt, err := prompt.Build(kind, req)
	if err != nil {
		return "", err
	}

	resp := a.client.Prompt(ctx, llm.Request{
		SystemPrompt: prompt.GetSystemPrompt(a.settings),
		UserPrompt:   userPrompt,
	})
	if resp.Error != nil {
		return "", resp.Error
	}

	a.log.Append(history.NewEntry(kind, req, resp.Content))
	logger.Debugf("Logged %s advisory, %d tokens used", kind, resp.Usage.TotalTokens)

	return resp.Content, nil
}

// Report aggregates logged advisories matching the query and renders them
// in the requested format. Returns *report.EmptyReportError when the query
// matches nothing.
func (a *Advisor) Report(q history.Query, format string) (string, error) {
	renderer, err := report.NewRenderer(format)
	if err != nil {
		return "", err
	}

	doc, err := report.Generate(a.log, q, a.settings)
	if err != nil {
		return "", err
	}

	return renderer.Render(doc)
}

// Log exposes the session log, mainly so callers can report on its size.
func (a *Advisor) Log() *history.Log {
	return a.log
}
