package advisor

import (
	"context"
	"errors"
	"testing"

	"github.com/greencure/greencure-cli/advisory"
	"github.com/greencure/greencure-cli/common"
	"github.com/greencure/greencure-cli/history"
	"github.com/greencure/greencure-cli/llm"
	"github.com/greencure/greencure-cli/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLLM records the last request and plays back a canned response.
type fakeLLM struct {
	lastRequest llm.Request
	calls       int
	response    llm.Response
}

func (f *fakeLLM) Prompt(ctx context.Context, req llm.Request) llm.Response {
	f.lastRequest = req
	f.calls++
	return f.response
}

func soilRequest() advisory.Request {
	return advisory.Request{
		advisory.FieldPH:            "5.0",
		advisory.FieldOrganicMatter: "low",
		advisory.FieldDrainage:      "poor",
		advisory.FieldRegion:        "Nashik",
	}
}

func newTestAdvisor(response llm.Response) (*Advisor, *fakeLLM) {
	fake := &fakeLLM{response: response}
	return New(fake, history.NewLog(), common.WithDefaultSettings()), fake
}

func TestAdviseLogsSuccessfulCall(t *testing.T) {
	adv, fake := newTestAdvisor(llm.Response{Content: "Apply lime and compost"})

	answer, err := adv.Advise(context.Background(), advisory.KindSoilAnalysis, soilRequest())
	require.NoError(t, err)
	assert.Equal(t, "Apply lime and compost", answer)

	// The prompt reflects the stated soil conditions
	assert.Contains(t, fake.lastRequest.UserPrompt, "acidic")
	assert.Contains(t, fake.lastRequest.UserPrompt, "low")
	assert.Contains(t, fake.lastRequest.UserPrompt, "poor")
	assert.Contains(t, fake.lastRequest.SystemPrompt, "GreenCure")

	entries := adv.Log().Query(history.Query{})
	require.Len(t, entries, 1)
	assert.Equal(t, advisory.KindSoilAnalysis, entries[0].Kind)
	assert.Equal(t, "Apply lime and compost", entries[0].Response)
}

func TestAdviseValidationFailureSkipsModel(t *testing.T) {
	adv, fake := newTestAdvisor(llm.Response{Content: "unused"})

	req := soilRequest()
	delete(req, advisory.FieldPH)

	_, err := adv.Advise(context.Background(), advisory.KindSoilAnalysis, req)
	var validationErr *advisory.ValidationError
	require.True(t, errors.As(err, &validationErr))

	assert.Equal(t, 0, fake.calls)
	assert.Equal(t, 0, adv.Log().Len())
}

func TestAdviseTransientFailureAppendsNothing(t *testing.T) {
	adv, _ := newTestAdvisor(llm.Response{
		Error: &llm.TransientError{Err: errors.New("timeout")},
	})

	_, err := adv.Advise(context.Background(), advisory.KindSoilAnalysis, soilRequest())
	var transientErr *llm.TransientError
	require.True(t, errors.As(err, &transientErr))

	assert.Equal(t, 0, adv.Log().Len())
}

func TestReportOverSession(t *testing.T) {
	adv, _ := newTestAdvisor(llm.Response{Content: "advice"})

	_, err := adv.Advise(context.Background(), advisory.KindSoilAnalysis, soilRequest())
	require.NoError(t, err)
	_, err = adv.Advise(context.Background(), advisory.KindMarketAnalysis, advisory.Request{
		advisory.FieldCrop:     "onion",
		advisory.FieldLocation: "Lasalgaon",
		advisory.FieldQuantity: "10 quintals",
	})
	require.NoError(t, err)

	out, err := adv.Report(history.Query{}, report.FormatText)
	require.NoError(t, err)
	assert.Contains(t, out, "Soil Analysis")
	assert.Contains(t, out, "Market Analysis")
	assert.Contains(t, out, "Entries: 2")

	// Kind filter narrows the report
	out, err = adv.Report(history.Query{Kind: advisory.KindSoilAnalysis}, report.FormatText)
	require.NoError(t, err)
	assert.Contains(t, out, "Entries: 1")
	assert.NotContains(t, out, "Market Analysis")
}

func TestReportEmptySession(t *testing.T) {
	adv, _ := newTestAdvisor(llm.Response{Content: "advice"})

	_, err := adv.Report(history.Query{}, report.FormatText)
	var emptyErr *report.EmptyReportError
	require.True(t, errors.As(err, &emptyErr))
}

func TestReportUnknownFormat(t *testing.T) {
	adv, _ := newTestAdvisor(llm.Response{Content: "advice"})

	_, err := adv.Report(history.Query{}, "pdf")
	assert.Error(t, err)
}
