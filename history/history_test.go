package history

import (
	"sync"
	"testing"
	"time"

	"github.com/greencure/greencure-cli/advisory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entryAt(kind advisory.Kind, ts time.Time) Entry {
	e := NewEntry(kind, advisory.Request{"region": "Nashik"}, "advice")
	e.Timestamp = ts
	return e
}

func TestQueryReturnsAllInTimestampOrder(t *testing.T) {
	log := NewLog()
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	// Appended out of timestamp order on purpose
	log.Append(entryAt(advisory.KindSoilAnalysis, base.Add(2*time.Hour)))
	log.Append(entryAt(advisory.KindDiseaseDiagnosis, base))
	log.Append(entryAt(advisory.KindMarketAnalysis, base.Add(time.Hour)))

	entries := log.Query(Query{})
	require.Len(t, entries, 3)
	for i := 1; i < len(entries); i++ {
		assert.False(t, entries[i].Timestamp.Before(entries[i-1].Timestamp))
	}
}

func TestQueryKindFilter(t *testing.T) {
	log := NewLog()
	log.Append(NewEntry(advisory.KindSoilAnalysis, advisory.Request{}, "a"))
	log.Append(NewEntry(advisory.KindDiseaseDiagnosis, advisory.Request{}, "b"))
	log.Append(NewEntry(advisory.KindSoilAnalysis, advisory.Request{}, "c"))

	entries := log.Query(Query{Kind: advisory.KindSoilAnalysis})
	require.Len(t, entries, 2)
	for _, e := range entries {
		assert.Equal(t, advisory.KindSoilAnalysis, e.Kind)
	}
}

func TestQueryDateRangeIsInclusive(t *testing.T) {
	log := NewLog()
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	log.Append(entryAt(advisory.KindSoilAnalysis, base.Add(-time.Second)))
	log.Append(entryAt(advisory.KindSoilAnalysis, base))
	log.Append(entryAt(advisory.KindSoilAnalysis, base.Add(time.Hour)))
	log.Append(entryAt(advisory.KindSoilAnalysis, base.Add(time.Hour).Add(time.Second)))

	entries := log.Query(Query{From: base, To: base.Add(time.Hour)})
	require.Len(t, entries, 2)
	assert.Equal(t, base, entries[0].Timestamp)
	assert.Equal(t, base.Add(time.Hour), entries[1].Timestamp)
}

func TestQueryIsIdempotent(t *testing.T) {
	log := NewLog()
	for i := 0; i < 5; i++ {
		log.Append(NewEntry(advisory.KindWeatherAdvisory, advisory.Request{}, "w"))
	}

	q := Query{Kind: advisory.KindWeatherAdvisory}
	first := log.Query(q)
	second := log.Query(q)
	assert.Equal(t, first, second)
}

func TestQueryResultIsASnapshot(t *testing.T) {
	log := NewLog()
	log.Append(NewEntry(advisory.KindSoilAnalysis, advisory.Request{}, "a"))

	entries := log.Query(Query{})
	log.Append(NewEntry(advisory.KindSoilAnalysis, advisory.Request{}, "b"))

	// The earlier result must not grow or change
	require.Len(t, entries, 1)
	assert.Equal(t, "a", entries[0].Response)
}

func TestConcurrentAppendsAndQueries(t *testing.T) {
	log := NewLog()
	const writers = 8
	const perWriter = 50

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				log.Append(NewEntry(advisory.KindMarketAnalysis, advisory.Request{}, "m"))
				log.Query(Query{Kind: advisory.KindMarketAnalysis})
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, writers*perWriter, log.Len())
}

func TestNewEntryClonesRequest(t *testing.T) {
	req := advisory.Request{"region": "Nashik"}
	e := NewEntry(advisory.KindSoilAnalysis, req, "advice")
	req["region"] = "Pune"

	assert.Equal(t, "Nashik", e.Request["region"])
	assert.NotEmpty(t, e.ID)
	assert.False(t, e.Timestamp.IsZero())
}
