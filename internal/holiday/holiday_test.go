package holiday_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gradinita/leave-management/internal/holiday"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestOrthodoxEaster(t *testing.T) {
	tests := []struct {
		year int
		want time.Time
	}{
		{2016, date(2016, time.May, 1)},
		{2024, date(2024, time.May, 5)},
		{2025, date(2025, time.April, 20)},
		{2026, date(2026, time.April, 12)},
	}

	for _, tt := range tests {
		got := holiday.OrthodoxEaster(tt.year)
		assert.Equal(t, tt.want, got, "easter %d", tt.year)
	}
}

func TestHardcodedHolidays(t *testing.T) {
	set := holiday.HardcodedHolidays(2025)

	fixed := []time.Time{
		date(2025, time.January, 1),
		date(2025, time.January, 2),
		date(2025, time.January, 24),
		date(2025, time.May, 1),
		date(2025, time.June, 1),
		date(2025, time.August, 15),
		date(2025, time.November, 30),
		date(2025, time.December, 1),
		date(2025, time.December, 25),
		date(2025, time.December, 26),
	}
	for _, d := range fixed {
		assert.True(t, set.Has(d), "expected %s in the fixed calendar", d.Format(holiday.DateLayout))
	}

	// Easter Sunday 2025-04-20 and the three derived holidays.
	assert.True(t, set.Has(date(2025, time.April, 20)))
	assert.True(t, set.Has(date(2025, time.April, 21)))
	assert.True(t, set.Has(date(2025, time.June, 8)))
	assert.True(t, set.Has(date(2025, time.June, 9)))

	assert.Len(t, set, 14)

	assert.False(t, set.Has(date(2025, time.July, 14)))
}

func TestSetMerge(t *testing.T) {
	a := make(holiday.Set)
	a.Add(date(2025, time.January, 1))

	b := make(holiday.Set)
	b.Add(date(2026, time.January, 1))
	b.Add(date(2025, time.January, 1))

	a.Merge(b)

	assert.Len(t, a, 2)
	assert.True(t, a.Has(date(2026, time.January, 1)))
}

type stubSource struct {
	set   holiday.Set
	err   error
	calls int
}

func (s *stubSource) FetchHolidays(ctx context.Context, year int) (holiday.Set, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.set, nil
}

func TestResolverFallsBackOnFetchFailure(t *testing.T) {
	source := &stubSource{err: errors.New("boom")}
	r := holiday.NewResolver(source, holiday.NewMemoryCache(), discardLogger())

	set := r.HolidayDates(context.Background(), 2025)

	assert.Len(t, set, 14)
	assert.True(t, set.Has(date(2025, time.December, 25)))
}

func TestResolverPrefersRemoteSource(t *testing.T) {
	remote := make(holiday.Set)
	remote.Add(date(2025, time.March, 3))

	source := &stubSource{set: remote}
	r := holiday.NewResolver(source, holiday.NewMemoryCache(), discardLogger())

	set := r.HolidayDates(context.Background(), 2025)

	assert.True(t, set.Has(date(2025, time.March, 3)))
	assert.False(t, set.Has(date(2025, time.December, 25)))
}

func TestResolverCachesPerYear(t *testing.T) {
	source := &stubSource{err: errors.New("down")}
	r := holiday.NewResolver(source, holiday.NewMemoryCache(), discardLogger())

	ctx := context.Background()
	r.HolidayDates(ctx, 2025)
	r.HolidayDates(ctx, 2025)
	r.HolidayDates(ctx, 2024)

	assert.Equal(t, 2, source.calls, "one fetch per distinct year")
}

func TestClientFetchHolidays(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2025", r.URL.Query().Get("year"))
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[
			{"holidayName": "Anul Nou", "dates": ["2025-01-01", "2025-01-02"]},
			{"holidayName": "Paștele", "dates": ["2025-04-20", "not-a-date"]}
		]`)
	}))
	defer srv.Close()

	client := holiday.NewClient(holiday.ClientConfig{APIURL: srv.URL}, discardLogger())

	set, err := client.FetchHolidays(context.Background(), 2025)
	require.NoError(t, err)

	assert.Len(t, set, 3)
	assert.True(t, set.Has(date(2025, time.January, 1)))
	assert.True(t, set.Has(date(2025, time.April, 20)))
}

func TestClientErrors(t *testing.T) {
	t.Run("unconfigured", func(t *testing.T) {
		client := holiday.NewClient(holiday.ClientConfig{}, discardLogger())
		_, err := client.FetchHolidays(context.Background(), 2025)
		assert.Error(t, err)
	})

	t.Run("server error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		client := holiday.NewClient(holiday.ClientConfig{APIURL: srv.URL}, discardLogger())
		_, err := client.FetchHolidays(context.Background(), 2025)
		assert.Error(t, err)
	})

	t.Run("empty response", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			io.WriteString(w, `[]`)
		}))
		defer srv.Close()

		client := holiday.NewClient(holiday.ClientConfig{APIURL: srv.URL}, discardLogger())
		_, err := client.FetchHolidays(context.Background(), 2025)
		assert.Error(t, err)
	})
}
