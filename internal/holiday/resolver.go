package holiday

import (
	"context"
	"log/slog"
	"time"
)

// Source is the one read operation the external holiday collaborator exposes.
type Source interface {
	FetchHolidays(ctx context.Context, year int) (Set, error)
}

// Resolver returns the set of legal-holiday dates for a year. It prefers the
// remote source and falls back to the deterministic Romanian calendar on any
// failure. Failures are logged and absorbed, never returned to callers.
type Resolver struct {
	source Source
	cache  Cache
	logger *slog.Logger
}

func NewResolver(source Source, cache Cache, logger *slog.Logger) *Resolver {
	if cache == nil {
		cache = NewMemoryCache()
	}
	return &Resolver{
		source: source,
		cache:  cache,
		logger: logger,
	}
}

// HolidayDates resolves the holiday set for a year, caching the result for
// the process lifetime.
func (r *Resolver) HolidayDates(ctx context.Context, year int) Set {
	if cached, ok := r.cache.Get(year); ok {
		return cached
	}

	set, err := r.source.FetchHolidays(ctx, year)
	if err != nil {
		r.logger.Warn("holiday fetch failed, using hardcoded calendar",
			"year", year,
			"error", err)
		set = HardcodedHolidays(year)
	}

	r.cache.Put(year, set)
	return set
}

// HardcodedHolidays returns the deterministic fallback calendar: the fixed
// Romanian legal holidays plus the four Easter-derived ones.
func HardcodedHolidays(year int) Set {
	set := make(Set)

	fixed := [][2]int{
		{1, 1},   // Anul Nou
		{1, 2},   // a doua zi de Anul Nou
		{1, 24},  // Unirea Principatelor Române
		{5, 1},   // Ziua Muncii
		{6, 1},   // Ziua Copilului
		{8, 15},  // Adormirea Maicii Domnului
		{11, 30}, // Sfântul Andrei
		{12, 1},  // Ziua Națională
		{12, 25}, // Crăciunul
		{12, 26}, // a doua zi de Crăciun
	}
	for _, md := range fixed {
		set.Add(time.Date(year, time.Month(md[0]), md[1], 0, 0, 0, 0, time.UTC))
	}

	easter := OrthodoxEaster(year)
	set.Add(easter)
	set.Add(easter.AddDate(0, 0, 1))  // a doua zi de Paște
	set.Add(easter.AddDate(0, 0, 49)) // Rusaliile
	set.Add(easter.AddDate(0, 0, 50)) // a doua zi de Rusalii

	return set
}

// OrthodoxEaster computes Easter Sunday for a year using the Gregorian-Orthodox
// algorithm: the Julian-calendar Meeus formula, shifted 13 days to the Gregorian
// calendar for years after 1900.
func OrthodoxEaster(year int) time.Time {
	a := year % 4
	b := year % 7
	c := year % 19
	d := (19*c + 15) % 30
	e := (2*a + 4*b - d + 34) % 7
	month := (d + e + 114) / 31
	day := (d+e+114)%31 + 1

	julian := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if year > 1900 {
		return julian.AddDate(0, 0, 13)
	}
	return julian
}
