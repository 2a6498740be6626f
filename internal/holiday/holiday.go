package holiday

import "time"

// DateLayout is the normalized date-string form used across the service.
const DateLayout = "2006-01-02"

// Set holds legal-holiday dates keyed by their normalized date string.
type Set map[string]struct{}

func (s Set) Add(t time.Time) {
	s[t.Format(DateLayout)] = struct{}{}
}

func (s Set) Has(t time.Time) bool {
	_, ok := s[t.Format(DateLayout)]
	return ok
}

func (s Set) Merge(other Set) {
	for k := range other {
		s[k] = struct{}{}
	}
}

// Cache stores resolved holiday sets per year. Holiday sets for a fixed year
// never change, so entries are never invalidated.
type Cache interface {
	Get(year int) (Set, bool)
	Put(year int, set Set)
}
