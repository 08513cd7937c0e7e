// Package interaction merges timestamped interaction logs into a single
// latest-timestamp-per-identifier index.
package interaction

import (
	"sort"

	"github.com/example/dormant/internal/core/identifier"
)

// Record is one interaction read from a log source.
// Timestamp is epoch milliseconds; Missing marks an unavailable timestamp.
type Record struct {
	Identifier string
	Timestamp  int64
	Missing    bool
}

// Index maps normalized identifiers to their most recent interaction.
// It is immutable once returned from Merge.
type Index struct {
	latest map[string]int64
}

// Lookup returns the latest timestamp for an already-normalized identifier.
func (ix Index) Lookup(key string) (int64, bool) {
	ts, ok := ix.latest[key]
	return ts, ok
}

// Len returns the number of distinct identifiers in the index.
func (ix Index) Len() int {
	return len(ix.latest)
}

// Identifiers returns the indexed identifiers in ascending order.
func (ix Index) Identifiers() []string {
	keys := make([]string, 0, len(ix.latest))
	for k := range ix.latest {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// MergeStats describes what a merge consumed.
type MergeStats struct {
	Records     int // records examined across all sources
	Skipped     int // dropped for an invalid identifier or missing timestamp
	Identifiers int // distinct identifiers in the result
}

// Merge reduces all sources into one Index keeping the maximum timestamp per
// identifier. Source order and record order do not affect the result.
func Merge(sources ...[]Record) Index {
	ix, _ := MergeWithStats(sources...)
	return ix
}

// MergeWithStats is Merge plus counters for logging.
func MergeWithStats(sources ...[]Record) (Index, MergeStats) {
	var stats MergeStats
	latest := make(map[string]int64)

	for _, src := range sources {
		for _, rec := range src {
			stats.Records++
			if rec.Missing {
				stats.Skipped++
				continue
			}
			key, ok := identifier.Normalize(rec.Identifier)
			if !ok {
				stats.Skipped++
				continue
			}
			if cur, seen := latest[key]; !seen || rec.Timestamp > cur {
				latest[key] = rec.Timestamp
			}
		}
	}

	stats.Identifiers = len(latest)
	return Index{latest: latest}, stats
}

// NewIndex builds an Index directly from normalized keys. Intended for tests
// and callers that already hold a reduced map; the map is copied.
func NewIndex(entries map[string]int64) Index {
	latest := make(map[string]int64, len(entries))
	for k, v := range entries {
		if k == "" {
			continue
		}
		latest[k] = v
	}
	return Index{latest: latest}
}
