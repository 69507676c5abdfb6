package ecs

import "slices"

// StorageStats is a point-in-time summary of a Storage.
type StorageStats struct {
	TotalEntityCount    int
	TotalComponentCount int
	KindCount           int
	KindBreakdown       []KindStats
}

// KindStats counts the entities holding one component kind.
type KindStats struct {
	Kind        ComponentKind
	Name        string
	EntityCount int
}

// CollectStats walks every bag and counts components per kind. The breakdown
// is sorted by type name.
func (s *Storage) CollectStats() StorageStats {
	stats := StorageStats{
		TotalEntityCount: len(s.ids),
	}

	counts := make(map[ComponentKind]int)
	for _, bag := range s.bags.All() {
		for kind := range bag.items.Keys() {
			counts[kind]++
			stats.TotalComponentCount++
		}
	}

	found := make([]ComponentKind, 0, len(counts))
	for kind := range counts {
		found = append(found, kind)
	}
	sortKinds(found)

	stats.KindCount = len(found)
	stats.KindBreakdown = make([]KindStats, 0, len(found))
	for _, kind := range found {
		stats.KindBreakdown = append(stats.KindBreakdown, KindStats{
			Kind:        kind,
			Name:        kind.String(),
			EntityCount: counts[kind],
		})
	}

	return stats
}

// Busiest returns up to n kinds with the highest entity counts. A negative n
// returns none.
func (st StorageStats) Busiest(n int) []KindStats {
	out := slices.Clone(st.KindBreakdown)
	slices.SortStableFunc(out, func(a, b KindStats) int {
		return b.EntityCount - a.EntityCount
	})
	if n = max(n, 0); n < len(out) {
		out = out[:n]
	}
	return out
}
