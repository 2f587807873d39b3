package list

// DerivedStats aggregates counts over the full collection, not the filtered
// view. Total always equals the collection length and the per-status counts
// sum to it.
type DerivedStats struct {
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"by_status,omitempty"`
}

func (c *Controller[T]) recomputeStatsLocked() {
	stats := DerivedStats{Total: len(c.records)}
	if c.schema.Status != nil {
		stats.ByStatus = make(map[string]int, 4)
		for _, record := range c.records {
			stats.ByStatus[c.schema.Status(record)]++
		}
	}
	c.stats = stats
}

// Stats returns the aggregates derived from the current collection.
func (c *Controller[T]) Stats() DerivedStats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := DerivedStats{Total: c.stats.Total}
	if c.stats.ByStatus != nil {
		out.ByStatus = make(map[string]int, len(c.stats.ByStatus))
		for status, count := range c.stats.ByStatus {
			out.ByStatus[status] = count
		}
	}
	return out
}
