package merge

// GroupStats summarizes one output group.
type GroupStats struct {
	Group    string `json:"group"`
	Channels int    `json:"channels"`
	URLs     int    `json:"urls"`
}

// Stats summarizes the merged state.
type Stats struct {
	Groups      int          `json:"groups"`
	EmptyGroups int          `json:"empty_groups"`
	Channels    int          `json:"channels"`
	URLs        int          `json:"urls"`
	Reassigned  int          `json:"reassigned"`
	PerGroup    []GroupStats `json:"per_group"`
}

// Stats reports counts per group in output order.
func (e *Engine) Stats() Stats {
	stats := Stats{
		Groups:     len(e.groupOrder),
		Channels:   len(e.channels),
		Reassigned: e.reassigned,
		PerGroup:   make([]GroupStats, 0, len(e.groupOrder)),
	}
	for _, group := range e.groupOrder {
		gs := GroupStats{Group: group, Channels: len(e.groups[group])}
		for _, key := range e.groups[group] {
			gs.URLs += e.channels[key].URLCount()
		}
		if gs.Channels == 0 {
			stats.EmptyGroups++
		}
		stats.URLs += gs.URLs
		stats.PerGroup = append(stats.PerGroup, gs)
	}
	return stats
}
