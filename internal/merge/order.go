package merge

import "slices"

// fileOrder is one file's snapshot of channel order and group membership.
// A key keeps the position of its first sighting in the file and belongs to
// the last group it was seen under, so it lands in exactly one group list.
type fileOrder struct {
	sequence []string
	group    map[string]string
}

func newFileOrder() *fileOrder {
	return &fileOrder{group: make(map[string]string)}
}

func (o *fileOrder) observe(key, group string) {
	if _, ok := o.group[key]; !ok {
		o.sequence = append(o.sequence, key)
	}
	o.group[key] = group
}

// groupOrder lists the file's groups in the order their first member appears.
func (o *fileOrder) groupOrder() []string {
	var groups []string
	seen := make(map[string]struct{})
	for _, key := range o.sequence {
		g := o.group[key]
		if _, ok := seen[g]; ok {
			continue
		}
		seen[g] = struct{}{}
		groups = append(groups, g)
	}
	return groups
}

func (o *fileOrder) keys(group string) []string {
	var keys []string
	for _, key := range o.sequence {
		if o.group[key] == group {
			keys = append(keys, key)
		}
	}
	return keys
}

// insertAnchored merges a file's local key order into the accumulated order.
// Keys already placed stay put and become the anchor; new keys are inserted
// right after the latest anchor, so a file's run of new channels keeps its
// local relative order. When files disagree on order the later file wins
// locally; this is a heuristic, not a topological merge.
func insertAnchored(order, local []string) []string {
	last := -1
	for _, key := range local {
		if idx := slices.Index(order, key); idx >= 0 {
			last = idx
			continue
		}
		last++
		order = slices.Insert(order, last, key)
	}
	return order
}
