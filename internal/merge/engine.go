package merge

import (
	"slices"

	"m3umerge/internal/channelname"
	"m3umerge/internal/playlist"
)

// Channel is the accumulated state of one logical channel.
type Channel struct {
	Key   string
	Name  string
	Info  string
	Group string
	urls  map[string]struct{}
}

// URLs returns the channel's stream URLs in ascending order.
func (c *Channel) URLs() []string {
	out := make([]string, 0, len(c.urls))
	for u := range c.urls {
		out = append(out, u)
	}
	slices.Sort(out)
	return out
}

// URLCount returns the number of distinct URLs collected for the channel.
func (c *Channel) URLCount() int {
	return len(c.urls)
}

// HasURL reports whether u has been collected for the channel.
func (c *Channel) HasURL(u string) bool {
	_, ok := c.urls[u]
	return ok
}

// IngestStats summarizes what one Ingest call changed.
type IngestStats struct {
	Occurrences int `json:"occurrences"`
	Skipped     int `json:"skipped"` // occurrences whose name normalized to an empty key
	NewChannels int `json:"new_channels"`
	Updated     int `json:"updated"` // occurrences folded into an already known channel
	Renamed     int `json:"renamed"`
	Reassigned  int `json:"reassigned"`
	NewURLs     int `json:"new_urls"` // URLs added to already known channels
}

// Engine holds the cumulative merge state for one run.
type Engine struct {
	header        string
	defaultHeader string
	channels      map[string]*Channel
	groupOrder    []string
	groups        map[string][]string
	reassigned    int
}

// Option customizes an Engine.
type Option func(*Engine)

// WithDefaultHeader sets the header line rendered when no input carried one.
func WithDefaultHeader(header string) Option {
	return func(e *Engine) {
		e.defaultHeader = header
	}
}

// NewEngine returns an empty engine.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		defaultHeader: playlist.HeaderToken,
		channels:      make(map[string]*Channel),
		groups:        make(map[string][]string),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Header returns the first playlist header captured across all ingested files.
func (e *Engine) Header() string {
	return e.header
}

// Groups returns the group titles in first-seen order, including groups that
// no longer hold any channel.
func (e *Engine) Groups() []string {
	return slices.Clone(e.groupOrder)
}

// GroupKeys returns the ordered identity keys currently listed under group.
func (e *Engine) GroupKeys(group string) []string {
	return slices.Clone(e.groups[group])
}

// Channel looks up a channel by identity key.
func (e *Engine) Channel(key string) (*Channel, bool) {
	ch, ok := e.channels[key]
	return ch, ok
}

// Len returns the number of distinct channels seen so far.
func (e *Engine) Len() int {
	return len(e.channels)
}

// Ingest folds one parsed file into the engine state.
func (e *Engine) Ingest(file *playlist.File) IngestStats {
	var stats IngestStats
	if file == nil {
		return stats
	}
	if e.header == "" && file.Header != "" {
		e.header = file.Header
	}

	local := newFileOrder()
	for _, occ := range file.Occurrences {
		stats.Occurrences++
		key := channelname.Normalize(occ.Name)
		if key == "" {
			stats.Skipped++
			continue
		}
		e.ensureGroup(occ.Group)

		ch, known := e.channels[key]
		if !known {
			ch = &Channel{
				Key:   key,
				Name:  occ.Name,
				Info:  occ.Info,
				Group: occ.Group,
				urls:  make(map[string]struct{}, len(occ.URLs)),
			}
			for _, u := range occ.URLs {
				ch.urls[u] = struct{}{}
			}
			e.channels[key] = ch
			stats.NewChannels++
			local.observe(key, occ.Group)
			continue
		}

		stats.Updated++
		for _, u := range occ.URLs {
			if _, ok := ch.urls[u]; ok {
				continue
			}
			ch.urls[u] = struct{}{}
			stats.NewURLs++
		}
		if channelname.Prefer(ch.Name, occ.Name) {
			if ch.Name != occ.Name {
				stats.Renamed++
			}
			ch.Name = occ.Name
			ch.Info = occ.Info
		}
		if ch.Group != occ.Group {
			e.removeFromGroup(ch.Group, key)
			ch.Group = occ.Group
			stats.Reassigned++
			e.reassigned++
		}
		local.observe(key, occ.Group)
	}

	for _, group := range local.groupOrder() {
		e.groups[group] = insertAnchored(e.groups[group], local.keys(group))
	}
	return stats
}

func (e *Engine) ensureGroup(group string) {
	if _, ok := e.groups[group]; ok {
		return
	}
	e.groups[group] = nil
	e.groupOrder = append(e.groupOrder, group)
}

func (e *Engine) removeFromGroup(group, key string) {
	order := e.groups[group]
	if idx := slices.Index(order, key); idx >= 0 {
		e.groups[group] = slices.Delete(order, idx, idx+1)
	}
}
