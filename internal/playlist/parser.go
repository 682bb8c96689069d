package playlist

import (
	"regexp"
	"strings"
)

const (
	// HeaderToken opens an extended M3U file.
	HeaderToken = "#EXTM3U"
	// InfoPrefix marks a channel metadata line.
	InfoPrefix = "#EXTINF:"
	// DefaultGroup labels occurrences whose metadata line has no group-title.
	DefaultGroup = "Uncategorized"
)

var groupTitlePattern = regexp.MustCompile(`group-title="([^"]*)"`)

// Occurrence is one channel block as it appears in a single file.
type Occurrence struct {
	Name  string
	Info  string
	Group string
	URLs  []string
}

// File is the parsed form of one playlist.
type File struct {
	Header      string
	Occurrences []Occurrence
}

// Option customizes parsing.
type Option func(*parser)

// WithDefaultGroup overrides the label assigned to occurrences without a
// group-title attribute.
func WithDefaultGroup(label string) Option {
	return func(p *parser) {
		if label = strings.TrimSpace(label); label != "" {
			p.defaultGroup = label
		}
	}
}

type parser struct {
	defaultGroup string

	file    File
	current *Occurrence
	seen    map[string]struct{}
}

// Parse scans playlist text and returns its header and channel occurrences in
// file order.
func Parse(content string, opts ...Option) *File {
	p := &parser{defaultGroup: DefaultGroup}
	for _, opt := range opts {
		opt(p)
	}

	for _, line := range strings.Split(content, "\n") {
		p.line(strings.TrimSpace(line))
	}
	p.flush()
	return &p.file
}

func (p *parser) line(line string) {
	switch {
	case line == "":
		return
	case strings.HasPrefix(line, HeaderToken):
		if p.file.Header == "" {
			p.file.Header = line
		}
		p.flush()
	case strings.HasPrefix(line, InfoPrefix):
		p.flush()
		name, ok := DisplayName(line)
		if !ok {
			return
		}
		group := GroupTitle(line)
		if group == "" {
			group = p.defaultGroup
		}
		p.current = &Occurrence{Name: name, Info: line, Group: group}
		p.seen = make(map[string]struct{})
	case IsURL(line):
		if p.current == nil {
			return
		}
		if _, dup := p.seen[line]; dup {
			return
		}
		p.seen[line] = struct{}{}
		p.current.URLs = append(p.current.URLs, line)
	default:
		p.flush()
	}
}

func (p *parser) flush() {
	if p.current != nil {
		p.file.Occurrences = append(p.file.Occurrences, *p.current)
	}
	p.current = nil
	p.seen = nil
}

// DisplayName returns the trimmed text after the last comma of a metadata
// line. ok is false when there is no comma or the name is blank.
func DisplayName(line string) (string, bool) {
	idx := strings.LastIndexByte(line, ',')
	if idx == -1 {
		return "", false
	}
	name := strings.TrimSpace(line[idx+1:])
	return name, name != ""
}

// GroupTitle returns the trimmed group-title attribute value, or "" when the
// attribute is missing.
func GroupTitle(line string) string {
	match := groupTitlePattern.FindStringSubmatch(line)
	if len(match) < 2 {
		return ""
	}
	return strings.TrimSpace(match[1])
}

// IsURL reports whether a line is a stream URL.
func IsURL(line string) bool {
	return strings.HasPrefix(line, "http://") || strings.HasPrefix(line, "https://")
}
