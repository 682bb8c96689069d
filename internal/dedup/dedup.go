package dedup

import (
	"strings"

	"m3umerge/internal/playlist"
)

const infoMarker = "#EXTINF"

// Stats counts what a deduplication pass kept and dropped.
type Stats struct {
	Channels   int      `json:"channels"`
	Duplicates int      `json:"duplicates"`
	Dropped    []string `json:"dropped,omitempty"`
}

// Lines returns the deduplicated body of content. Every kept block and
// every stray non-#EXTINF line is followed by an empty separator entry.
// When dropHeader is set, #EXTM3U lines are omitted so a caller can
// prepend its own header without repeating it.
func Lines(content string, dropHeader bool) ([]string, Stats) {
	var lines []string
	for _, raw := range strings.Split(content, "\n") {
		if line := strings.TrimSpace(raw); line != "" {
			lines = append(lines, line)
		}
	}

	var (
		out   []string
		stats Stats
		seen  = make(map[string]struct{})
	)
	for i := 0; i < len(lines); {
		line := lines[i]
		if !strings.HasPrefix(line, infoMarker) {
			i++
			if dropHeader && strings.HasPrefix(line, playlist.HeaderToken) {
				continue
			}
			out = append(out, line, "")
			continue
		}

		name := blockName(line)
		_, dup := seen[name]
		if !dup {
			seen[name] = struct{}{}
			stats.Channels++
			out = append(out, line)
		} else {
			stats.Duplicates++
			stats.Dropped = append(stats.Dropped, name)
		}
		for i++; i < len(lines) && !strings.HasPrefix(lines[i], infoMarker); i++ {
			if !dup {
				out = append(out, lines[i])
			}
		}
		if !dup {
			out = append(out, "")
		}
	}
	return out, stats
}

// Render joins deduplicated lines into file content, optionally preceded by
// an #EXTM3U header.
func Render(lines []string, header bool) string {
	var b strings.Builder
	if header {
		b.WriteString(playlist.HeaderToken)
		b.WriteByte('\n')
	}
	for _, line := range lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

func blockName(line string) string {
	_, name, ok := strings.Cut(line, ",")
	if !ok {
		return ""
	}
	return name
}
