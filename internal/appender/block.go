package appender

import (
	"fmt"
	"strings"

	"m3umerge/internal/playlist"
)

// InfoLine formats the metadata line for a new channel.
func InfoLine(name, group string) string {
	return fmt.Sprintf(`%s-1 tvg-name="%s" group-title="%s",%s`, playlist.InfoPrefix, name, group, name)
}

// Block renders channels as playlist text. With mergeURLs every channel gets
// one metadata line followed by all of its URLs; otherwise the metadata line
// is repeated for each URL.
func Block(channels []Channel, group string, mergeURLs bool) string {
	var b strings.Builder
	for _, ch := range channels {
		g := ch.Group
		if g == "" {
			g = group
		}
		info := InfoLine(ch.Name, g)
		if mergeURLs {
			b.WriteString(info)
			b.WriteByte('\n')
			for _, u := range ch.URLs {
				b.WriteString(u)
				b.WriteByte('\n')
			}
			continue
		}
		for _, u := range ch.URLs {
			b.WriteString(info)
			b.WriteByte('\n')
			b.WriteString(u)
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Insert places block into existing. At the head, the block follows a
// leading #EXTM3U line, or a fresh header is written when there is none. At
// the rear, existing is terminated with a newline first if needed.
func Insert(existing, block string, rear bool) string {
	var b strings.Builder
	b.Grow(len(existing) + len(block) + len(playlist.HeaderToken) + 2)

	if rear {
		b.WriteString(existing)
		if existing != "" && !strings.HasSuffix(existing, "\n") {
			b.WriteByte('\n')
		}
		b.WriteString(block)
		return b.String()
	}

	first, rest, hasNewline := strings.Cut(existing, "\n")
	if strings.HasPrefix(strings.TrimSpace(first), playlist.HeaderToken) {
		b.WriteString(first)
		b.WriteByte('\n')
		b.WriteString(block)
		if hasNewline {
			b.WriteString(rest)
		}
		return b.String()
	}

	b.WriteString(playlist.HeaderToken)
	b.WriteByte('\n')
	b.WriteString(block)
	b.WriteString(existing)
	return b.String()
}
