package merge

import (
	"bufio"
	"io"
	"strings"

	"m3umerge/internal/playlist"
)

// Render returns the merged playlist text.
func (e *Engine) Render() string {
	var b strings.Builder
	_ = e.write(&b)
	return b.String()
}

// WriteTo writes the merged playlist to w.
func (e *Engine) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	bw := bufio.NewWriter(cw)
	if err := e.write(bw); err != nil {
		return cw.n, err
	}
	err := bw.Flush()
	return cw.n, err
}

func (e *Engine) write(w io.StringWriter) error {
	header := e.header
	if header == "" {
		header = e.defaultHeader
	}
	if header == "" {
		header = playlist.HeaderToken
	}
	if err := writeLine(w, header); err != nil {
		return err
	}
	for _, group := range e.groupOrder {
		for _, key := range e.groups[group] {
			ch := e.channels[key]
			if err := writeLine(w, ch.Info); err != nil {
				return err
			}
			for _, u := range ch.URLs() {
				if err := writeLine(w, u); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func writeLine(w io.StringWriter, line string) error {
	if _, err := w.WriteString(line); err != nil {
		return err
	}
	_, err := w.WriteString("\n")
	return err
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
