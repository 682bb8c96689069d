package appender

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Channel is one entry to add. An empty Group falls back to the group
// chosen for the whole run.
type Channel struct {
	Name  string   `yaml:"name" json:"name"`
	Group string   `yaml:"group,omitempty" json:"group,omitempty"`
	URLs  []string `yaml:"urls" json:"urls"`
}

// ErrNoChannels is returned when a definition yields nothing to add.
var ErrNoChannels = errors.New("no channels to add")

// ParseSpec parses "name1,url1,url2;name2,url3". Entries without a name or
// without at least one URL are ignored.
func ParseSpec(spec string) []Channel {
	var channels []Channel
	for _, entry := range strings.Split(spec, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		parts := strings.Split(entry, ",")
		name := strings.TrimSpace(parts[0])
		urls := cleanURLs(parts[1:])
		if name == "" || len(urls) == 0 {
			continue
		}
		channels = append(channels, Channel{Name: name, URLs: urls})
	}
	return channels
}

type channelFile struct {
	Channels []Channel `yaml:"channels"`
}

// LoadFile reads channel definitions from YAML. Both a top-level list and a
// mapping with a "channels" key are accepted.
func LoadFile(path string) ([]Channel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read channel file %s: %w", path, err)
	}

	var list []Channel
	if err := yaml.Unmarshal(data, &list); err != nil {
		var wrapped channelFile
		if err2 := yaml.Unmarshal(data, &wrapped); err2 != nil {
			return nil, fmt.Errorf("parse channel file %s: %w", path, err)
		}
		list = wrapped.Channels
	}

	channels := make([]Channel, 0, len(list))
	for _, ch := range list {
		ch.Name = strings.TrimSpace(ch.Name)
		ch.Group = strings.TrimSpace(ch.Group)
		ch.URLs = cleanURLs(ch.URLs)
		if ch.Name == "" || len(ch.URLs) == 0 {
			continue
		}
		channels = append(channels, ch)
	}
	return channels, nil
}

func cleanURLs(values []string) []string {
	var urls []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			urls = append(urls, v)
		}
	}
	return urls
}
