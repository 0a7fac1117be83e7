// Package docs embeds the guide documentation, one markdown file per topic.
package docs

import (
	"bufio"
	"bytes"
	"embed"
	"fmt"
	"regexp"
	"strings"
)

//go:embed *.md
var docs embed.FS

// Topic is a documentation page listed in the readme.
type Topic struct {
	Name        string
	Description string
}

// topicLine matches the "* name: description" lines of the readme.
var topicLine = regexp.MustCompile(`^\*\s+([^:\s]+):\s*(.*)$`)

// Topics returns the topics in the order the readme lists them.
func Topics() ([]Topic, error) {
	content, err := docs.ReadFile("readme.md")
	if err != nil {
		return nil, fmt.Errorf("could not read the list of topics: %w", err)
	}
	var topics []Topic
	scanner := bufio.NewScanner(bytes.NewReader(content))
	for scanner.Scan() {
		m := topicLine.FindStringSubmatch(scanner.Text())
		if m == nil {
			continue
		}
		topics = append(topics, Topic{Name: m[1], Description: strings.TrimSpace(m[2])})
	}
	return topics, scanner.Err()
}

// GetAllTopics returns the names of all the topics, in readme order.
func GetAllTopics() ([]string, error) {
	topics, err := Topics()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(topics))
	for _, t := range topics {
		names = append(names, t.Name)
	}
	return names, nil
}

// GetTopic returns the content of a topic, or of all of them for "*".
func GetTopic(topic string) (string, error) {
	if topic == "*" {
		return GetTopics(topic)
	}
	content, err := docs.ReadFile(topic + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found, see 'guide topic' for the list", topic)
	}
	return string(content), nil
}

// GetTopics returns the content of the topics, separated by a blank line.
// "*" stands for all the topics.
func GetTopics(topics ...string) (string, error) {
	var b strings.Builder
	for _, topic := range topics {
		names := []string{topic}
		if topic == "*" {
			var err error
			if names, err = GetAllTopics(); err != nil {
				return "", err
			}
		}
		for _, name := range names {
			content, err := GetTopic(name)
			if err != nil {
				return "", err
			}
			b.WriteString(content)
			b.WriteString("\n")
		}
	}
	return b.String(), nil
}
