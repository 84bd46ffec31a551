package tournament

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config describes a tournament to be generated, as read from a roster
// file.
type Config struct {
	// The name of the tournament.
	Name string `yaml:"name"`

	// The participating teams, in pairing order.
	Teams []string `yaml:"teams"`

	// Number of teams. Missing names get placeholders, extra ones are
	// dropped. Defaults to the number of listed teams.
	Count int `yaml:"count"`
}

// Participants returns the final list of team names.
func (config *Config) Participants() []string {
	return Names(Fill(config.Teams, config.Count))
}

// ReadConfig reads a roster file. Both the yaml Config format and plain
// text files with one team per line are accepted.
func ReadConfig(path string) (*Config, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return ParseConfig(file)
}

// ParseConfig parses the contents of a roster file.
func ParseConfig(data []byte) (*Config, error) {
	var config Config

	// Any yaml mapping is a roster, even one that only names the tournament.
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err == nil && len(root.Content) == 1 && root.Content[0].Kind == yaml.MappingNode {
		if err := root.Content[0].Decode(&config); err != nil {
			return nil, fmt.Errorf("parse roster: %w", err)
		}

		return &config, nil
	}

	// Not a yaml roster, treat it as a list of names instead.
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" && !strings.HasPrefix(line, "#") {
			config.Teams = append(config.Teams, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("parse roster: %w", err)
	}

	return &config, nil
}
