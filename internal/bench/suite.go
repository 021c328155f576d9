package bench

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/homily-archive/ngram-search/internal/domain"
)

// Suite is a yaml file of queries to time against the engine.
type Suite struct {
	Name    string  `yaml:"name"`
	Queries []Query `yaml:"queries"`
}

type Query struct {
	Term   string      `yaml:"term"`
	Config QueryConfig `yaml:"config"`
}

// QueryConfig mirrors domain.QueryConfig with yaml tags matching the API's
// query parameter names.
type QueryConfig struct {
	Language        string `yaml:"language"`
	AccentSensitive bool   `yaml:"accent_sensitive"`
	Normalization   string `yaml:"normalization"`
	SmoothingWindow int    `yaml:"smoothing_window"`
}

func (c QueryConfig) Domain() domain.QueryConfig {
	return domain.QueryConfig{
		Language:        domain.Language(c.Language),
		AccentSensitive: c.AccentSensitive,
		Normalization:   domain.NormalizationMode(c.Normalization),
		SmoothingWindow: c.SmoothingWindow,
	}
}

func LoadSuite(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suite file: %w", err)
	}
	return ParseSuite(data)
}

func ParseSuite(data []byte) (*Suite, error) {
	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse suite yaml: %w", err)
	}
	if len(s.Queries) == 0 {
		return nil, fmt.Errorf("suite has no queries")
	}
	for i, q := range s.Queries {
		if q.Term == "" {
			return nil, fmt.Errorf("query at index %d has no term", i)
		}
	}
	return &s, nil
}
