package bench

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homily-archive/ngram-search/internal/domain"
)

func TestParseSuite(t *testing.T) {
	yaml := `
name: common phrases
queries:
  - term: "pueblo de dios"
    config:
      language: es
      normalization: per_10k_words
      smoothing_window: 1
  - term: "liberación"
    config:
      language: es
      accent_sensitive: true
`
	suite, err := ParseSuite([]byte(yaml))
	require.NoError(t, err)

	assert.Equal(t, "common phrases", suite.Name)
	require.Len(t, suite.Queries, 2)

	first := suite.Queries[0].Config.Domain()
	assert.Equal(t, domain.LanguageSpanish, first.Language)
	assert.Equal(t, domain.NormPer10kWords, first.Normalization)
	assert.Equal(t, 1, first.SmoothingWindow)
	assert.False(t, first.AccentSensitive)

	assert.True(t, suite.Queries[1].Config.Domain().AccentSensitive)
}

func TestParseSuite_RejectsEmpty(t *testing.T) {
	_, err := ParseSuite([]byte("name: empty\nqueries: []\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no queries")
}

func TestParseSuite_RejectsMissingTerm(t *testing.T) {
	_, err := ParseSuite([]byte("name: bad\nqueries:\n  - config:\n      language: es\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no term")
}

func TestLoadSuite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "suite.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: f\nqueries:\n  - term: pueblo\n"), 0644))

	suite, err := LoadSuite(path)
	require.NoError(t, err)
	assert.Equal(t, "f", suite.Name)

	_, err = LoadSuite(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
