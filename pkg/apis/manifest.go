package apis

import "fmt"

// ImportManifest describes one corpus import: where the scraped catalog
// lives, where the extracted transcript tree lives, and which languages to
// load from it.
type ImportManifest struct {
	Kind      string   `json:"kind" example:"CorpusImport" yaml:"kind" schema:"required,enum=CorpusImport"`
	Version   string   `json:"version" example:"v1" yaml:"version" schema:"required,enum=v1"`
	Metadata  Metadata `json:"metadata" yaml:"metadata"`
	Catalog   string   `json:"catalog" example:"archive/homilies_metadata.json" yaml:"catalog" schema:"required" description:"Path to the scraped catalog JSON"`
	TextRoot  string   `json:"textRoot" example:"data/homilies" yaml:"textRoot" schema:"required" description:"Root of the year/month/day transcript tree"`
	Languages []string `json:"languages" example:"es,en" yaml:"languages" schema:"required,minItems=1" description:"Language codes to load transcripts for"`
	BatchSize int      `json:"batchSize" example:"100" yaml:"batchSize" description:"Documents per bulk save, defaults to 100 when unset"`
}

type Metadata struct {
	Name        string `json:"name" example:"Homily archive" yaml:"name" schema:"required"`
	Description string `json:"description" example:"Dated homily transcripts scraped from the archive" yaml:"description"`
}

func (m *ImportManifest) Validate() error {
	if m.Kind == "" {
		return fmt.Errorf("kind is required")
	}
	if m.Version == "" {
		return fmt.Errorf("version is required")
	}
	if m.Metadata.Name == "" {
		return fmt.Errorf("metadata.name is required")
	}
	if m.Catalog == "" {
		return fmt.Errorf("catalog is required")
	}
	if m.TextRoot == "" {
		return fmt.Errorf("textRoot is required")
	}
	if len(m.Languages) == 0 {
		return fmt.Errorf("at least one language is required")
	}
	if m.BatchSize < 0 {
		return fmt.Errorf("batchSize must not be negative")
	}
	return nil
}
