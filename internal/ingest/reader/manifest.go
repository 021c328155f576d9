package reader

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/homily-archive/ngram-search/pkg/apis"
)

type YAMLManifestLoader struct {
	reader io.Reader
}

func NewYAMLManifestLoader(reader io.Reader) *YAMLManifestLoader {
	return &YAMLManifestLoader{
		reader: reader,
	}
}

func (ml *YAMLManifestLoader) Load(validate bool) (*apis.ImportManifest, error) {
	decoder := yaml.NewDecoder(ml.reader)
	var manifest apis.ImportManifest
	if err := decoder.Decode(&manifest); err != nil {
		return nil, err
	}
	if validate {
		if err := manifest.Validate(); err != nil {
			return nil, err
		}
	}
	return &manifest, nil
}
