package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/homily-archive/ngram-search/pkg/apis"
	"github.com/homily-archive/ngram-search/pkg/schema"
)

func main() {
	outputDir := flag.String("output", "api", "Output directory for generated schemas")
	flag.Parse()

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	schemaJSON, err := schema.NewGenerator().GenerateJSON(apis.ImportManifest{})
	if err != nil {
		log.Fatalf("Failed to generate schema for ImportManifest: %v", err)
	}

	jsonFile := filepath.Join(*outputDir, "import-manifest-v1.json")
	if err := os.WriteFile(jsonFile, []byte(schemaJSON), 0644); err != nil {
		log.Fatalf("Failed to write JSON schema: %v", err)
	}
	fmt.Printf("Generated JSON schema: %s\n", jsonFile)

	yamlFile := filepath.Join(*outputDir, "import-manifest-example.yaml")
	if err := os.WriteFile(yamlFile, []byte(manifestExample), 0644); err != nil {
		log.Fatalf("Failed to write YAML example: %v", err)
	}
	fmt.Printf("Generated YAML example: %s\n", yamlFile)
}

const manifestExample = `# CorpusImport example.
# Points the importer at a scraped catalog and its transcript tree.

kind: CorpusImport
version: v1
metadata:
  name: "Homily archive"
  description: "Dated homily transcripts scraped from the archive"
catalog: "archive/homilies_metadata.json"
textRoot: "data/homilies"
languages:
  - es
  - en
batchSize: 100
`
