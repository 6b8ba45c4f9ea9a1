package internal

import (
	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed data/banking_catalog.yaml
var bankingCatalogYAML []byte

// CatalogExample is a curated prompt with its expected research plan
type CatalogExample struct {
	Prompt       string    `yaml:"prompt"`
	ChatResponse string    `yaml:"chatResponse"`
	Title        string    `yaml:"title"`
	Sections     []Section `yaml:"sections"`
}

// Catalog is the built-in set of banking research examples
type Catalog struct {
	Examples []CatalogExample `yaml:"examples"`
	Prompts  []string         `yaml:"prompts"`
}

// LoadCatalog decodes the embedded banking catalog
func LoadCatalog() (*Catalog, error) {
	return ParseCatalog(bankingCatalogYAML)
}

// ParseCatalog decodes a catalog document
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, &ParseError{Source: "catalog", Key: "banking_catalog.yaml", Err: err}
	}
	return &c, nil
}

// Records returns complete examples followed by prompt-only records, each in
// catalog order.
func (c *Catalog) Records(systemPrompt string) []Record {
	records := make([]Record, 0, len(c.Examples)+len(c.Prompts))
	for _, ex := range c.Examples {
		records = append(records, BuildCompleteRecord(systemPrompt, ex.Prompt, ex.ChatResponse, ex.Title, ex.Sections))
	}
	for _, prompt := range c.Prompts {
		records = append(records, BuildPromptOnlyRecord(systemPrompt, prompt))
	}
	return records
}
