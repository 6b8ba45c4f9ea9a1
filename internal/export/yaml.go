package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/iksnae/plan-dataset/internal"
	"gopkg.in/yaml.v3"
)

// YAMLExporter exports records as a YAML sequence for review
type YAMLExporter struct{}

type yamlRecord struct {
	Messages []internal.Message    `yaml:"messages"`
	Plan     *internal.ResearchPlan `yaml:"plan,omitempty"`
	Extra    map[string]interface{} `yaml:"extra,omitempty"`
}

// Export exports records to YAML format. Complete records carry their
// decoded research plan alongside the raw messages.
func (e *YAMLExporter) Export(records []internal.Record, w io.Writer) error {
	docs := make([]yamlRecord, 0, len(records))
	for i, record := range records {
		doc := yamlRecord{Messages: record.Messages}
		if content, ok := record.AssistantContent(); ok {
			if resp, err := internal.DecodePlanResponse(content); err == nil {
				doc.Plan = &resp.ResearchPlan
			}
		}
		if len(record.Extra) > 0 {
			doc.Extra = make(map[string]interface{}, len(record.Extra))
			for k, raw := range record.Extra {
				var v interface{}
				if err := json.Unmarshal(raw, &v); err != nil {
					return fmt.Errorf("record %d field %s: %w", i, k, err)
				}
				doc.Extra[k] = v
			}
		}
		docs = append(docs, doc)
	}

	enc := yaml.NewEncoder(w)
	defer func() { _ = enc.Close() }()

	return enc.Encode(docs)
}

// Extension returns the file extension for this format
func (e *YAMLExporter) Extension() string {
	return "yaml"
}
