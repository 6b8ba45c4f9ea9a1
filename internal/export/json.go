package export

import (
	"encoding/json"
	"io"

	"github.com/iksnae/plan-dataset/internal"
)

// JSONExporter exports records as a pretty-printed JSON array
type JSONExporter struct{}

// Export exports records to JSON format
func (e *JSONExporter) Export(records []internal.Record, w io.Writer) error {
	if records == nil {
		records = []internal.Record{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	return enc.Encode(records)
}

// Extension returns the file extension for this format
func (e *JSONExporter) Extension() string {
	return "json"
}
