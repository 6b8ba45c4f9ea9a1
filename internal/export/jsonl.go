package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/iksnae/plan-dataset/internal"
)

// JSONLExporter writes one record per line, the fine-tuning input format
type JSONLExporter struct{}

// Export writes records in order, one compact JSON object per line.
// Non-ASCII text is written as UTF-8, not escaped.
func (e *JSONLExporter) Export(records []internal.Record, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	for i, record := range records {
		if err := enc.Encode(record); err != nil {
			return fmt.Errorf("failed to encode record %d: %w", i, err)
		}
	}

	return nil
}

// Extension returns the file extension for this format
func (e *JSONLExporter) Extension() string {
	return "jsonl"
}
