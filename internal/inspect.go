package internal

import "fmt"

// Finding is a problem detected in a dataset
type Finding struct {
	Line    int // 1-based record position
	Message string
}

// Inspection summarizes an existing dataset
type Inspection struct {
	Summary    Summary
	Other      int
	Duplicates []Finding
	BadPlans   []Finding
}

// OK reports whether no findings were recorded
func (in *Inspection) OK() bool {
	return len(in.Duplicates) == 0 && len(in.BadPlans) == 0
}

// Inspect checks records for repeated deduplication keys and complete
// records whose assistant payload is not a valid research plan.
func Inspect(records []Record) *Inspection {
	in := &Inspection{Summary: Summarize(records)}
	in.Other = in.Summary.Total - in.Summary.Complete - in.Summary.PromptOnly

	firstSeen := make(map[string]int)
	for i, r := range records {
		pos := i + 1
		key := DedupKey(r)
		if first, ok := firstSeen[key]; ok {
			in.Duplicates = append(in.Duplicates, Finding{
				Line:    pos,
				Message: fmt.Sprintf("duplicate of record %d: %q", first, key),
			})
		} else {
			firstSeen[key] = pos
		}

		if r.Kind() != KindComplete {
			continue
		}
		content, ok := r.AssistantContent()
		if !ok {
			in.BadPlans = append(in.BadPlans, Finding{Line: pos, Message: "complete record has no assistant message"})
			continue
		}
		if _, err := DecodePlanResponse(content); err != nil {
			in.BadPlans = append(in.BadPlans, Finding{Line: pos, Message: err.Error()})
		}
	}
	return in
}
