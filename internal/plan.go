package internal

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Section is one themed block of interview questions
type Section struct {
	ID        string   `json:"id" yaml:"id"`
	Title     string   `json:"title" yaml:"title"`
	Questions []string `json:"questions" yaml:"questions"`
}

// ResearchPlan is the titled, ordered list of sections
type ResearchPlan struct {
	Title    string    `json:"title" yaml:"title"`
	Sections []Section `json:"sections" yaml:"sections"`
}

// PlanResponse is the structured answer a complete record's assistant
// message carries as JSON text.
type PlanResponse struct {
	ChatResponse string       `json:"chatResponse"`
	ResearchPlan ResearchPlan `json:"researchPlan"`
}

// Encode returns the JSON text of the response, laid out with ", " and ": "
// separators like the curated training files.
func (p PlanResponse) Encode() (string, error) {
	data, err := marshalUnescaped(p)
	if err != nil {
		return "", err
	}
	return string(spaceSeparators(data)), nil
}

// spaceSeparators adds a space after every ',' and ':' outside string
// literals of compact JSON.
func spaceSeparators(compact []byte) []byte {
	out := make([]byte, 0, len(compact)+len(compact)/8)
	inString, escaped := false, false
	for _, c := range compact {
		out = append(out, c)
		switch {
		case escaped:
			escaped = false
		case inString:
			if c == '\\' {
				escaped = true
			} else if c == '"' {
				inString = false
			}
		case c == '"':
			inString = true
		case c == ',' || c == ':':
			out = append(out, ' ')
		}
	}
	return out
}

// DecodePlanResponse parses assistant content into a PlanResponse and checks
// its shape. Both top-level keys are required and no others are allowed.
func DecodePlanResponse(content string) (*PlanResponse, error) {
	dec := json.NewDecoder(strings.NewReader(content))
	dec.DisallowUnknownFields()

	var raw struct {
		ChatResponse *string       `json:"chatResponse"`
		ResearchPlan *ResearchPlan `json:"researchPlan"`
	}
	if err := dec.Decode(&raw); err != nil {
		return nil, &ParseError{Source: "plan", Key: "assistant", Err: err}
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, &ParseError{Source: "plan", Key: "assistant", Err: errors.New("trailing data after plan")}
	}
	if raw.ChatResponse == nil {
		return nil, &ParseError{Source: "plan", Key: "assistant", Err: errors.New(`missing "chatResponse"`)}
	}
	if raw.ResearchPlan == nil {
		return nil, &ParseError{Source: "plan", Key: "assistant", Err: errors.New(`missing "researchPlan"`)}
	}

	resp := &PlanResponse{ChatResponse: *raw.ChatResponse, ResearchPlan: *raw.ResearchPlan}
	if err := resp.ResearchPlan.Validate(); err != nil {
		return nil, &ParseError{Source: "plan", Key: resp.ResearchPlan.Title, Err: err}
	}
	return resp, nil
}

// Validate checks that sections are present, ids unique and every section
// has questions.
func (p ResearchPlan) Validate() error {
	if len(p.Sections) == 0 {
		return errors.New("plan has no sections")
	}
	ids := make(map[string]bool, len(p.Sections))
	for i, s := range p.Sections {
		if s.ID == "" {
			return fmt.Errorf("section %d has no id", i)
		}
		if ids[s.ID] {
			return fmt.Errorf("duplicate section id %q", s.ID)
		}
		ids[s.ID] = true
		if len(s.Questions) == 0 {
			return fmt.Errorf("section %q has no questions", s.ID)
		}
	}
	return nil
}
