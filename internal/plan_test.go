package internal

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestPlanResponse_Encode(t *testing.T) {
	resp := PlanResponse{
		ChatResponse: "Planı hazırladım.",
		ResearchPlan: ResearchPlan{
			Title: "Kart & Ödeme",
			Sections: []Section{
				{ID: "s1", Title: "Bölüm", Questions: []string{"Soru?"}},
			},
		},
	}

	got, err := resp.Encode()
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	want := `{"chatResponse": "Planı hazırladım.", "researchPlan": {"title": "Kart & Ödeme", "sections": [{"id": "s1", "title": "Bölüm", "questions": ["Soru?"]}]}}`
	if got != want {
		t.Errorf("Encode() =\n%s\nwant\n%s", got, want)
	}
}

func TestSpaceSeparators(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "object and array", input: `{"a":[1,2],"b":{"c":true}}`, want: `{"a": [1, 2], "b": {"c": true}}`},
		{name: "separators inside strings untouched", input: `{"q":"a, b: c"}`, want: `{"q": "a, b: c"}`},
		{name: "escaped quote inside string", input: `["say \"x,y\"",1]`, want: `["say \"x,y\"", 1]`},
		{name: "escaped backslash before closing quote", input: `["a\\",":"]`, want: `["a\\", ":"]`},
		{name: "empty containers", input: `{"s":[],"o":{}}`, want: `{"s": [], "o": {}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(spaceSeparators([]byte(tt.input))); got != tt.want {
				t.Errorf("spaceSeparators(%s) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestDecodePlanResponse(t *testing.T) {
	valid, _ := PlanResponse{
		ChatResponse: "ok",
		ResearchPlan: ResearchPlan{Title: "T", Sections: CreateTestSections()},
	}.Encode()

	tests := []struct {
		name      string
		content   string
		wantErr   bool
		errSubstr string
	}{
		{name: "valid", content: valid},
		{name: "not json", content: "Planı hazırladım", wantErr: true},
		{name: "unknown key", content: `{"chatResponse":"ok","researchPlan":{"title":"T","sections":[{"id":"a","title":"A","questions":["q"]}]},"extra":1}`, wantErr: true},
		{name: "no sections", content: `{"chatResponse":"ok","researchPlan":{"title":"T","sections":[]}}`, wantErr: true, errSubstr: "no sections"},
		{name: "duplicate ids", content: `{"chatResponse":"ok","researchPlan":{"title":"T","sections":[{"id":"a","title":"A","questions":["q"]},{"id":"a","title":"B","questions":["q"]}]}}`, wantErr: true, errSubstr: "duplicate"},
		{name: "empty questions", content: `{"chatResponse":"ok","researchPlan":{"title":"T","sections":[{"id":"a","title":"A","questions":[]}]}}`, wantErr: true, errSubstr: "no questions"},
		{name: "missing chatResponse", content: `{"researchPlan":{"title":"T","sections":[{"id":"a","title":"A","questions":["q"]}]}}`, wantErr: true, errSubstr: "chatResponse"},
		{name: "missing researchPlan", content: `{"chatResponse":"ok"}`, wantErr: true, errSubstr: "researchPlan"},
		{name: "null researchPlan", content: `{"chatResponse":"ok","researchPlan":null}`, wantErr: true, errSubstr: "researchPlan"},
		{name: "trailing data", content: valid + ` {}`, wantErr: true, errSubstr: "trailing"},
		{name: "missing id", content: `{"chatResponse":"ok","researchPlan":{"title":"T","sections":[{"title":"A","questions":["q"]}]}}`, wantErr: true, errSubstr: "no id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodePlanResponse(tt.content)
			if (err != nil) != tt.wantErr {
				t.Fatalf("DecodePlanResponse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var perr *ParseError
				if !errors.As(err, &perr) {
					t.Errorf("error should be a *ParseError, got %T", err)
				}
				if tt.errSubstr != "" && !strings.Contains(err.Error(), tt.errSubstr) {
					t.Errorf("error = %v, want containing %q", err, tt.errSubstr)
				}
				return
			}
			if got.ResearchPlan.Title != "T" || len(got.ResearchPlan.Sections) != 2 {
				t.Errorf("DecodePlanResponse() = %+v", got)
			}
		})
	}
}

func TestPlanResponse_TopLevelKeys(t *testing.T) {
	content, _ := PlanResponse{ResearchPlan: ResearchPlan{Sections: CreateTestSections()}}.Encode()

	var keys map[string]json.RawMessage
	if err := json.Unmarshal([]byte(content), &keys); err != nil {
		t.Fatal(err)
	}
	if len(keys) != 2 {
		t.Errorf("encoded plan has %d keys, want 2", len(keys))
	}
	for _, k := range []string{"chatResponse", "researchPlan"} {
		if _, ok := keys[k]; !ok {
			t.Errorf("encoded plan missing key %q", k)
		}
	}
}
