package testutil

import "testing"

// ChatRecord builds a raw {"messages": [...]} value from role/content pairs
func ChatRecord(pairs ...string) map[string]interface{} {
	messages := make([]map[string]string, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		messages = append(messages, map[string]string{"role": pairs[i], "content": pairs[i+1]})
	}
	return map[string]interface{}{"messages": messages}
}

// PromptRecord is a system/user record as found in reward prompt files
func PromptRecord(system, user string) map[string]interface{} {
	return ChatRecord("system", system, "user", user)
}

// CreateSourceFixtures writes a curated and a prompts JSONL file into dir.
// The prompts file repeats the curated prompt in different casing.
func CreateSourceFixtures(t *testing.T, dir string) (curated, prompts string) {
	t.Helper()
	curated = WriteJSONL(t, dir, "curated.jsonl",
		ChatRecord("system", "sys", "user", "Kredi kartı deneyimini araştıralım", "assistant", `{"chatResponse":"ok","researchPlan":{"title":"Kart","sections":[{"id":"a","title":"A","questions":["q1","q2","q3"]}]}}`),
	)
	prompts = WriteJSONL(t, dir, "prompts.jsonl",
		PromptRecord("sys", "  KREDI kartı deneyimini araştıralım "),
		PromptRecord("sys", "Şube randevu deneyimini test edelim"),
	)
	return curated, prompts
}
