package internal

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Role is the author of a message in a training record
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Valid reports whether r is one of the known roles
func (r Role) Valid() bool {
	switch r {
	case RoleSystem, RoleUser, RoleAssistant:
		return true
	}
	return false
}

// Message is a single role-tagged turn
type Message struct {
	Role    Role   `json:"role" yaml:"role"`
	Content string `json:"content" yaml:"content"`
}

// UnmarshalJSON requires "content" to be a string. A missing or null value
// is rejected so it cannot be written back as an empty string.
func (m *Message) UnmarshalJSON(data []byte) error {
	var raw struct {
		Role    Role    `json:"role"`
		Content *string `json:"content"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Content == nil {
		return errMissingContent
	}
	m.Role = raw.Role
	m.Content = *raw.Content
	return nil
}

// Record is one training example.
//
// Top-level fields other than "messages" are kept in Extra and written back
// after "messages" in key order.
type Record struct {
	Messages []Message
	Extra    map[string]json.RawMessage
}

// Kind classifies a record by its message count
type Kind string

const (
	KindComplete   Kind = "complete"
	KindPromptOnly Kind = "prompt-only"
	KindOther      Kind = "other"
)

var (
	errMissingMessages = errors.New(`missing "messages" array`)
	errMissingContent  = errors.New(`message "content" is missing or null`)
)

// Kind returns KindComplete for three messages, KindPromptOnly for two.
func (r Record) Kind() Kind {
	switch len(r.Messages) {
	case 3:
		return KindComplete
	case 2:
		return KindPromptOnly
	default:
		return KindOther
	}
}

// FirstUserMessage returns the content of the first user message
func (r Record) FirstUserMessage() (string, bool) {
	for _, msg := range r.Messages {
		if msg.Role == RoleUser {
			return msg.Content, true
		}
	}
	return "", false
}

// AssistantContent returns the content of the last assistant message
func (r Record) AssistantContent() (string, bool) {
	for i := len(r.Messages) - 1; i >= 0; i-- {
		if r.Messages[i].Role == RoleAssistant {
			return r.Messages[i].Content, true
		}
	}
	return "", false
}

// DedupKey returns the lower-cased, trimmed first user message, or "" when
// the record has none.
func DedupKey(r Record) string {
	content, _ := r.FirstUserMessage()
	return strings.ToLower(strings.TrimSpace(content))
}

// Validate checks the message structure of a decoded record
func (r Record) Validate() error {
	if len(r.Messages) == 0 {
		return errMissingMessages
	}
	for i, msg := range r.Messages {
		if !msg.Role.Valid() {
			return fmt.Errorf("message %d: unknown role %q", i, msg.Role)
		}
	}
	return nil
}

// MarshalJSON writes "messages" first, then any extra fields sorted by key.
// Non-ASCII text and HTML characters are written as-is.
func (r Record) MarshalJSON() ([]byte, error) {
	messages := r.Messages
	if messages == nil {
		messages = []Message{}
	}
	msgs, err := marshalUnescaped(messages)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString(`{"messages":`)
	buf.Write(msgs)

	keys := make([]string, 0, len(r.Extra))
	for k := range r.Extra {
		if k != "messages" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		name, err := marshalUnescaped(k)
		if err != nil {
			return nil, err
		}
		buf.WriteByte(',')
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(r.Extra[k])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON requires a "messages" array of role/content objects
func (r *Record) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	raw, ok := fields["messages"]
	if !ok {
		return errMissingMessages
	}
	var messages []Message
	if err := json.Unmarshal(raw, &messages); err != nil {
		return fmt.Errorf("messages: %w", err)
	}
	delete(fields, "messages")

	r.Messages = messages
	r.Extra = nil
	if len(fields) > 0 {
		r.Extra = fields
	}
	return nil
}

// Summary counts records by kind
type Summary struct {
	Total      int `json:"total" yaml:"total"`
	Complete   int `json:"complete" yaml:"complete"`
	PromptOnly int `json:"prompt_only" yaml:"prompt_only"`
}

// Summarize counts complete and prompt-only records
func Summarize(records []Record) Summary {
	s := Summary{Total: len(records)}
	for _, r := range records {
		switch r.Kind() {
		case KindComplete:
			s.Complete++
		case KindPromptOnly:
			s.PromptOnly++
		}
	}
	return s
}

// marshalUnescaped encodes v without HTML escaping and without the trailing
// newline json.Encoder adds.
func marshalUnescaped(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
