package domain

import (
	"bytes"
	"encoding/json"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Row is a JSON object that remembers the order of its keys.
// Values are kept as raw JSON so unknown fields round-trip unchanged.
// A null element decodes to a null row and encodes back to null.
type Row struct {
	fields *orderedmap.OrderedMap[string, json.RawMessage]
	null   bool
}

// NewRow creates an empty row
func NewRow() Row {
	return Row{fields: orderedmap.New[string, json.RawMessage]()}
}

// IsNull reports whether the row was decoded from a JSON null
func (r Row) IsNull() bool {
	return r.null
}

// Keys returns the keys in insertion order
func (r Row) Keys() []string {
	if r.fields == nil {
		return nil
	}
	keys := make([]string, 0, r.fields.Len())
	for pair := r.fields.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Len returns the number of keys
func (r Row) Len() int {
	if r.fields == nil {
		return 0
	}
	return r.fields.Len()
}

// Has reports whether key is present
func (r Row) Has(key string) bool {
	_, ok := r.Raw(key)
	return ok
}

// Raw returns the raw JSON value stored under key
func (r Row) Raw(key string) (json.RawMessage, bool) {
	if r.fields == nil {
		return nil, false
	}
	return r.fields.Get(key)
}

// String returns the string stored under key.
// Missing keys, null and non-string values read as "".
func (r Row) String(key string) string {
	raw, ok := r.Raw(key)
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// Set stores a raw JSON value. An existing key keeps its position.
func (r *Row) Set(key string, value json.RawMessage) {
	if r.fields == nil {
		r.fields = orderedmap.New[string, json.RawMessage]()
	}
	r.null = false
	r.fields.Set(key, value)
}

// SetString stores a string value
func (r *Row) SetString(key, value string) {
	r.Set(key, encodeString(value))
}

// MarshalJSON writes the keys in insertion order
func (r Row) MarshalJSON() ([]byte, error) {
	if r.null {
		return []byte("null"), nil
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	if r.fields != nil {
		for pair := r.fields.Oldest(); pair != nil; pair = pair.Next() {
			if buf.Len() > 1 {
				buf.WriteByte(',')
			}
			buf.Write(encodeString(pair.Key))
			buf.WriteByte(':')
			buf.Write(pair.Value)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object keeping the order of its keys
func (r *Row) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if string(data) == "null" {
		*r = Row{null: true}
		return nil
	}
	if len(data) == 0 || data[0] != '{' {
		return fmt.Errorf("expected JSON object, got %.20s", data)
	}

	fields := orderedmap.New[string, json.RawMessage]()
	if err := fields.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("decode object: %w", err)
	}

	*r = Row{fields: fields}
	return nil
}

// encodeString encodes s as a JSON string without HTML escaping
func encodeString(s string) json.RawMessage {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// Encoding a string cannot fail.
	_ = enc.Encode(s)
	return bytes.TrimRight(buf.Bytes(), "\n")
}
