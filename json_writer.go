package savings

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// jsonObjectWriter builds a JSON object whose keys keep insertion order.
// Its zero value is ready to use.
type jsonObjectWriter struct {
	buf bytes.Buffer
	n   int
	err error
}

// field writes one already encoded key/value pair.
func (w *jsonObjectWriter) field(key string, raw []byte) {
	if w.n > 0 {
		w.buf.WriteByte(',')
	}
	k, _ := json.Marshal(key)
	w.buf.Write(k)
	w.buf.WriteByte(':')
	w.buf.Write(raw)
	w.n++
}

// Append adds key with value marshaled by `json.Marshal`.
func (w *jsonObjectWriter) Append(key string, value any) *jsonObjectWriter {
	if w.err != nil {
		return w
	}
	raw, err := json.Marshal(value)
	if err != nil {
		w.err = fmt.Errorf("failed to marshal value for key %q: %w", key, err)
		return w
	}
	w.field(key, raw)
	return w
}

// Number adds key with a literal JSON number.
func (w *jsonObjectWriter) Number(key, number string) *jsonObjectWriter {
	if w.err == nil {
		w.field(key, []byte(number))
	}
	return w
}

// Optional adds key only when value is not blank.
func (w *jsonObjectWriter) Optional(key, value string) *jsonObjectWriter {
	if isBlank(value) {
		return w
	}
	return w.Append(key, value)
}

// MarshalJSON wraps the pairs written so far in braces.
func (w *jsonObjectWriter) MarshalJSON() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	out := make([]byte, 0, w.buf.Len()+2)
	out = append(out, '{')
	out = append(out, w.buf.Bytes()...)
	return append(out, '}'), nil
}
