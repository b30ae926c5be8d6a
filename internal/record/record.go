// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package record implements a generic, order-preserving representation of one
// repository entry from the GitHub listing API. The API payload is kept
// verbatim: field order matches the order the API sent and numeric literals
// are not re-formatted, so the json output format can reproduce exactly what
// the source returned. The other output formats only read a small known
// subset of fields through the typed accessors.
package record

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// Kind identifies the JSON type held by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindNumber
	KindBool
	KindObject
	KindArray
)

// String returns the JSON type name for error messages.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	}
	return "unknown"
}

// Value is a single decoded JSON value. Kind selects which payload field is
// meaningful; the others hold their zero value.
type Value struct {
	Kind Kind
	Str  string
	Num  json.Number
	Bool bool
	Obj  *Record
	Arr  []Value
}

// Field is one key/value pair of a Record.
type Field struct {
	Key   string
	Value Value
}

// Record is one repository entry: an ordered sequence of fields decoded from
// a JSON object. Records are immutable after decoding.
type Record struct {
	fields []Field
}

// New builds a Record from ordered fields. Intended for tests and mock data;
// production records come from DecodePage.
func New(fields ...Field) Record {
	return Record{fields: fields}
}

// StringValue wraps a string in a Value.
func StringValue(s string) Value {
	return Value{Kind: KindString, Str: s}
}

// NumberValue wraps an integer in a Value.
func NumberValue(n int64) Value {
	return Value{Kind: KindNumber, Num: json.Number(strconv.FormatInt(n, 10))}
}

// BoolValue wraps a bool in a Value.
func BoolValue(b bool) Value {
	return Value{Kind: KindBool, Bool: b}
}

// Len returns the number of fields.
func (r Record) Len() int {
	return len(r.fields)
}

// Fields returns the fields in payload order. The returned slice must not be
// modified.
func (r Record) Fields() []Field {
	return r.fields
}

// Get returns the value of the first field with the given key.
func (r Record) Get(key string) (Value, bool) {
	for _, f := range r.fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return Value{}, false
}

// String returns the string value of key, or "" when the field is absent,
// null, or not a string.
func (r Record) String(key string) string {
	if v, ok := r.Get(key); ok && v.Kind == KindString {
		return v.Str
	}
	return ""
}

// Int returns the integer value of key, or 0 when the field is absent or not
// an integral number.
func (r Record) Int(key string) int {
	if v, ok := r.Get(key); ok && v.Kind == KindNumber {
		if n, err := v.Num.Int64(); err == nil {
			return int(n)
		}
	}
	return 0
}

// Bool returns the boolean value of key, or false when the field is absent
// or not a boolean.
func (r Record) Bool(key string) bool {
	if v, ok := r.Get(key); ok && v.Kind == KindBool {
		return v.Bool
	}
	return false
}

// Strings returns the string elements of an array field, skipping non-string
// elements. Returns nil when the field is absent or not an array.
func (r Record) Strings(key string) []string {
	v, ok := r.Get(key)
	if !ok || v.Kind != KindArray {
		return nil
	}
	out := make([]string, 0, len(v.Arr))
	for _, el := range v.Arr {
		if el.Kind == KindString {
			out = append(out, el.Str)
		}
	}
	return out
}

// UnmarshalJSON decodes a single JSON object, preserving field order and
// numeric literals.
func (r *Record) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		return err
	}
	if v.Kind != KindObject {
		return fmt.Errorf("expected JSON object, got %s", v.Kind)
	}

	*r = *v.Obj
	return nil
}

// MarshalJSON reproduces the record as it arrived: same field order, same
// numeric literals.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := writeRecord(&buf, r); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodePage decodes one page payload: a JSON array of repository objects.
func DecodePage(rd io.Reader) ([]Record, error) {
	dec := json.NewDecoder(rd)
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		return nil, fmt.Errorf("failed to decode page payload: %w", err)
	}
	if v.Kind != KindArray {
		return nil, fmt.Errorf("expected JSON array, got %s", v.Kind)
	}

	records := make([]Record, 0, len(v.Arr))
	for i, el := range v.Arr {
		if el.Kind != KindObject {
			return nil, fmt.Errorf("page element %d: expected JSON object, got %s", i, el.Kind)
		}
		records = append(records, *el.Obj)
	}
	return records, nil
}

// decodeValue consumes exactly one JSON value from the decoder. The decoder
// must have UseNumber set so numeric literals survive verbatim.
func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			rec := &Record{}
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return Value{}, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return Value{}, fmt.Errorf("expected object key, got %v", keyTok)
				}
				val, err := decodeValue(dec)
				if err != nil {
					return Value{}, err
				}
				rec.fields = append(rec.fields, Field{Key: key, Value: val})
			}
			// Consume the closing brace.
			if _, err := dec.Token(); err != nil {
				return Value{}, err
			}
			return Value{Kind: KindObject, Obj: rec}, nil
		case '[':
			var arr []Value
			for dec.More() {
				val, err := decodeValue(dec)
				if err != nil {
					return Value{}, err
				}
				arr = append(arr, val)
			}
			if _, err := dec.Token(); err != nil {
				return Value{}, err
			}
			return Value{Kind: KindArray, Arr: arr}, nil
		}
		return Value{}, fmt.Errorf("unexpected delimiter %q", t.String())
	case string:
		return Value{Kind: KindString, Str: t}, nil
	case json.Number:
		return Value{Kind: KindNumber, Num: t}, nil
	case bool:
		return Value{Kind: KindBool, Bool: t}, nil
	case nil:
		return Value{Kind: KindNull}, nil
	}
	return Value{}, fmt.Errorf("unexpected token %v", tok)
}

func writeRecord(buf *bytes.Buffer, r Record) error {
	buf.WriteByte('{')
	for i, f := range r.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Key)
		if err != nil {
			return err
		}
		buf.Write(key)
		buf.WriteByte(':')
		if err := writeValue(buf, f.Value); err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	return nil
}

func writeValue(buf *bytes.Buffer, v Value) error {
	switch v.Kind {
	case KindNull:
		buf.WriteString("null")
	case KindString:
		s, err := json.Marshal(v.Str)
		if err != nil {
			return err
		}
		buf.Write(s)
	case KindNumber:
		if v.Num == "" {
			buf.WriteString("0")
		} else {
			buf.WriteString(string(v.Num))
		}
	case KindBool:
		buf.WriteString(strconv.FormatBool(v.Bool))
	case KindObject:
		if v.Obj == nil {
			buf.WriteString("{}")
		} else if err := writeRecord(buf, *v.Obj); err != nil {
			return err
		}
	case KindArray:
		buf.WriteByte('[')
		for i, el := range v.Arr {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeValue(buf, el); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	default:
		return fmt.Errorf("cannot encode value of kind %s", v.Kind)
	}
	return nil
}
