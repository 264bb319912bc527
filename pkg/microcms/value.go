package microcms

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
)

// Kind identifies which JSON type a Value holds.
type Kind int

// JSON kinds a Value can hold. The zero Value is KindNull.
const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// String returns the JSON name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Field is a single member of a JSON object.
type Field struct {
	Key   string
	Value Value
}

// Value is a decoded JSON document. It is what the content API returns: the
// client never looks at its shape, callers project it onto their own types
// with Decode or walk it with the accessors below.
//
// Numbers keep their literal text and objects keep their key order, so a Value
// re-encodes to the same document it was parsed from (modulo whitespace).
// Values are immutable once built.
type Value struct {
	kind    Kind
	boolean bool
	number  json.Number
	text    string
	items   []Value
	fields  []Field
	index   map[string]int
}

// NullValue returns the JSON null value.
func NullValue() Value {
	return Value{}
}

// BoolValue wraps a boolean.
func BoolValue(b bool) Value {
	return Value{kind: KindBool, boolean: b}
}

// NumberValue wraps a JSON number literal.
func NumberValue(n json.Number) Value {
	return Value{kind: KindNumber, number: n}
}

// StringValue wraps a string.
func StringValue(s string) Value {
	return Value{kind: KindString, text: s}
}

// ArrayValue builds an array from items.
func ArrayValue(items ...Value) Value {
	return Value{kind: KindArray, items: slices.Clone(items)}
}

// ObjectValue builds an object from fields. A repeated key keeps the position
// of its first occurrence and the value of its last.
func ObjectValue(fields ...Field) Value {
	obj := Value{kind: KindObject, index: make(map[string]int, len(fields))}
	for _, f := range fields {
		obj.set(f.Key, f.Value)
	}

	return obj
}

func (v *Value) set(key string, val Value) {
	if i, ok := v.index[key]; ok {
		v.fields[i].Value = val

		return
	}

	v.index[key] = len(v.fields)
	v.fields = append(v.fields, Field{Key: key, Value: val})
}

// ParseValue decodes a complete JSON document.
func ParseValue(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	val, err := decodeValue(dec)
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}

		if !errors.Is(err, ErrInvalidJSON) {
			err = fmt.Errorf("%w: %w", ErrInvalidJSON, err)
		}

		return Value{}, fmt.Errorf("parsing JSON: %w", err)
	}

	_, err = dec.Token()
	if !errors.Is(err, io.EOF) {
		return Value{}, fmt.Errorf("parsing JSON: %w", ErrTrailingData)
	}

	return val, nil
}

func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		default:
			return Value{}, fmt.Errorf("%w: unexpected %q", ErrInvalidJSON, rune(t))
		}
	case bool:
		return BoolValue(t), nil
	case json.Number:
		return NumberValue(t), nil
	case string:
		return StringValue(t), nil
	case nil:
		return NullValue(), nil
	default:
		return Value{}, fmt.Errorf("%w: unexpected token %T", ErrInvalidJSON, tok)
	}
}

func decodeObject(dec *json.Decoder) (Value, error) {
	obj := Value{kind: KindObject, index: make(map[string]int)}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return Value{}, err
		}

		key, ok := tok.(string)
		if !ok {
			return Value{}, fmt.Errorf("%w: object key is %T", ErrInvalidJSON, tok)
		}

		val, err := decodeValue(dec)
		if err != nil {
			return Value{}, err
		}

		obj.set(key, val)
	}

	// closing brace
	_, err := dec.Token()
	if err != nil {
		return Value{}, err
	}

	return obj, nil
}

func decodeArray(dec *json.Decoder) (Value, error) {
	arr := Value{kind: KindArray, items: []Value{}}

	for dec.More() {
		val, err := decodeValue(dec)
		if err != nil {
			return Value{}, err
		}

		arr.items = append(arr.items, val)
	}

	_, err := dec.Token()
	if err != nil {
		return Value{}, err
	}

	return arr, nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Value) UnmarshalJSON(data []byte) error {
	parsed, err := ParseValue(data)
	if err != nil {
		return err
	}

	*v = parsed

	return nil
}

// MarshalJSON implements json.Marshaler. Object keys are written in their
// original order and HTML characters are not escaped.
func (v Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	err := v.encode(&buf)
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (v Value) encode(buf *bytes.Buffer) error {
	switch v.kind {
	case KindNull:
		buf.WriteString("null")
	case KindBool:
		if v.boolean {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case KindNumber:
		if v.number == "" {
			buf.WriteString("0")
		} else {
			buf.WriteString(v.number.String())
		}
	case KindString:
		return encodeString(buf, v.text)
	case KindArray:
		buf.WriteByte('[')

		for i, item := range v.items {
			if i > 0 {
				buf.WriteByte(',')
			}

			err := item.encode(buf)
			if err != nil {
				return err
			}
		}

		buf.WriteByte(']')
	case KindObject:
		buf.WriteByte('{')

		for i, f := range v.fields {
			if i > 0 {
				buf.WriteByte(',')
			}

			err := encodeString(buf, f.Key)
			if err != nil {
				return err
			}

			buf.WriteByte(':')

			err = f.Value.encode(buf)
			if err != nil {
				return err
			}
		}

		buf.WriteByte('}')
	default:
		return fmt.Errorf("%w: unknown kind %s", ErrInvalidJSON, v.kind)
	}

	return nil
}

func encodeString(buf *bytes.Buffer, s string) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)

	err := enc.Encode(s)
	if err != nil {
		return fmt.Errorf("encoding string: %w", err)
	}

	// Encode always appends a newline
	buf.Truncate(buf.Len() - 1)

	return nil
}

// String returns the compact JSON encoding of v.
func (v Value) String() string {
	data, err := v.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("<invalid %s>", v.kind)
	}

	return string(data)
}

// Kind reports the JSON type held by v.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether v is JSON null.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// Bool returns the boolean held by v.
func (v Value) Bool() (bool, bool) {
	return v.boolean, v.kind == KindBool
}

// Number returns the number literal held by v.
func (v Value) Number() (json.Number, bool) {
	return v.number, v.kind == KindNumber
}

// Int64 returns v as an integer. It fails for non-numbers and for numbers with
// a fractional part or exponent that does not fit an int64.
func (v Value) Int64() (int64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}

	n, err := v.number.Int64()
	if err != nil {
		return 0, false
	}

	return n, true
}

// Float64 returns v as a float.
func (v Value) Float64() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}

	f, err := v.number.Float64()
	if err != nil {
		return 0, false
	}

	return f, true
}

// Text returns the string held by v.
func (v Value) Text() (string, bool) {
	return v.text, v.kind == KindString
}

// Len returns the number of array items or object fields, and 0 otherwise.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.items)
	case KindObject:
		return len(v.fields)
	default:
		return 0
	}
}

// Index returns the i-th array item.
func (v Value) Index(i int) (Value, bool) {
	if v.kind != KindArray || i < 0 || i >= len(v.items) {
		return Value{}, false
	}

	return v.items[i], true
}

// Items returns a copy of the array items, or nil if v is not an array.
func (v Value) Items() []Value {
	if v.kind != KindArray {
		return nil
	}

	return slices.Clone(v.items)
}

// Get returns the object member named key.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != KindObject {
		return Value{}, false
	}

	i, ok := v.index[key]
	if !ok {
		return Value{}, false
	}

	return v.fields[i].Value, true
}

// Keys returns the object keys in document order.
func (v Value) Keys() []string {
	if v.kind != KindObject {
		return nil
	}

	keys := make([]string, 0, len(v.fields))
	for _, f := range v.fields {
		keys = append(keys, f.Key)
	}

	return keys
}

// Fields returns a copy of the object members in document order.
func (v Value) Fields() []Field {
	if v.kind != KindObject {
		return nil
	}

	return slices.Clone(v.fields)
}

// Interface converts v into plain Go values: nil, bool, json.Number, string,
// []interface{} and map[string]interface{}. Key order is lost.
func (v Value) Interface() interface{} {
	switch v.kind {
	case KindBool:
		return v.boolean
	case KindNumber:
		return v.number
	case KindString:
		return v.text
	case KindArray:
		out := make([]interface{}, len(v.items))
		for i, item := range v.items {
			out[i] = item.Interface()
		}

		return out
	case KindObject:
		out := make(map[string]interface{}, len(v.fields))
		for _, f := range v.fields {
			out[f.Key] = f.Value.Interface()
		}

		return out
	default:
		return nil
	}
}
