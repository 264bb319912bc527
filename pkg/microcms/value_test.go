package microcms_test

import (
	"encoding/json"
	"testing"

	"github.com/fivetwenty-io/microcms-go/pkg/microcms"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValue_Object(t *testing.T) {
	t.Parallel()

	value, err := microcms.ParseValue([]byte(`{"id":"1","name":"x"}`))
	require.NoError(t, err)

	assert.Equal(t, microcms.KindObject, value.Kind())
	assert.Equal(t, []string{"id", "name"}, value.Keys())

	id, ok := value.Get("id")
	require.True(t, ok)

	text, ok := id.Text()
	require.True(t, ok)
	assert.Equal(t, "1", text)

	_, ok = value.Get("missing")
	assert.False(t, ok)
}

func TestParseValue_ListEnvelope(t *testing.T) {
	t.Parallel()

	body := `{"contents":[{"id":"1"}],"totalCount":1,"offset":0,"limit":10}`

	value, err := microcms.ParseValue([]byte(body))
	require.NoError(t, err)

	contents, ok := value.Get("contents")
	require.True(t, ok)
	assert.Equal(t, microcms.KindArray, contents.Kind())
	assert.Equal(t, 1, contents.Len())

	total, ok := value.Get("totalCount")
	require.True(t, ok)

	n, ok := total.Int64()
	require.True(t, ok)
	assert.Equal(t, int64(1), n)

	// Re-encoding reproduces the original document
	assert.Equal(t, body, value.String())
}

func TestParseValue_Scalars(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		json string
		kind microcms.Kind
	}{
		{name: "null", json: `null`, kind: microcms.KindNull},
		{name: "true", json: `true`, kind: microcms.KindBool},
		{name: "integer", json: `42`, kind: microcms.KindNumber},
		{name: "float", json: `1.5e3`, kind: microcms.KindNumber},
		{name: "string", json: `"hello"`, kind: microcms.KindString},
		{name: "empty array", json: `[]`, kind: microcms.KindArray},
		{name: "empty object", json: ` {} `, kind: microcms.KindObject},
	}

	for _, testCase := range tests {

		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			value, err := microcms.ParseValue([]byte(testCase.json))
			require.NoError(t, err)
			assert.Equal(t, testCase.kind, value.Kind())
			assert.Equal(t, testCase.kind.String(), value.Kind().String())
		})
	}
}

func TestParseValue_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		json     string
		sentinel error
	}{
		{name: "empty", json: ``, sentinel: microcms.ErrInvalidJSON},
		{name: "truncated object", json: `{"id":`, sentinel: microcms.ErrInvalidJSON},
		{name: "trailing data", json: `{} {}`, sentinel: microcms.ErrTrailingData},
		{name: "not json", json: `not found`, sentinel: microcms.ErrInvalidJSON},
	}

	for _, testCase := range tests {

		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			_, err := microcms.ParseValue([]byte(testCase.json))
			require.Error(t, err)
			require.ErrorIs(t, err, testCase.sentinel)
		})
	}
}

func TestValue_NumbersKeepLiteral(t *testing.T) {
	t.Parallel()

	value, err := microcms.ParseValue([]byte(`{"big":12345678901234567890,"pi":3.14}`))
	require.NoError(t, err)

	big, _ := value.Get("big")
	number, ok := big.Number()
	require.True(t, ok)
	assert.Equal(t, json.Number("12345678901234567890"), number)

	_, ok = big.Int64()
	assert.False(t, ok, "value overflows int64")

	pi, _ := value.Get("pi")
	f, ok := pi.Float64()
	require.True(t, ok)
	assert.InDelta(t, 3.14, f, 0.0001)

	assert.JSONEq(t, `{"big":12345678901234567890,"pi":3.14}`, value.String())
}

func TestValue_DuplicateKeysLastWins(t *testing.T) {
	t.Parallel()

	value, err := microcms.ParseValue([]byte(`{"a":1,"b":2,"a":3}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, value.Keys())

	a, _ := value.Get("a")
	n, _ := a.Int64()
	assert.Equal(t, int64(3), n)
}

func TestValue_Constructors(t *testing.T) {
	t.Parallel()

	value := microcms.ObjectValue(
		microcms.Field{Key: "title", Value: microcms.StringValue("<b>Go</b>")},
		microcms.Field{Key: "draft", Value: microcms.BoolValue(false)},
		microcms.Field{Key: "tags", Value: microcms.ArrayValue(microcms.StringValue("a"), microcms.NullValue())},
		microcms.Field{Key: "count", Value: microcms.NumberValue("7")},
	)

	data, err := json.Marshal(value)
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"<b>Go</b>","draft":false,"tags":["a",null],"count":7}`, string(data))

	// HTML is left unescaped
	assert.Contains(t, value.String(), `"<b>Go</b>"`)
}

func TestValue_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	var envelope struct {
		Data microcms.Value `json:"data"`
	}

	err := json.Unmarshal([]byte(`{"data":{"z":1,"a":[true]}}`), &envelope)
	require.NoError(t, err)
	assert.Equal(t, []string{"z", "a"}, envelope.Data.Keys())

	a, _ := envelope.Data.Get("a")
	first, ok := a.Index(0)
	require.True(t, ok)

	b, ok := first.Bool()
	require.True(t, ok)
	assert.True(t, b)

	_, ok = a.Index(1)
	assert.False(t, ok)
}

func TestValue_AccessorsOnWrongKind(t *testing.T) {
	t.Parallel()

	value := microcms.StringValue("text")

	_, ok := value.Bool()
	assert.False(t, ok)

	_, ok = value.Number()
	assert.False(t, ok)

	_, ok = value.Get("key")
	assert.False(t, ok)

	assert.Nil(t, value.Keys())
	assert.Nil(t, value.Items())
	assert.Nil(t, value.Fields())
	assert.Equal(t, 0, value.Len())
	assert.True(t, microcms.Value{}.IsNull())
}

func TestValue_Interface(t *testing.T) {
	t.Parallel()

	value, err := microcms.ParseValue([]byte(`{"a":[1,"x",null,false],"b":{"c":2.5}}`))
	require.NoError(t, err)

	expected := map[string]interface{}{
		"a": []interface{}{json.Number("1"), "x", nil, false},
		"b": map[string]interface{}{"c": json.Number("2.5")},
	}
	assert.Equal(t, expected, value.Interface())
}

func TestValue_ItemsAreCopies(t *testing.T) {
	t.Parallel()

	value, err := microcms.ParseValue([]byte(`[1,2]`))
	require.NoError(t, err)

	items := value.Items()
	items[0] = microcms.StringValue("changed")

	first, _ := value.Index(0)
	assert.Equal(t, microcms.KindNumber, first.Kind())
}
