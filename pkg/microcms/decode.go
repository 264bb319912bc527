package microcms

import (
	"context"
	"fmt"
	"reflect"
	"time"

	"github.com/go-viper/mapstructure/v2"
)

// Decode projects v onto target, which must be a non-nil pointer.
//
// Struct fields are matched by their json tag, embedded structs (such as
// ContentMeta) are squashed, RFC 3339 strings decode into time.Time and JSON
// numbers into any numeric type. Unknown keys are ignored.
func Decode(v Value, target interface{}) error {
	targetName := fmt.Sprintf("%T", target)

	if target == nil || reflect.ValueOf(target).Kind() != reflect.Ptr || reflect.ValueOf(target).IsNil() {
		return &DecodeError{Target: targetName, Err: ErrNilDecodeTarget}
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Squash:  true,
		Result:  target,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeHookFunc(time.RFC3339),
		),
	})
	if err != nil {
		return &DecodeError{Target: targetName, Err: err}
	}

	err = decoder.Decode(v.Interface())
	if err != nil {
		return &DecodeError{Target: targetName, Err: err}
	}

	return nil
}

// GetAs fetches a single content and decodes it into T.
func GetAs[T any](ctx context.Context, client Client, endpoint string, params *GetParams) (*T, error) {
	v, err := client.Get(ctx, endpoint, params)
	if err != nil {
		return nil, err
	}

	var out T

	err = Decode(v, &out)
	if err != nil {
		return nil, err
	}

	return &out, nil
}

// ListAs fetches a list endpoint and decodes the envelope with items of type T.
func ListAs[T any](ctx context.Context, client Client, endpoint string, params *ListParams) (*ListResponse[T], error) {
	v, err := client.List(ctx, endpoint, params)
	if err != nil {
		return nil, err
	}

	var out ListResponse[T]

	err = Decode(v, &out)
	if err != nil {
		return nil, err
	}

	return &out, nil
}
