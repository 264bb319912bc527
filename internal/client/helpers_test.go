package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	. "github.com/fivetwenty-io/microcms-go/internal/client"
	"github.com/fivetwenty-io/microcms-go/pkg/microcms"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAPIKey = "test-api-key"

// contentOperation describes one request against a content endpoint and the
// response the server answers with.
type contentOperation struct {
	Name          string
	Call          func(context.Context, *Client) (microcms.Value, error)
	ExpectedPath  string
	ExpectedQuery string
	StatusCode    int
	Body          string
	WantErr       bool
	ErrIs         error
	ErrMessage    string
	Check         func(*testing.T, microcms.Value)
}

// newTestClient creates a client for server.
func newTestClient(t *testing.T, serverURL string) *Client {
	t.Helper()

	client, err := New(&microcms.Config{BaseURL: serverURL, APIKey: testAPIKey})
	require.NoError(t, err)

	return client
}

// runContentOperations runs each operation against its own server.
func runContentOperations(t *testing.T, operations []contentOperation) {
	t.Helper()

	for _, testCase := range operations {

		testCase := testCase
		t.Run(testCase.Name, func(t *testing.T) {
			t.Parallel()

			var requests atomic.Int32
			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				requests.Add(1)

				assert.Equal(t, http.MethodGet, request.Method)
				assert.Equal(t, testCase.ExpectedPath, request.URL.EscapedPath())
				assert.Equal(t, testCase.ExpectedQuery, request.URL.RawQuery)
				assert.Equal(t, testAPIKey, request.Header.Get("X-MICROCMS-API-KEY"))

				writer.Header().Set("Content-Type", "application/json")
				writer.WriteHeader(testCase.StatusCode)
				_, _ = writer.Write([]byte(testCase.Body))
			}))
			defer server.Close()

			value, err := testCase.Call(context.Background(), newTestClient(t, server.URL))

			// Every operation is exactly one request
			assert.Equal(t, int32(1), requests.Load())

			if testCase.WantErr {
				require.Error(t, err)

				if testCase.ErrIs != nil {
					require.ErrorIs(t, err, testCase.ErrIs)
				}

				if testCase.ErrMessage != "" {
					assert.Contains(t, err.Error(), testCase.ErrMessage)
				}

				assert.True(t, value.IsNull())

				return
			}

			require.NoError(t, err)

			if testCase.Check != nil {
				testCase.Check(t, value)
			}
		})
	}
}
