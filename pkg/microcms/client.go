package microcms

import (
	"context"
	"net/http"
	"time"
)

// Client reads content from the microCMS content API.
//
// Both operations return the decoded response body as a Value without looking
// at its shape. Whether an endpoint answers with a single object or with a
// list envelope (contents, totalCount, offset, limit) is known to the caller,
// not to the client; decode the Value with Decode, GetAs or ListAs.
type Client interface {
	// Get fetches an object endpoint, or one item of a list endpoint when
	// params.ContentID is set. params may be nil.
	Get(ctx context.Context, endpoint string, params *GetParams) (Value, error)

	// List fetches a list endpoint. params may be nil.
	List(ctx context.Context, endpoint string, params *ListParams) (Value, error)
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a microcms.Client.
//
// BaseURL and APIKey are required. The API key is sent as the
// X-MICROCMS-API-KEY header on every request for the lifetime of the client.
//
// # Timeouts and retries
//
// Per-request deadlines are best expressed with the context passed to Get and
// List. The client itself does not retry: RetryMax defaults to 0, meaning a
// single attempt. Setting it hands 5xx and 429 retries to the underlying
// transport; 4xx responses are never retried.
type Config struct {
	// BaseURL: API root, e.g. "https://your-service.microcms.io/api".
	// cmsclient.New trims a trailing slash and adds "https://" if no scheme
	// is present. Requests go to BaseURL + "/v1/<endpoint>".
	BaseURL string
	// APIKey: value of the X-MICROCMS-API-KEY header.
	APIKey string

	// HTTPTimeout: overall timeout of the underlying http.Client. Zero uses
	// the package default.
	HTTPTimeout time.Duration
	// HTTPClient: optional http.Client to send requests with. HTTPTimeout is
	// ignored when set.
	HTTPClient *http.Client
	// RetryMax: retries for transient failures (>=500, 429, connection
	// errors). Zero disables retries.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries.
	RetryWaitMax time.Duration
	// Debug: enables request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger.
	Logger Logger
	// UserAgent: overrides the default User-Agent header.
	UserAgent string
}
