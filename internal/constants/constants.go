package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// API wire details.
const (
	// APIKeyHeader carries the API key on every request.
	APIKeyHeader = "X-MICROCMS-API-KEY"

	// APIVersionPath prefixes every endpoint path.
	APIVersionPath = "/v1"

	// ServiceDomainURLFormat builds a base URL from a service domain.
	ServiceDomainURLFormat = "https://%s.microcms.io/api"

	// DefaultUserAgent is sent when the config does not override it.
	DefaultUserAgent = "microcms-go"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second
)

// Retry limits, only used when retries are enabled.
const (
	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// Environment variables read by the CLI and examples.
const (
	EnvPrefix        = "MICROCMS"
	EnvAPIURL        = "MICROCMS_API_URL"
	EnvAPIKey        = "MICROCMS_API_KEY"
	EnvServiceDomain = "MICROCMS_SERVICE_DOMAIN"
)

// CLI configuration.
const (
	// ConfigDirName is the directory under the user's home holding the CLI config.
	ConfigDirName = ".microcms"

	// ConfigFileName is the CLI config file name.
	ConfigFileName = "config.yml"

	// MinimumArgumentCount is the argument count of key/value commands.
	MinimumArgumentCount = 2

	// BodyLogLimit caps how much of a response body is logged in debug mode.
	BodyLogLimit = 512
)

// Format constants.
const (
	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"

	// FormatTable for table output format.
	FormatTable = "table"
)
