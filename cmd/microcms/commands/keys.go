package commands

// Viper keys. Each maps to a MICROCMS_* environment variable and to the
// same key in the config file.
const (
	keyAPIURL        = "api_url"
	keyAPIKey        = "api_key"
	keyServiceDomain = "service_domain"
	keyOutput        = "output"
	keyVerbose       = "verbose"
	keyLogFormat     = "log_format"
	keyRetries       = "retries"
	keyTimeout       = "timeout"
)

const logFormatJSON = "json"
