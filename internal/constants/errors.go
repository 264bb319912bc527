package constants

import "errors"

// Configuration errors.
var (
	ErrNoAPIURL          = errors.New("no API URL configured, set MICROCMS_API_URL, --api-url or 'microcms config set api_url'")
	ErrNoAPIKey          = errors.New("no API key configured, set MICROCMS_API_KEY, --api-key or run 'microcms config login'")
	ErrUnknownConfigKey  = errors.New("unknown configuration key")
	ErrInvalidOutput     = errors.New("invalid output format, use json, yaml or table")
	ErrEmptyAPIKeyInput  = errors.New("API key must not be empty")
	ErrInvalidRichFormat = errors.New("invalid rich editor format, use html or object")
)

// Command line errors.
var (
	ErrInvalidWhere = errors.New("invalid condition, expected field[operator]value")
)
