package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/microcms-go/internal/constants"
	"github.com/fivetwenty-io/microcms-go/pkg/cmsclient"
	"github.com/fivetwenty-io/microcms-go/pkg/microcms"
)

// buildClientConfig assembles the client configuration from flags,
// environment and config file. An explicit API URL wins over a service
// domain.
func buildClientConfig(logger microcms.Logger) (*microcms.Config, error) {
	baseURL := viper.GetString(keyAPIURL)
	if baseURL == "" {
		if domain := viper.GetString(keyServiceDomain); domain != "" {
			baseURL = cmsclient.ServiceDomainURL(domain)
		}
	}

	if baseURL == "" {
		return nil, constants.ErrNoAPIURL
	}

	apiKey := viper.GetString(keyAPIKey)
	if apiKey == "" {
		return nil, constants.ErrNoAPIKey
	}

	return &microcms.Config{
		BaseURL:     baseURL,
		APIKey:      apiKey,
		HTTPTimeout: viper.GetDuration(keyTimeout),
		RetryMax:    viper.GetInt(keyRetries),
		Debug:       viper.GetBool(keyVerbose),
		Logger:      logger,
	}, nil
}

// createClient creates a content client that logs to the command's stderr.
func createClient(cmd *cobra.Command) (microcms.Client, error) {
	logger := &zerologAdapter{logger: newLogger(cmd.ErrOrStderr())}

	config, err := buildClientConfig(logger)
	if err != nil {
		return nil, err
	}

	client, err := cmsclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// outputFormat returns the requested output format, JSON when unset.
func outputFormat() string {
	if format := viper.GetString(keyOutput); format != "" {
		return format
	}

	return constants.FormatJSON
}

func parseRichEditorFormat(value string) (microcms.RichEditorFormat, error) {
	switch microcms.RichEditorFormat(value) {
	case "", microcms.RichEditorFormatHTML, microcms.RichEditorFormatObject:
		return microcms.RichEditorFormat(value), nil
	default:
		return "", fmt.Errorf("%w: %s", constants.ErrInvalidRichFormat, value)
	}
}
