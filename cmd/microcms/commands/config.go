package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/microcms-go/internal/constants"
	"github.com/fivetwenty-io/microcms-go/pkg/microcms"
)

// Config represents the CLI configuration file.
type Config struct {
	APIURL        string `yaml:"api_url,omitempty"`
	APIKey        string `yaml:"api_key,omitempty"`
	ServiceDomain string `yaml:"service_domain,omitempty"`
	Output        string `yaml:"output,omitempty"`
	LogFormat     string `yaml:"log_format,omitempty"`
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Manage the API URL, API key and output settings stored in the config file",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())
	cmd.AddCommand(newConfigPathCommand())
	cmd.AddCommand(newConfigLoginCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the configuration file contents with the API key masked",
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig()
			if err != nil {
				return err
			}

			return renderValue(cmd.OutOrStdout(), configValue(config), outputFormat())
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set a configuration value. Keys: " + strings.Join(configKeys(), ", "),
		Args:  cobra.ExactArgs(constants.MinimumArgumentCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]

			setter, exists := configSetters()[key]
			if !exists {
				return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
			}

			config, err := loadConfig()
			if err != nil {
				return err
			}

			setter(config, value)

			err = saveConfig(config)
			if err != nil {
				return err
			}

			return outputConfigUpdateResult(cmd.OutOrStdout(), "set", key)
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Unset a configuration value",
		Long:  "Remove a configuration value from the config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]

			setter, exists := configSetters()[key]
			if !exists {
				return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
			}

			config, err := loadConfig()
			if err != nil {
				return err
			}

			setter(config, "")

			err = saveConfig(config)
			if err != nil {
				return err
			}

			return outputConfigUpdateResult(cmd.OutOrStdout(), "unset", key)
		},
	}
}

func newConfigPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configFilePath()
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), path)

			return err
		},
	}
}

func newConfigLoginCommand() *cobra.Command {
	var apiURL string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store an API key",
		Long: `Prompt for an API key and store it in the config file. The key is read
without echo when stdin is a terminal.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			apiKey, err := readAPIKey(cmd.InOrStdin(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			config, err := loadConfig()
			if err != nil {
				return err
			}

			config.APIKey = apiKey
			if apiURL != "" {
				config.APIURL = apiURL
			}

			err = saveConfig(config)
			if err != nil {
				return err
			}

			return outputConfigUpdateResult(cmd.OutOrStdout(), "login", keyAPIKey)
		},
	}

	cmd.Flags().StringVar(&apiURL, "api-url", "", "API URL to store with the key")

	return cmd
}

// readAPIKey prompts on prompt and reads one line from in.
func readAPIKey(in io.Reader, prompt io.Writer) (string, error) {
	_, _ = fmt.Fprint(prompt, "API key: ")

	var line string

	if file, ok := in.(*os.File); ok && isTerminal(file) {
		keyBytes, err := term.ReadPassword(int(file.Fd()))
		_, _ = fmt.Fprintln(prompt)

		if err != nil {
			return "", fmt.Errorf("failed to read API key: %w", err)
		}

		line = string(keyBytes)
	} else {
		read, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read API key: %w", err)
		}

		line = read
	}

	apiKey := strings.TrimSpace(line)
	if apiKey == "" {
		return "", constants.ErrEmptyAPIKeyInput
	}

	return apiKey, nil
}

func configSetters() map[string]func(*Config, string) {
	return map[string]func(*Config, string){
		keyAPIURL:        func(c *Config, v string) { c.APIURL = v },
		keyAPIKey:        func(c *Config, v string) { c.APIKey = v },
		keyServiceDomain: func(c *Config, v string) { c.ServiceDomain = v },
		keyOutput:        func(c *Config, v string) { c.Output = v },
		keyLogFormat:     func(c *Config, v string) { c.LogFormat = v },
	}
}

func configKeys() []string {
	keys := make([]string, 0, len(configSetters()))
	for key := range configSetters() {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}

// configFilePath returns the file in use, or ~/.microcms/config.yml.
func configFilePath() (string, error) {
	if configFile := viper.ConfigFileUsed(); configFile != "" {
		return configFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, constants.ConfigDirName, constants.ConfigFileName), nil
}

// loadConfig reads the config file only, so that values coming from flags or
// the environment are never written back.
func loadConfig() (*Config, error) {
	path, err := configFilePath()
	if err != nil {
		return nil, err
	}

	config := &Config{}

	// path is the user's own config file
	// #nosec G304
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return config, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return config, nil
}

func saveConfig(config *Config) error {
	path, err := configFilePath()
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(path), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	err = os.WriteFile(path, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// configValue builds the displayed configuration with the API key masked.
func configValue(config *Config) microcms.Value {
	return microcms.ObjectValue(
		microcms.Field{Key: keyAPIURL, Value: optionalString(config.APIURL)},
		microcms.Field{Key: keyAPIKey, Value: optionalString(maskSecret(config.APIKey))},
		microcms.Field{Key: keyServiceDomain, Value: optionalString(config.ServiceDomain)},
		microcms.Field{Key: keyOutput, Value: optionalString(config.Output)},
		microcms.Field{Key: keyLogFormat, Value: optionalString(config.LogFormat)},
	)
}

func optionalString(value string) microcms.Value {
	if value == "" {
		return microcms.NullValue()
	}

	return microcms.StringValue(value)
}

// maskSecret keeps the last four characters of longer secrets.
func maskSecret(secret string) string {
	const visible = 4

	if secret == "" {
		return ""
	}

	if len(secret) <= visible*2 {
		return "****"
	}

	return "****" + secret[len(secret)-visible:]
}

func outputConfigUpdateResult(out io.Writer, action, key string) error {
	result := microcms.ObjectValue(
		microcms.Field{Key: "action", Value: microcms.StringValue(action)},
		microcms.Field{Key: "key", Value: microcms.StringValue(key)},
	)

	return renderValue(out, result, outputFormat())
}
