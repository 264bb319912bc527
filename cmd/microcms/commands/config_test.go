package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/microcms-go/internal/constants"
)

// useTempConfig points viper at a config file in a fresh directory.
func useTempConfig(t *testing.T) string {
	t.Helper()

	resetViper(t)

	path := filepath.Join(t.TempDir(), "nested", constants.ConfigFileName)
	viper.SetConfigFile(path)

	return path
}

func readConfigFile(t *testing.T, path string) Config {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var config Config
	require.NoError(t, yaml.Unmarshal(data, &config))

	return config
}

func TestNewConfigCommand(t *testing.T) {
	cmd := NewConfigCommand()
	assert.Equal(t, "config", cmd.Use)

	var commandNames []string
	for _, subcmd := range cmd.Commands() {
		commandNames = append(commandNames, subcmd.Name())
	}

	assert.ElementsMatch(t, []string{"show", "set", "unset", "path", "login"}, commandNames)
}

func TestConfigSetAndUnset(t *testing.T) {
	path := useTempConfig(t)

	_, err := executeCommand(NewConfigCommand(), "set", "api_url", "https://example.microcms.io/api")
	require.NoError(t, err)

	_, err = executeCommand(NewConfigCommand(), "set", "output", "table")
	require.NoError(t, err)

	config := readConfigFile(t, path)
	assert.Equal(t, "https://example.microcms.io/api", config.APIURL)
	assert.Equal(t, "table", config.Output)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(constants.ConfigFilePerm), info.Mode().Perm())

	_, err = executeCommand(NewConfigCommand(), "unset", "output")
	require.NoError(t, err)

	config = readConfigFile(t, path)
	assert.Empty(t, config.Output)
	assert.Equal(t, "https://example.microcms.io/api", config.APIURL)
}

func TestConfigSet_UnknownKey(t *testing.T) {
	useTempConfig(t)

	_, err := executeCommand(NewConfigCommand(), "set", "color", "red")
	require.ErrorIs(t, err, constants.ErrUnknownConfigKey)

	_, err = executeCommand(NewConfigCommand(), "unset", "color")
	require.ErrorIs(t, err, constants.ErrUnknownConfigKey)
}

func TestConfigShow_MasksAPIKey(t *testing.T) {
	useTempConfig(t)

	_, err := executeCommand(NewConfigCommand(), "set", "api_key", "secret-key-12345")
	require.NoError(t, err)

	out, err := executeCommand(NewConfigCommand(), "show")
	require.NoError(t, err)

	assert.Contains(t, out, `"api_key": "****2345"`)
	assert.NotContains(t, out, "secret-key")
	assert.Contains(t, out, `"api_url": null`)
}

func TestConfigShow_IgnoresEnvironmentValues(t *testing.T) {
	path := useTempConfig(t)
	viper.Set(keyAPIKey, "from-flag")

	_, err := executeCommand(NewConfigCommand(), "set", "service_domain", "example")
	require.NoError(t, err)

	config := readConfigFile(t, path)
	assert.Equal(t, "example", config.ServiceDomain)
	assert.Empty(t, config.APIKey)
}

func TestConfigPath(t *testing.T) {
	path := useTempConfig(t)

	out, err := executeCommand(NewConfigCommand(), "path")
	require.NoError(t, err)
	assert.Equal(t, path, strings.TrimSpace(out))
}

func TestConfigLogin(t *testing.T) {
	path := useTempConfig(t)

	cmd := NewConfigCommand()
	cmd.SetIn(strings.NewReader("  my-api-key  \n"))

	_, err := executeCommand(cmd, "login", "--api-url", "https://example.microcms.io/api")
	require.NoError(t, err)

	config := readConfigFile(t, path)
	assert.Equal(t, "my-api-key", config.APIKey)
	assert.Equal(t, "https://example.microcms.io/api", config.APIURL)
}

func TestConfigLogin_EmptyKey(t *testing.T) {
	useTempConfig(t)

	cmd := NewConfigCommand()
	cmd.SetIn(strings.NewReader("\n"))

	_, err := executeCommand(cmd, "login")
	require.ErrorIs(t, err, constants.ErrEmptyAPIKeyInput)
}
