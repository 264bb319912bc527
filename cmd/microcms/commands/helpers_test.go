package commands

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// resetViper clears global configuration before and after a test.
func resetViper(t *testing.T) {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)
}

// recordedRequest is what the test server saw last.
type recordedRequest struct {
	URL    *url.URL
	Header http.Header
}

// newContentServer serves body for every request and records the last one.
func newContentServer(t *testing.T, status int, body string) (*httptest.Server, *recordedRequest) {
	t.Helper()

	last := &recordedRequest{URL: &url.URL{}, Header: http.Header{}}
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		last.URL = request.URL
		last.Header = request.Header.Clone()

		writer.Header().Set("Content-Type", "application/json")
		writer.WriteHeader(status)
		_, _ = writer.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	viper.Set(keyAPIURL, server.URL)
	viper.Set(keyAPIKey, "test-key")

	return server, last
}

// executeCommand runs cmd with args and returns what it wrote to stdout.
func executeCommand(cmd *cobra.Command, args ...string) (string, error) {
	return executeCommandWithStderr(cmd, io.Discard, args...)
}

func executeCommandWithStderr(cmd *cobra.Command, stderr io.Writer, args ...string) (string, error) {
	stdout := &bytes.Buffer{}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return stdout.String(), err
}
