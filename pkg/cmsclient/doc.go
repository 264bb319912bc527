// Package cmsclient provides the primary entry point for constructing a
// microCMS content API client that implements the microcms.Client interface.
//
// It validates and normalizes the configuration, then wires the HTTP
// transport with the API key installed as a static header. Construction never
// touches the network.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/microcms-go/pkg/cmsclient"
//	  "github.com/fivetwenty-io/microcms-go/pkg/microcms"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // Base URL and API key
//	  cli, err := cmsclient.NewWithAPIKey("https://example.microcms.io/api", "api-key")
//	  if err != nil { log.Fatal(err) }
//
//	  // Or just the service domain
//	  cli, err = cmsclient.NewWithServiceDomain("example", "api-key")
//
//	  // Or the full config, with logging and transport tuning
//	  cli, err = cmsclient.New(&microcms.Config{
//	    BaseURL:  "https://example.microcms.io/api",
//	    APIKey:   "api-key",
//	    RetryMax: 3,
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  settings, err := cli.Get(ctx, "settings", nil)
//	  if err != nil { log.Fatal(err) }
//	  _ = settings
//	}
package cmsclient
