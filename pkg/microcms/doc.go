// Package microcms provides types, interfaces, and helpers for reading content
// from the microCMS content API.
//
// # Overview
//
// The package defines the Client interface, its Config, the query parameter
// types for the two endpoint shapes (GetParams and ListParams), and Value, the
// decoded JSON returned by every call. A concrete client is built by the
// cmsclient package.
//
// Getting a client
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
//	  cli, err := cmsclient.NewWithAPIKey("https://your-service.microcms.io/api", "api-key")
//	  if err != nil { log.Fatal(err) }
//
//	  // The five latest posts, newest first
//	  posts, err := cli.List(ctx, "posts", microcms.NewListParams().
//	    WithLimit(5).
//	    WithOrders("-publishedAt"))
//	  if err != nil { log.Fatal(err) }
//	  _ = posts
//	}
//
// # Response shapes
//
// The API answers either with a single object or with a list envelope holding
// contents, totalCount, offset and limit. The client does not guess which one
// it received: a user defined object may well have a field named totalCount.
// Callers know which endpoint they called and decode accordingly:
//
//	type Post struct {
//	  microcms.ContentMeta
//	  Title string `json:"title"`
//	}
//
//	list, err := microcms.ListAs[Post](ctx, cli, "posts", nil)
//	post, err := microcms.GetAs[Post](ctx, cli, "posts", &microcms.GetParams{ContentID: "abc123"})
//
// # Query parameters
//
// Only parameters that are set are sent; service defaults are never hard coded.
// Integer parameters are pointers so that an explicit 0 is distinguishable from
// "not set". Multi-value parameters (orders, fields, ids) are joined with
// commas. FilterBuilder composes filters expressions.
//
// # Errors
//
// A non-2xx response yields a *RequestFailedError carrying the status code and
// the raw body. IsNotFound, IsUnauthorized and StatusCode help branch on it.
// Decode failures are reported as *DecodeError.
package microcms
