// Package beer provides types, interfaces, and helpers for working with the
// beer inventory HTTP API.
//
// # Overview
//
// The beer package defines the domain types (Beer, Style, Page) and the Client
// interface. A concrete implementation is provided by the beerclient package,
// which wires configuration, transport, and credentials. Most consumers should
// import beerclient to construct a client and then use the Client interface
// exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/beer-client/pkg/beer"
//	  "github.com/fivetwenty-io/beer-client/pkg/beerclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := beerclient.New(&beer.Config{
//	    BaseURL:  "http://localhost:8080",
//	    Username: "user1",
//	    Password: "password",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  page, err := cli.List(ctx, beer.NewListOptions().WithName("Ale").WithPageSize(25))
//	  if err != nil { log.Fatal(err) }
//	  _ = page
//	}
//
// # Queries and pagination
//
// ListOptions carries the optional filters. Only the options that are set are
// sent, always in the order beerName, beerStyle, showInventory, pageNumber,
// pageSize. List responses decode into Page, a plain container of content plus
// page number, page size and total element count. DecodePage is the explicit
// decoder; it tolerates unknown envelope fields such as "pageable" or "sort".
//
// PageIterator and FetchAll walk every page of a query:
//
//	all, err := beer.FetchAll(ctx, cli, beer.NewListOptions().WithPageSize(100))
//
// # Errors
//
// 4xx and 5xx responses surface as *ResponseError carrying the status and the raw
// body. IsNotFound, IsUnauthorized and IsForbidden branch on common cases. The
// client never retries and never translates errors.
package beer
