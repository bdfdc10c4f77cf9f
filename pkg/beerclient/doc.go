// Package beerclient is the entry point for creating beer API clients.
//
// Create a client with Basic credentials:
//
//	client, err := beerclient.NewWithPassword("http://localhost:8080", "user1", "password")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	found, err := client.GetByID(ctx, id)
//
// Or with a full configuration:
//
//	client, err := beerclient.New(&beer.Config{
//		BaseURL:     "https://beers.example.com",
//		AccessToken: token,
//		HTTPTimeout: 10 * time.Second,
//	})
package beerclient
