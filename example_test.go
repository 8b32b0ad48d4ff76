package pocketcast_test

import (
	"context"
	"fmt"
	"log"

	"github.com/patric-chuzhbe/pocketcast"
)

// Example demonstrates logging in and listing the account's podcast
// subscriptions.
func Example() {
	ctx := context.Background()

	client, err := pocketcast.New(ctx, "listener@example.com", "hunter2")
	if err != nil {
		log.Fatal(err)
	}

	podcasts, err := client.Subscriptions(ctx)
	if err != nil {
		log.Fatal(err)
	}

	for _, podcast := range podcasts {
		fmt.Println(podcast.Title)
	}
}

// Example_discover demonstrates the unauthenticated discovery surface.
func Example_discover() {
	ctx := context.Background()

	client, err := pocketcast.New(ctx, "listener@example.com", "hunter2")
	if err != nil {
		log.Fatal(err)
	}

	category, err := client.CategoryByName(ctx, "technology")
	if err != nil {
		log.Fatal(err)
	}

	podcasts, err := client.CategoryPodcasts(ctx, category, "de")
	if err != nil {
		log.Fatal(err)
	}

	for _, podcast := range podcasts {
		fmt.Println(podcast.Title, "by", podcast.Author)
	}
}
