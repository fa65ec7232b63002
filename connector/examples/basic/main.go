// ABOUTME: Basic example showing topic search and top headlines with the connector library
// ABOUTME: Reads NEWSAPI_KEY and NEWSAPI_BASE_URL from the environment

package main

import (
	"context"
	"fmt"
	"log"

	"newsapi-connector/connector"
)

func main() {
	client, err := connector.New(connector.FromEnv())
	if err != nil {
		log.Fatal("Failed to create client:", err)
	}
	defer client.Close()

	ctx := context.Background()

	fmt.Println("=== Search: ChatGPT ===")
	result, err := client.Search(ctx, "ChatGPT")
	if err != nil {
		log.Fatal(err)
	}
	if result.Absent() {
		fmt.Printf("No results (%s)\n", result.Reason)
	} else {
		fmt.Printf("Total results: %d\n", result.ResultSet.TotalResults)
		for _, article := range result.ResultSet.Articles {
			fmt.Printf("- %s (%s)\n", article.Title, article.Source.Name)
		}
	}

	fmt.Println("\n=== Top headlines: us/business ===")
	headlines, err := client.Headlines(ctx, "us", "business")
	if err != nil {
		log.Fatal(err)
	}
	if headlines.Absent() {
		fmt.Printf("No headlines (%s)\n", headlines.Reason)
		return
	}
	for _, article := range headlines.ResultSet.Articles {
		fmt.Printf("- %s\n", article.Title)
	}
}
