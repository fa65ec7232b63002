// ABOUTME: Advanced example showing custom cache, notifier and transport settings
// ABOUTME: Uses a SQLite cache and collects user-facing notices

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"newsapi-connector/connector"
	"newsapi-connector/infrastructure/notify"
	"newsapi-connector/pkg/config"
)

func main() {
	collector := notify.NewCollector(nil)

	client, err := connector.New(
		connector.WithNewsAPI(os.Getenv(config.EnvNewsAPIKey), "https://newsapi.org/v2/", 3),
		connector.WithCacheConfig(config.CacheConfig{
			Type:   config.CacheSQLite,
			SQLite: config.SQLiteConfig{Path: "./news_cache.db"},
		}),
		connector.WithTimeout(10*time.Second),
		connector.WithRateLimit(1),
		connector.WithDefaultTTL(15*time.Minute),
		connector.WithNotifier(collector),
	)
	if err != nil {
		if connector.IsConfigurationError(err) {
			log.Fatalf("Set %s before running this example: %v", config.EnvNewsAPIKey, err)
		}
		log.Fatal(err)
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result, err := client.SearchByTopic(ctx, connector.Params{
		"q":        "renewable energy",
		"language": "en",
		"sortBy":   "publishedAt",
		"pageSize": "5",
	}, time.Hour)
	if err != nil {
		log.Fatal(err)
	}

	if !result.Absent() {
		for _, article := range result.ResultSet.Articles {
			fmt.Printf("%s\n  %s\n", article.Title, article.URL)
		}
	}

	for _, notice := range collector.Notices() {
		fmt.Printf("[%s] %s: %s\n", notice.Level, notice.Endpoint, notice.Message)
	}
}
