// ABOUTME: search and headlines commands run one cached query and render it
// ABOUTME: Flags map onto NewsAPI query parameters; empty flags are omitted

package main

import (
	"strings"
	"time"

	"newsapi-connector/core/domain"

	"github.com/spf13/cobra"
)

// renderFlags are shared by the query commands
type renderFlags struct {
	fields []string
	limit  int
	json   bool
	ttl    time.Duration
}

func (f *renderFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&f.fields, "fields", nil, "article fields to show: "+strings.Join(domain.ArticleFields, ", "))
	cmd.Flags().IntVar(&f.limit, "limit", 10, "maximum number of articles to show (0 shows all)")
	cmd.Flags().BoolVar(&f.json, "json", false, "print the result as JSON")
	cmd.Flags().DurationVar(&f.ttl, "ttl", 0, "cache lifetime for this query (default from NEWSAPI_CACHE_TTL)")
}

func (f *renderFlags) options() renderOptions {
	return renderOptions{
		Fields: f.fields,
		Limit:  f.limit,
		JSON:   f.json,
		Now:    time.Now(),
	}
}

func newSearchCmd(a *app) *cobra.Command {
	var (
		render   renderFlags
		language string
		sortBy   string
		from     string
		to       string
	)

	cmd := &cobra.Command{
		Use:   "search <topic>",
		Short: "Search all articles for a topic",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := render.options()
			if err := opts.validate(); err != nil {
				return err
			}

			params := domain.Params{"q": strings.Join(args, " ")}
			setIf(params, "language", language)
			setIf(params, "sortBy", sortBy)
			setIf(params, "from", from)
			setIf(params, "to", to)

			client, err := a.client()
			if err != nil {
				return err
			}
			defer client.Close()

			result, err := client.SearchByTopic(cmd.Context(), params, render.ttl)
			if err != nil {
				return err
			}
			return renderResult(a.out, result, opts)
		},
	}

	render.register(cmd)
	cmd.Flags().StringVar(&language, "language", "", "two-letter ISO-639-1 language code")
	cmd.Flags().StringVar(&sortBy, "sort-by", "", "relevancy, popularity or publishedAt")
	cmd.Flags().StringVar(&from, "from", "", "oldest article date (ISO-8601)")
	cmd.Flags().StringVar(&to, "to", "", "newest article date (ISO-8601)")

	return cmd
}

func newHeadlinesCmd(a *app) *cobra.Command {
	var (
		render   renderFlags
		country  string
		category string
		sources  string
		query    string
	)

	cmd := &cobra.Command{
		Use:   "headlines",
		Short: "Show top headlines by country and category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := render.options()
			if err := opts.validate(); err != nil {
				return err
			}

			params := domain.Params{}
			setIf(params, "country", country)
			setIf(params, "category", category)
			setIf(params, "sources", sources)
			setIf(params, "q", query)

			client, err := a.client()
			if err != nil {
				return err
			}
			defer client.Close()

			result, err := client.TopHeadlines(cmd.Context(), params, render.ttl)
			if err != nil {
				return err
			}
			return renderResult(a.out, result, opts)
		},
	}

	render.register(cmd)
	cmd.Flags().StringVar(&country, "country", "us", "two-letter ISO-3166-1 country code")
	cmd.Flags().StringVar(&category, "category", "", "business, entertainment, general, health, science, sports or technology")
	cmd.Flags().StringVar(&sources, "sources", "", "comma-separated source identifiers (cannot be mixed with country or category)")
	cmd.Flags().StringVarP(&query, "query", "q", "", "keywords to filter headlines")

	return cmd
}

func setIf(params domain.Params, key, value string) {
	if value = strings.TrimSpace(value); value != "" {
		params[key] = value
	}
}
