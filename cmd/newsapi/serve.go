// ABOUTME: serve command exposes the cached query façade over HTTP
// ABOUTME: Wires the Huma API and shuts down gracefully on SIGINT or SIGTERM

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"newsapi-connector/api"
	"newsapi-connector/api/handlers"
	"newsapi-connector/core/domain"
	"newsapi-connector/core/workers"

	"github.com/spf13/cobra"
)

func newServeCmd(a *app) *cobra.Command {
	var (
		port         string
		warmHeads    []string
		warmTopics   []string
		warmInterval time.Duration
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the news query API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if port != "" {
				a.cfg.Server.Port = port
			}

			jobs, err := warmJobs(warmHeads, warmTopics)
			if err != nil {
				return err
			}

			client, err := a.client()
			if err != nil {
				return err
			}
			defer client.Close()

			if len(jobs) > 0 {
				warmer := workers.NewWarmer(client.Service(), jobs, a.logger, workers.WarmerConfig{Interval: warmInterval})
				if err := warmer.Start(); err != nil {
					return err
				}
				defer warmer.Stop()
				a.logger.Info("Cache warmer started", map[string]interface{}{
					"jobs":     len(jobs),
					"interval": warmInterval.String(),
				})
			}

			a.logger.Info("Starting NewsAPI connector", map[string]interface{}{
				"port":       a.cfg.Server.Port,
				"cache_type": a.cfg.Cache.Type,
				"cache_ttl":  a.cfg.Query.DefaultTTL.String(),
			})

			humaAPI, router := api.NewAPI(api.APIConfig{
				Logger:     a.logger,
				RateLimit:  a.cfg.Server.RateLimit,
				RateWindow: a.cfg.Server.RateWindow,
			})
			handlers.NewNewsHandler(client.Service(), a.logger).RegisterRoutes(humaAPI)

			srv := &http.Server{
				Addr:         ":" + a.cfg.Server.Port,
				Handler:      router,
				ReadTimeout:  15 * time.Second,
				WriteTimeout: a.cfg.HTTP.Timeout*time.Duration(a.cfg.NewsAPI.MaxRetries+1) + 15*time.Second,
				IdleTimeout:  60 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				a.logger.Info("HTTP server starting", map[string]interface{}{"address": srv.Addr})
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				if err != nil {
					a.logger.Error("HTTP server error", map[string]interface{}{"error": err.Error()})
					return err
				}
				return nil
			case <-ctx.Done():
			}

			a.logger.Info("Shutting down server...", nil)

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if err := srv.Shutdown(shutdownCtx); err != nil {
				a.logger.Error("Server forced to shutdown", map[string]interface{}{"error": err.Error()})
				return err
			}

			a.logger.Info("Server stopped", nil)
			return nil
		},
	}

	cmd.Flags().StringVar(&port, "port", "", "override PORT")
	cmd.Flags().StringSliceVar(&warmHeads, "warm", nil, "keep headlines cached, as country or country:category (e.g. us:business)")
	cmd.Flags().StringSliceVar(&warmTopics, "warm-topic", nil, "keep topic searches cached")
	cmd.Flags().DurationVar(&warmInterval, "warm-interval", workers.DefaultWarmerConfig().Interval, "how often warmed queries are re-run")
	return cmd
}

// warmJobs turns --warm and --warm-topic values into warmer jobs
func warmJobs(headlines, topics []string) ([]workers.Job, error) {
	var jobs []workers.Job

	for _, spec := range headlines {
		country, category, _ := strings.Cut(strings.TrimSpace(spec), ":")
		params := domain.Params{}
		setIf(params, "country", country)
		setIf(params, "category", category)
		if len(params) == 0 {
			return nil, fmt.Errorf("invalid --warm value %q", spec)
		}
		jobs = append(jobs, workers.Job{Endpoint: domain.EndpointTopHeadlines, Params: params})
	}

	for _, topic := range topics {
		if strings.TrimSpace(topic) == "" {
			return nil, fmt.Errorf("--warm-topic cannot be empty")
		}
		jobs = append(jobs, workers.Job{Endpoint: domain.EndpointEverything, Params: domain.Params{"q": strings.TrimSpace(topic)}})
	}

	return jobs, nil
}
