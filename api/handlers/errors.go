// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	"newsapi-connector/core/errors"

	"github.com/danielgtaylor/huma/v2"
)

// toHumaError converts domain errors to appropriate Huma HTTP errors.
// Upstream faults never reach here; the service reports them as Absent.
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	if errors.IsValidation(err) {
		return huma.Error400BadRequest(err.Error())
	}

	if errors.IsConfiguration(err) {
		return huma.Error503ServiceUnavailable("News source is not configured", err)
	}

	return huma.Error500InternalServerError("Internal server error", err)
}
