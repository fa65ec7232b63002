package handlers

import (
	"fmt"
	"testing"

	"newsapi-connector/core/errors"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
)

func TestToHumaError(t *testing.T) {
	tests := []struct {
		name           string
		input          error
		expectedStatus int
		expectedInMsg  string
	}{
		{
			name:           "nil error returns nil",
			input:          nil,
			expectedStatus: 0,
			expectedInMsg:  "",
		},
		{
			name:           "ValidationError returns 400",
			input:          &errors.ValidationError{Field: "q", Message: "search topic is required"},
			expectedStatus: 400,
			expectedInMsg:  "search topic is required",
		},
		{
			name:           "wrapped ValidationError returns 400",
			input:          fmt.Errorf("search: %w", &errors.ValidationError{Field: "q", Message: "required"}),
			expectedStatus: 400,
			expectedInMsg:  "required",
		},
		{
			name:           "ConfigurationError returns 503",
			input:          &errors.ConfigurationError{Field: "NEWSAPI_KEY", Message: "cannot be blank"},
			expectedStatus: 503,
			expectedInMsg:  "not configured",
		},
		{
			name:           "TransportError returns 500",
			input:          &errors.TransportError{Endpoint: "everything", StatusCode: 502},
			expectedStatus: 500,
			expectedInMsg:  "Internal server error",
		},
		{
			name:           "unknown error returns 500",
			input:          fmt.Errorf("some unknown error"),
			expectedStatus: 500,
			expectedInMsg:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := toHumaError(tt.input)

			if tt.input == nil {
				assert.Nil(t, result)
				return
			}

			humaErr, ok := result.(*huma.ErrorModel)
			assert.True(t, ok, "Expected huma.ErrorModel")
			assert.Equal(t, tt.expectedStatus, humaErr.Status)
			assert.Contains(t, humaErr.Detail, tt.expectedInMsg)
		})
	}
}
