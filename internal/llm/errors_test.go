package llm

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Category
	}{
		{"nil", nil, CategoryNone},
		{"missing credential", fmt.Errorf("gemini: %w", ErrMissingCredential), CategoryConfiguration},
		{"unsupported", fmt.Errorf("x: %w", ErrUnsupported), CategoryConfiguration},
		{"authentication", &ErrAuthentication{Err: errors.New("403")}, CategoryAuthentication},
		{"wrapped authentication", fmt.Errorf("chat: %w", &ErrAuthentication{}), CategoryAuthentication},
		{"empty", &ErrEmptyResponse{What: "text"}, CategoryEmptyResponse},
		{"invalid", &ErrInvalidResponse{Err: errors.New("bad json")}, CategoryEmptyResponse},
		{"truncated", &ErrMaxTokensExceeded{}, CategoryEmptyResponse},
		{"unavailable", &ErrProviderUnavailable{Err: errors.New("dial tcp")}, CategoryConnectivity},
		{"rate limit", &ErrRateLimit{}, CategoryConnectivity},
		{"deadline", context.DeadlineExceeded, CategoryConnectivity},
		{"anything else", errors.New("mystery"), CategoryConnectivity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func TestCategoryString(t *testing.T) {
	assert.Equal(t, "configuration", CategoryConfiguration.String())
	assert.Equal(t, "empty-response", CategoryEmptyResponse.String())
	assert.Equal(t, "unknown", Category(99).String())
}

func TestErrEmptyResponseMessage(t *testing.T) {
	assert.Equal(t, "LLM returned an empty response", (&ErrEmptyResponse{}).Error())
	assert.Equal(t, "LLM returned no image", (&ErrEmptyResponse{What: "image"}).Error())
}
