package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrMissingCredential indicates the selected provider has no API key.
// It is detected locally and never sent over the wire.
var ErrMissingCredential = errors.New("API key is missing")

// ErrUnsupported indicates the provider lacks the requested capability.
var ErrUnsupported = errors.New("operation not supported by provider")

// ErrRateLimit indicates the provider returned a rate limit error (429).
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("rate limited (retry after %s): %v", e.RetryAfter, e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrAuthentication indicates the provider rejected the credential (401/403).
type ErrAuthentication struct {
	Err error
}

func (e *ErrAuthentication) Error() string {
	return fmt.Sprintf("authentication failed: %v", e.Err)
}

func (e *ErrAuthentication) Unwrap() error { return e.Err }

// ErrInvalidResponse indicates the LLM returned content that does not
// conform to the requested schema.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid LLM response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrEmptyResponse indicates the provider answered but returned nothing usable.
type ErrEmptyResponse struct {
	What string
}

func (e *ErrEmptyResponse) Error() string {
	if e.What == "" {
		return "LLM returned an empty response"
	}
	return fmt.Sprintf("LLM returned no %s", e.What)
}

// ErrProviderUnavailable indicates the provider is down or unreachable.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("LLM provider unavailable: %v", e.Err)
	}
	return "LLM provider unavailable"
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrMaxTokensExceeded indicates the response was truncated because it
// hit the MaxTokens limit.
type ErrMaxTokensExceeded struct {
	Content json.RawMessage
}

func (e *ErrMaxTokensExceeded) Error() string {
	return "LLM response truncated: max tokens exceeded"
}

// Category groups provider failures by what the user can do about them.
type Category int

const (
	CategoryNone Category = iota
	CategoryConfiguration
	CategoryAuthentication
	CategoryConnectivity
	CategoryEmptyResponse
)

func (c Category) String() string {
	switch c {
	case CategoryNone:
		return "none"
	case CategoryConfiguration:
		return "configuration"
	case CategoryAuthentication:
		return "authentication"
	case CategoryConnectivity:
		return "connectivity"
	case CategoryEmptyResponse:
		return "empty-response"
	}
	return "unknown"
}

// Classify maps err onto a failure category. Unknown errors count as
// connectivity failures.
func Classify(err error) Category {
	if err == nil {
		return CategoryNone
	}
	if errors.Is(err, ErrMissingCredential) || errors.Is(err, ErrUnsupported) {
		return CategoryConfiguration
	}
	var auth *ErrAuthentication
	if errors.As(err, &auth) {
		return CategoryAuthentication
	}
	var empty *ErrEmptyResponse
	if errors.As(err, &empty) {
		return CategoryEmptyResponse
	}
	var invalid *ErrInvalidResponse
	if errors.As(err, &invalid) {
		return CategoryEmptyResponse
	}
	var maxTok *ErrMaxTokensExceeded
	if errors.As(err, &maxTok) {
		return CategoryEmptyResponse
	}
	return CategoryConnectivity
}
