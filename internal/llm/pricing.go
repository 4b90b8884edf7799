package llm

// ModelCost holds list pricing for a model in USD.
type ModelCost struct {
	InputPerMTok  float64 // per 1M input tokens
	OutputPerMTok float64 // per 1M output tokens
	// PerCall is charged once per request, for endpoints billed per
	// generated image rather than per token.
	PerCall float64
}

// Cost estimates the USD cost of calls requests using the given tokens.
func (c ModelCost) Cost(calls, inputTokens, outputTokens int) float64 {
	return float64(calls)*c.PerCall +
		float64(inputTokens)*c.InputPerMTok/1_000_000 +
		float64(outputTokens)*c.OutputPerMTok/1_000_000
}

// LookupCost returns the pricing for a model ID, or nil if unknown.
func LookupCost(modelID string) *ModelCost {
	if c, ok := modelCosts[modelID]; ok {
		return &c
	}
	return nil
}

// modelCosts covers the models the provider aliases resolve to, plus
// common OpenRouter routes. Last updated: 2026-02-15.
var modelCosts = map[string]ModelCost{
	// Google (Gemini)
	"gemini-2.0-flash":       {InputPerMTok: 0.1, OutputPerMTok: 0.4},
	"gemini-2.5-flash":       {InputPerMTok: 0.3, OutputPerMTok: 2.5},
	"gemini-2.5-flash-lite":  {InputPerMTok: 0.1, OutputPerMTok: 0.4},
	"gemini-2.5-flash-image": {InputPerMTok: 0.3, OutputPerMTok: 30},
	"gemini-2.5-pro":         {InputPerMTok: 1.25, OutputPerMTok: 10},
	"gemini-flash-latest":    {InputPerMTok: 0.3, OutputPerMTok: 2.5},

	// OpenAI
	"gpt-4o":       {InputPerMTok: 2.5, OutputPerMTok: 10},
	"gpt-4o-mini":  {InputPerMTok: 0.15, OutputPerMTok: 0.6},
	"gpt-4.1-mini": {InputPerMTok: 0.4, OutputPerMTok: 1.6},
	"gpt-5-mini":   {InputPerMTok: 0.25, OutputPerMTok: 2},
	"dall-e-3":     {PerCall: 0.04},
	"gpt-image-1":  {InputPerMTok: 5, OutputPerMTok: 40},

	// Anthropic
	"claude-haiku-4-5-20251001": {InputPerMTok: 1, OutputPerMTok: 5},
	"claude-sonnet-4-20250514":  {InputPerMTok: 3, OutputPerMTok: 15},
	"claude-opus-4-1-20250805":  {InputPerMTok: 15, OutputPerMTok: 75},

	// OpenRouter
	"google/gemini-2.5-flash":    {InputPerMTok: 0.3, OutputPerMTok: 2.5},
	"google/gemini-2.5-pro":      {InputPerMTok: 1.25, OutputPerMTok: 10},
	"openai/gpt-4o-mini":         {InputPerMTok: 0.15, OutputPerMTok: 0.6},
	"anthropic/claude-haiku-4.5": {InputPerMTok: 1, OutputPerMTok: 5},
}
