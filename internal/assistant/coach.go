package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/abhisek/sahayak/internal/llm"
	"github.com/abhisek/sahayak/internal/profile"
)

// Fallback replies appended to the transcript when a chat turn fails.
const (
	ConfigurationFallback  = "⚠️ Configuration Error: API key is missing. Set SAHAYAK_LLM_GEMINI_API_KEY (or GEMINI_API_KEY) and restart Sahayak."
	AuthenticationFallback = "⚠️ Authentication Error: The provided API key is invalid or expired. Please check your configuration."
	EmptyFallback          = "I understood your question, but I'm having trouble formulating an answer right now. Please try asking again."
	ConnectivityFallback   = "I'm having trouble connecting to the Assistant. Please check your internet connection and try again."
)

// ErrNothingToEdit is returned by EditImage without a source image or
// instruction.
var ErrNothingToEdit = errors.New("an image and an instruction are required")

const (
	chatThinkingBudget = 1024
	refineMaxTokens    = 512
)

// Coach answers teacher questions and draws classroom illustrations.
type Coach struct {
	provider llm.Provider
	setupErr error
	logger   *zap.Logger
}

// NewCoach returns a Coach backed by provider. When setupErr is non-nil the
// provider could not be built and every call fails with setupErr before
// anything is sent.
func NewCoach(provider llm.Provider, setupErr error, logger *zap.Logger) *Coach {
	if logger == nil {
		logger = zap.NewNop()
	}
	if setupErr == nil && provider == nil {
		setupErr = fmt.Errorf("no provider: %w", llm.ErrMissingCredential)
	}
	return &Coach{provider: provider, setupErr: setupErr, logger: logger.Named("coach")}
}

// Ready reports whether the coach can reach a provider.
func (c *Coach) Ready() error {
	return c.setupErr
}

// Ask makes one chat call and returns the reply text.
func (c *Coach) Ask(ctx context.Context, p profile.UserProfile, history []Message, text string) (string, error) {
	if c.setupErr != nil {
		return "", c.setupErr
	}
	ctx = llm.WithPurpose(ctx, "chat")

	resp, err := c.provider.Generate(ctx, llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildChatPrompt(p, history, text)},
		},
		ThinkingBudget: chatThinkingBudget,
	})
	if err != nil {
		return "", fmt.Errorf("chat: %w", err)
	}

	reply := strings.TrimSpace(resp.Text())
	if reply == "" {
		return "", &llm.ErrEmptyResponse{What: "reply"}
	}
	return reply, nil
}

// Reply is Ask with failures turned into a fixed fallback text.
func (c *Coach) Reply(ctx context.Context, p profile.UserProfile, history []Message, text string) string {
	reply, err := c.Ask(ctx, p, history, text)
	if err == nil {
		return reply
	}
	cat := llm.Classify(err)
	c.logger.Warn("chat turn failed", zap.Error(err), zap.Stringer("category", cat))
	return FallbackFor(cat)
}

// FallbackFor returns the chat fallback for a failure category.
func FallbackFor(cat llm.Category) string {
	switch cat {
	case llm.CategoryConfiguration:
		return ConfigurationFallback
	case llm.CategoryAuthentication:
		return AuthenticationFallback
	case llm.CategoryEmptyResponse:
		return EmptyFallback
	}
	return ConnectivityFallback
}

// VisualPrompt distills text into an illustration prompt. Text without
// anything drawable yields BlankBoardPrompt.
func (c *Coach) VisualPrompt(ctx context.Context, text string) (string, error) {
	if c.setupErr != nil {
		return "", c.setupErr
	}
	ctx = llm.WithPurpose(ctx, "visualize-prompt")

	resp, err := c.provider.Generate(ctx, llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildVisualPrompt(text)},
		},
		Schema:    VisualPromptSchema,
		MaxTokens: refineMaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("refine visual prompt: %w", err)
	}
	if err := llm.ValidateResponse(VisualPromptSchema, resp.Content); err != nil {
		return "", fmt.Errorf("refine visual prompt: %w", err)
	}

	var out visualPromptOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return "", fmt.Errorf("parse visual prompt: %w", err)
	}
	prompt := strings.Trim(strings.TrimSpace(out.Prompt), `"`)
	if !out.Concrete || prompt == "" {
		return BlankBoardPrompt, nil
	}
	return prompt, nil
}

// Visualize illustrates text in two calls: prompt refinement, then image
// generation.
func (c *Coach) Visualize(ctx context.Context, text string) (*llm.Image, error) {
	prompt, err := c.VisualPrompt(ctx, text)
	if err != nil {
		return nil, err
	}
	return c.generateImage(llm.WithPurpose(ctx, "visualize-image"), llm.ImageRequest{Prompt: prompt})
}

// EditImage applies instruction to img in a single call.
func (c *Coach) EditImage(ctx context.Context, img *llm.Image, instruction string) (*llm.Image, error) {
	if c.setupErr != nil {
		return nil, c.setupErr
	}
	if img == nil || len(img.Data) == 0 || strings.TrimSpace(instruction) == "" {
		return nil, ErrNothingToEdit
	}
	return c.generateImage(llm.WithPurpose(ctx, "image-edit"), llm.ImageRequest{
		Prompt: buildEditPrompt(instruction),
		Source: img,
	})
}

func (c *Coach) generateImage(ctx context.Context, req llm.ImageRequest) (*llm.Image, error) {
	if c.setupErr != nil {
		return nil, c.setupErr
	}
	ip, ok := c.provider.(llm.ImageProvider)
	if !ok {
		return nil, fmt.Errorf("%s: %w", c.provider.ModelID(), llm.ErrUnsupported)
	}
	img, err := ip.GenerateImage(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("image: %w", err)
	}
	if img == nil || len(img.Data) == 0 {
		return nil, &llm.ErrEmptyResponse{What: "image"}
	}
	return img, nil
}
