package llm

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/sahayak/internal/store"
)

func openEventRepo(t *testing.T) store.EventRepo {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "llm.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s.EventRepo()
}

func TestLoggingProvider_RecordsGenerate(t *testing.T) {
	repo := openEventRepo(t)
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage("Use stones to teach counting."),
		Usage:   Usage{InputTokens: 12, OutputTokens: 7},
	})
	p := WithLogging(mock, "mock", repo, zap.NewNop(), time.Second)

	ctx := WithPurpose(context.Background(), "chat")
	resp, err := p.Generate(ctx, Request{
		System:   "coach",
		Messages: []Message{{Role: RoleUser, Content: "counting?"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "Use stones to teach counting.", resp.Text())

	events, err := repo.QueryLLMEvents(context.Background(), store.QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "chat", events[0].Purpose)
	assert.Equal(t, "mock", events[0].Provider)
	assert.Equal(t, 12, events[0].InputTokens)
	assert.True(t, events[0].Success)
	assert.Contains(t, events[0].RequestBody, "[system]\ncoach")
	assert.Contains(t, events[0].RequestBody, "counting?")
}

func TestLoggingProvider_RecordsFailure(t *testing.T) {
	repo := openEventRepo(t)
	core, logs := observer.New(zap.WarnLevel)
	mock := NewMockProvider(MockResponse{Err: &ErrAuthentication{Err: errors.New("bad key")}})
	p := WithLogging(mock, "mock", repo, zap.New(core), 0)

	_, err := p.Generate(WithPurpose(context.Background(), "chat"), Request{})
	require.Error(t, err)

	events, err := repo.QueryLLMEvents(context.Background(), store.QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.False(t, events[0].Success)
	assert.Contains(t, events[0].ErrorMessage, "bad key")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "llm call failed", entry.Message)
	assert.Equal(t, "authentication", entry.ContextMap()["category"])
}

func TestLoggingProvider_ForwardsImageAndAudio(t *testing.T) {
	repo := openEventRepo(t)
	mock := NewMockProvider()
	mock.AddImage(MockImage{Image: &Image{MIMEType: "image/png", Data: []byte("png")}})
	mock.AddTranscript(MockTranscript{Text: "hello"})
	p := WithLogging(mock, "mock", repo, nil, time.Second)

	img, err := p.GenerateImage(WithPurpose(context.Background(), "visualize"), ImageRequest{Prompt: "a tree"})
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), img.Data)

	text, err := p.Transcribe(WithPurpose(context.Background(), "speech"), strings.NewReader("wav"), "audio/wav")
	require.NoError(t, err)
	assert.Equal(t, "hello", text)

	usage, err := repo.LLMUsageByPurpose(context.Background())
	require.NoError(t, err)
	assert.Len(t, usage, 2)
}

type textOnlyProvider struct{}

func (textOnlyProvider) Generate(context.Context, Request) (*Response, error) { return nil, nil }
func (textOnlyProvider) ModelID() string                                      { return "text-only" }

func TestLoggingProvider_UnsupportedCapabilities(t *testing.T) {
	p := WithLogging(textOnlyProvider{}, "anthropic", nil, nil, 0)

	_, err := p.GenerateImage(context.Background(), ImageRequest{Prompt: "x"})
	assert.ErrorIs(t, err, ErrUnsupported)

	_, err = p.Transcribe(context.Background(), strings.NewReader(""), "audio/wav")
	assert.ErrorIs(t, err, ErrUnsupported)
	assert.Equal(t, CategoryConfiguration, Classify(err))
}
