package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/sahayak/internal/store"
)

type purposeKey struct{}

// WithPurpose labels the calls made with ctx, e.g. "chat" or "image-edit".
// The label is stored with each recorded event.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey{}, purpose)
}

// PurposeFrom returns the label set by WithPurpose, or "unknown".
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey{}).(string); ok && v != "" {
		return v
	}
	return "unknown"
}

// LoggingProvider is a decorator that records every LLM call as an event
// and bounds each call by the configured timeout. It forwards image and
// transcription calls when the wrapped provider supports them.
type LoggingProvider struct {
	inner     Provider
	name      string
	eventRepo store.EventRepo
	logger    *zap.Logger
	timeout   time.Duration
}

var (
	_ Provider      = (*LoggingProvider)(nil)
	_ ImageProvider = (*LoggingProvider)(nil)
	_ Transcriber   = (*LoggingProvider)(nil)
)

// WithLogging wraps a Provider with event logging. A nil repo only logs
// through zap; a nil logger is replaced by a no-op logger.
func WithLogging(p Provider, name string, repo store.EventRepo, logger *zap.Logger, timeout time.Duration) *LoggingProvider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LoggingProvider{
		inner:     p,
		name:      name,
		eventRepo: repo,
		logger:    logger.Named("llm"),
		timeout:   timeout,
	}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	ctx, cancel := l.withTimeout(ctx)
	defer cancel()

	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)

	data := store.LLMRequestEventData{
		Provider:    l.name,
		Model:       l.inner.ModelID(),
		Purpose:     PurposeFrom(ctx),
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		RequestBody: serializeRequest(req),
	}
	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		if resp.Model != "" {
			data.Model = resp.Model
		}
		data.ResponseBody = string(resp.Content)
	}
	l.record(ctx, data, err)

	return resp, err
}

// GenerateImage forwards to the wrapped provider's image capability.
func (l *LoggingProvider) GenerateImage(ctx context.Context, req ImageRequest) (*Image, error) {
	ip, ok := l.inner.(ImageProvider)
	if !ok {
		return nil, fmt.Errorf("%s image generation: %w", l.name, ErrUnsupported)
	}

	ctx, cancel := l.withTimeout(ctx)
	defer cancel()

	start := time.Now()
	img, err := ip.GenerateImage(ctx, req)

	body := "[image prompt]\n" + req.Prompt
	if req.Source != nil {
		body += fmt.Sprintf("\n[source %s, %d bytes]", req.Source.MIMEType, len(req.Source.Data))
	}
	data := store.LLMRequestEventData{
		Provider:    l.name,
		Model:       l.imageModelID(),
		Purpose:     PurposeFrom(ctx),
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		RequestBody: body,
	}
	if img != nil {
		data.ResponseBody = fmt.Sprintf("[image %s, %d bytes]", img.MIMEType, len(img.Data))
	}
	l.record(ctx, data, err)

	return img, err
}

// Transcribe forwards to the wrapped provider's speech capability.
func (l *LoggingProvider) Transcribe(ctx context.Context, audio io.Reader, mimeType string) (string, error) {
	tr, ok := l.inner.(Transcriber)
	if !ok {
		return "", fmt.Errorf("%s transcription: %w", l.name, ErrUnsupported)
	}

	ctx, cancel := l.withTimeout(ctx)
	defer cancel()

	start := time.Now()
	text, err := tr.Transcribe(ctx, audio, mimeType)

	l.record(ctx, store.LLMRequestEventData{
		Provider:     l.name,
		Model:        l.inner.ModelID(),
		Purpose:      PurposeFrom(ctx),
		LatencyMs:    time.Since(start).Milliseconds(),
		Success:      err == nil,
		RequestBody:  "[audio " + mimeType + "]",
		ResponseBody: text,
	}, err)

	return text, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

// imageModelID is the model that serves GenerateImage, when the wrapped
// provider uses a separate one.
func (l *LoggingProvider) imageModelID() string {
	if im, ok := l.inner.(interface{ ImageModelID() string }); ok && im.ImageModelID() != "" {
		return im.ImageModelID()
	}
	return l.inner.ModelID()
}

func (l *LoggingProvider) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if l.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, l.timeout)
}

func (l *LoggingProvider) record(ctx context.Context, data store.LLMRequestEventData, err error) {
	fields := []zap.Field{
		zap.String("provider", data.Provider),
		zap.String("model", data.Model),
		zap.String("purpose", data.Purpose),
		zap.Int64("latency_ms", data.LatencyMs),
		zap.Int("input_tokens", data.InputTokens),
		zap.Int("output_tokens", data.OutputTokens),
	}
	if err != nil {
		data.ErrorMessage = err.Error()
		l.logger.Warn("llm call failed", append(fields, zap.Error(err), zap.Stringer("category", Classify(err)))...)
	} else {
		l.logger.Debug("llm call", fields...)
	}

	if l.eventRepo == nil {
		return
	}
	// The event write must not fail the call, and must outlive a cancelled request.
	if logErr := l.eventRepo.AppendLLMRequest(context.WithoutCancel(ctx), data); logErr != nil {
		l.logger.Warn("failed to record llm event", zap.Error(logErr))
	}
}

// serializeRequest builds a readable representation of the LLM request.
func serializeRequest(req Request) string {
	var b strings.Builder

	if req.System != "" {
		b.WriteString("[system]\n")
		b.WriteString(req.System)
		b.WriteString("\n\n")
	}

	for _, m := range req.Messages {
		fmt.Fprintf(&b, "[%s]\n", m.Role)
		b.WriteString(m.Content)
		b.WriteString("\n\n")
	}

	if req.Schema != nil {
		schemaDef, err := json.Marshal(req.Schema.Definition)
		if err == nil {
			fmt.Fprintf(&b, "[schema: %s]\n", req.Schema.Name)
			b.Write(schemaDef)
			b.WriteString("\n")
		}
	}

	return b.String()
}
