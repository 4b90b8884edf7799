package llm

import (
	"context"
	"encoding/json"
	"io"
	"sync"
)

// MockResponse is a canned response for the MockProvider.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// MockImage is a canned GenerateImage result.
type MockImage struct {
	Image *Image
	Err   error
}

// MockTranscript is a canned Transcribe result.
type MockTranscript struct {
	Text string
	Err  error
}

// MockProvider is a deterministic Provider for testing.
// It returns canned responses in FIFO order and records all requests.
type MockProvider struct {
	mu          sync.Mutex
	responses   []MockResponse
	images      []MockImage
	transcripts []MockTranscript

	Calls      []Request
	ImageCalls []ImageRequest
	AudioCalls [][]byte
}

var (
	_ Provider      = (*MockProvider)(nil)
	_ ImageProvider = (*MockProvider)(nil)
	_ Transcriber   = (*MockProvider)(nil)
)

// NewMockProvider creates a MockProvider with the given canned responses.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{responses: responses}
}

// Generate returns the next canned response or ErrProviderUnavailable if
// the queue is empty.
func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	if len(m.responses) == 0 {
		return nil, &ErrProviderUnavailable{Err: nil}
	}

	resp := m.responses[0]
	m.responses = m.responses[1:]

	if resp.Err != nil {
		return nil, resp.Err
	}

	return &Response{
		Content:    resp.Content,
		Usage:      resp.Usage,
		Model:      "mock",
		StopReason: "end",
	}, nil
}

// GenerateImage returns the next canned image or ErrEmptyResponse if the
// queue is empty.
func (m *MockProvider) GenerateImage(_ context.Context, req ImageRequest) (*Image, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ImageCalls = append(m.ImageCalls, req)

	if len(m.images) == 0 {
		return nil, &ErrEmptyResponse{What: "image"}
	}
	next := m.images[0]
	m.images = m.images[1:]
	return next.Image, next.Err
}

// Transcribe returns the next canned transcript, or "" when none is queued.
func (m *MockProvider) Transcribe(_ context.Context, audio io.Reader, _ string) (string, error) {
	data, err := io.ReadAll(audio)
	if err != nil {
		return "", err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.AudioCalls = append(m.AudioCalls, data)

	if len(m.transcripts) == 0 {
		return "", nil
	}
	next := m.transcripts[0]
	m.transcripts = m.transcripts[1:]
	return next.Text, next.Err
}

// ModelID returns "mock".
func (m *MockProvider) ModelID() string {
	return "mock"
}

// AddResponse appends a canned response to the queue.
func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, resp)
}

// AddImage appends a canned image result to the queue.
func (m *MockProvider) AddImage(img MockImage) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.images = append(m.images, img)
}

// AddTranscript appends a canned transcription result to the queue.
func (m *MockProvider) AddTranscript(tr MockTranscript) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transcripts = append(m.transcripts, tr)
}

// CallCount returns the number of Generate calls made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// ImageCallCount returns the number of GenerateImage calls made.
func (m *MockProvider) ImageCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.ImageCalls)
}
