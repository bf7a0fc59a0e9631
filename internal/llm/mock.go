package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// MockProvider is a canned-response provider for tests and offline use.
// Responses are returned in FIFO order; when the queue is exhausted the
// default response is returned.
type MockProvider struct {
	mu        sync.Mutex
	responses []mockResponse
	calls     []Request
	def       mockResponse
}

type mockResponse struct {
	resp *Response
	err  error
}

// NewMockProvider returns a MockProvider whose default response is an
// empty JSON object.
func NewMockProvider() *MockProvider {
	return &MockProvider{
		def: mockResponse{
			resp: &Response{
				Content:    json.RawMessage(`{}`),
				Model:      "mock",
				StopReason: "end",
			},
		},
	}
}

// AddResponse queues a successful response.
func (m *MockProvider) AddResponse(content json.RawMessage) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, mockResponse{
		resp: &Response{
			Content:    content,
			Model:      "mock",
			StopReason: "end",
		},
	})
}

// AddError queues an error response.
func (m *MockProvider) AddError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, mockResponse{err: err})
}

func (m *MockProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, req)

	next := m.def
	if len(m.responses) > 0 {
		next = m.responses[0]
		m.responses = m.responses[1:]
	}
	if next.err != nil {
		return nil, next.err
	}

	if req.Schema != nil && next.resp != nil {
		if err := validateResponse(req.Schema, next.resp.Content); err != nil {
			return nil, err
		}
	}
	return next.resp, nil
}

func (m *MockProvider) ModelID() string {
	return "mock"
}

// CallCount reports how many Generate calls were made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// Calls returns a copy of all recorded requests.
func (m *MockProvider) Calls() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Request, len(m.calls))
	copy(out, m.calls)
	return out
}
