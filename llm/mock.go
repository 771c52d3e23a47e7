package llm

import "context"

// MockClient is a CompletionClient for tests and offline development. It
// echoes the last user message, or replies with a canned script entry when
// one matches.
type MockClient struct {
	// Script maps a user message to the completion to return for it.
	Script map[string]string
}

var _ CompletionClient = (*MockClient)(nil)

// NewMockClient creates a mock completion client.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// Complete returns a deterministic completion without any network call.
func (m *MockClient) Complete(ctx context.Context, messages []Message) (string, error) {
	var lastUser string
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == "user" {
			lastUser = messages[i].Content
			break
		}
	}

	if reply, ok := m.Script[lastUser]; ok {
		return reply, nil
	}
	if lastUser == "" {
		return "[MOCK] This is a mock completion.", nil
	}
	return "[MOCK] Received: " + truncate(lastUser, 100), nil
}

// truncate truncates a string to the given length.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
