package assistant

import (
	"context"

	"github.com/huangsam/archsurvey/internal/contract"
	"github.com/huangsam/archsurvey/schema"
	"github.com/stretchr/testify/mock"
)

// MockChatProvider is a mock implementation of ChatProvider for testing.
type MockChatProvider struct {
	mock.Mock
}

var _ contract.ChatProvider = &MockChatProvider{} // Compile-time check

// Complete implements the ChatProvider interface.
func (m *MockChatProvider) Complete(ctx context.Context, system string, messages []schema.ChatMessage) (string, error) {
	args := m.Called(ctx, system, messages)
	return args.String(0), args.Error(1)
}
