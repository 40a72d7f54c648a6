package core

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/huangsam/archsurvey/internal/assistant"
	"github.com/huangsam/archsurvey/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestExecuteChat(t *testing.T) {
	mgr := newStoreManager(t)
	ow := &recordingWriter{}
	require.NoError(t, ExecuteRecommend(testCtx(), testConfig(), mgr, ow, yesFor(1, 13)))
	store := mgr.GetSurveyStore()

	t.Run("single question", func(t *testing.T) {
		provider := &assistant.MockChatProvider{}
		provider.On("Complete", mock.Anything, mock.Anything,
			mock.MatchedBy(func(msgs []schema.ChatMessage) bool {
				return len(msgs) == 2 && msgs[0].Role == schema.AssistantRole && msgs[1].Content == "Which broker?"
			}),
		).Return("Kafka works well.", nil).Once()

		var out strings.Builder
		advisor := assistant.NewAdvisor(provider, nil, 0)
		require.NoError(t, ExecuteChat(context.Background(), testConfig(), mgr, advisor, 0, "Which broker?", nil, &out))

		assert.Equal(t, "Assistant: Kafka works well.\n", out.String())
		history, err := store.GetChatHistory(ow.runID)
		require.NoError(t, err)
		require.Len(t, history, 3, "greeting, question and reply")
		assert.Contains(t, history[0].Content, "microservices architecture")
		assert.Equal(t, schema.UserRole, history[1].Role)
		provider.AssertExpectations(t)
	})

	t.Run("provider failure degrades", func(t *testing.T) {
		provider := &assistant.MockChatProvider{}
		provider.On("Complete", mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("503")).Once()

		var out strings.Builder
		advisor := assistant.NewAdvisor(provider, nil, 0)
		require.NoError(t, ExecuteChat(context.Background(), testConfig(), mgr, advisor, ow.runID, "Why?", nil, &out))

		assert.Contains(t, out.String(), "Sorry")
		history, err := store.GetChatHistory(ow.runID)
		require.NoError(t, err)
		assert.Len(t, history, 3, "failed turns are not recorded")
	})

	t.Run("interactive", func(t *testing.T) {
		provider := &assistant.MockChatProvider{}
		provider.On("Complete", mock.Anything, mock.Anything,
			mock.MatchedBy(func(msgs []schema.ChatMessage) bool { return len(msgs) == 4 }),
		).Return("It depends.", nil).Once()

		var out strings.Builder
		advisor := assistant.NewAdvisor(provider, nil, 0)
		in := strings.NewReader("What about cost?\n\nexit\nignored\n")
		require.NoError(t, ExecuteChat(context.Background(), testConfig(), mgr, advisor, ow.runID, "", in, &out))

		assert.Contains(t, out.String(), "You: ")
		assert.Contains(t, out.String(), "Assistant: It depends.")
		assert.NotContains(t, out.String(), "Ask me anything", "no greeting on an existing transcript")
		provider.AssertExpectations(t)
	})

	t.Run("no provider", func(t *testing.T) {
		var out strings.Builder
		advisor := assistant.NewAdvisor(nil, nil, 0)
		require.NoError(t, ExecuteChat(context.Background(), testConfig(), mgr, advisor, ow.runID, "Hello?", nil, &out))
		assert.Contains(t, out.String(), "no API key")
	})
}

func TestExecuteChat_Greeting(t *testing.T) {
	mgr := newStoreManager(t)
	require.NoError(t, ExecuteRecommend(testCtx(), testConfig(), mgr, &recordingWriter{}, nil))

	var out strings.Builder
	advisor := assistant.NewAdvisor(&assistant.MockChatProvider{}, nil, 0)
	require.NoError(t, ExecuteChat(context.Background(), testConfig(), mgr, advisor, 0, "", strings.NewReader(""), &out))

	assert.Contains(t, out.String(), "Assistant: Based on your answers, a **monolithic architecture**")
	assert.Contains(t, out.String(), "Ask me anything")
}

func TestExecuteChat_Errors(t *testing.T) {
	advisor := assistant.NewAdvisor(nil, nil, 0)
	assert.ErrorIs(t, ExecuteChat(context.Background(), testConfig(), nil, advisor, 0, "q", nil, &strings.Builder{}), errStoreNotInitialized)

	mgr := newStoreManager(t)
	err := ExecuteChat(context.Background(), testConfig(), mgr, advisor, 0, "q", nil, &strings.Builder{})
	assert.ErrorContains(t, err, "no stored survey runs")
}

func TestExecuteChatAnswers(t *testing.T) {
	t.Run("single question without a store", func(t *testing.T) {
		provider := &assistant.MockChatProvider{}
		provider.On("Complete", mock.Anything,
			mock.MatchedBy(func(system string) bool { return strings.Contains(system, `"answered": 13`) }),
			mock.MatchedBy(func(msgs []schema.ChatMessage) bool {
				return len(msgs) == 2 && msgs[0].Role == schema.AssistantRole && msgs[1].Content == "Where do I start?"
			}),
		).Return("Split the billing service first.", nil).Once()

		var out strings.Builder
		advisor := assistant.NewAdvisor(provider, nil, 0)
		require.NoError(t, ExecuteChatAnswers(context.Background(), testConfig(), advisor, yesFor(1, 13), "Where do I start?", nil, &out))

		assert.Equal(t, "Assistant: Split the billing service first.\n", out.String())
		provider.AssertExpectations(t)
	})

	t.Run("interactive keeps the transcript in memory", func(t *testing.T) {
		provider := &assistant.MockChatProvider{}
		provider.On("Complete", mock.Anything, mock.Anything,
			mock.MatchedBy(func(msgs []schema.ChatMessage) bool { return len(msgs) == 2 }),
		).Return("First.", nil).Once()
		provider.On("Complete", mock.Anything, mock.Anything,
			mock.MatchedBy(func(msgs []schema.ChatMessage) bool { return len(msgs) == 4 }),
		).Return("Second.", nil).Once()

		var out strings.Builder
		advisor := assistant.NewAdvisor(provider, nil, 0)
		in := strings.NewReader("one\ntwo\n")
		require.NoError(t, ExecuteChatAnswers(context.Background(), testConfig(), advisor, nil, "", in, &out))

		assert.Contains(t, out.String(), "Assistant: Based on your answers, a **monolithic architecture**")
		assert.Contains(t, out.String(), "Assistant: Second.")
		provider.AssertExpectations(t)
	})

	t.Run("invalid answers", func(t *testing.T) {
		advisor := assistant.NewAdvisor(nil, nil, 0)
		err := ExecuteChatAnswers(context.Background(), testConfig(), advisor, map[int]float64{99: 1}, "q", nil, &strings.Builder{})
		assert.ErrorIs(t, err, schema.ErrUnknownQuestion)
	})
}
