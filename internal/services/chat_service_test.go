package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/campuskit/coursegen-service/internal/utils"
	"github.com/campuskit/coursegen-service/internal/validator"
)

func newChatFixture(client *MockGenerationClient) ChatService {
	return NewChatService(client, validator.New(), utils.NewDevelopmentLogger())
}

func TestChat_ForwardsPromptWithModePersona(t *testing.T) {
	client := new(MockGenerationClient)
	client.On("Complete", mock.Anything,
		mock.MatchedBy(func(system string) bool { return strings.Contains(system, "multiple-choice quiz questions") }),
		"Five questions on recursion, please.",
	).Return("Q1. What is a base case?", nil)

	resp, err := newChatFixture(client).Chat(context.Background(), &ChatRequest{
		Prompt: "Five questions on recursion, please.",
		Mode:   "quiz",
	})

	require.NoError(t, err)
	assert.Equal(t, "Q1. What is a base case?", resp.Reply)
	client.AssertExpectations(t)
}

func TestChat_UnknownModeFallsBackToAssistant(t *testing.T) {
	client := new(MockGenerationClient)
	client.On("Complete", mock.Anything,
		mock.MatchedBy(func(system string) bool { return strings.Contains(system, "teaching assistant") }),
		mock.Anything,
	).Return("Sure, here is a plan.", nil)

	_, err := newChatFixture(client).Chat(context.Background(), &ChatRequest{
		Prompt: "Help me plan a lab session.",
		Mode:   "made-up-mode",
	})

	require.NoError(t, err)
	client.AssertExpectations(t)
}

func TestChat_EmptyPromptRejected(t *testing.T) {
	client := new(MockGenerationClient)

	_, err := newChatFixture(client).Chat(context.Background(), &ChatRequest{Mode: "assistant"})

	require.Error(t, err)
	client.AssertNotCalled(t, "Complete")
}

func TestChat_BackendFailureMapsToUpstreamError(t *testing.T) {
	client := new(MockGenerationClient)
	client.On("Complete", mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("connection refused"))

	_, err := newChatFixture(client).Chat(context.Background(), &ChatRequest{Prompt: "hello"})

	assert.ErrorIs(t, err, ErrGenerationFailed)
}
