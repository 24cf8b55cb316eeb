package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/central-university-dev/go-reactbot/internal/bot/service"
	"github.com/central-university-dev/go-reactbot/internal/domain/models"
)

func chatMessage(text string) *models.Message {
	return &models.Message{
		ChatID:   testChatID,
		UserID:   testUserID,
		Text:     text,
		Username: testUsername,
	}
}

func TestBotService_ProcessMessage_SendsResponse(t *testing.T) {
	env := newTestEnv(t, service.Options{})
	ctx := context.Background()

	env.run(t, "/react add greet\ntype text\nmatch start\ntriggers hello\nresponses first second")
	env.service.SetRandom(func(n int) int { return n - 1 })

	env.telegram.On("SendMessage", mock.Anything, testChatID, "second").Return(nil).Once()

	require.NoError(t, env.service.ProcessMessage(ctx, chatMessage("Hello everyone")))

	usage, err := env.usage.Usage(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"greet": 1}, usage)
}

func TestBotService_ProcessMessage_NoMatch(t *testing.T) {
	env := newTestEnv(t, service.Options{})
	env.addRules(t, "greet")

	require.NoError(t, env.service.ProcessMessage(context.Background(), chatMessage("hello there")))

	env.telegram.AssertNotCalled(t, "SendMessage", mock.Anything, mock.Anything, mock.Anything)
}

func TestBotService_ProcessMessage_ImageRule(t *testing.T) {
	env := newTestEnv(t, service.Options{})

	env.run(t, "/react add cat\ntype image\nmatch any\ntriggers cat\nresponses https://example.com/cat.png")

	env.telegram.On("SendImage", mock.Anything, testChatID, "https://example.com/cat.png").Return(nil).Once()

	require.NoError(t, env.service.ProcessMessage(context.Background(), chatMessage("look, a cat!")))
}

func TestBotService_ProcessMessage_CounterExhaustion(t *testing.T) {
	env := newTestEnv(t, service.Options{})
	ctx := context.Background()

	env.run(t, addGreetInput+"\ncounter 1")

	env.telegram.On("SendMessage", mock.Anything, testChatID, "hi").Return(nil).Once()

	require.NoError(t, env.service.ProcessMessage(ctx, chatMessage("hello")))
	require.NoError(t, env.service.ProcessMessage(ctx, chatMessage("hello")))

	rule, err := env.store.Get(ctx, "greet")
	require.NoError(t, err)
	require.NotNil(t, rule.Counter)
	assert.Equal(t, int64(0), *rule.Counter)
	assert.True(t, rule.Exhausted())
}

func TestBotService_ProcessMessage_RespectsRestrictions(t *testing.T) {
	env := newTestEnv(t, service.Options{})
	ctx := context.Background()

	env.run(t, addGreetInput+"\nusers 42")

	require.NoError(t, env.service.ProcessMessage(ctx, chatMessage("hello")))

	env.telegram.On("SendMessage", mock.Anything, testChatID, "hi").Return(nil).Once()

	require.NoError(t, env.service.ProcessMessage(ctx, &models.Message{ChatID: testChatID, UserID: 42, Text: "hello"}))
}

func TestBotService_ProcessMessage_RateLimited(t *testing.T) {
	env := newTestEnv(t, service.Options{})
	env.addRules(t, "greet")
	env.limiter.allow = false

	require.NoError(t, env.service.ProcessMessage(context.Background(), chatMessage("hello")))

	env.telegram.AssertNotCalled(t, "SendMessage", mock.Anything, mock.Anything, mock.Anything)
}

func TestBotService_ProcessMessage_SendError(t *testing.T) {
	env := newTestEnv(t, service.Options{})
	ctx := context.Background()
	env.addRules(t, "greet")

	env.telegram.On("SendMessage", mock.Anything, testChatID, "hi").Return(assert.AnError).Once()

	err := env.service.ProcessMessage(ctx, chatMessage("hello"))
	require.ErrorIs(t, err, assert.AnError)

	usage, err := env.usage.Usage(ctx)
	require.NoError(t, err)
	assert.Empty(t, usage)
}
