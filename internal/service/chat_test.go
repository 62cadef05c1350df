package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	reply      string
	err        error
	lastPrompt string
}

func (p *stubProvider) Generate(_ context.Context, prompt string) (string, error) {
	p.lastPrompt = prompt
	if p.err != nil {
		return "", p.err
	}
	return p.reply, nil
}

func TestChatService_Relay_PassesTextThrough(t *testing.T) {
	t.Parallel()

	provider := &stubProvider{reply: "hello"}
	svc := &ChatService{Provider: provider}

	reply, err := svc.Relay(context.Background(), "hi")
	require.NoError(t, err)
	assert.Equal(t, "hello", reply)
	assert.Equal(t, "hi", provider.lastPrompt)
}

func TestChatService_Relay_EmptyReplyUnchanged(t *testing.T) {
	t.Parallel()

	svc := &ChatService{Provider: &stubProvider{reply: ""}}

	reply, err := svc.Relay(context.Background(), "anything")
	require.NoError(t, err)
	assert.Equal(t, "", reply)
}

func TestChatService_Relay_ProviderFailure(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	svc := &ChatService{Provider: &stubProvider{err: boom}}

	reply, err := svc.Relay(context.Background(), "hi")
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, reply)
}
