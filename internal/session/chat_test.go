package session

import (
	"context"
	"testing"
	"time"

	"github.com/ecofinds/marketplace/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenChat_SeedsConversation(t *testing.T) {
	s, st := setupSession(t, fastConfig())
	loggedIn(t, s)

	state := s.OpenChat("seller2")
	assert.True(t, state.ChatOpen)
	assert.Equal(t, "seller2", state.ChatWith)

	msgs := s.Chat().Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, "seller2", msgs[0].SenderID)
	assert.Equal(t, "1", msgs[0].ReceiverID)
	assert.Equal(t, "1", msgs[1].SenderID)
	assert.True(t, msgs[0].Timestamp.Before(msgs[2].Timestamp))

	// opening again keeps the panel open
	assert.True(t, s.OpenChat("seller3").ChatOpen)
	assert.Equal(t, "seller2", st.State().ChatWith)
}

func TestSendMessage_CannedReply(t *testing.T) {
	s, _ := setupSession(t, fastConfig())
	loggedIn(t, s)
	s.OpenChat("seller1")

	msg, err := s.SendMessage("Is the lamp dimmable?")
	require.NoError(t, err)
	assert.Equal(t, "1", msg.SenderID)
	assert.Equal(t, "seller1", msg.ReceiverID)

	assert.Eventually(t, func() bool { return len(s.Chat().Messages()) == 5 }, time.Second, 5*time.Millisecond)
	reply := s.Chat().Messages()[4]
	assert.Equal(t, cannedReply, reply.Content)
	assert.Equal(t, "seller1", reply.SenderID)
	assert.Equal(t, "1", reply.ReceiverID)
}

func TestSendMessage_Rejections(t *testing.T) {
	s, _ := setupSession(t, fastConfig())

	_, err := s.SendMessage("hello")
	assert.ErrorIs(t, err, ErrNothingToSend, "no user")

	loggedIn(t, s)
	_, err = s.SendMessage("   ")
	assert.ErrorIs(t, err, ErrNothingToSend)

	_, err = s.SendMessage("hello")
	assert.ErrorIs(t, err, ErrChatClosed)
}

func TestCloseChat_DropsPendingReply(t *testing.T) {
	s, _ := setupSession(t, slowConfig())
	loggedIn(t, s)
	s.OpenChat("seller1")

	_, err := s.SendMessage("anyone there?")
	require.NoError(t, err)
	require.Equal(t, 1, s.scheduler.Pending(ScopeChat))

	state := s.CloseChat()
	assert.False(t, state.ChatOpen)
	assert.Empty(t, state.ChatWith)

	assert.Eventually(t, func() bool { return s.scheduler.Pending(ScopeChat) == 0 }, time.Second, 5*time.Millisecond)
	time.Sleep(250 * time.Millisecond)
	assert.Len(t, s.Chat().Messages(), 4, "reply never lands")

	// closing a closed chat is a no-op
	assert.False(t, s.CloseChat().ChatOpen)
}

func TestChat_Subscribe(t *testing.T) {
	c := NewChat()
	c.Reset("1", "seller1", time.Now())

	ch, unsubscribe := c.Subscribe()
	msg := domain.Message{ID: "m1", SenderID: "1", Content: "hi"}
	require.NoError(t, c.Append(context.Background(), msg))

	select {
	case got := <-ch:
		assert.Equal(t, msg, got)
	case <-time.After(time.Second):
		t.Fatal("no message streamed")
	}

	unsubscribe()
	unsubscribe()
	_, open := <-ch
	assert.False(t, open)
}

func TestChat_AppendRespectsContext(t *testing.T) {
	c := NewChat()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.Append(ctx, domain.Message{ID: "late"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, c.Messages())
}
