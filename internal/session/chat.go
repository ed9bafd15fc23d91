package session

import (
	"context"
	"log"
	"slices"
	"sync"
	"time"

	"github.com/ecofinds/marketplace/internal/domain"
)

const cannedReply = "Thanks for your message! I'll get back to you soon."

// Chat holds the conversation shown in the chat panel. It lives only as
// long as the panel stays open and is reseeded every time it opens.
type Chat struct {
	mu          sync.Mutex
	messages    []domain.Message
	subscribers map[int]chan domain.Message
	nextSubID   int
}

func NewChat() *Chat {
	return &Chat{subscribers: make(map[int]chan domain.Message)}
}

// Reset replaces the conversation with the opening exchange between the
// user and the counterpart
func (c *Chat) Reset(userID, counterpartID string, now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.messages = []domain.Message{
		{
			ID:         "1",
			SenderID:   counterpartID,
			ReceiverID: userID,
			Content:    "Hello! I'm interested in your product. Is it still available?",
			Timestamp:  now.Add(-5 * time.Minute),
		},
		{
			ID:         "2",
			SenderID:   userID,
			ReceiverID: counterpartID,
			Content:    "Yes, it's still available! Would you like to know more details?",
			Timestamp:  now.Add(-4 * time.Minute),
		},
		{
			ID:         "3",
			SenderID:   counterpartID,
			ReceiverID: userID,
			Content:    "Great! Can you tell me about the condition?",
			Timestamp:  now.Add(-3 * time.Minute),
		},
	}
}

// Append adds msg unless ctx is already done
func (c *Chat) Append(ctx context.Context, msg domain.Message) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	c.messages = append(c.messages, msg)

	for id, ch := range c.subscribers {
		select {
		case ch <- msg:
		default:
			log.Printf("chat subscriber %d is slow, dropping message %s", id, msg.ID)
		}
	}
	return nil
}

// Messages returns the conversation so far
func (c *Chat) Messages() []domain.Message {
	c.mu.Lock()
	defer c.mu.Unlock()

	return slices.Clone(c.messages)
}

// Subscribe streams every message appended after the call
func (c *Chat) Subscribe() (<-chan domain.Message, func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextSubID
	c.nextSubID++
	ch := make(chan domain.Message, 16)
	c.subscribers[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			delete(c.subscribers, id)
			close(ch)
		})
	}
}
