package publisher

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/ecofinds/marketplace/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	EventProductListed     = "product-listed"
	EventCheckoutCompleted = "checkout-completed"

	currency = "INR"
)

// OutboxEvent is a state change waiting to be published
type OutboxEvent struct {
	ID          string
	AggregateID string
	EventType   string
	Payload     []byte
	CreatedAt   time.Time
}

type ProductListedPayload struct {
	ProductID string          `json:"product_id"`
	Title     string          `json:"title"`
	Price     decimal.Decimal `json:"price"`
	Category  domain.Category `json:"category"`
	SellerID  string          `json:"seller_id"`
	ListedAt  time.Time       `json:"listed_at"`
}

type CheckoutLine struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

type CheckoutCompletedPayload struct {
	CheckoutID  string          `json:"checkout_id"`
	UserID      string          `json:"user_id"`
	Items       []CheckoutLine  `json:"items"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	Currency    string          `json:"currency"`
	CompletedAt time.Time       `json:"completed_at"`
}

// Outbox queues events derived from store transitions. Record is meant to be
// subscribed to the store.
type Outbox struct {
	mu     sync.Mutex
	events []*OutboxEvent
	now    func() time.Time
}

func NewOutbox() *Outbox {
	return &Outbox{now: time.Now}
}

// Record turns a transition into outbox events. Listings and non-empty
// checkouts are recorded, everything else is ignored.
func (o *Outbox) Record(action domain.Action, prev, _ domain.State) {
	var (
		event *OutboxEvent
		err   error
	)
	switch a := action.(type) {
	case domain.AddProduct:
		event, err = o.productListed(a.Product)
	case domain.ClearCart:
		if len(prev.CartItems) == 0 {
			return
		}
		event, err = o.checkoutCompleted(prev)
	default:
		return
	}
	if err != nil {
		log.Printf("failed to build %s event: %v", action.Type(), err)
		return
	}

	o.mu.Lock()
	o.events = append(o.events, event)
	o.mu.Unlock()
}

func (o *Outbox) productListed(p domain.Product) (*OutboxEvent, error) {
	payload, err := json.Marshal(ProductListedPayload{
		ProductID: p.ID,
		Title:     p.Title,
		Price:     p.Price,
		Category:  p.Category,
		SellerID:  p.SellerID,
		ListedAt:  p.CreatedAt,
	})
	if err != nil {
		return nil, err
	}
	return o.newEvent(p.ID, EventProductListed, payload), nil
}

func (o *Outbox) checkoutCompleted(prev domain.State) (*OutboxEvent, error) {
	checkoutID := uuid.New().String()
	userID := ""
	if prev.CurrentUser != nil {
		userID = prev.CurrentUser.ID
	}

	items := make([]CheckoutLine, 0, len(prev.CartItems))
	for _, item := range prev.CartItems {
		items = append(items, CheckoutLine{
			ProductID: item.Product.ID,
			Quantity:  item.Quantity,
			Price:     item.Product.Price,
		})
	}

	payload, err := json.Marshal(CheckoutCompletedPayload{
		CheckoutID:  checkoutID,
		UserID:      userID,
		Items:       items,
		TotalAmount: domain.Summarize(prev.CartItems).Total,
		Currency:    currency,
		CompletedAt: o.now(),
	})
	if err != nil {
		return nil, err
	}
	return o.newEvent(checkoutID, EventCheckoutCompleted, payload), nil
}

func (o *Outbox) newEvent(aggregateID, eventType string, payload []byte) *OutboxEvent {
	return &OutboxEvent{
		ID:          uuid.New().String(),
		AggregateID: aggregateID,
		EventType:   eventType,
		Payload:     payload,
		CreatedAt:   o.now(),
	}
}

// Take removes and returns up to limit of the oldest events
func (o *Outbox) Take(limit int) []*OutboxEvent {
	o.mu.Lock()
	defer o.mu.Unlock()

	n := min(limit, len(o.events))
	taken := make([]*OutboxEvent, n)
	copy(taken, o.events[:n])
	o.events = o.events[n:]
	return taken
}

// Requeue puts events back at the head of the queue, keeping their order
func (o *Outbox) Requeue(events []*OutboxEvent) {
	if len(events) == 0 {
		return
	}
	o.mu.Lock()
	defer o.mu.Unlock()

	o.events = append(append(make([]*OutboxEvent, 0, len(events)+len(o.events)), events...), o.events...)
}

// Pending is the number of unpublished events
func (o *Outbox) Pending() int {
	o.mu.Lock()
	defer o.mu.Unlock()

	return len(o.events)
}
