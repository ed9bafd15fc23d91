package session

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/ecofinds/marketplace/internal/domain"
	"github.com/ecofinds/marketplace/internal/scheduler"
	"github.com/ecofinds/marketplace/internal/store"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNothingToSend   = errors.New("message is empty or no user is logged in")
	ErrChatClosed      = errors.New("chat panel is closed")
	ErrProductNotFound = errors.New("product not found")
)

const (
	// ScopeChat groups tasks that die with the chat panel
	ScopeChat = "chat"

	loginPoints   = 150
	defaultUserID = "1"
	defaultImage  = "https://images.pexels.com/photos/1040945/pexels-photo-1040945.jpeg?auto=compress&cs=tinysrgb&w=500"
)

// ViewScope groups tasks that die when the storefront leaves view v
func ViewScope(v domain.View) string {
	return "view:" + string(v)
}

type Config struct {
	LoginDelay      time.Duration
	ListingDelay    time.Duration
	DescribeDelay   time.Duration
	CartRevealDelay time.Duration
	ReplyDelay      time.Duration
}

func DefaultConfig() Config {
	return Config{
		LoginDelay:      time.Second,
		ListingDelay:    time.Second,
		DescribeDelay:   2 * time.Second,
		CartRevealDelay: 300 * time.Millisecond,
		ReplyDelay:      time.Second,
	}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"` // accepted and ignored, any password signs in
	Signup   bool   `json:"signup"`
}

type ListingRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    domain.Category `json:"category"`
	Image       string          `json:"image"`
}

// Session drives the storefront workflows on top of the store. Delayed steps
// run as scheduler tasks that are cancelled when the view, chat or login
// they belong to goes away.
type Session struct {
	store       store.Store
	scheduler   *scheduler.Scheduler
	chat        *Chat
	cfg         Config
	unsubscribe func()
}

func New(st store.Store, cfg Config) *Session {
	s := &Session{
		store:     st,
		scheduler: scheduler.New(),
		chat:      NewChat(),
		cfg:       cfg,
	}
	s.unsubscribe = st.Subscribe(s.onTransition)
	return s
}

// onTransition runs under the store lock
func (s *Session) onTransition(action domain.Action, prev, next domain.State) {
	if _, ok := action.(domain.LogOut); ok {
		s.scheduler.CancelAll()
	}
	if prev.CurrentView != next.CurrentView {
		s.scheduler.CancelScope(ViewScope(prev.CurrentView))
	}
	if prev.ChatOpen && !next.ChatOpen {
		s.scheduler.CancelScope(ScopeChat)
	}
	if !prev.ChatOpen && next.ChatOpen {
		userID := ""
		if next.CurrentUser != nil {
			userID = next.CurrentUser.ID
		}
		s.chat.Reset(userID, next.ChatWith, time.Now())
	}
}

// Close stops listening to the store and cancels pending tasks
func (s *Session) Close() error {
	s.unsubscribe()
	return s.scheduler.Close()
}

func (s *Session) State() domain.State {
	return s.store.State()
}

func (s *Session) Chat() *Chat {
	return s.chat
}

// Dispatch applies a raw action
func (s *Session) Dispatch(action domain.Action) domain.State {
	return s.store.Dispatch(action)
}

func (s *Session) dispatchTask(ctx context.Context, action domain.Action) bool {
	if _, err := s.store.DispatchContext(ctx, action); err != nil {
		log.Printf("dropped scheduled %s: %v", action.Type(), err)
		return false
	}
	return true
}

// Login signs the user in after the login delay. Any input is accepted.
func (s *Session) Login(req LoginRequest) *scheduler.Task {
	username := req.Username
	if username == "" {
		username, _, _ = strings.Cut(req.Email, "@")
	}
	points := loginPoints
	if req.Signup {
		points = 0
	}
	user := domain.User{
		ID:        defaultUserID,
		Email:     req.Email,
		Username:  username,
		EcoPoints: points,
	}

	return s.scheduler.Schedule(ViewScope(domain.ViewLogin), s.cfg.LoginDelay, func(ctx context.Context) {
		s.dispatchTask(ctx, domain.LogIn{User: user})
	})
}

func (s *Session) Logout() domain.State {
	return s.store.Dispatch(domain.LogOut{})
}

// SubmitListing publishes a new product after the listing delay and returns
// to the feed
func (s *Session) SubmitListing(req ListingRequest) *scheduler.Task {
	sellerID, sellerName := defaultUserID, "User"
	if u := s.store.State().CurrentUser; u != nil {
		sellerID, sellerName = u.ID, u.Username
	}
	image := req.Image
	if image == "" {
		image = defaultImage
	}
	product := domain.Product{
		ID:          uuid.New().String(),
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Image:       image,
		SellerID:    sellerID,
		SellerName:  sellerName,
		CreatedAt:   time.Now(),
	}

	return s.scheduler.Schedule(ViewScope(domain.ViewAddProduct), s.cfg.ListingDelay, func(ctx context.Context) {
		if s.dispatchTask(ctx, domain.AddProduct{Product: product}) {
			s.dispatchTask(ctx, domain.SetView{View: domain.ViewHome})
		}
	})
}

// AddToCart puts one unit of product in the cart. From the product detail
// screen the cart drawer opens shortly after.
func (s *Session) AddToCart(product domain.Product) domain.State {
	next := s.store.Dispatch(domain.AddToCart{Product: product})
	if next.CurrentView == domain.ViewProductDetail {
		s.scheduler.Schedule(ViewScope(domain.ViewProductDetail), s.cfg.CartRevealDelay, func(ctx context.Context) {
			cartClosed := func(state domain.State) bool { return !state.CartOpen }
			if _, _, err := s.store.DispatchIf(ctx, domain.ToggleCart{}, cartClosed); err != nil {
				log.Printf("dropped cart reveal: %v", err)
			}
		})
	}
	return next
}

// AddToCartByID looks the product up in the catalog first
func (s *Session) AddToCartByID(productID string) (domain.State, error) {
	for _, p := range s.store.State().Products {
		if p.ID == productID {
			return s.AddToCart(p), nil
		}
	}
	return domain.State{}, ErrProductNotFound
}

func (s *Session) DecreaseQuantity(productID string) domain.State {
	return s.store.Dispatch(domain.DecrementCartItem{ProductID: productID})
}

func (s *Session) RemoveFromCart(productID string) domain.State {
	return s.store.Dispatch(domain.RemoveFromCart{ProductID: productID})
}

// Checkout empties the cart, closes the drawer and shows the success
// screen. It returns the summary of the cart that was cleared.
func (s *Session) Checkout() (domain.CartSummary, domain.State) {
	var summary domain.CartSummary
	next, _, _ := s.store.DispatchIf(context.Background(), domain.ClearCart{}, func(state domain.State) bool {
		summary = domain.Summarize(state.CartItems)
		return true
	})
	cartOpen := func(state domain.State) bool { return state.CartOpen }
	s.store.DispatchIf(context.Background(), domain.ToggleCart{}, cartOpen)
	next = s.store.Dispatch(domain.SetView{View: domain.ViewSuccess})
	return summary, next
}

// SelectProduct opens the detail screen of a catalog product
func (s *Session) SelectProduct(productID string) (domain.State, error) {
	for _, p := range s.store.State().Products {
		if p.ID == productID {
			return s.store.Dispatch(domain.SetSelectedProduct{Product: &p}), nil
		}
	}
	return domain.State{}, ErrProductNotFound
}

func (s *Session) ClearSelection() domain.State {
	return s.store.Dispatch(domain.SetSelectedProduct{Product: nil})
}

// UpdateProfile edits the logged in user's name and email
func (s *Session) UpdateProfile(patch domain.UserPatch) domain.State {
	return s.store.Dispatch(domain.UpdateUser{Patch: patch})
}

// OpenChat shows the chat panel with counterpartID. Opening an open panel
// does nothing.
func (s *Session) OpenChat(counterpartID string) domain.State {
	if state := s.store.State(); state.ChatOpen {
		return state
	}
	return s.store.Dispatch(domain.ToggleChat{CounterpartID: counterpartID})
}

// CloseChat hides the chat panel and drops any pending reply
func (s *Session) CloseChat() domain.State {
	state := s.store.State()
	if !state.ChatOpen {
		return state
	}
	return s.store.Dispatch(domain.ToggleChat{})
}

// SendMessage posts content to the open chat and schedules the seller's
// canned reply
func (s *Session) SendMessage(content string) (domain.Message, error) {
	state := s.store.State()
	if strings.TrimSpace(content) == "" || state.CurrentUser == nil {
		return domain.Message{}, ErrNothingToSend
	}
	if !state.ChatOpen {
		return domain.Message{}, ErrChatClosed
	}

	userID, counterpartID := state.CurrentUser.ID, state.ChatWith
	msg := domain.Message{
		ID:         uuid.New().String(),
		SenderID:   userID,
		ReceiverID: counterpartID,
		Content:    content,
		Timestamp:  time.Now(),
	}
	if err := s.chat.Append(context.Background(), msg); err != nil {
		return domain.Message{}, err
	}

	s.scheduler.Schedule(ScopeChat, s.cfg.ReplyDelay, func(ctx context.Context) {
		reply := domain.Message{
			ID:         uuid.New().String(),
			SenderID:   counterpartID,
			ReceiverID: userID,
			Content:    cannedReply,
			Timestamp:  time.Now(),
		}
		if err := s.chat.Append(ctx, reply); err != nil {
			log.Printf("dropped chat reply: %v", err)
		}
	})
	return msg, nil
}
