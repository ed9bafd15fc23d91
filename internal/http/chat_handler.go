package http

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/ecofinds/marketplace/internal/domain"
	"github.com/ecofinds/marketplace/internal/session"
	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"
)

type ChatHandler struct {
	session *session.Session
}

func NewChatHandler(s *session.Session) *ChatHandler {
	return &ChatHandler{session: s}
}

type OpenChatRequestDTO struct {
	CounterpartID string `json:"counterpart_id"`
}

type SendMessageRequestDTO struct {
	Content string `json:"content"`
}

type MessagesResponse struct {
	Messages []domain.Message `json:"messages"`
}

func (h *ChatHandler) Open(w http.ResponseWriter, r *http.Request) {
	var req OpenChatRequestDTO
	if !decodeBody(w, r, &req) {
		return
	}
	respondJSON(w, http.StatusOK, h.session.OpenChat(req.CounterpartID))
}

func (h *ChatHandler) Close(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, h.session.CloseChat())
}

func (h *ChatHandler) Messages(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, MessagesResponse{Messages: h.session.Chat().Messages()})
}

func (h *ChatHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req SendMessageRequestDTO
	if !decodeBody(w, r, &req) {
		return
	}

	msg, err := h.session.SendMessage(req.Content)
	if err != nil {
		handleSessionError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, msg)
}

// Stream upgrades to a websocket and pushes every new chat message as a
// JSON text frame until the client goes away
func (h *ChatHandler) Stream(w http.ResponseWriter, r *http.Request) {
	// subscribed before the handshake completes so no message is missed
	messages, unsubscribe := h.session.Chat().Subscribe()
	defer unsubscribe()

	conn, _, _, err := ws.UpgradeHTTP(r, w)
	if err != nil {
		log.Printf("failed to upgrade websocket, request id = %s, err = %v", getRequestID(r.Context()), err)
		return
	}
	defer conn.Close()

	// client frames are ignored; a read error means the client left
	gone := make(chan struct{})
	go func() {
		defer close(gone)
		for {
			if _, _, err := wsutil.ReadClientData(conn); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case msg, ok := <-messages:
			if !ok {
				return
			}
			data, err := json.Marshal(msg)
			if err != nil {
				log.Printf("failed to marshal chat message %s: %v", msg.ID, err)
				continue
			}
			if err := wsutil.WriteServerText(conn, data); err != nil {
				log.Printf("error on sent = %v", err)
				return
			}
		case <-gone:
			return
		}
	}
}
