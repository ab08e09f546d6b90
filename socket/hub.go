package socket

import (
	"encoding/json"

	"docstore/pkg/logger"
)

const (
	DocSavedType = "DOC_SAVED" // A document was created or overwritten
)

type WSMessage struct {
	Type    string          `json:"type"`
	DocID   string          `json:"document_id"`
	UserID  string          `json:"user_id"`
	Payload json.RawMessage `json:"payload"`
}

// Hub fans save events out to connected watchers. Clients, registration and
// broadcast all flow through channels owned by the Run loop, so the client
// set needs no locking.
type Hub struct {
	clients    map[*Client]bool
	Broadcast  chan WSMessage
	Register   chan *Client
	Unregister chan *Client
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		Broadcast:  make(chan WSMessage),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.clients[client] = true
			logger.Sugar.Infof("Watcher connected (user=%s docId=%q)", client.UserID, client.DocID)

		case client := <-h.Unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
			}

		case msg := <-h.Broadcast:
			// Marshal the event once for every recipient.
			payload, err := json.Marshal(msg)
			if err != nil {
				logger.Sugar.Errorf("Error marshalling broadcast message: %v", err)
				continue
			}

			for client := range h.clients {
				// A client watching a specific document only gets that
				// document's events; an empty filter is the firehose.
				if client.DocID != "" && client.DocID != msg.DocID {
					continue
				}
				select {
				case client.Send <- payload:
				default:
					// Send buffer full: the client is lagging, drop it
					// rather than block the hub.
					logger.Sugar.Warnf("Watcher %s's send buffer is full. Dropping.", client.UserID)
					delete(h.clients, client)
					close(client.Send)
				}
			}
		}
	}
}
