package controllers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"gastro-pos/models"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins
	},
}
var clients = make(map[*websocket.Conn]bool)
var wsMu sync.Mutex

// HandleWebSocket registers a client for order lifecycle events. Floor and
// kitchen screens subscribe here to follow the active terminal.
func HandleWebSocket() gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			slog.Error("websocket upgrade failed", "error", err)
			return
		}
		defer conn.Close()

		wsMu.Lock()
		clients[conn] = true
		wsMu.Unlock()

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				wsMu.Lock()
				delete(clients, conn)
				wsMu.Unlock()
				break
			}
		}
	}
}

type Message struct {
	Event   string      `json:"event"`
	Payload interface{} `json:"payload"`
}

// OrderNotifier fans order lifecycle events out to every connected client.
// It satisfies services.Notifier.
type OrderNotifier struct{}

func (OrderNotifier) Publish(event string, order *models.Order) {
	wsMu.Lock()
	defer wsMu.Unlock()
	sendMessageToAllClients(Message{Event: event, Payload: order})
}

func sendMessageToAllClients(message Message) {
	messageBytes, err := json.Marshal(message)
	if err != nil {
		slog.Error("error marshaling message", "error", err)
		return
	}

	for client := range clients {
		if err := client.WriteMessage(websocket.TextMessage, messageBytes); err != nil {
			slog.Error("error writing message", "error", err)
			client.Close()
			delete(clients, client)
		}
	}
}
