package salesControllers

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// OrderEvent is pushed to every connected admin dashboard when an order is
// created, paid or cancelled.
type OrderEvent struct {
	Type     string `json:"type"`
	OrderID  uint   `json:"order_id"`
	Tracking string `json:"tracking,omitempty"`
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

var (
	feedMu      sync.Mutex
	feedClients = make(map[*websocket.Conn]bool)
)

// GET /api/sales/ws
func OrderFeedHandler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	feedMu.Lock()
	feedClients[conn] = true
	feedMu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			feedMu.Lock()
			delete(feedClients, conn)
			feedMu.Unlock()
			break
		}
	}
}

func BroadcastOrderEvent(event OrderEvent) {
	feedMu.Lock()
	defer feedMu.Unlock()
	for client := range feedClients {
		if err := client.WriteJSON(event); err != nil {
			client.Close()
			delete(feedClients, client)
		}
	}
}
