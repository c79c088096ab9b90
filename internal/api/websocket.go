package api

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"smartkitchen/internal/suggest"
)

// alertInterval is how often connected clients receive a fresh expiry
// snapshot.
const alertInterval = 30 * time.Second

// WebSocket upgrader configuration
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for development
	},
}

// wsConnection maintains the WebSocket connection with the client
type wsConnection struct {
	conn *websocket.Conn
	send chan []byte
	done chan struct{}
}

// expiryAlert is pushed to clients watching a restaurant's inventory.
type expiryAlert struct {
	RestaurantID uint                    `json:"restaurantId"`
	Timestamp    time.Time               `json:"timestamp"`
	Counts       suggest.DashboardCounts `json:"counts"`
	TotalValue   float64                 `json:"totalValue"`
	Items        []suggest.DashboardItem `json:"items"`
}

// handleWebSocket streams expiry alerts for the restaurant given in the
// restaurantId query parameter.
func (s *Server) handleWebSocket(c *gin.Context) {
	restaurantID, err := parseUint(c.DefaultQuery("restaurantId", "1"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid restaurantId"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Failed to upgrade connection: %v", err)
		return
	}

	wsConn := &wsConnection{
		conn: conn,
		send: make(chan []byte, 256),
		done: make(chan struct{}),
	}

	go wsConn.writePump()
	go wsConn.readPump()
	go s.pushExpiryAlerts(wsConn, restaurantID)
}

// pushExpiryAlerts sends an immediate snapshot, then refreshes on a
// fixed interval until the client disconnects.
func (s *Server) pushExpiryAlerts(c *wsConnection, restaurantID uint) {
	ticker := time.NewTicker(alertInterval)
	defer ticker.Stop()

	for {
		items, err := s.DB.AllInventory(restaurantID)
		if err != nil {
			log.Printf("Expiry alert query failed: %v", err)
		} else {
			now := s.now()
			dashboard := suggest.BuildExpiryDashboard(items, now)
			alert := expiryAlert{
				RestaurantID: restaurantID,
				Timestamp:    now,
				Counts:       dashboard.Counts,
				TotalValue:   dashboard.TotalValue,
				Items:        dashboard.ExpiringItems,
			}

			payload, err := json.Marshal(alert)
			if err != nil {
				log.Printf("Expiry alert marshal failed: %v", err)
			} else {
				select {
				case c.send <- payload:
				case <-c.done:
					return
				}
			}
		}

		select {
		case <-ticker.C:
		case <-c.done:
			return
		}
	}
}

// readPump drains client messages and detects disconnects
func (c *wsConnection) readPump() {
	defer func() {
		close(c.done)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(512 * 1024) // 512KB
	c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error: %v", err)
			}
			break
		}
	}
}

// writePump pumps messages from the server to the WebSocket connection
func (c *wsConnection) writePump() {
	ticker := time.NewTicker(alertInterval / 2)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-c.done:
			c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}
	}
}
