package websocket

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/piresc/fleettrack/internal/pkg/constants"
	"github.com/piresc/fleettrack/internal/pkg/logger"
	"github.com/piresc/fleettrack/internal/pkg/models"
)

const writeWait = 10 * time.Second

// Client is one websocket viewer attached to a topic, usually a run id
type Client struct {
	ID     string
	UserID string
	Topic  string
	Conn   *websocket.Conn

	writeMu sync.Mutex
}

// Send writes one event frame. Safe for concurrent use.
func (c *Client) Send(event string, data interface{}) error {
	if c.Conn == nil {
		return nil
	}

	rawData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("error marshaling message data: %w", err)
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.Conn.WriteJSON(models.WSMessage{Event: event, Data: rawData})
}

// SendError writes an error event
func (c *Client) SendError(code, message string) error {
	return c.Send(constants.EventError, models.WSErrorMessage{Code: code, Message: message})
}

// Manager manages WebSocket connections grouped by topic
type Manager struct {
	sync.RWMutex
	topics   map[string]map[string]*Client
	upgrader websocket.Upgrader
}

// NewManager creates a new WebSocket manager
func NewManager() *Manager {
	return &Manager{
		topics: make(map[string]map[string]*Client),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleConnection upgrades the request, registers the client under topic and
// runs handleClient until it returns. The client is removed and closed afterwards.
func (m *Manager) HandleConnection(c echo.Context, userID, topic string, handleClient func(*Client) error) error {
	ws, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	client := &Client{
		ID:     uuid.NewString(),
		UserID: userID,
		Topic:  topic,
		Conn:   ws,
	}
	m.AddClient(client)
	defer func() {
		m.RemoveClient(client)
		ws.Close()
	}()

	logger.Debug("WebSocket client connected",
		logger.String("user_id", userID),
		logger.String("topic", topic))

	return handleClient(client)
}

// AddClient safely adds a client to the manager
func (m *Manager) AddClient(client *Client) {
	m.Lock()
	defer m.Unlock()
	clients, ok := m.topics[client.Topic]
	if !ok {
		clients = make(map[string]*Client)
		m.topics[client.Topic] = clients
	}
	clients[client.ID] = client
}

// RemoveClient safely removes a client from the manager
func (m *Manager) RemoveClient(client *Client) {
	m.Lock()
	defer m.Unlock()
	clients, ok := m.topics[client.Topic]
	if !ok {
		return
	}
	delete(clients, client.ID)
	if len(clients) == 0 {
		delete(m.topics, client.Topic)
	}
}

// Count returns the number of clients attached to topic
func (m *Manager) Count(topic string) int {
	m.RLock()
	defer m.RUnlock()
	return len(m.topics[topic])
}
