package notification

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// EventType for pushed notifications
type EventType string

const (
	EventNewQuote EventType = "new_quote"
)

// eventsChannel is the Redis Pub/Sub channel carrying events between
// server instances
const eventsChannel = "notify:events"

// Event is one pushed notification
type Event struct {
	Type      EventType   `json:"type"`
	UserID    uuid.UUID   `json:"user_id"`
	Data      interface{} `json:"data,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}

type wireEvent struct {
	UserID           string          `json:"user_id"`
	Payload          json.RawMessage `json:"payload"`
	SenderInstanceID string          `json:"sender_instance_id"`
}

// Connection is one websocket client
type Connection struct {
	UserID uuid.UUID
	Conn   *websocket.Conn
	Send   chan []byte
}

// Hub fans notification events out to connected clients. With a Redis
// client attached, events reach clients on every server instance;
// without one the hub is purely local.
type Hub struct {
	connections map[uuid.UUID]map[*Connection]bool
	mu          sync.RWMutex

	redis  *redis.Client
	pubsub *redis.PubSub

	register   chan *Connection
	unregister chan *Connection

	ctx        context.Context
	cancel     context.CancelFunc
	instanceID string
}

// NewHub creates a notification hub
func NewHub(redisClient *redis.Client) *Hub {
	ctx, cancel := context.WithCancel(context.Background())
	h := &Hub{
		connections: make(map[uuid.UUID]map[*Connection]bool),
		redis:       redisClient,
		register:    make(chan *Connection),
		unregister:  make(chan *Connection),
		ctx:         ctx,
		cancel:      cancel,
		instanceID:  uuid.NewString(),
	}
	if redisClient != nil {
		h.pubsub = redisClient.Subscribe(ctx, eventsChannel)
	}
	return h
}

// Run starts the hub (call in goroutine)
func (h *Hub) Run() {
	if h.pubsub != nil {
		go h.runRedisSubscriber()
	}

	for {
		select {
		case <-h.ctx.Done():
			return

		case conn := <-h.register:
			h.mu.Lock()
			if h.connections[conn.UserID] == nil {
				h.connections[conn.UserID] = make(map[*Connection]bool)
			}
			h.connections[conn.UserID][conn] = true
			h.mu.Unlock()
			log.Debug().Str("user_id", conn.UserID.String()).Msg("Notification client connected")

		case conn := <-h.unregister:
			h.mu.Lock()
			if conns, ok := h.connections[conn.UserID]; ok {
				if _, exists := conns[conn]; exists {
					delete(conns, conn)
					close(conn.Send)
				}
				if len(conns) == 0 {
					delete(h.connections, conn.UserID)
				}
			}
			h.mu.Unlock()
			log.Debug().Str("user_id", conn.UserID.String()).Msg("Notification client disconnected")
		}
	}
}

// Stop shuts the hub down
func (h *Hub) Stop() {
	if h.pubsub != nil {
		h.pubsub.Close()
	}
	h.cancel()
}

// Register adds a connection
func (h *Hub) Register(conn *Connection) {
	h.register <- conn
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	h.unregister <- conn
}

// PublishNewQuote notifies a provider's user about a fresh quote request
func (h *Hub) PublishNewQuote(userID uuid.UUID, payload interface{}) {
	h.Publish(&Event{
		Type:      EventNewQuote,
		UserID:    userID,
		Data:      payload,
		CreatedAt: time.Now(),
	})
}

// Publish delivers an event to every connection of the target user,
// on every server instance when Redis is available
func (h *Hub) Publish(event *Event) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal notification event")
		return
	}

	if h.redis != nil {
		wire, err := json.Marshal(wireEvent{
			UserID:           event.UserID.String(),
			Payload:          data,
			SenderInstanceID: h.instanceID,
		})
		if err == nil {
			if err := h.redis.Publish(h.ctx, eventsChannel, wire).Err(); err != nil {
				log.Error().Err(err).Msg("Redis publish failed")
			}
		}
	}

	h.sendLocal(event.UserID, data)
}

func (h *Hub) runRedisSubscriber() {
	ch := h.pubsub.Channel()
	for {
		select {
		case <-h.ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var wire wireEvent
			if err := json.Unmarshal([]byte(msg.Payload), &wire); err != nil {
				continue
			}
			// Own events were already delivered locally
			if wire.SenderInstanceID == h.instanceID {
				continue
			}
			userID, err := uuid.Parse(wire.UserID)
			if err != nil {
				continue
			}
			h.sendLocal(userID, []byte(wire.Payload))
		}
	}
}

func (h *Hub) sendLocal(userID uuid.UUID, data []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for conn := range h.connections[userID] {
		select {
		case conn.Send <- data:
		default:
			// Buffer full, drop rather than block the publisher
			log.Warn().Str("user_id", userID.String()).Msg("Notification send buffer full")
		}
	}
}
