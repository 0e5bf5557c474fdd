package docs

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/orangehrm/oxd/internal/errors"
	"github.com/orangehrm/oxd/pkg/ui"
)

// MessageType is the type of a live-control message.
type MessageType string

const (
	// MessageRender asks for a story to be rendered with args (client to
	// server) or carries the result (server to client).
	MessageRender MessageType = "render"

	// MessageError reports a failed render.
	MessageError MessageType = "error"

	// MessageReload tells clients the story book changed.
	MessageReload MessageType = "reload"

	// MessageHello is sent once after connecting.
	MessageHello MessageType = "hello"
)

// Message is exchanged over the live-control websocket.
type Message struct {
	Type   MessageType      `json:"type"`
	ID     string           `json:"id,omitempty"`
	Story  string           `json:"story,omitempty"`
	Args   ui.Args          `json:"args,omitempty"`
	Result *Rendered        `json:"result,omitempty"`
	Error  *errors.OxdError `json:"error,omitempty"`
}

const writeWait = 5 * time.Second

// client is one websocket connection. Writes are serialized by mu.
type client struct {
	id   string
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *client) send(msg Message) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteMessage(websocket.TextMessage, data)
}

// Hub manages live-control websocket connections.
type Hub struct {
	server   *Server
	clients  map[*client]bool
	mu       sync.RWMutex
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

func newHub(s *Server) *Hub {
	return &Hub{
		server:  s,
		clients: make(map[*client]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		logger: s.logger,
	}
}

// ServeHTTP upgrades the connection and answers render requests until
// the client disconnects.
func (h *Hub) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	conn, err := h.upgrader.Upgrade(w, req, nil)
	if err != nil {
		h.server.metrics.wsErrors.WithLabelValues("upgrade").Inc()
		return
	}

	c := &client{id: uuid.NewString(), conn: conn}
	h.mu.Lock()
	h.clients[c] = true
	h.mu.Unlock()
	h.server.metrics.liveClients.Inc()
	h.logger.Debug("live client connected", "client", c.id, "remote", req.RemoteAddr)

	defer func() {
		h.mu.Lock()
		delete(h.clients, c)
		h.mu.Unlock()
		h.server.metrics.liveClients.Dec()
		conn.Close()
		h.logger.Debug("live client disconnected", "client", c.id)
	}()

	if err := c.send(Message{Type: MessageHello, ID: c.id}); err != nil {
		return
	}

	ctx := req.Context()
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.server.metrics.wsErrors.WithLabelValues("read").Inc()
			}
			return
		}
		reply := h.handle(ctx, data)
		reply.ID = c.id
		if err := c.send(reply); err != nil {
			h.server.metrics.wsErrors.WithLabelValues("write").Inc()
			return
		}
	}
}

func (h *Hub) handle(ctx context.Context, data []byte) Message {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		h.server.metrics.wsErrors.WithLabelValues("decode").Inc()
		return Message{Type: MessageError, Error: errors.New(errors.CodeInvalidArg).WithDetail("message is not valid JSON").Wrap(err)}
	}
	if msg.Type != MessageRender {
		return Message{Type: MessageError, Story: msg.Story, Error: errors.New(errors.CodeInvalidArg).WithDetailf("unsupported message type %q", msg.Type)}
	}

	st, err := h.server.Book().Get(msg.Story)
	if err != nil {
		return Message{Type: MessageError, Story: msg.Story, Error: errors.FromError(err, errors.CodeStoryNotFound)}
	}
	res, err := h.server.RenderStory(ctx, st, msg.Args)
	if err != nil {
		return Message{Type: MessageError, Story: msg.Story, Error: errors.FromError(err, errors.CodeInvalidProp)}
	}
	return Message{Type: MessageRender, Story: msg.Story, Result: &res}
}

// NotifyReload tells every client to reload.
func (h *Hub) NotifyReload() {
	h.broadcast(Message{Type: MessageReload})
}

func (h *Hub) broadcast(msg Message) {
	h.mu.RLock()
	clients := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, c := range clients {
		if err := c.send(msg); err != nil {
			h.server.metrics.wsErrors.WithLabelValues("write").Inc()
			h.mu.Lock()
			delete(h.clients, c)
			h.mu.Unlock()
			c.conn.Close()
		}
	}
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Close closes all client connections.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		c.conn.Close()
		delete(h.clients, c)
	}
}
