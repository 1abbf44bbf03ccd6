package preview

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vango-dev/styled/internal/errors"
	"github.com/vango-dev/styled/pkg/showcase"
	"github.com/vango-dev/styled/pkg/styled"
)

const (
	messageRender = "render"
	messageReload = "reload"
	messageError  = "error"

	writeWait      = 5 * time.Second
	maxMessageSize = 64 << 10
)

// liveRequest asks for one render over /ws. Props are decoded by
// showcase.ParseProps, like HTTP bodies.
type liveRequest struct {
	Component string          `json:"component"`
	Props     json.RawMessage `json:"props"`
}

// liveMessage is sent to live clients.
type liveMessage struct {
	Type       string       `json:"type"`
	Component  string       `json:"component,omitempty"`
	HTML       string       `json:"html,omitempty"`
	Style      styled.Style `json:"style,omitempty"`
	CSS        string       `json:"css,omitempty"`
	Dropped    []string     `json:"dropped,omitempty"`
	Collisions []string     `json:"collisions,omitempty"`
	Code       string       `json:"code,omitempty"`
	Error      string       `json:"error,omitempty"`
}

// liveClient is one websocket connection. Writes are serialized because
// replies and broadcasts come from different goroutines.
type liveClient struct {
	conn    *websocket.Conn
	writeMu sync.Mutex
}

func (c *liveClient) send(msg liveMessage) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteJSON(msg)
}

func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "error", err)
		return
	}
	conn.SetReadLimit(maxMessageSize)

	client := &liveClient{conn: conn}
	s.addClient(client)
	defer s.removeClient(client)

	s.logger.Debug("live client connected", "remote", r.RemoteAddr)
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Debug("live client read error", "error", err)
			}
			return
		}
		if err := client.send(s.liveRender(r.Context(), data)); err != nil {
			s.logger.Debug("live client write error", "error", err)
			return
		}
	}
}

// liveRender answers one request frame.
func (s *Server) liveRender(ctx context.Context, data []byte) liveMessage {
	var req liveRequest
	if err := json.Unmarshal(data, &req); err != nil || req.Component == "" {
		se := errors.New("E141")
		if err != nil {
			se = se.Wrap(err)
		}
		return errorMessage(se)
	}
	raw := req.Props
	if string(raw) == "null" {
		raw = nil
	}
	props, err := showcase.ParseProps(raw)
	if err != nil {
		return errorMessage(errors.New("E141").Wrap(err))
	}

	out, err := s.render(ctx, req.Component, props)
	if err != nil {
		return errorMessage(err)
	}
	return liveMessage{
		Type:       messageRender,
		Component:  req.Component,
		HTML:       out.HTML,
		Style:      out.Style,
		CSS:        out.Style.CSS(),
		Dropped:    out.Report.Dropped,
		Collisions: out.Report.Collisions,
	}
}

func errorMessage(err error) liveMessage {
	se := errors.FromError(err, "E140")
	return liveMessage{Type: messageError, Code: se.Code, Error: se.Error()}
}

func (s *Server) addClient(c *liveClient) {
	s.mu.Lock()
	s.clients[c] = struct{}{}
	s.mu.Unlock()
	s.metrics.wsConnections.Inc()
}

func (s *Server) removeClient(c *liveClient) {
	s.mu.Lock()
	_, ok := s.clients[c]
	delete(s.clients, c)
	s.mu.Unlock()
	if ok {
		s.metrics.wsConnections.Dec()
	}
	c.conn.Close()
}

// broadcast sends msg to every live client, dropping clients that fail.
func (s *Server) broadcast(msg liveMessage) {
	s.mu.Lock()
	clients := make([]*liveClient, 0, len(s.clients))
	for c := range s.clients {
		clients = append(clients, c)
	}
	s.mu.Unlock()

	for _, c := range clients {
		if err := c.send(msg); err != nil {
			s.logger.Debug("broadcast failed", "error", err)
			s.removeClient(c)
		}
	}
}

// ClientCount returns the number of open live connections.
func (s *Server) ClientCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

func (s *Server) closeClients() {
	s.mu.Lock()
	clients := make([]*liveClient, 0, len(s.clients))
	for c := range s.clients {
		clients = append(clients, c)
	}
	s.mu.Unlock()

	for _, c := range clients {
		c.writeMu.Lock()
		_ = c.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
			time.Now().Add(writeWait))
		c.writeMu.Unlock()
		s.removeClient(c)
	}
}

// checkOrigin allows the listed origins, or the request's own host when
// none are listed. Requests without an Origin header are allowed.
func checkOrigin(allowed []string) func(*http.Request) bool {
	set := make(map[string]bool, len(allowed))
	for _, o := range allowed {
		set[strings.TrimRight(o, "/")] = true
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		if len(set) > 0 {
			return set["*"] || set[strings.TrimRight(origin, "/")]
		}
		u, err := url.Parse(origin)
		if err != nil {
			return false
		}
		return strings.EqualFold(u.Host, r.Host)
	}
}
