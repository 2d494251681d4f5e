package service

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/webblaze/projectflow-be/logger"
	"github.com/webblaze/projectflow-be/types"
)

// WebSocketService fans recorded activity out to connected dashboards.
// Subscribers are grouped per tenant; a broadcast for one company never
// reaches another company's sockets.
type WebSocketService struct {
	upgrader websocket.Upgrader

	mu          sync.RWMutex
	subscribers map[string]map[*websocket.Conn]struct{}
}

func NewWebSocketService() *WebSocketService {
	return &WebSocketService{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true // Allow all origins (adjust for production)
			},
		},
		subscribers: make(map[string]map[*websocket.Conn]struct{}),
	}
}

func (s *WebSocketService) subscribe(companyName string, conn *websocket.Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.subscribers[companyName] == nil {
		s.subscribers[companyName] = make(map[*websocket.Conn]struct{})
	}
	s.subscribers[companyName][conn] = struct{}{}
}

func (s *WebSocketService) unsubscribe(companyName string, conn *websocket.Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.subscribers[companyName], conn)
	if len(s.subscribers[companyName]) == 0 {
		delete(s.subscribers, companyName)
	}
}

// Broadcast pushes an activity entry to every feed of its tenant. Write
// failures drop the connection; the read loop notices and cleans up.
func (s *WebSocketService) Broadcast(activity *types.Activity) {
	s.mu.RLock()
	conns := make([]*websocket.Conn, 0, len(s.subscribers[activity.CompanyName]))
	for conn := range s.subscribers[activity.CompanyName] {
		conns = append(conns, conn)
	}
	s.mu.RUnlock()

	for _, conn := range conns {
		conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
		if err := conn.WriteJSON(activity); err != nil {
			logger.Log.WithError(err).Debug("activity feed write failed")
			conn.Close()
		}
	}
}

// HandleFeed upgrades the request and parks it as a subscriber until the
// client goes away. Clients send nothing but pings.
func (s *WebSocketService) HandleFeed(w http.ResponseWriter, r *http.Request, companyName string) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.WithError(err).Error("websocket upgrade failed")
		return
	}
	defer conn.Close()

	conn.SetReadLimit(4 * 1024)
	conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	s.subscribe(companyName, conn)
	defer s.unsubscribe(companyName, conn)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Log.WithError(err).Debug("activity feed read error")
			}
			return
		}
		conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	}
}
