// Package server streams game snapshots to browsers. It serves a canvas page
// at "/" and pushes every published snapshot as JSON over the "/ws" websocket.
package server

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	channerics "github.com/niceyeti/channerics/channels"

	"snake-astar/game"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second
	// Maximum message size allowed from peer.
	maxMessageSize = 512
	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second
	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10
	// Frames queued per client before it is considered too slow.
	clientBuffer = 8
)

//go:embed static/index.html
var indexPage []byte

type client struct {
	send chan []byte
}

// Server fans snapshots out to every connected browser.
type Server struct {
	addr     string
	logger   *log.Logger
	upgrader websocket.Upgrader
	in       chan game.Snapshot

	mutex   sync.RWMutex
	clients map[*client]struct{}
	latest  []byte
}

func NewServer(addr string, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		addr:    addr,
		logger:  logger,
		in:      make(chan game.Snapshot, 1),
		clients: make(map[*client]struct{}),
	}
}

// Publish offers a snapshot to the stream. If the previous one has not been
// picked up yet the new one is dropped; the next frame replaces it anyway.
func (s *Server) Publish(snap game.Snapshot) {
	select {
	case s.in <- snap:
	default:
	}
}

// Latest returns the most recently broadcast frame, nil before the first.
func (s *Server) Latest() []byte {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.latest
}

// Run encodes published snapshots and broadcasts them until ctx is done.
func (s *Server) Run(ctx context.Context) {
	frames := channerics.Convert(ctx.Done(), (<-chan game.Snapshot)(s.in), s.encode)
	for {
		select {
		case <-ctx.Done():
			return
		case frame, ok := <-frames:
			if !ok {
				return
			}
			if frame != nil {
				s.broadcast(frame)
			}
		}
	}
}

func (s *Server) encode(snap game.Snapshot) []byte {
	data, err := json.Marshal(snap)
	if err != nil {
		s.logger.Printf("encode snapshot: %v", err)
		return nil
	}
	return data
}

func (s *Server) broadcast(frame []byte) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.latest = frame
	for c := range s.clients {
		select {
		case c.send <- frame:
		default:
			// slow reader, skip this frame for it
		}
	}
}

func (s *Server) register(c *client) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.clients[c] = struct{}{}
	if s.latest != nil {
		c.send <- s.latest
	}
}

func (s *Server) unregister(c *client) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	delete(s.clients, c)
}

// Clients reports how many browsers are connected.
func (s *Server) Clients() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.clients)
}

// Handler routes the page and the websocket endpoint.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.serveMain)
	mux.HandleFunc("/ws", s.serveWebsocket)
	return mux
}

// ListenAndServe serves until ctx is done, then shuts the listener down.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{Addr: s.addr, Handler: s.Handler()}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), writeWait)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Printf("serving on %s", s.addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen %s: %w", s.addr, err)
	}
	return nil
}

func (s *Server) serveMain(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(indexPage)
}

func (s *Server) serveWebsocket(w http.ResponseWriter, r *http.Request) {
	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Println("upgrade:", err)
		return
	}

	c := &client{send: make(chan []byte, clientBuffer)}
	s.register(c)
	defer s.unregister(c)

	done := make(chan struct{})
	go s.readPump(ws, done)
	s.writePump(ws, c, done)
}

// readPump discards client messages; it exists to notice pongs and closes.
func (s *Server) readPump(ws *websocket.Conn, done chan<- struct{}) {
	defer close(done)
	ws.SetReadLimit(maxMessageSize)
	_ = ws.SetReadDeadline(time.Now().Add(pongWait))
	ws.SetPongHandler(func(string) error {
		return ws.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			return
		}
	}
}

func (s *Server) writePump(ws *websocket.Conn, c *client, done <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		ws.Close()
	}()

	for {
		select {
		case <-done:
			return
		case frame := <-c.send:
			_ = ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := ws.WriteMessage(websocket.TextMessage, frame); err != nil {
				s.logger.Println("write:", err)
				return
			}
		case <-ticker.C:
			_ = ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
