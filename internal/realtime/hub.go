// Package realtime pushes new activities to connected dashboard clients over websockets.
package realtime

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"hostel-management-backend/internal/logger"
	"hostel-management-backend/internal/models"

	"github.com/olahol/melody"
)

// Message is the frame written to every client
type Message struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// Hub fans activity records out to every open websocket session
type Hub struct {
	m   *melody.Melody
	log *slog.Logger
}

func NewHub(log *slog.Logger) *Hub {
	h := &Hub{
		m:   melody.New(),
		log: logger.WithComponent(log, logger.ComponentRealtime),
	}
	h.m.HandleConnect(func(s *melody.Session) {
		h.log.Debug("client connected", "remote", s.Request.RemoteAddr, "sessions", h.m.Len())
	})
	h.m.HandleDisconnect(func(s *melody.Session) {
		h.log.Debug("client disconnected", "remote", s.Request.RemoteAddr)
	})
	h.m.HandleError(func(s *melody.Session, err error) {
		h.log.Debug("session error", logger.FieldError, err)
	})
	return h
}

// ServeHTTP upgrades the request and keeps the session until the client leaves
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.Serve(w, r, nil)
}

// Serve upgrades the request, attaching keys to the session
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request, keys map[string]any) {
	if err := h.m.HandleRequestWithKeys(w, r, keys); err != nil {
		h.log.Warn("websocket upgrade failed", logger.FieldError, err)
	}
}

// PublishActivity broadcasts a newly recorded activity
func (h *Hub) PublishActivity(a models.Activity) {
	h.broadcast(Message{Type: "activity", Data: a})
}

func (h *Hub) broadcast(msg Message) {
	if h.m.IsClosed() || h.m.Len() == 0 {
		return
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		h.log.Error("failed to encode message", logger.FieldError, err)
		return
	}
	if err := h.m.Broadcast(payload); err != nil {
		h.log.Warn("broadcast failed", logger.FieldError, err)
	}
}

// Sessions returns the number of connected clients
func (h *Hub) Sessions() int {
	return h.m.Len()
}

// Close disconnects every client
func (h *Hub) Close() error {
	return h.m.Close()
}
