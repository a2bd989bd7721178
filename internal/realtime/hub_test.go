package realtime

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hostel-management-backend/internal/logger"
	"hostel-management-backend/internal/models"

	"github.com/gorilla/websocket"
)

func TestHubBroadcastsActivities(t *testing.T) {
	hub := NewHub(logger.Discard())
	defer hub.Close()

	srv := httptest.NewServer(hub)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	deadline := time.Now().Add(2 * time.Second)
	for hub.Sessions() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("session never registered")
		}
		time.Sleep(10 * time.Millisecond)
	}

	hub.PublishActivity(models.Activity{ID: 7, Type: models.ActivityPayment, Message: "Payment received from Alice Johnson"})

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, raw, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	var msg struct {
		Type string          `json:"type"`
		Data models.Activity `json:"data"`
	}
	if err := json.Unmarshal(raw, &msg); err != nil {
		t.Fatal(err)
	}
	if msg.Type != "activity" || msg.Data.ID != 7 || msg.Data.Type != models.ActivityPayment {
		t.Fatalf("unexpected frame: %s", raw)
	}
}

func TestPublishWithoutClients(t *testing.T) {
	hub := NewHub(logger.Discard())
	hub.PublishActivity(models.Activity{ID: 1})
	_ = hub.Close()
	hub.PublishActivity(models.Activity{ID: 2})
}
