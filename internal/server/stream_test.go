package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
)

func TestActivityStreamAuth(t *testing.T) {
	ts := newTestServer(t)
	srv := httptest.NewServer(ts.router)
	defer srv.Close()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/activity"

	tests := []struct {
		name   string
		query  string
		header string
		want   int
	}{
		{"query token", "?token=" + ts.owner, "", http.StatusSwitchingProtocols},
		{"bearer header", "", "Bearer " + ts.owner, http.StatusSwitchingProtocols},
		{"lowercase scheme", "", "bearer " + ts.owner, http.StatusSwitchingProtocols},
		{"no token", "", "", http.StatusUnauthorized},
		{"bad token", "?token=nope", "", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := http.Header{}
			if tt.header != "" {
				header.Set("Authorization", tt.header)
			}
			conn, resp, err := websocket.DefaultDialer.Dial(url+tt.query, header)
			if conn != nil {
				defer conn.Close()
			}
			if resp == nil {
				t.Fatalf("dial: %v", err)
			}
			if resp.StatusCode != tt.want {
				t.Fatalf("status = %d, want %d (err %v)", resp.StatusCode, tt.want, err)
			}
		})
	}
}
