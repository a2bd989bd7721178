package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateJSON(t *testing.T) {
	type payload struct {
		Due  Date  `json:"due"`
		Paid *Date `json:"paid"`
	}

	var p payload
	if err := json.Unmarshal([]byte(`{"due":"2024-07-01","paid":null}`), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if p.Due.String() != "2024-07-01" {
		t.Fatalf("due = %q", p.Due.String())
	}
	if p.Paid != nil {
		t.Fatalf("paid should stay nil, got %v", p.Paid)
	}

	out, err := json.Marshal(payload{Due: MustDate("2024-06-28")})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `{"due":"2024-06-28","paid":null}` {
		t.Fatalf("unexpected json: %s", out)
	}
}

func TestDateRejectsGarbage(t *testing.T) {
	var d Date
	if err := json.Unmarshal([]byte(`"28/06/2024"`), &d); err == nil {
		t.Fatal("expected error for non ISO date")
	}
}

func TestDateScan(t *testing.T) {
	var d Date
	if err := d.Scan(time.Date(2024, 6, 15, 13, 45, 0, 0, time.UTC)); err != nil {
		t.Fatal(err)
	}
	if d.String() != "2024-06-15" {
		t.Fatalf("scan time: %q", d.String())
	}
	if err := d.Scan([]byte("2024-02-01 00:00:00")); err != nil {
		t.Fatal(err)
	}
	if d.String() != "2024-02-01" {
		t.Fatalf("scan bytes: %q", d.String())
	}
	if err := d.Scan(nil); err != nil || !d.IsZero() {
		t.Fatalf("scan nil: %v %v", d, err)
	}
}
