package search

import (
	"testing"

	"hostel-management-backend/internal/models"
)

func TestMatches(t *testing.T) {
	tests := []struct {
		name   string
		term   string
		fields []string
		want   bool
	}{
		{"empty term", "", []string{"anything"}, true},
		{"leading space is literal", " hostel", []string{"Downtown Hostel"}, true},
		{"trailing space is literal", "hostel ", []string{"Downtown Hostel"}, false},
		{"blank term", "   ", []string{"Downtown Hostel"}, false},
		{"case insensitive", "downtown", []string{"Downtown Hostel"}, true},
		{"substring of second field", "main st", []string{"Downtown Hostel", "123 Main St, City Center"}, true},
		{"no match", "riverside", []string{"Downtown Hostel", "123 Main St"}, false},
		{"unicode folding", "ÉCOLE", []string{"Résidence école"}, true},
		{"no fields", "x", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Matches(tt.term, tt.fields...); got != tt.want {
				t.Errorf("Matches(%q, %v) = %v, want %v", tt.term, tt.fields, got, tt.want)
			}
		})
	}
}

func TestFilterIsMatchingSubsequence(t *testing.T) {
	alice := "Alice Johnson"
	rooms := []models.Room{
		{ID: 1, RoomNumber: "101", HostelName: "Downtown Hostel", Tenant: &alice},
		{ID: 2, RoomNumber: "102", HostelName: "Downtown Hostel"},
		{ID: 3, RoomNumber: "201", HostelName: "University Campus"},
		{ID: 4, RoomNumber: "A1", HostelName: "City Center"},
	}

	for _, term := range []string{"", "downtown", "01", "alice", "campus", "zzz"} {
		got := Filter(rooms, term, RoomFields)

		next := 0
		for _, r := range got {
			if !Matches(term, RoomFields(&r)...) {
				t.Fatalf("term %q: room %d does not match", term, r.ID)
			}
			for next < len(rooms) && rooms[next].ID != r.ID {
				next++
			}
			if next == len(rooms) {
				t.Fatalf("term %q: result is not a subsequence", term)
			}
			next++
		}
	}

	if got := Filter(rooms, "alice", RoomFields); len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("tenant search = %+v", got)
	}
	if got := Filter(rooms, "01", RoomFields); len(got) != 2 {
		t.Fatalf("room number search returned %d rooms", len(got))
	}
}
