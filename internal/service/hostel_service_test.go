package service

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"hostel-management-backend/internal/models"
	"hostel-management-backend/internal/repository"
)

func TestHostelCreateDefaults(t *testing.T) {
	env := newTestEnv(t, false)
	ctx := context.Background()

	h, err := env.svc.Hostels.Create(ctx, HostelInput{Name: "Harbor View", Address: "1 Dock St", Capacity: 30}, 42)
	if err != nil {
		t.Fatal(err)
	}
	if h.ID == 0 || h.Occupied != 0 || h.Status != models.HostelActive || h.Revenue != 0 {
		t.Fatalf("unexpected defaults: %+v", h)
	}
	if got := env.publisher.types(); len(got) != 1 || got[0] != models.ActivityHostel {
		t.Fatalf("activities = %v", got)
	}
}

func TestHostelCreateThenDeleteRestoresCollection(t *testing.T) {
	env := newTestEnv(t, true)
	ctx := context.Background()

	before, _ := env.svc.Hostels.List(ctx, HostelFilter{})
	h, err := env.svc.Hostels.Create(ctx, HostelInput{Name: "Temporary", Address: "Nowhere"}, 1)
	if err != nil {
		t.Fatal(err)
	}
	if err := env.svc.Hostels.Delete(ctx, h.ID, 1); err != nil {
		t.Fatal(err)
	}
	after, _ := env.svc.Hostels.List(ctx, HostelFilter{})

	if !reflect.DeepEqual(before, after) {
		t.Fatal("collection differs after create+delete")
	}
}

func TestHostelUpdateAppliesOnlySubmittedFields(t *testing.T) {
	env := newTestEnv(t, true)
	ctx := context.Background()
	original := *mustGet(t, env.repos.Hostels, 2)

	updated, err := env.svc.Hostels.Update(ctx, 2, HostelPatch{
		Phone:  ptrTo("+1 (555) 000-0000"),
		Status: ptrTo(models.HostelMaintenance),
	}, 1)
	if err != nil {
		t.Fatal(err)
	}

	want := original
	want.Phone = "+1 (555) 000-0000"
	want.Status = models.HostelMaintenance
	if *updated != want {
		t.Fatalf("Update = %+v, want %+v", *updated, want)
	}

	hostels, _ := env.svc.Hostels.List(ctx, HostelFilter{})
	if hostels[1].ID != 2 || hostels[1].Phone != want.Phone {
		t.Fatalf("record not replaced in place: %+v", hostels[1])
	}
	if got := env.publisher.types(); got[len(got)-1] != models.ActivityMaintenance {
		t.Fatalf("expected maintenance activity, got %v", got)
	}
}

func TestHostelListFilters(t *testing.T) {
	env := newTestEnv(t, true)
	ctx := context.Background()

	tests := []struct {
		name   string
		filter HostelFilter
		want   []int64
	}{
		{"all", HostelFilter{}, []int64{1, 2, 3, 4, 5}},
		{"by name", HostelFilter{Search: "CITY"}, []int64{3}},
		{"by address", HostelFilter{Search: "district"}, []int64{2, 5}},
		{"by status", HostelFilter{Status: models.HostelMaintenance}, []int64{4}},
		{"search and status", HostelFilter{Search: "district", Status: models.HostelMaintenance}, []int64{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := env.svc.Hostels.List(ctx, tt.filter)
			if err != nil {
				t.Fatal(err)
			}
			ids := make([]int64, 0, len(got))
			for _, h := range got {
				ids = append(ids, h.ID)
			}
			if !reflect.DeepEqual(ids, tt.want) {
				t.Fatalf("ids = %v, want %v", ids, tt.want)
			}
		})
	}
}

func TestHostelMissing(t *testing.T) {
	env := newTestEnv(t, false)
	ctx := context.Background()

	if _, err := env.svc.Hostels.Update(ctx, 9, HostelPatch{Name: ptrTo("x")}, 1); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("Update: %v", err)
	}
	if err := env.svc.Hostels.Delete(ctx, 9, 1); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("Delete: %v", err)
	}
}
