package api

import (
	"testing"
	"time"

	"github.com/trimly-app/survey-api/internal/models"
)

func TestMemoryStoreListsNewestFirst(t *testing.T) {
	store := NewMemoryStore()
	old := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	recent := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	if _, err := store.InsertCustomerResponse(&models.CustomerResponse{Age: "old", Timestamp: old}); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if _, err := store.InsertCustomerResponse(&models.CustomerResponse{Age: "recent", Timestamp: recent}); err != nil {
		t.Fatalf("insert: %v", err)
	}

	rows, err := store.ListCustomerResponses()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 2 || rows[0].Age != "recent" || rows[1].Age != "old" {
		t.Fatalf("unexpected order: %v, %v", rows[0].Age, rows[1].Age)
	}
}

func TestMemoryStoreCopiesOnRead(t *testing.T) {
	store := NewMemoryStore()
	if _, err := store.InsertBarberResponse(&models.BarberResponse{BusinessName: "Cukur Bro"}); err != nil {
		t.Fatalf("insert: %v", err)
	}

	rows, err := store.ListBarberResponses()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	rows[0].BusinessName = "mutated"

	again, err := store.ListBarberResponses()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if again[0].BusinessName != "Cukur Bro" {
		t.Fatalf("stored row mutated through a read copy: %q", again[0].BusinessName)
	}
}

func TestMemoryStoreAdmins(t *testing.T) {
	store := NewMemoryStore()

	u, err := store.FindAdminByUsername("admin")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if u != nil {
		t.Fatalf("expected nil for unknown admin, got %+v", u)
	}

	if err := store.CreateAdmin(&models.AdminUser{Username: "admin", PassHash: []byte("hash")}); err != nil {
		t.Fatalf("create: %v", err)
	}
	u, err = store.FindAdminByUsername("admin")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if u == nil || u.ID == 0 || u.CreatedAt.IsZero() {
		t.Fatalf("unexpected admin row: %+v", u)
	}
}
