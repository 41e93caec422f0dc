package services

import (
	"testing"
	"time"

	"github.com/trimly-app/survey-api/internal/models"
)

type stubResponseStore struct {
	customers []*models.CustomerResponse
	barbers   []*models.BarberResponse
	nextID    int64
}

func (s *stubResponseStore) InsertCustomerResponse(r *models.CustomerResponse) (*models.InsertResult, error) {
	s.nextID++
	r.ID = s.nextID
	s.customers = append(s.customers, r)
	return &models.InsertResult{InsertID: s.nextID, AffectedRows: 1}, nil
}

func (s *stubResponseStore) ListCustomerResponses() ([]*models.CustomerResponse, error) {
	return s.customers, nil
}

func (s *stubResponseStore) InsertBarberResponse(r *models.BarberResponse) (*models.InsertResult, error) {
	s.nextID++
	r.ID = s.nextID
	s.barbers = append(s.barbers, r)
	return &models.InsertResult{InsertID: s.nextID, AffectedRows: 1}, nil
}

func (s *stubResponseStore) ListBarberResponses() ([]*models.BarberResponse, error) {
	return s.barbers, nil
}

func TestSubmitCustomerStampsTimestamp(t *testing.T) {
	store := &stubResponseStore{}
	svc := NewResponseService(store)
	fixed := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	res, err := svc.SubmitCustomer(&models.CustomerResponse{Age: "18-24"})
	if err != nil {
		t.Fatalf("SubmitCustomer error: %v", err)
	}
	if res.InsertID != 1 || res.AffectedRows != 1 {
		t.Fatalf("unexpected insert result: %+v", res)
	}
	if !store.customers[0].Timestamp.Equal(fixed) {
		t.Fatalf("timestamp = %v, want %v", store.customers[0].Timestamp, fixed)
	}
}

func TestSubmitCustomerKeepsProvidedTimestamp(t *testing.T) {
	store := &stubResponseStore{}
	svc := NewResponseService(store)
	given := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	if _, err := svc.SubmitCustomer(&models.CustomerResponse{Timestamp: given}); err != nil {
		t.Fatalf("SubmitCustomer error: %v", err)
	}
	if !store.customers[0].Timestamp.Equal(given) {
		t.Fatalf("timestamp = %v, want %v", store.customers[0].Timestamp, given)
	}
}

func TestSubmitNilPayload(t *testing.T) {
	svc := NewResponseService(&stubResponseStore{})
	if _, err := svc.SubmitCustomer(nil); err == nil {
		t.Fatal("expected error for nil customer payload")
	}
	if _, err := svc.SubmitBarber(nil); err == nil {
		t.Fatal("expected error for nil barber payload")
	}
}

func TestDuplicateSubmissionsStoreTwoRows(t *testing.T) {
	store := &stubResponseStore{}
	svc := NewResponseService(store)

	first, err := svc.SubmitBarber(&models.BarberResponse{BusinessName: "Cukur Bro"})
	if err != nil {
		t.Fatalf("first submit error: %v", err)
	}
	second, err := svc.SubmitBarber(&models.BarberResponse{BusinessName: "Cukur Bro"})
	if err != nil {
		t.Fatalf("second submit error: %v", err)
	}
	if first.InsertID == second.InsertID {
		t.Fatalf("duplicate submissions share id %d", first.InsertID)
	}
	if len(store.barbers) != 2 {
		t.Fatalf("stored %d rows, want 2", len(store.barbers))
	}
}

func TestListReturnsEmptySliceNotNil(t *testing.T) {
	svc := NewResponseService(&stubResponseStore{})

	customers, err := svc.ListCustomers()
	if err != nil {
		t.Fatalf("ListCustomers error: %v", err)
	}
	if customers == nil {
		t.Fatal("ListCustomers returned nil slice")
	}
	barbers, err := svc.ListBarbers()
	if err != nil {
		t.Fatalf("ListBarbers error: %v", err)
	}
	if barbers == nil {
		t.Fatal("ListBarbers returned nil slice")
	}
}
