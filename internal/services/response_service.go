package services

import (
	"time"

	"github.com/trimly-app/survey-api/internal/models"
)

// ResponseStore abstracts the persistence operations the submission and
// retrieval workflows need. Inserts are single autocommit statements; lists
// return every row, newest first.
type ResponseStore interface {
	InsertCustomerResponse(r *models.CustomerResponse) (*models.InsertResult, error)
	ListCustomerResponses() ([]*models.CustomerResponse, error)
	InsertBarberResponse(r *models.BarberResponse) (*models.InsertResult, error)
	ListBarberResponses() ([]*models.BarberResponse, error)
}

// ResponseService hosts the survey submission and retrieval workflows for
// both response kinds. Responses are append-only facts: nothing is validated,
// deduplicated, updated, or deleted here, and submitting the same payload
// twice stores two rows.
type ResponseService struct {
	store ResponseStore
	now   func() time.Time
}

func NewResponseService(store ResponseStore) *ResponseService {
	return &ResponseService{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (s *ResponseService) SubmitCustomer(r *models.CustomerResponse) (*models.InsertResult, error) {
	if r == nil {
		return nil, NewInvalidError("payload required")
	}
	if r.Timestamp.IsZero() {
		r.Timestamp = s.now()
	}
	return s.store.InsertCustomerResponse(r)
}

func (s *ResponseService) ListCustomers() ([]*models.CustomerResponse, error) {
	rows, err := s.store.ListCustomerResponses()
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []*models.CustomerResponse{}
	}
	return rows, nil
}

func (s *ResponseService) SubmitBarber(r *models.BarberResponse) (*models.InsertResult, error) {
	if r == nil {
		return nil, NewInvalidError("payload required")
	}
	if r.Timestamp.IsZero() {
		r.Timestamp = s.now()
	}
	return s.store.InsertBarberResponse(r)
}

func (s *ResponseService) ListBarbers() ([]*models.BarberResponse, error) {
	rows, err := s.store.ListBarberResponses()
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []*models.BarberResponse{}
	}
	return rows, nil
}
