package api

import (
	"sort"
	"sync"
	"time"

	"github.com/trimly-app/survey-api/internal/models"
)

// MemoryStore keeps responses and admin logins in process memory. It mirrors
// the MySQL store's observable behavior: sequential ids, server-assigned
// timestamps, newest-first listings, copy-on-read.
type MemoryStore struct {
	mu          sync.RWMutex
	customers   []*models.CustomerResponse
	barbers     []*models.BarberResponse
	admins      map[string]*models.AdminUser
	nextID      int64
	nextAdminID int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{admins: map[string]*models.AdminUser{}}
}

func (s *MemoryStore) InsertCustomerResponse(r *models.CustomerResponse) (*models.InsertResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *r
	s.nextID++
	cp.ID = s.nextID
	if cp.Timestamp.IsZero() {
		cp.Timestamp = time.Now().UTC()
	}
	s.customers = append(s.customers, &cp)
	return &models.InsertResult{InsertID: cp.ID, AffectedRows: 1}, nil
}

func (s *MemoryStore) ListCustomerResponses() ([]*models.CustomerResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.CustomerResponse, 0, len(s.customers))
	for _, r := range s.customers {
		cp := *r
		out = append(out, &cp)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return out, nil
}

func (s *MemoryStore) InsertBarberResponse(r *models.BarberResponse) (*models.InsertResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *r
	s.nextID++
	cp.ID = s.nextID
	if cp.Timestamp.IsZero() {
		cp.Timestamp = time.Now().UTC()
	}
	s.barbers = append(s.barbers, &cp)
	return &models.InsertResult{InsertID: cp.ID, AffectedRows: 1}, nil
}

func (s *MemoryStore) ListBarberResponses() ([]*models.BarberResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.BarberResponse, 0, len(s.barbers))
	for _, r := range s.barbers {
		cp := *r
		out = append(out, &cp)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return out, nil
}

func (s *MemoryStore) FindAdminByUsername(username string) (*models.AdminUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.admins[username]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (s *MemoryStore) CreateAdmin(u *models.AdminUser) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *u
	s.nextAdminID++
	cp.ID = s.nextAdminID
	if cp.CreatedAt.IsZero() {
		cp.CreatedAt = time.Now().UTC()
	}
	s.admins[cp.Username] = &cp
	return nil
}
