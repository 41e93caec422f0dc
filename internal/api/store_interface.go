package api

import "github.com/trimly-app/survey-api/internal/models"

// Store is the full persistence surface the API needs. The MySQL
// implementation lives in internal/db; MemoryStore backs tests and the
// no-database dev mode.
type Store interface {
	InsertCustomerResponse(r *models.CustomerResponse) (*models.InsertResult, error)
	ListCustomerResponses() ([]*models.CustomerResponse, error)

	InsertBarberResponse(r *models.BarberResponse) (*models.InsertResult, error)
	ListBarberResponses() ([]*models.BarberResponse, error)

	FindAdminByUsername(username string) (*models.AdminUser, error)
	CreateAdmin(u *models.AdminUser) error
}

var _ Store = (*MemoryStore)(nil)
