package services

import (
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/trimly-app/survey-api/internal/models"
)

// AuthStore is the credential slice of the store.
type AuthStore interface {
	FindAdminByUsername(username string) (*models.AdminUser, error)
	CreateAdmin(u *models.AdminUser) error
}

// TokenSigner issues a signed bearer token for a logged-in admin.
type TokenSigner func(username string, ttl time.Duration) (string, error)

// AuthService checks dashboard logins against the admin_users table and
// issues signed tokens. Unknown usernames and wrong passwords fail with the
// same message so login attempts cannot enumerate accounts.
type AuthService struct {
	store     AuthStore
	signToken TokenSigner
	tokenTTL  time.Duration
	now       func() time.Time
}

func NewAuthService(store AuthStore, signer TokenSigner) *AuthService {
	return &AuthService{
		store:     store,
		signToken: signer,
		tokenTTL:  12 * time.Hour,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Shown verbatim for both unknown usernames and wrong passwords.
const loginFailedMessage = "Username atau password salah"

func (s *AuthService) Login(username, password string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", NewUnauthorizedError(loginFailedMessage)
	}
	u, err := s.store.FindAdminByUsername(username)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", NewUnauthorizedError(loginFailedMessage)
	}
	if err := bcrypt.CompareHashAndPassword(u.PassHash, []byte(password)); err != nil {
		return "", NewUnauthorizedError(loginFailedMessage)
	}
	if s.signToken == nil {
		return "", NewInvalidError("token signer not configured")
	}
	return s.signToken(u.Username, s.tokenTTL)
}

// EnsureAdmin seeds a login at startup when the username is not present yet.
// The password is stored as a bcrypt hash; an existing row is left untouched.
func (s *AuthService) EnsureAdmin(username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return NewInvalidError("admin username/password required")
	}
	existing, err := s.store.FindAdminByUsername(username)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.store.CreateAdmin(&models.AdminUser{
		Username:  username,
		PassHash:  hash,
		CreatedAt: s.now(),
	})
}

func (s *AuthService) TokenTTL() time.Duration { return s.tokenTTL }
