package adapters

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/simrs-budget/backend/internal/application/adapter"
)

// credentialService implements the adapter.CredentialService interface
// against a fixed username -> bcrypt-hash map from configuration. The
// dashboard has a handful of operator accounts and no registration flow.
type credentialService struct {
	users map[string]string
}

// NewCredentialService creates a new credential service instance. The map
// keys are usernames, the values bcrypt hashes.
func NewCredentialService(users map[string]string) adapter.CredentialService {
	copied := make(map[string]string, len(users))
	for username, hash := range users {
		copied[username] = hash
	}
	return &credentialService{users: copied}
}

// Verify checks a username/password pair against the configured users. The
// error carries no detail about which of the two was wrong.
func (s *credentialService) Verify(username, password string) error {
	hash, ok := s.users[username]
	if !ok {
		// Burn a comparison anyway so a missing user costs the same as
		// a wrong password.
		_ = bcrypt.CompareHashAndPassword([]byte("$2a$12$0000000000000000000000uGZwKK0Nt2kDynnVRKAtcNvRrZ5zr2u"), []byte(password))
		return errors.New("unknown user")
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
