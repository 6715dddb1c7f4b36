package services

import (
	"errors"

	"prms/backend/models"
	"prms/backend/store"
)

// ErrInvalidCredentials covers every login failure — unknown
// identifier, wrong password, deactivated account — so the response
// never leaks which check failed.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Authenticate matches identifier against username or email and checks
// the stored secret. The comparison is in the clear; a production
// deployment must replace it with a real hash check, the lookup shape
// stays the same.
func Authenticate(s *store.Store, identifier, password string) (models.User, error) {
	for _, u := range s.Users() {
		if u.Username != identifier && u.Email != identifier {
			continue
		}
		if u.Password != password || !u.IsActive {
			return models.User{}, ErrInvalidCredentials
		}
		return u, nil
	}
	return models.User{}, ErrInvalidCredentials
}
