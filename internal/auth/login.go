package auth

import (
	"github.com/google/uuid"

	"github.com/vangoframework/wms/internal/domain"
)

// userNamespace derives stable user IDs from usernames.
var userNamespace = uuid.MustParse("6f1c2b8e-3d4a-4f6e-9a1b-7c2d5e8f0a13")

// Login signs in with any well-formed credentials. No account store exists;
// the user ID is derived from the username so it is stable across logins.
func Login(username, password string) (*SessionData, error) {
	if err := domain.ValidateCredentials(username, password); err != nil {
		return nil, err
	}
	return &SessionData{
		UserID:   uuid.NewSHA1(userNamespace, []byte(username)),
		Username: username,
	}, nil
}
