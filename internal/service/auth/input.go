package auth

import (
	"net/url"
	"strings"

	"github.com/heartmarshall/studydocs-backend/internal/domain"
)

// MsgCredentialsRequired is returned when username or password is blank.
const MsgCredentialsRequired = "username and password are required"

const avatarBaseURL = "https://ui-avatars.com/api/?name="

// RegisterInput holds parameters for Register.
type RegisterInput struct {
	Username string
	Password string
	Name     string
	PhotoURL string
}

func (i *RegisterInput) normalize() {
	i.Username = strings.TrimSpace(i.Username)
	i.Name = strings.TrimSpace(i.Name)
	i.PhotoURL = strings.TrimSpace(i.PhotoURL)
	if i.Name == "" {
		i.Name = i.Username
	}
	if i.PhotoURL == "" {
		i.PhotoURL = AvatarURL(i.Name)
	}
}

// Validate validates the register input.
func (i RegisterInput) Validate() error {
	if i.Username == "" || i.Password == "" {
		return domain.NewValidationError("credentials", MsgCredentialsRequired)
	}
	if len(i.Username) > 100 {
		return domain.NewValidationError("username", "username is too long")
	}
	// bcrypt ignores input past 72 bytes.
	if len(i.Password) > 72 {
		return domain.NewValidationError("password", "password is too long")
	}
	return nil
}

// AvatarURL builds the generated avatar link for a display name. Spaces
// become "+".
func AvatarURL(name string) string {
	return avatarBaseURL + url.QueryEscape(name)
}

// LoginInput holds parameters for Login.
type LoginInput struct {
	Username string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	if strings.TrimSpace(i.Username) == "" || i.Password == "" {
		return domain.NewValidationError("credentials", MsgCredentialsRequired)
	}
	return nil
}
