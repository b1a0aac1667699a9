package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Common user validation errors. Each wraps ErrValidation so callers
// can classify them without matching individual fields.
var (
	ErrEmptyUserID         = fmt.Errorf("%w: user ID cannot be empty", ErrValidation)
	ErrEmptyLogin          = fmt.Errorf("%w: login cannot be empty", ErrValidation)
	ErrInvalidLogin        = fmt.Errorf("%w: login must be a valid email address", ErrValidation)
	ErrEmptyPassword       = fmt.Errorf("%w: password cannot be empty", ErrValidation)
	ErrPasswordTooShort    = fmt.Errorf("%w: password must be at least 6 characters long", ErrValidation)
	ErrPasswordTooLong     = fmt.Errorf("%w: password must be at most 72 characters long", ErrValidation)
	ErrEmptyHashedPassword = fmt.Errorf("%w: hashed password cannot be empty", ErrValidation)
)

// User represents a registered forum user. The login doubles as the JWT
// subject, so it is the identity string used throughout the API.
type User struct {
	ID             uuid.UUID `json:"id"`
	Login          string    `json:"login"`
	Password       string    `json:"-"` // Plaintext, only populated during registration
	HashedPassword string    `json:"-"` // Never exposed in JSON
	CreatedAt      time.Time `json:"created_at"`
}

// NewUser creates a User with the given login and plaintext password.
// The caller is responsible for hashing the password before storage.
func NewUser(login, password string) (*User, error) {
	user := &User{
		ID:        uuid.New(),
		Login:     login,
		Password:  password,
		CreatedAt: time.Now().UTC(),
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks the User fields. A user must carry either a plaintext
// password (pre-hash, during registration) or a hashed one (loaded from
// storage).
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}

	if u.Login == "" {
		return ErrEmptyLogin
	}

	if !validLoginFormat(u.Login) {
		return ErrInvalidLogin
	}

	if u.Password != "" {
		if len(u.Password) < 6 {
			return ErrPasswordTooShort
		}
		// bcrypt truncates beyond 72 bytes
		if len(u.Password) > 72 {
			return ErrPasswordTooLong
		}
	} else if u.HashedPassword == "" {
		return ErrEmptyPassword
	}

	return nil
}

// SameLogin reports whether the given login identifies this user.
// Login comparison is case-insensitive everywhere in the application.
func (u *User) SameLogin(login string) bool {
	return strings.EqualFold(u.Login, login)
}

// validLoginFormat checks that the login is email-shaped: a local part, an
// @, and a domain containing an interior dot.
func validLoginFormat(login string) bool {
	at := strings.IndexByte(login, '@')
	if at <= 0 || at == len(login)-1 {
		return false
	}

	domain := login[at+1:]
	dot := strings.IndexByte(domain, '.')
	return dot > 0 && dot < len(domain)-1
}
