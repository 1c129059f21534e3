package payload

import (
	"strings"

	"gallery/internal/core"

	"github.com/jellydator/validation"
)

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Usernames are stored trimmed, so the length rules apply to the trimmed
// value as well.
func (r RegisterRequest) Validate() error {
	r.Username = strings.TrimSpace(r.Username)
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required, validation.Length(3, 50)),
		validation.Field(&r.Password, validation.Required, validation.Length(6, 0)),
	)
}

func (r RegisterRequest) ToMessage() core.RegisterMessage {
	return core.RegisterMessage{
		Username: strings.TrimSpace(r.Username),
		Password: r.Password,
	}
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (l LoginRequest) Validate() error {
	l.Username = strings.TrimSpace(l.Username)
	return validation.ValidateStruct(&l,
		validation.Field(&l.Username, validation.Required),
		validation.Field(&l.Password, validation.Required),
	)
}

func (l LoginRequest) ToMessage() core.AuthMessage {
	return core.AuthMessage{
		Username: strings.TrimSpace(l.Username),
		Password: l.Password,
	}
}
