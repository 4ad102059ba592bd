package subscriber

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// SubscribeRequest is the body of POST /api/subscribe and
// POST /api/unsubscribe.
type SubscribeRequest struct {
	Email string `json:"email"`
}

func (r SubscribeRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email,
			validation.Required.Error("Email is required"),
			is.Email.Error("Invalid email format"),
			validation.Length(3, 255).Error("Invalid email format"),
		),
	)
}
