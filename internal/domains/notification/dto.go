package notification

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// NotifyRequest is the body of POST /api/notify-subscribers, fired by the
// publishing side when a post goes live.
type NotifyRequest struct {
	PostTitle       string `json:"postTitle"`
	PostDescription string `json:"postDescription"`
	PostURL         string `json:"postUrl"`
	PostImage       string `json:"postImage"`
}

func (r NotifyRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.PostTitle, validation.Required.Error("Post title and URL are required")),
		validation.Field(&r.PostURL,
			validation.Required.Error("Post title and URL are required"),
			is.URL.Error("Post URL must be a valid URL"),
		),
	)
}

// Summary aggregates a fan-out run. Total is the size of the active
// subscriber set at the time of the call; Sent + Failed == Total. A non-zero
// Failed is not an error, it is the best-effort contract working as intended.
type Summary struct {
	Sent   int `json:"sent"`
	Failed int `json:"failed"`
	Total  int `json:"total"`
}
