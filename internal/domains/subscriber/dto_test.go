package subscriber

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubscribeRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		wantErr string
	}{
		{name: "valid", email: "a@x.com"},
		{name: "valid with plus", email: "a+news@x.com"},
		{name: "missing", email: "", wantErr: "Email is required"},
		{name: "no at sign", email: "not-an-email", wantErr: "Invalid email format"},
		{name: "no domain", email: "a@", wantErr: "Invalid email format"},
		{name: "spaces", email: "a b@x.com", wantErr: "Invalid email format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := SubscribeRequest{Email: tt.email}.Validate()

			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
