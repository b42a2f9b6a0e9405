package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"filevault-api/internal/interface/api/rest/dto/auth"
)

func TestIsUUID(t *testing.T) {
	ok, _ := IsUUID("b7f2a0cd-7e34-4f1c-9a56-0cfe2d7b8a11")
	assert.True(t, ok)

	ok, _ = IsUUID("not-a-uuid")
	assert.False(t, ok)
}

func TestValidateSignup_Table(t *testing.T) {
	tests := []struct {
		name     string
		req      auth.SignupRequest
		wantKeys []string
	}{
		{
			name: "valid",
			req:  auth.SignupRequest{Email: "jane@example.com", Password: "longenough", DisplayName: "Jane"},
		},
		{
			name: "valid without display name",
			req:  auth.SignupRequest{Email: "jane@example.com", Password: "longenough"},
		},
		{
			name:     "missing email",
			req:      auth.SignupRequest{Password: "longenough"},
			wantKeys: []string{"email"},
		},
		{
			name:     "bad email format",
			req:      auth.SignupRequest{Email: "not-an-email", Password: "longenough"},
			wantKeys: []string{"email"},
		},
		{
			name:     "short password",
			req:      auth.SignupRequest{Email: "jane@example.com", Password: "short"},
			wantKeys: []string{"password"},
		},
		{
			name:     "password too long",
			req:      auth.SignupRequest{Email: "jane@example.com", Password: strings.Repeat("a", 73)},
			wantKeys: []string{"password"},
		},
		{
			name:     "display name too long",
			req:      auth.SignupRequest{Email: "jane@example.com", Password: "longenough", DisplayName: strings.Repeat("n", 65)},
			wantKeys: []string{"displayName"},
		},
		{
			name:     "everything wrong",
			req:      auth.SignupRequest{},
			wantKeys: []string{"email", "password"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateSignup(tt.req)
			if len(tt.wantKeys) == 0 {
				assert.Nil(t, errs)
				return
			}
			assert.Len(t, errs, len(tt.wantKeys))
			for _, k := range tt.wantKeys {
				assert.Contains(t, errs, k)
			}
		})
	}
}

func TestValidateLogin_Table(t *testing.T) {
	tests := []struct {
		name     string
		req      auth.LoginRequest
		wantKeys []string
	}{
		{
			name: "valid",
			req:  auth.LoginRequest{Email: "jane@example.com", Password: "longenough"},
		},
		{
			name:     "missing both",
			req:      auth.LoginRequest{},
			wantKeys: []string{"email", "password"},
		},
		{
			name:     "short password",
			req:      auth.LoginRequest{Email: "jane@example.com", Password: "short"},
			wantKeys: []string{"password"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateLogin(tt.req)
			if len(tt.wantKeys) == 0 {
				assert.Nil(t, errs)
				return
			}
			assert.Len(t, errs, len(tt.wantKeys))
			for _, k := range tt.wantKeys {
				assert.Contains(t, errs, k)
			}
		})
	}
}
