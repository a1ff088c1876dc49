package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePassword(t *testing.T) {
	cases := []struct {
		name     string
		password string
		wantErr  string
	}{
		{"valid", "Sup3r@Senha", ""},
		{"too short", "Ab1@xyz", "at least 8 characters"},
		{"no uppercase", "sup3r@senha", "uppercase"},
		{"no lowercase", "SUP3R@SENHA", "lowercase"},
		{"no digit", "Super@Senha", "digit"},
		{"no special", "Sup3rSenha", "special"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidatePassword(tc.password)
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("maria@example.com"))
	assert.Error(t, ValidateEmail(""))
	assert.Error(t, ValidateEmail("not-an-email"))
	assert.Error(t, ValidateEmail("a b@example.com"))
}

func TestCreateUserRequest_Validate(t *testing.T) {
	req := CreateUserRequest{
		Name:     "Maria Souza",
		Email:    "maria@example.com",
		Password: "Sup3r@Senha",
		Type:     UserTypeTourist,
	}
	assert.NoError(t, req.Validate())

	bad := req
	bad.Type = "operator"
	assert.Error(t, bad.Validate())

	bad = req
	bad.Name = "  "
	assert.Error(t, bad.Validate())
}
