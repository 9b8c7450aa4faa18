package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentials_Validate(t *testing.T) {
	t.Parallel()

	require.NoError(t, (&Credentials{Email: "reader@example.com", Password: "Secret1"}).Validate())
	assert.Error(t, (&Credentials{Password: "Secret1"}).Validate())
	assert.Error(t, (&Credentials{Email: "not-an-address", Password: "Secret1"}).Validate())
	assert.Error(t, (&Credentials{Email: "reader@example.com"}).Validate())
}

func TestRegisterRequest_Validate(t *testing.T) {
	t.Parallel()

	valid := RegisterRequest{Name: "Kamrul Hasan", Email: "kamrul@example.com", Password: "Bookworm1"}
	require.NoError(t, valid.Validate())

	t.Run("short password", func(t *testing.T) {
		r := valid
		r.Password = "Abc"
		assert.Error(t, r.Validate())
	})

	t.Run("no upper case", func(t *testing.T) {
		r := valid
		r.Password = "bookworm1"
		assert.Error(t, r.Validate())
	})

	t.Run("no lower case", func(t *testing.T) {
		r := valid
		r.Password = "BOOKWORM1"
		assert.Error(t, r.Validate())
	})

	t.Run("missing name", func(t *testing.T) {
		r := valid
		r.Name = " "
		assert.Error(t, r.Validate())
	})

	t.Run("bad email", func(t *testing.T) {
		r := valid
		r.Email = "kamrul"
		assert.Error(t, r.Validate())
	})
}

func TestUpdateProfileRequest_Validate(t *testing.T) {
	t.Parallel()

	assert.Error(t, (&UpdateProfileRequest{}).Validate())

	name := "New Name"
	require.NoError(t, (&UpdateProfileRequest{Name: &name}).Validate())

	blank := ""
	assert.Error(t, (&UpdateProfileRequest{Name: &blank}).Validate())

	photo := "https://cdn.example.com/p.png"
	require.NoError(t, (&UpdateProfileRequest{PhotoURL: &photo}).Validate())
}
