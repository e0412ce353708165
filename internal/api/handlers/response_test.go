package handlers

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RSV-ReservationService/internal/service/accounts/models"
)

func decode(t *testing.T, body string, dst interface{}) error {
	t.Helper()
	r := httptest.NewRequest("POST", "/", strings.NewReader(body))
	return DecodeJSON(r, dst)
}

func TestDecodeJSON_SignupRequest(t *testing.T) {
	var req models.SignupRequest
	err := decode(t, `{"email":"owner@example.com","password":"correct horse","role":"owner"}`, &req)
	require.NoError(t, err)
	assert.Equal(t, "owner@example.com", req.Email)
}

func TestDecodeJSON_SignupRequest_MissingEmail(t *testing.T) {
	var req models.SignupRequest
	err := decode(t, `{"password":"correct horse","role":"owner"}`, &req)
	assert.Error(t, err)
}

func TestDecodeJSON_SignupRequest_MalformedEmail(t *testing.T) {
	var req models.SignupRequest
	err := decode(t, `{"email":"not-an-email","password":"correct horse","role":"owner"}`, &req)
	assert.Error(t, err)
}

func TestDecodeJSON_LoginRequest_MissingPassword(t *testing.T) {
	var req models.LoginRequest
	err := decode(t, `{"email":"owner@example.com"}`, &req)
	assert.Error(t, err)
}

func TestDecodeJSON_UpdatePasswordRequest_MissingCurrent(t *testing.T) {
	var req models.UpdatePasswordRequest
	err := decode(t, `{"newPassword":"new password"}`, &req)
	assert.Error(t, err)
}

func TestDecodeJSON_UpdateAccountRequest_EmailOptionalButChecked(t *testing.T) {
	var req models.UpdateAccountRequest
	require.NoError(t, decode(t, `{}`, &req))

	err := decode(t, `{"email":"not-an-email"}`, &req)
	assert.Error(t, err)
}
