package handler

import (
	"net/http"
	"testing"

	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthHandler_Token_Success(t *testing.T) {
	h := NewAuthHandler(&fakeAuthUsecase{
		output: &usecase.LoginOutput{AccessToken: "signed-token", TokenType: "bearer"},
	})

	e := newTestEcho()
	c, rec := newJSONContext(e, http.MethodPost, "/auth/token",
		`{"email":"alice@example.com","password":"Password123!"}`)

	require.NoError(t, h.Token(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body usecase.LoginOutput
	decodeBody(t, rec, &body)
	assert.Equal(t, "signed-token", body.AccessToken)
	assert.Equal(t, "bearer", body.TokenType)
}

func TestAuthHandler_Token_CredentialFailurePropagates(t *testing.T) {
	h := NewAuthHandler(&fakeAuthUsecase{
		err: errors.Wrap(domainerrors.ErrWrongPassword, "login failed"),
	})

	e := newTestEcho()
	c, _ := newJSONContext(e, http.MethodPost, "/auth/token",
		`{"email":"alice@example.com","password":"wrong"}`)

	err := h.Token(c)
	requireAppErrorWith(t, err, http.StatusForbidden, domainerrors.CodeWrongPassword)
}

func TestAuthHandler_Token_ValidationFailures(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing email", body: `{"password":"Password123!"}`},
		{name: "email not an address", body: `{"email":"not-an-email","password":"Password123!"}`},
		{name: "missing password", body: `{"email":"alice@example.com"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewAuthHandler(&fakeAuthUsecase{})

			e := newTestEcho()
			c, _ := newJSONContext(e, http.MethodPost, "/auth/token", tt.body)

			err := h.Token(c)
			requireAppErrorWith(t, err,
				http.StatusUnprocessableEntity, domainerrors.CodeInvalidPayload)
		})
	}
}

func TestAuthHandler_Token_MalformedJSON(t *testing.T) {
	h := NewAuthHandler(&fakeAuthUsecase{})

	e := newTestEcho()
	c, rec := newJSONContext(e, http.MethodPost, "/auth/token", `{not json`)

	require.NoError(t, h.Token(c))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body domainerrors.ErrorBody
	decodeBody(t, rec, &body)
	assert.Equal(t, domainerrors.CodeInvalidPayload, body.ErrorCode)
}
