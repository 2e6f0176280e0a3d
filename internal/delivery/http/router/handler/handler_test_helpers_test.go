package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"gatekeeper/internal/delivery/http/validator"
	"gatekeeper/internal/domain/entity"
	domainerrors "gatekeeper/internal/domain/errors"
	"gatekeeper/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

// fakeAuthUsecase returns a canned login result or error.
type fakeAuthUsecase struct {
	output *usecase.LoginOutput
	err    error
}

func (f *fakeAuthUsecase) Login(_ context.Context, _ *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if f.err != nil {
		return nil, f.err
	}

	return f.output, nil
}

// fakeUserUsecase serves a single user keyed by its ID as the subject.
type fakeUserUsecase struct {
	user        *entity.User
	registerErr error
	deleted     bool
}

func (f *fakeUserUsecase) Register(_ context.Context, input *usecase.RegisterUserInput) (*entity.User, error) {
	if f.registerErr != nil {
		return nil, f.registerErr
	}

	return &entity.User{
		ID:        uuid.New(),
		Email:     input.Email,
		Username:  input.Username,
		CreatedAt: time.Now(),
	}, nil
}

func (f *fakeUserUsecase) GetBySubject(_ context.Context, subject string) (*entity.User, error) {
	if f.user == nil || subject != f.user.ID.String() {
		return nil, errors.Wrap(domainerrors.ErrUserNotFound, "subject lookup failed")
	}

	return f.user, nil
}

func (f *fakeUserUsecase) DeleteBySubject(_ context.Context, subject string) error {
	if f.user == nil || subject != f.user.ID.String() {
		return errors.Wrap(domainerrors.ErrUserNotFound, "subject delete failed")
	}
	f.deleted = true

	return nil
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.Logger.SetOutput(io.Discard)

	return e
}

func newJSONContext(e *echo.Echo, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

// requireAppErrorWith asserts that a handler returned a typed application error
// carrying the expected status and code.
func requireAppErrorWith(t *testing.T, err error, httpCode, errorCode int) {
	t.Helper()

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, httpCode, appErr.HTTPCode())
	require.Equal(t, errorCode, appErr.ErrorCode())
}
