package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/atinyakov/tinyapp/internal/middleware"
	"github.com/atinyakov/tinyapp/internal/mocks"
	"github.com/atinyakov/tinyapp/internal/models"
	"github.com/atinyakov/tinyapp/internal/storage"
)

func newUserHandler(t *testing.T) (*UserHandler, *mocks.MockUserServiceIface, *mocks.MockAuthIface) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserServiceIface(ctrl)
	auth := mocks.NewMockAuthIface(ctrl)
	return NewUser(users, auth, zap.NewNop()), users, auth
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.SessionCookie {
			return c
		}
	}
	return nil
}

func TestRegister(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		h, users, auth := newUserHandler(t)
		u := &models.User{ID: "user-1", Email: "a@x.io", PasswordHash: "hash"}

		users.EXPECT().Register(gomock.Any(), "a@x.io", "pw1").Return(u, nil)
		auth.EXPECT().BuildJWTString("user-1").Return("signed", nil)

		rec := httptest.NewRecorder()
		h.Register(rec, newFormRequest(http.MethodPost, "/register", "email=a%40x.io&password=pw1"))

		require.Equal(t, http.StatusCreated, rec.Code)
		c := sessionCookie(rec)
		require.NotNil(t, c)
		assert.Equal(t, "signed", c.Value)
		assert.True(t, c.HttpOnly)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "user-1", body["id"])
		assert.Equal(t, "a@x.io", body["email"])
		assert.NotContains(t, rec.Body.String(), "hash")
	})

	t.Run("duplicate email", func(t *testing.T) {
		h, users, _ := newUserHandler(t)
		users.EXPECT().Register(gomock.Any(), "a@x.io", "pw1").Return(nil, storage.ErrDuplicateEmail)

		rec := httptest.NewRecorder()
		h.Register(rec, newJSONRequest(http.MethodPost, "/register", `{"email":"a@x.io","password":"pw1"}`))

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Nil(t, sessionCookie(rec))
	})

	t.Run("empty password", func(t *testing.T) {
		h, _, _ := newUserHandler(t)

		rec := httptest.NewRecorder()
		h.Register(rec, newFormRequest(http.MethodPost, "/register", "email=a%40x.io&password="))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("token failure", func(t *testing.T) {
		h, users, auth := newUserHandler(t)
		users.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any()).Return(&models.User{ID: "user-1"}, nil)
		auth.EXPECT().BuildJWTString("user-1").Return("", errors.New("sign failed"))

		rec := httptest.NewRecorder()
		h.Register(rec, newFormRequest(http.MethodPost, "/register", "email=a%40x.io&password=pw"))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestLogin(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		h, users, auth := newUserHandler(t)
		users.EXPECT().Login(gomock.Any(), "a@x.io", "pw1").Return(&models.User{ID: "user-1", Email: "a@x.io"}, nil)
		auth.EXPECT().BuildJWTString("user-1").Return("signed", nil)

		rec := httptest.NewRecorder()
		h.Login(rec, newFormRequest(http.MethodPost, "/login", "email=a%40x.io&password=pw1"))

		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, sessionCookie(rec))
	})

	t.Run("bad credentials", func(t *testing.T) {
		h, users, _ := newUserHandler(t)
		users.EXPECT().Login(gomock.Any(), "a@x.io", "wrong").Return(nil, storage.ErrInvalidCredential)

		rec := httptest.NewRecorder()
		h.Login(rec, newFormRequest(http.MethodPost, "/login", "email=a%40x.io&password=wrong"))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Nil(t, sessionCookie(rec))
	})
}

func TestLogout(t *testing.T) {
	h, _, _ := newUserHandler(t)

	rec := httptest.NewRecorder()
	h.Logout(rec, httptest.NewRequest(http.MethodPost, "/logout", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	c := sessionCookie(rec)
	require.NotNil(t, c)
	assert.Empty(t, c.Value)
	assert.Negative(t, c.MaxAge)
}
