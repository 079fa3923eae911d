package server_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/atinyakov/tinyapp/internal/app/server"
	"github.com/atinyakov/tinyapp/internal/app/service"
	"github.com/atinyakov/tinyapp/internal/models"
	"github.com/atinyakov/tinyapp/internal/shortcode"
	"github.com/atinyakov/tinyapp/internal/storage"
	"github.com/atinyakov/tinyapp/internal/worker"
)

type testApp struct {
	ts   *httptest.Server
	urls *storage.URLRegistry
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	logger := zap.NewNop()
	users := storage.NewUserDirectory()
	urls := storage.NewURLRegistry(shortcode.NewGenerator())

	recorder := worker.NewVisitRecorder(logger, urls, 20*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	go recorder.Run(ctx)

	auth := service.NewAuth(users, "test-secret")
	r := server.Init(server.Deps{
		URLs:          service.NewURL(urls, users, recorder.GetInChannel(), service.RealClock{}, logger, "http://short.test"),
		Users:         auth,
		Auth:          auth,
		Logger:        logger,
		TrustedSubnet: "10.0.0.0/8",
	})

	ts := httptest.NewServer(r)
	t.Cleanup(func() {
		ts.Close()
		cancel()
	})

	return &testApp{ts: ts, urls: urls}
}

func (a *testApp) client() *resty.Client {
	c := resty.New().SetBaseURL(a.ts.URL)
	c.GetClient().CheckRedirect = func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}
	return c
}

func TestServer_UserJourney(t *testing.T) {
	app := newTestApp(t)
	c := app.client()

	resp, err := c.R().
		SetFormData(map[string]string{"email": "a@x.io", "password": "pw1"}).
		Post("/register")
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode())

	resp, err = c.R().
		SetFormData(map[string]string{"email": "a@x.io", "password": "pw1"}).
		Post("/register")
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode())

	resp, err = c.R().Post("/logout")
	require.NoError(t, err)
	require.Equal(t, http.StatusNoContent, resp.StatusCode())

	resp, err = c.R().Get("/urls")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode())

	resp, err = c.R().
		SetFormData(map[string]string{"email": "a@x.io", "password": "wrong"}).
		Post("/login")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode())

	resp, err = c.R().
		SetFormData(map[string]string{"email": "a@x.io", "password": "pw1"}).
		Post("/login")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())

	var created models.URLResponse
	resp, err = c.R().
		SetFormData(map[string]string{"longURL": "example.com"}).
		SetResult(&created).
		Post("/urls")
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode())
	assert.Equal(t, "http://example.com", created.LongURL)
	assert.Equal(t, "http://short.test/u/"+created.ShortCode, created.ShortURL)

	var list []models.URLResponse
	resp, err = c.R().SetResult(&list).Get("/urls")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	require.Len(t, list, 1)
	assert.Equal(t, created.ShortCode, list[0].ShortCode)

	resp, err = c.R().
		SetHeader("Content-Type", "application/json").
		SetBody(`{"edit":"https://b.org"}`).
		Put("/urls/" + created.ShortCode)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())

	resp, err = c.R().Get("/u/" + created.ShortCode)
	require.NoError(t, err)
	require.Equal(t, http.StatusTemporaryRedirect, resp.StatusCode())
	assert.Equal(t, "https://b.org", resp.Header().Get("Location"))

	resp, err = c.R().Delete("/urls/" + created.ShortCode)
	require.NoError(t, err)
	require.Equal(t, http.StatusNoContent, resp.StatusCode())

	resp, err = c.R().SetResult(&list).Get("/urls")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	assert.JSONEq(t, `[]`, resp.String())

	resp, err = c.R().Get("/u/" + created.ShortCode)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode())
}

func TestServer_Ownership(t *testing.T) {
	app := newTestApp(t)
	owner := app.client()
	stranger := app.client()

	for c, email := range map[*resty.Client]string{owner: "owner@x.io", stranger: "other@x.io"} {
		resp, err := c.R().
			SetFormData(map[string]string{"email": email, "password": "pw"}).
			Post("/register")
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.StatusCode())
	}

	var created models.URLResponse
	_, err := owner.R().
		SetFormData(map[string]string{"longURL": "https://a.com"}).
		SetResult(&created).
		Post("/urls")
	require.NoError(t, err)

	resp, err := stranger.R().Get("/urls/" + created.ShortCode)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode())

	resp, err = stranger.R().SetFormData(map[string]string{"edit": "evil.com"}).Put("/urls/" + created.ShortCode)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode())

	resp, err = stranger.R().Delete("/urls/" + created.ShortCode)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode())

	resp, err = stranger.R().Get("/urls/zzzzzz")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode())

	rec, err := app.urls.Get(context.Background(), created.ShortCode)
	require.NoError(t, err)
	assert.Equal(t, "https://a.com", rec.Original)
}

func TestServer_VisitStatistics(t *testing.T) {
	app := newTestApp(t)
	owner := app.client()

	resp, err := owner.R().
		SetFormData(map[string]string{"email": "owner@x.io", "password": "pw"}).
		Post("/register")
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode())

	var created models.URLResponse
	_, err = owner.R().
		SetFormData(map[string]string{"longURL": "https://a.com"}).
		SetResult(&created).
		Post("/urls")
	require.NoError(t, err)

	anon := app.client()
	for i := 0; i < 2; i++ {
		resp, err = anon.R().Get("/u/" + created.ShortCode)
		require.NoError(t, err)
		require.Equal(t, http.StatusTemporaryRedirect, resp.StatusCode())
	}
	resp, err = owner.R().Get("/u/" + created.ShortCode)
	require.NoError(t, err)
	require.Equal(t, http.StatusTemporaryRedirect, resp.StatusCode())

	require.Eventually(t, func() bool {
		rec, err := app.urls.Get(context.Background(), created.ShortCode)
		return err == nil && rec.Visits.Total() == 3
	}, time.Second, 10*time.Millisecond)

	var details models.URLDetailsResponse
	resp, err = owner.R().SetResult(&details).Get("/urls/" + created.ShortCode)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, 3, details.TotalVisits)
	assert.Equal(t, 2, details.UniqueVisitors)
}

func TestServer_InternalStats(t *testing.T) {
	app := newTestApp(t)
	c := app.client()

	resp, err := c.R().SetHeader("X-Real-IP", "192.168.1.1").Get("/api/internal/stats")
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode())

	resp, err = c.R().SetHeader("X-Real-IP", "10.1.2.3").Get("/api/internal/stats")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())

	var stats models.StatsResponse
	require.NoError(t, json.Unmarshal(resp.Body(), &stats))
	assert.Equal(t, models.StatsResponse{}, stats)
}

func TestServer_Gzip(t *testing.T) {
	app := newTestApp(t)
	c := app.client()

	resp, err := c.R().
		SetHeader("Accept-Encoding", "gzip").
		SetFormData(map[string]string{"email": "a@x.io", "password": "pw"}).
		Post("/register")
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode())

	var u models.User
	require.NoError(t, json.Unmarshal(resp.Body(), &u))
	assert.Equal(t, "a@x.io", u.Email)
}

func TestServer_UnknownRoute(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.client().R().Get("/nope")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode())

	resp, err = app.client().R().Patch("/register")
	require.NoError(t, err)
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode())
}
