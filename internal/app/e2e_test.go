//go:build e2e

package app_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/joinrss-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/joinrss-backend/internal/app"
	"github.com/heartmarshall/joinrss-backend/internal/config"
	"github.com/heartmarshall/joinrss-backend/internal/transport/middleware"
)

const testPassword = "correct-horse"

type testServer struct {
	t   *testing.T
	url string
	c   *app.Container
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, &slog.HandlerOptions{Level: slog.LevelWarn}))

	cfg := &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:  "e2e-secret-e2e-secret-e2e-secret",
			JWTIssuer:  "joinrss-e2e",
			SessionTTL: time.Hour,
			BcryptCost: 4,
		},
		Export:    config.ExportConfig{MaxRows: 1000, DefaultFormat: "csv"},
		CORS:      config.CORSConfig{AllowedOrigins: "*", AllowedMethods: "GET,POST,PATCH,DELETE", AllowedHeaders: "Authorization,Content-Type"},
		RateLimit: config.RateLimitConfig{LoginPerMinute: 1000, CleanupInterval: time.Minute},
	}

	c, err := app.NewContainer(cfg, logger, pool)
	require.NoError(t, err)
	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	srv := httptest.NewServer(app.NewRouter(c, limiter))
	t.Cleanup(func() {
		srv.Close()
		limiter.Stop()
	})

	return &testServer{t: t, url: srv.URL, c: c}
}

func (ts *testServer) do(method, path, token string, body any) *http.Response {
	ts.t.Helper()

	var r io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(ts.t, err)
		r = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(context.Background(), method, ts.url+path, r)
	require.NoError(ts.t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(ts.t, err)
	ts.t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

// login seeds a user with the given bhag (nil for admin) and returns a token.
func (ts *testServer) login(bhag *string) string {
	ts.t.Helper()

	u := testhelper.SeedUser(ts.t, ts.c.Pool, testPassword, bhag)
	resp := ts.do(http.MethodPost, "/auth/login", "", map[string]string{
		"username": u.Username,
		"password": testPassword,
	})
	require.Equal(ts.t, http.StatusOK, resp.StatusCode)

	body := decode[struct {
		Token string `json:"token"`
	}](ts.t, resp)
	require.NotEmpty(ts.t, body.Token)
	return body.Token
}

type listBody struct {
	Members []struct {
		ID         string `json:"id"`
		FirstName  string `json:"firstName"`
		FullName   string `json:"fullName"`
		City       string `json:"city"`
		BhagCode   string `json:"bhagCode"`
		Occupation string `json:"occupation"`
		Phone      string `json:"phone"`
		Activation string `json:"activation"`
		Remark     string `json:"remark"`
	} `json:"members"`
	Total int `json:"total"`
}

func TestE2E_Health(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.do(http.MethodGet, "/ready", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(middleware.RequestIDHeader))

	body := decode[struct {
		Components map[string]struct {
			Status  string `json:"status"`
			Current int64  `json:"current"`
			Latest  int64  `json:"latest"`
		} `json:"components"`
	}](t, resp)
	assert.Equal(t, "ok", body.Components["schema"].Status)
	assert.Equal(t, body.Components["schema"].Latest, body.Components["schema"].Current)
}

func TestE2E_MembersRequireSession(t *testing.T) {
	ts := setupTestServer(t)

	resp := ts.do(http.MethodGet, "/members", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = ts.do(http.MethodGet, "/members", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestE2E_LoginRejectsWrongPassword(t *testing.T) {
	ts := setupTestServer(t)

	u := testhelper.SeedUser(t, ts.c.Pool, testPassword, nil)
	resp := ts.do(http.MethodPost, "/auth/login", "", map[string]string{
		"username": u.Username,
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestE2E_ScopedVisibility(t *testing.T) {
	ts := setupTestServer(t)

	bhag := testhelper.UniqueCode("PUNE")
	other := testhelper.UniqueCode("NASHIK")
	mine := testhelper.SeedMember(t, ts.c.Pool, bhag, "Asha", "Pune")
	theirs := testhelper.SeedMember(t, ts.c.Pool, other, "Ravi", "Nashik")

	token := ts.login(&bhag)

	resp := ts.do(http.MethodGet, "/members", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[listBody](t, resp)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, mine.String(), list.Members[0].ID)
	assert.Equal(t, bhag, list.Members[0].BhagCode)

	resp = ts.do(http.MethodGet, "/members/"+theirs.String(), token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = ts.do(http.MethodDelete, "/members/"+theirs.String(), token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	admin := ts.login(nil)
	resp = ts.do(http.MethodGet, "/members/"+theirs.String(), admin, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestE2E_LegacyRowsAreReconciled(t *testing.T) {
	ts := setupTestServer(t)

	bhag := testhelper.UniqueCode("LEG")
	testhelper.SeedLegacyMember(t, ts.c.Pool, bhag, "Meera Joshi", "Nurse", "Kothrud", "9811111111")
	token := ts.login(&bhag)

	resp := ts.do(http.MethodGet, "/members", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[listBody](t, resp)
	require.Equal(t, 1, list.Total)

	m := list.Members[0]
	assert.Equal(t, "Meera Joshi", m.FullName)
	assert.Equal(t, "Nurse", m.Occupation)
	assert.Equal(t, "Kothrud", m.City)
	assert.Equal(t, "9811111111", m.Phone)
	assert.Equal(t, "imported", m.Remark)
	assert.Equal(t, "Pending", m.Activation)
}

func TestE2E_CreateSearchUpdateExport(t *testing.T) {
	ts := setupTestServer(t)

	bhag := testhelper.UniqueCode("FLOW")
	token := ts.login(&bhag)

	resp := ts.do(http.MethodPost, "/members", token, map[string]any{
		"firstName":  "Kiran",
		"lastName":   "Rao",
		"phone":      "9822222222",
		"city":       "Pune",
		"occupation": "Engineer",
		"age":        27,
		"bhagCode":   "SOMEWHERE-ELSE",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[struct {
		ID       string `json:"id"`
		BhagCode string `json:"bhagCode"`
		RegDate  string `json:"regDate"`
	}](t, resp)
	assert.Equal(t, bhag, created.BhagCode)
	assert.NotEmpty(t, created.RegDate)

	testhelper.SeedMember(t, ts.c.Pool, bhag, "Sunil", "Mumbai")

	resp = ts.do(http.MethodGet, "/members?field=age&q=25-30", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[listBody](t, resp)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, created.ID, list.Members[0].ID)

	resp = ts.do(http.MethodPost, "/members/search", token, map[string]any{
		"criteria": []map[string]string{{"field": "city", "query": "mumbai"}},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list = decode[listBody](t, resp)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, "Sunil", list.Members[0].FirstName)

	resp = ts.do(http.MethodPatch, "/members/"+created.ID, token, map[string]any{"activation": "Contacted"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decode[struct {
		Activation     string `json:"activation"`
		ActivationDate string `json:"activationDate"`
	}](t, resp)
	assert.Equal(t, "Contacted", updated.Activation)
	assert.NotEmpty(t, updated.ActivationDate)

	resp = ts.do(http.MethodPatch, "/members/"+created.ID, token, map[string]any{"bhagCode": "X"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = ts.do(http.MethodGet, "/members/export?format=csv&field=city&q=Pune", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "attachment")
	assert.Equal(t, "1", resp.Header.Get("X-Export-Rows"))
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\ufeff")), "csv export starts with a BOM")
	assert.Contains(t, string(data), "Kiran,Rao")

	resp = ts.do(http.MethodGet, "/members/export?field=city&q=Atlantis", token, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	resp = ts.do(http.MethodDelete, "/members/"+created.ID, token, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp = ts.do(http.MethodGet, "/members/"+created.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestE2E_LogoutRevokesSession(t *testing.T) {
	ts := setupTestServer(t)

	token := ts.login(nil)

	resp := ts.do(http.MethodGet, "/auth/session", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = ts.do(http.MethodPost, "/auth/logout", token, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = ts.do(http.MethodGet, "/auth/session", token, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
