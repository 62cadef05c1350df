package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/MKuranov/ai_chat/internal/models"
	"github.com/MKuranov/ai_chat/internal/repo"
	"github.com/MKuranov/ai_chat/internal/service"
	"github.com/MKuranov/ai_chat/internal/tokens"
)

type stubProvider struct {
	reply      string
	err        error
	lastPrompt string
}

func (p *stubProvider) Generate(_ context.Context, prompt string) (string, error) {
	p.lastPrompt = prompt
	if p.err != nil {
		return "", p.err
	}
	return p.reply, nil
}

type testEnv struct {
	e        *echo.Echo
	db       *gorm.DB
	tokens   *tokens.Service
	provider *stubProvider
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	tokenSvc := &tokens.Service{Secret: []byte("test-jwt-secret")}
	provider := &stubProvider{}

	e := echo.New()
	Register(e, &Deps{
		Auth: &AuthHTTP{
			Svc: &service.AuthService{
				Repo:   repo.GormRepo{DB: db},
				Tokens: tokenSvc,
			},
		},
		Chat: &ChatHTTP{
			Svc: &service.ChatService{Provider: provider},
		},
		Tokens: tokenSvc,
	})

	return &testEnv{e: e, db: db, tokens: tokenSvc, provider: provider}
}

func (env *testEnv) doJSON(method, path string, body any, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)
	return rec
}

func (env *testEnv) doWithAuthHeader(method, path, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set(echo.HeaderAuthorization, header)
	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)
	return rec
}

func (env *testEnv) doForm(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)
	return rec
}

func (env *testEnv) register(t *testing.T, username, email, password string) {
	t.Helper()

	rec := env.doJSON(http.MethodPost, "/register", map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	}, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func (env *testEnv) login(t *testing.T, username, password string) string {
	t.Helper()

	rec := env.doForm("/login", url.Values{
		"username": {username},
		"password": {password},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp["access_token"])
	require.Equal(t, "bearer", resp["token_type"])
	return resp["access_token"]
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}
