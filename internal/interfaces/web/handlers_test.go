package web

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/infrastructure/auth"
	"helpdesk/internal/infrastructure/config"
	"helpdesk/internal/shared/authorization"
	sharedconfig "helpdesk/internal/shared/config"
)

func testConfig(backendURL string) *config.Config {
	return &config.Config{
		Web: sharedconfig.WebConfig{
			BackendURL:    backendURL,
			SessionSecret: "test-secret",
			SessionExpHrs: 1,
		},
		Storage: sharedconfig.StorageConfig{
			Region:    "il-jerusalem-1",
			Namespace: "testns",
			Bucket:    "helpdesk-media",
			ServeMode: "redirect",
		},
	}
}

func newTestRouter(t *testing.T, backendURL string) (*Router, *auth.SessionService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router, err := NewRouter(testConfig(backendURL), nil)
	require.NoError(t, err)
	sessions := auth.NewSessionService("test-secret", 1)
	return router, sessions
}

func sessionRequest(t *testing.T, sessions *auth.SessionService, method, target string, body string, role authorization.Role) *http.Request {
	t.Helper()
	token, err := sessions.Generate(7, "agent", role)
	require.NoError(t, err)

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	req.AddCookie(&http.Cookie{Name: sessionCookie, Value: token})
	return req
}

func TestIndex_RedirectsAnonymousToLogin(t *testing.T) {
	router, _ := newTestRouter(t, "http://127.0.0.1:1")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	router.Engine().ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestIndex_RedirectsSessionToDashboard(t *testing.T) {
	router, sessions := newTestRouter(t, "http://127.0.0.1:1")

	req := sessionRequest(t, sessions, http.MethodGet, "/", "", authorization.RoleMember)
	w := httptest.NewRecorder()
	router.Engine().ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))
}

func TestDashboard_RequiresSession(t *testing.T) {
	router, _ := newTestRouter(t, "http://127.0.0.1:1")

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	w := httptest.NewRecorder()
	router.Engine().ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestDashboard_RejectsTamperedCookie(t *testing.T) {
	router, _ := newTestRouter(t, "http://127.0.0.1:1")

	other := auth.NewSessionService("other-secret", 1)
	token, err := other.Generate(7, "agent", authorization.RoleAdmin)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookie, Value: token})
	w := httptest.NewRecorder()
	router.Engine().ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestLogin_SuccessSetsSessionCookie(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/login", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id": 7, "username": "agent", "is_admin": false, "is_staff": true,
		})
	}))
	defer backend.Close()

	router, sessions := newTestRouter(t, backend.URL)

	form := url.Values{"username": {"agent"}, "password": {"s3cret-pass"}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.Engine().ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))

	var sessionValue string
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == sessionCookie {
			sessionValue = cookie.Value
		}
	}
	require.NotEmpty(t, sessionValue)

	claims, err := sessions.Verify(sessionValue)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, authorization.RoleStaff, claims.Role)
}

func TestLogin_InvalidCredentialsRedirectsBack(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"type":"UNAUTHORIZED","message":"invalid username or password"}}`))
	}))
	defer backend.Close()

	router, _ := newTestRouter(t, backend.URL)

	form := url.Values{"username": {"agent"}, "password": {"wrong"}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.Engine().ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestDashboard_RendersTickets(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tickets", r.URL.Path)
		assert.Equal(t, "7", r.URL.Query().Get("user_id"))
		_, _ = w.Write([]byte(`[{"id":1,"title":"printer on fire","status":"open","creator_id":7,"created_at":"2026-01-02T10:00:00Z","updated_at":"2026-01-02T10:00:00Z"}]`))
	}))
	defer backend.Close()

	router, sessions := newTestRouter(t, backend.URL)

	req := sessionRequest(t, sessions, http.MethodGet, "/dashboard", "", authorization.RoleMember)
	w := httptest.NewRecorder()
	router.Engine().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "printer on fire")
	assert.Contains(t, w.Body.String(), "agent")
}

func TestDashboard_BackendDownStillRenders(t *testing.T) {
	router, sessions := newTestRouter(t, "http://127.0.0.1:1")

	req := sessionRequest(t, sessions, http.MethodGet, "/dashboard", "", authorization.RoleMember)
	w := httptest.NewRecorder()
	router.Engine().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "No tickets yet")
}

func TestTicketDetail_RendersMarkdownReports(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/tickets/9":
			_, _ = w.Write([]byte(`{"id":9,"title":"printer on fire","description":"third floor","status":"open","creator_id":7,"created_at":"2026-01-02T10:00:00Z","updated_at":"2026-01-02T10:00:00Z"}`))
		case "/tickets/9/reports":
			_, _ = w.Write([]byte(`[{"id":1,"ticket_id":9,"author_id":5,"comment":"**fixed** <script>alert(1)</script>","attachment_url":null,"created_at":"2026-01-02T11:00:00Z"}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer backend.Close()

	router, sessions := newTestRouter(t, backend.URL)

	req := sessionRequest(t, sessions, http.MethodGet, "/ticket/9", "", authorization.RoleMember)
	w := httptest.NewRecorder()
	router.Engine().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "<strong>fixed</strong>")
	assert.NotContains(t, w.Body.String(), "<script>alert(1)</script>")
	assert.Contains(t, w.Body.String(), `<option value="in_progress"`)
	assert.Contains(t, w.Body.String(), "2026-01-02 11:00")
	assert.NotContains(t, w.Body.String(), "This ticket is closed.")
}

func TestTicketDetail_ClosedTicketShowsNotice(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/tickets/9":
			_, _ = w.Write([]byte(`{"id":9,"title":"printer on fire","description":"third floor","status":"closed","creator_id":7,"created_at":"2026-01-02T10:00:00Z","updated_at":"2026-01-03T10:00:00Z"}`))
		case "/tickets/9/reports":
			_, _ = w.Write([]byte(`[]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer backend.Close()

	router, sessions := newTestRouter(t, backend.URL)

	req := sessionRequest(t, sessions, http.MethodGet, "/ticket/9", "", authorization.RoleMember)
	w := httptest.NewRecorder()
	router.Engine().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "This ticket is closed.")
}

func TestTicketDetail_NotFound(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"type":"NOT_FOUND","message":"ticket not found"}}`))
	}))
	defer backend.Close()

	router, sessions := newTestRouter(t, backend.URL)

	req := sessionRequest(t, sessions, http.MethodGet, "/ticket/404", "", authorization.RoleMember)
	w := httptest.NewRecorder()
	router.Engine().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdmin_NonAdminRedirected(t *testing.T) {
	router, sessions := newTestRouter(t, "http://127.0.0.1:1")

	req := sessionRequest(t, sessions, http.MethodGet, "/admin", "", authorization.RoleStaff)
	w := httptest.NewRecorder()
	router.Engine().ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))
}

func TestAdmin_AdminSeesCreateForm(t *testing.T) {
	router, sessions := newTestRouter(t, "http://127.0.0.1:1")

	req := sessionRequest(t, sessions, http.MethodGet, "/admin", "", authorization.RoleAdmin)
	w := httptest.NewRecorder()
	router.Engine().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Create user")
}

type fakeObjectStore struct{}

func (fakeObjectStore) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	return nil
}

func (fakeObjectStore) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader("blob")), nil
}

func (fakeObjectStore) URLFor(key string) string {
	return "https://objectstorage.il-jerusalem-1.oraclecloud.com/n/testns/b/helpdesk-media/o/" + key
}

func TestMedia_RedirectsToObjectURL(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router, err := NewRouter(testConfig("http://127.0.0.1:1"), fakeObjectStore{})
	require.NoError(t, err)
	sessions := auth.NewSessionService("test-secret", 1)

	req := sessionRequest(t, sessions, http.MethodGet, "/media/tickets/7/crash.log", "", authorization.RoleMember)
	w := httptest.NewRecorder()
	router.Engine().ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "https://objectstorage.il-jerusalem-1.oraclecloud.com/n/testns/b/helpdesk-media/o/tickets/7/crash.log", w.Header().Get("Location"))
}

func TestMedia_RouteFollowsConfiguredPath(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig("http://127.0.0.1:1")
	cfg.Web.MediaPath = "/files"
	router, err := NewRouter(cfg, fakeObjectStore{})
	require.NoError(t, err)
	sessions := auth.NewSessionService("test-secret", 1)

	req := sessionRequest(t, sessions, http.MethodGet, "/files/tickets/7/crash.log", "", authorization.RoleMember)
	w := httptest.NewRecorder()
	router.Engine().ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "tickets/7/crash.log")
}

func TestMedia_StreamModePipesObjectBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig("http://127.0.0.1:1")
	cfg.Storage.ServeMode = "stream"
	router, err := NewRouter(cfg, fakeObjectStore{})
	require.NoError(t, err)
	sessions := auth.NewSessionService("test-secret", 1)

	req := sessionRequest(t, sessions, http.MethodGet, "/media/tickets/7/crash.log", "", authorization.RoleMember)
	w := httptest.NewRecorder()
	router.Engine().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "blob", w.Body.String())
}

func TestMedia_RequiresSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router, err := NewRouter(testConfig("http://127.0.0.1:1"), fakeObjectStore{})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/media/tickets/7/crash.log", nil)
	w := httptest.NewRecorder()
	router.Engine().ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestAdmin_CreateUserForwardsCheckboxFlags(t *testing.T) {
	var captured map[string]any
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/users", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		_, _ = w.Write([]byte(`{"id":10,"username":"bob","is_admin":false,"is_staff":true}`))
	}))
	defer backend.Close()

	router, sessions := newTestRouter(t, backend.URL)

	form := url.Values{"username": {"bob"}, "password": {"longenough"}, "is_staff": {"on"}}
	req := sessionRequest(t, sessions, http.MethodPost, "/admin", form.Encode(), authorization.RoleAdmin)
	w := httptest.NewRecorder()
	router.Engine().ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, true, captured["is_staff"])
	assert.Equal(t, false, captured["is_admin"])
}
